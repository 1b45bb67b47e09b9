// Package difference provides the dissimilarity scores used to rank source
// descriptors against a target descriptor.
//
// Every functor shares the same guard rules:
//
//   - comparing a descriptor with itself (same vertex) yields +Inf,
//   - comparing with an Invalid descriptor yields +Inf,
//
// so that such pairs are never selected as a best match. Patch functors also
// require the source to be a Source descriptor.
//
// Feature functors:
//
//   - FeatureVectorDifference:          Σ |a_i − b_i|
//   - WeightedFeatureVectorDifference:  Σ w_i·|a_i − b_i|
//   - AngularDifference:                acos(a·b) folded into [0, π/2]
//
// Patch functors (compare only the target's valid offsets):
//
//   - SumAbsolute, SumSquared (optionally averaged)
//   - MeanColor:     per-channel means compared with WeightedFeatureVectorDifference
//   - IsophoteAngle: mean luminance gradients compared with AngularDifference
//
// Feature vectors of different lengths are an internal invariant violation:
// the functors panic with an error wrapping ErrInvalidDescriptorComparison.
package difference
