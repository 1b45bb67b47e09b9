package difference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/inpaint/descriptor"
)

// FeatureVectorDifference is the L1 distance between two feature vectors.
type FeatureVectorDifference struct{}

// Difference implements Functor.
func (FeatureVectorDifference) Difference(a, b *descriptor.FeatureVector) float64 {
	if excluded(a, b) {
		return inf
	}
	mustSameLength(a.Values, b.Values)
	return floats.Distance(a.Values, b.Values, 1)
}

// WeightedFeatureVectorDifference is Σ w_i·|a_i − b_i|.
// Weights must have the same length as the compared vectors.
type WeightedFeatureVectorDifference struct {
	Weights []float64
}

// Difference implements Functor.
func (w WeightedFeatureVectorDifference) Difference(a, b *descriptor.FeatureVector) float64 {
	if excluded(a, b) {
		return inf
	}
	mustSameLength(a.Values, b.Values)
	if len(w.Weights) != len(a.Values) {
		panic(fmt.Errorf("%w: %d weights for %d dimensions",
			ErrInvalidDescriptorComparison, len(w.Weights), len(a.Values)))
	}
	var sum float64
	for i, wi := range w.Weights {
		sum += wi * math.Abs(a.Values[i]-b.Values[i])
	}
	return sum
}

// AngularDifference is the angle between two pre-normalized vectors, folded
// into [0, π/2] so that sign-ambiguous orientations (normals, isophotes)
// compare as equal.
type AngularDifference struct{}

// Difference implements Functor.
func (AngularDifference) Difference(a, b *descriptor.FeatureVector) float64 {
	if excluded(a, b) {
		return inf
	}
	mustSameLength(a.Values, b.Values)
	return foldedAngle(a.Values, b.Values)
}

func foldedAngle(a, b []float64) float64 {
	dot := math.Max(-1, math.Min(1, floats.Dot(a, b)))
	angle := math.Acos(dot)
	if angle > math.Pi/2 {
		angle -= math.Pi / 2
	}
	return angle
}
