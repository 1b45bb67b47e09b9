// Package descriptor defines the per-pixel summaries compared during the
// nearest-neighbor search: rectangular patch descriptors and fixed-length
// feature vectors, each tagged with a tri-state Status.
//
// Status semantics:
//
//   - Source:  the whole support is inside the image and valid; may donate pixels.
//   - Target:  the pixel is on the fill boundary and needs filling.
//   - Invalid: not enough information (support leaves the image, mixed support
//     on a non-boundary pixel, or not yet computed).
//
// A descriptor's Status must be refreshed whenever the mask changes inside
// its support; the fill loop does this through Visitor.InitializeVertex.
package descriptor
