// Package priority scores boundary pixels: the higher the score, the sooner
// the pixel is filled.
//
// Every Function keeps a per-pixel confidence map, 1 on valid pixels and 0 on
// holes at start. C(p) is the mean confidence over p's patch, and a filled
// pixel inherits the C of the target that filled it.
//
// Functions:
//
//   - OnionPeel:  C(p). Fills ring by ring from the boundary inwards.
//   - Criminisi:  C(p) · D(p), D = |isophote · normal| / 255 on a Gaussian
//     smoothed luminance (gift, normalized convolution over valid pixels).
//   - Depth:      C(p) · (D_depth(p) + K(p)), D_depth the data term on a depth
//     channel and K ∈ [0,1] a continuity term comparing depth on both sides of
//     the hole along the normal (gridgraph FindPixelAcrossHole).
//
// Data terms are floored at a small epsilon so that confidence still orders
// pixels in flat regions.
//
// Complexity:
//
//   - Compute: O(hw²) for the confidence sum, O(1) for data terms.
//   - Update:  O(hw² + filled).
//   - Setup:   O(W·H) plus one blur pass per smoothed plane.
package priority
