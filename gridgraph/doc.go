// Package gridgraph treats a 2D inpainting mask as an implicit grid graph:
// every pixel is a vertex, adjacency is 4- or 8-connected, and no vertex
// objects are ever allocated.
//
// What:
//
//   - Mask classifies each pixel as hole, valid, or indeterminate by comparing
//     its raw value with two sentinel values (HoleValue, ValidValue).
//   - Boundary pixels are hole pixels with at least one non-hole neighbor.
//   - MarkFilled turns hole pixels of a region into valid pixels (idempotent).
//   - FindPixelAcrossHole walks along a direction through consecutive hole
//     pixels to reach the valid region on the other side.
//   - ExpandHole, Invert and Cleanup are mask-maintenance utilities.
//   - HoleComponents finds connected hole regions.
//
// Why:
//
//   - The fill loop needs O(1) hole/valid lookups and cheap incremental
//     boundary recomputation around the last filled patch.
//
// Complexity:
//
//   - IsHole, IsValid, IsBoundary: O(1) (IsBoundary is O(d), d = 4 or 8).
//   - FindBoundary, HoleComponents: O(W×H×d), Memory: O(W×H).
//   - BoundaryIn, MarkFilled: O(|region|×d).
//   - ExpandHole: O(W×H×d) multi-source BFS.
//
// Options:
//
//   - GridOptions.HoleValue, GridOptions.ValidValue: sentinel raw values.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: a coordinate lies outside the mask.
//   - ErrSameSentinels: HoleValue equals ValidValue.
//   - ErrNegativeAmount: ExpandHole called with a negative amount.
package gridgraph
