// Package painter copies source pixels into the hole part of a target patch.
//
// Two interchangeable strategies:
//
//   - HoleList walks the target's precomputed HoleOffsets (descriptor.Patch.Finalize)
//     and paints the center last.
//   - MaskedGrid walks the square around the target and checks the mask at
//     every offset, for targets without a precomputed hole list.
//
// Both paint hole pixels only; pixels that were valid before the call are
// never handed to the visitor. Both honor a fill half-width, the radius of the
// square actually written per fill: 0 paints the center pixel alone, the patch
// half-width paints every hole pixel the match covers.
//
// Complexity: O(F²) per fill, F = 2·fill half-width + 1.
package painter
