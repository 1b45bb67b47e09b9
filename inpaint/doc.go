// Package inpaint fills the hole of an image by copying well-matching patches
// from its valid region, one boundary pixel at a time.
//
// It wires the generic fill loop of package engine to pixels:
//
//   - descriptors: descriptor.Patch per pixel, rebuilt around every fill;
//   - priority:    onion-peel, criminisi or depth (package priority);
//   - frontier:    the lazy boundary queue (package frontier);
//   - search:      the difference functors of Config.DifferenceFunctors,
//     chained as a staged search (package nnsearch);
//   - painting:    hole-list or masked-grid (package painter).
//
// Basic usage:
//
//	cfg := inpaint.DefaultConfig()
//	ip, err := inpaint.FromImages(img, mask, cfg, inpaint.WithLogger(log))
//	if err != nil { ... }
//	if _, err := ip.Run(ctx); err != nil { ... }
//	out := ip.OutputImage()
//
// Iterate performs exactly one fill and returns the (target, source) pair,
// for hosts that display progress or cancel between fills.
//
// Inputs are copied; the caller's image and mask are never modified.
// An Inpainter is not safe for concurrent use.
package inpaint
