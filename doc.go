// Package inpaint is the root of a patch-based image inpainting toolkit:
// the hole of an image is filled by repeatedly copying the best-matching
// patch from the valid region onto the highest-priority boundary pixel.
//
// What is inside?
//
//   - gridgraph:  hole/valid mask over the pixel grid, boundary detection
//   - raster:     multi-channel float images, conversions to image.Image
//   - descriptor: per-pixel patch descriptors with source/target status
//   - difference: patch difference functors (SAD, SSD, mean color, isophote)
//   - priority:   onion-peel, Criminisi and depth-aware fill order
//   - frontier:   lazily-invalidated boundary priority queue
//   - nnsearch:   linear, k-NN, staged and kd-tree candidate search
//   - painter:    hole-list and masked-grid patch painters
//   - engine:     the generic fill loop driven by visitor callbacks
//   - inpaint:    the assembled inpainter with YAML configuration
//
// The command cmd/inpaint runs the inpainter over image files.
//
// Quick start:
//
//	cfg := inpaint.DefaultConfig()
//	ip, err := inpaint.FromImages(img, mask, cfg)
//	if err != nil { ... }
//	if _, err := ip.Run(ctx); err != nil { ... }
//	png.Encode(w, ip.OutputImage())
//
// See examples/ for a runnable scenario.
package inpaint
