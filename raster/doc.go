// Package raster holds the multi-channel floating-point image the inpainting
// core reads from and paints into.
//
// What:
//
//   - Image stores Width×Height pixels of Channels float64 samples, row-major.
//   - FromImage converts any image.Image to three channels (R,G,B in [0,255]);
//     FromGray keeps a single channel.
//   - AppendChannel attaches an extra plane (for example a depth map).
//   - ToNRGBA renders back to an 8-bit image for persistence and viewing.
//
// Complexity:
//
//   - At, Set, CopyPixel, Luminance: O(Channels).
//   - FromImage, ToNRGBA, AppendChannel, Clone: O(W×H×Channels).
//
// Errors:
//
//   - ErrEmptyImage: zero or negative dimensions.
//   - ErrBadChannels: channel count < 1, or a channel index out of range.
//   - ErrOutOfRange: coordinate outside the image.
//   - ErrSizeMismatch: planes or sample slices of different sizes.
package raster
