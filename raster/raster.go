package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Sentinel errors for raster operations.
var (
	// ErrEmptyImage indicates zero or negative dimensions.
	ErrEmptyImage = errors.New("raster: image must have positive width and height")
	// ErrBadChannels indicates an invalid channel count or channel index.
	ErrBadChannels = errors.New("raster: invalid channel")
	// ErrOutOfRange indicates a coordinate outside the image.
	ErrOutOfRange = errors.New("raster: coordinate out of range")
	// ErrSizeMismatch indicates differently sized planes or sample slices.
	ErrSizeMismatch = errors.New("raster: size mismatch")
)

// Image is a row-major multi-channel float64 image anchored at (0,0).
type Image struct {
	Width, Height int
	Channels      int
	Pix           []float64
}

// New allocates a zeroed width×height image with the given channel count.
func New(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrBadChannels, channels)
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]float64, width*height*channels),
	}, nil
}

// FromImage converts img to a three-channel image with samples in [0,255].
// Alpha is discarded. The result origin is img.Bounds().Min.
func FromImage(img image.Image) (*Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)

	out, _ := New(b.Dx(), b.Dy(), 3)
	for y := 0; y < out.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < out.Width; x++ {
			i := (y*out.Width + x) * 3
			out.Pix[i] = float64(row[x*4])
			out.Pix[i+1] = float64(row[x*4+1])
			out.Pix[i+2] = float64(row[x*4+2])
		}
	}
	return out, nil
}

// FromGray converts img to a single-channel image holding the gray level in [0,255].
func FromGray(img image.Image) (*Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	out, _ := New(b.Dx(), b.Dy(), 1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			out.Pix[(y-b.Min.Y)*out.Width+(x-b.Min.X)] = float64(g.Y)
		}
	}
	return out, nil
}

// Bounds returns the rectangle (0,0)-(Width,Height).
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.Width, im.Height)
}

// Contains reports whether p lies inside the image.
func (im *Image) Contains(p image.Point) bool {
	return p.X >= 0 && p.X < im.Width && p.Y >= 0 && p.Y < im.Height
}

func (im *Image) offset(p image.Point) int {
	return (p.Y*im.Width + p.X) * im.Channels
}

// At returns the samples of p as a slice aliasing Pix, or nil outside the image.
func (im *Image) At(p image.Point) []float64 {
	if !im.Contains(p) {
		return nil
	}
	i := im.offset(p)
	return im.Pix[i : i+im.Channels : i+im.Channels]
}

// Sample returns channel c of p. The caller must check bounds.
func (im *Image) Sample(p image.Point, c int) float64 {
	return im.Pix[im.offset(p)+c]
}

// Set stores vals at p. len(vals) must equal Channels.
func (im *Image) Set(p image.Point, vals []float64) error {
	if !im.Contains(p) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, p, im.Width, im.Height)
	}
	if len(vals) != im.Channels {
		return fmt.Errorf("%w: %d samples for %d channels", ErrSizeMismatch, len(vals), im.Channels)
	}
	copy(im.Pix[im.offset(p):], vals)
	return nil
}

// CopyPixel copies every channel of src onto dst.
func (im *Image) CopyPixel(dst, src image.Point) error {
	if !im.Contains(dst) || !im.Contains(src) {
		return fmt.Errorf("%w: copy %v → %v in %dx%d", ErrOutOfRange, src, dst, im.Width, im.Height)
	}
	copy(im.Pix[im.offset(dst):im.offset(dst)+im.Channels], im.Pix[im.offset(src):])
	return nil
}

// Luminance returns the Rec. 601 luma of p for three or more channels,
// or channel 0 for single-channel images. The caller must check bounds.
func (im *Image) Luminance(p image.Point) float64 {
	s := im.Pix[im.offset(p):]
	if im.Channels < 3 {
		return s[0]
	}
	return 0.299*s[0] + 0.587*s[1] + 0.114*s[2]
}

// IsFinite reports whether every sample of p is a finite number.
func (im *Image) IsFinite(p image.Point) bool {
	for _, v := range im.At(p) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (im *Image) Clone() *Image {
	c := *im
	c.Pix = make([]float64, len(im.Pix))
	copy(c.Pix, im.Pix)
	return &c
}

// AppendChannel returns a new image with the first channel of plane appended
// after the existing channels. plane must have the same dimensions.
func (im *Image) AppendChannel(plane *Image) (*Image, error) {
	if plane.Width != im.Width || plane.Height != im.Height {
		return nil, fmt.Errorf("%w: %dx%d plane for %dx%d image",
			ErrSizeMismatch, plane.Width, plane.Height, im.Width, im.Height)
	}
	out, _ := New(im.Width, im.Height, im.Channels+1)
	n := im.Width * im.Height
	for i := 0; i < n; i++ {
		copy(out.Pix[i*out.Channels:], im.Pix[i*im.Channels:(i+1)*im.Channels])
		out.Pix[i*out.Channels+im.Channels] = plane.Pix[i*plane.Channels]
	}
	return out, nil
}

// Channel extracts channel c as a single-channel image.
func (im *Image) Channel(c int) (*Image, error) {
	if c < 0 || c >= im.Channels {
		return nil, fmt.Errorf("%w: index %d of %d", ErrBadChannels, c, im.Channels)
	}
	out, _ := New(im.Width, im.Height, 1)
	for i := range out.Pix {
		out.Pix[i] = im.Pix[i*im.Channels+c]
	}
	return out, nil
}

// ToNRGBA renders the first three channels (or channel 0 as gray) into an
// opaque 8-bit image, clamping samples to [0,255].
func (im *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(im.Bounds())
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			s := im.At(image.Pt(x, y))
			var r, g, b uint8
			if im.Channels < 3 {
				r = clamp8(s[0])
				g, b = r, r
			} else {
				r, g, b = clamp8(s[0]), clamp8(s[1]), clamp8(s[2])
			}
			i := y*out.Stride + x*4
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = r, g, b, 0xff
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
