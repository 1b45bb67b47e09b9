package priority

import (
	"errors"
	"fmt"
	"image"

	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/raster"
)

// Sentinel errors for priority functions.
var (
	// ErrUnknownFunction is returned by ByName for unregistered names.
	ErrUnknownFunction = errors.New("priority: unknown function")
	// ErrSizeMismatch indicates mask and image dimensions differ.
	ErrSizeMismatch = errors.New("priority: mask and image sizes differ")
	// ErrBadChannel indicates a depth channel outside the image.
	ErrBadChannel = errors.New("priority: depth channel out of range")
	// ErrNoImage indicates an image-based function built without an image.
	ErrNoImage = errors.New("priority: function needs an image")
	// ErrBadOption indicates a negative half-width, variance or threshold.
	ErrBadOption = errors.New("priority: invalid option")
)

// alpha normalizes data terms for 8-bit intensities.
const alpha = 255.0

// epsilon floors data terms.
const epsilon = 1e-3

// Function assigns a fill priority to boundary pixels.
type Function interface {
	// Compute returns the priority of boundary pixel p under the current mask.
	Compute(p image.Point) float64
	// Update is called after target was painted and before the filled pixels
	// are marked valid in the mask.
	Update(target image.Point, filled []image.Point)
	// Confidence returns the stored confidence of p.
	Confidence(p image.Point) float64
}

// Options configures ByName.
type Options struct {
	PatchHalfWidth int
	BlurVariance   float64
	DepthChannel   int
	DepthThreshold float64
}

// Names lists the registered function names.
func Names() []string { return []string{"criminisi", "depth", "onion-peel"} }

// ByName builds the priority function called name over mask m and image im.
// im is read live: painted pixels are picked up by Update.
func ByName(name string, m *gridgraph.Mask, im *raster.Image, o Options) (Function, error) {
	if o.PatchHalfWidth < 0 || o.BlurVariance < 0 || o.DepthThreshold < 0 {
		return nil, ErrBadOption
	}
	if im != nil && (im.Width != m.Width || im.Height != m.Height) {
		return nil, ErrSizeMismatch
	}
	switch name {
	case "", "onion-peel":
		return NewOnionPeel(m, o.PatchHalfWidth), nil
	case "criminisi":
		if im == nil {
			return nil, ErrNoImage
		}
		return NewCriminisi(m, im, o.PatchHalfWidth, o.BlurVariance), nil
	case "depth":
		return NewDepth(m, im, o.PatchHalfWidth, o.DepthChannel, o.BlurVariance, o.DepthThreshold)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}
