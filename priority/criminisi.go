package priority

import (
	"image"

	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/raster"
)

// Criminisi is the confidence × data-term priority.
type Criminisi struct {
	confidence
	im  *raster.Image
	lum *field
}

// NewCriminisi builds the smoothed luminance of im over the valid part of m.
func NewCriminisi(m *gridgraph.Mask, im *raster.Image, hw int, blurVariance float64) *Criminisi {
	return &Criminisi{
		confidence: newConfidence(m, hw),
		im:         im,
		lum:        newField(m, blurVariance, im.Luminance),
	}
}

// Compute implements Function.
func (c *Criminisi) Compute(p image.Point) float64 {
	return c.patch(p) * dataTerm(c.lum, c.mask, p)
}

// Update implements Function. Painted pixels enter the luminance field
// unsmoothed.
func (c *Criminisi) Update(target image.Point, filled []image.Point) {
	c.update(target, filled)
	for _, q := range filled {
		c.lum.set(q, c.im.Luminance(q))
	}
}
