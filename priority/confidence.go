package priority

import (
	"image"

	"github.com/katalvlaran/inpaint/gridgraph"
)

// confidence is the shared confidence map.
type confidence struct {
	mask *gridgraph.Mask
	hw   int
	area float64
	conf []float64
}

func newConfidence(m *gridgraph.Mask, hw int) confidence {
	c := confidence{
		mask: m,
		hw:   hw,
		area: float64((2*hw + 1) * (2*hw + 1)),
		conf: make([]float64, m.Width*m.Height),
	}
	for i := range c.conf {
		if m.IsValid(m.Point(i)) {
			c.conf[i] = 1
		}
	}
	return c
}

// Confidence returns the stored confidence of p, 0 outside the mask.
func (c *confidence) Confidence(p image.Point) float64 {
	if !c.mask.Contains(p) {
		return 0
	}
	return c.conf[c.mask.Index(p)]
}

// patch returns the mean confidence over the full support of p; pixels
// outside the image count as 0.
func (c *confidence) patch(p image.Point) float64 {
	var sum float64
	for y := p.Y - c.hw; y <= p.Y+c.hw; y++ {
		for x := p.X - c.hw; x <= p.X+c.hw; x++ {
			if c.mask.InBounds(x, y) {
				sum += c.conf[y*c.mask.Width+x]
			}
		}
	}
	return sum / c.area
}

// update gives every filled pixel the confidence of target.
func (c *confidence) update(target image.Point, filled []image.Point) {
	v := c.patch(target)
	for _, q := range filled {
		if c.mask.Contains(q) {
			c.conf[c.mask.Index(q)] = v
		}
	}
}

// OnionPeel orders boundary pixels by confidence alone.
type OnionPeel struct {
	confidence
}

// NewOnionPeel returns an OnionPeel over m with patch half-width hw.
func NewOnionPeel(m *gridgraph.Mask, hw int) *OnionPeel {
	return &OnionPeel{confidence: newConfidence(m, hw)}
}

// Compute implements Function.
func (o *OnionPeel) Compute(p image.Point) float64 { return o.patch(p) }

// Update implements Function.
func (o *OnionPeel) Update(target image.Point, filled []image.Point) { o.update(target, filled) }
