package priority

import (
	"image"
	"math"

	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/raster"
)

// Depth favors boundary pixels on strong depth edges that continue across the
// hole.
type Depth struct {
	confidence
	im        *raster.Image
	channel   int
	threshold float64
	depth     *field
}

// NewDepth reads depth from channel of im. threshold is the depth difference
// at which continuity drops to exp(-1/2); 0 disables the continuity term.
func NewDepth(m *gridgraph.Mask, im *raster.Image, hw, channel int, blurVariance, threshold float64) (*Depth, error) {
	if im == nil || channel < 0 || channel >= im.Channels {
		return nil, ErrBadChannel
	}
	sample := func(p image.Point) float64 { return im.Sample(p, channel) }
	return &Depth{
		confidence: newConfidence(m, hw),
		im:         im,
		channel:    channel,
		threshold:  threshold,
		depth:      newField(m, blurVariance, sample),
	}, nil
}

// Compute implements Function.
func (d *Depth) Compute(p image.Point) float64 {
	return d.patch(p) * (dataTerm(d.depth, d.mask, p) + d.continuity(p))
}

// continuity compares depth just outside the hole at p with depth on the far
// side of the hole, walking against the boundary normal.
func (d *Depth) continuity(p image.Point) float64 {
	if d.threshold == 0 {
		return 0
	}
	n := normal(d.mask, p)
	if n.Norm() == 0 {
		return 0
	}
	near := image.Pt(p.X+int(math.Round(n.X)), p.Y+int(math.Round(n.Y)))
	far, err := d.mask.FindPixelAcrossHole(p, gridgraph.Vec{X: -n.X, Y: -n.Y})
	if err != nil || far == p || !d.mask.IsValid(far) || !d.mask.IsValid(near) {
		return 0
	}
	diff := d.im.Sample(near, d.channel) - d.im.Sample(far, d.channel)
	return math.Exp(-diff * diff / (2 * d.threshold * d.threshold))
}

// Update implements Function.
func (d *Depth) Update(target image.Point, filled []image.Point) {
	d.update(target, filled)
	for _, q := range filled {
		d.depth.set(q, d.im.Sample(q, d.channel))
	}
}
