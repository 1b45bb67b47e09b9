package descriptor

import (
	"image"

	"github.com/katalvlaran/inpaint/gridgraph"
)

// Patch describes the square neighborhood of half-width HalfWidth around Center.
//
// Region is the support clipped to the image. ValidOffsets and HoleOffsets are
// offsets relative to Center and are only filled in by Finalize, because the
// fill loop needs them for targets alone.
type Patch struct {
	Center    image.Point
	HalfWidth int
	Region    image.Rectangle
	State     Status

	ValidOffsets []image.Point
	HoleOffsets  []image.Point
}

// Vertex implements Descriptor.
func (p *Patch) Vertex() image.Point { return p.Center }

// Status implements Descriptor.
func (p *Patch) Status() Status { return p.State }

// Support returns the full, unclipped square around center.
func Support(center image.Point, halfWidth int) image.Rectangle {
	return image.Rect(center.X-halfWidth, center.Y-halfWidth, center.X+halfWidth+1, center.Y+halfWidth+1)
}

// NewPatch builds the descriptor of center from the current mask state.
//
// Status rules:
//  1. The full support is inside the mask and valid → Source.
//  2. center is a boundary pixel → Target.
//  3. Otherwise → Invalid.
//
// Complexity: O(HalfWidth²).
func NewPatch(m *gridgraph.Mask, center image.Point, halfWidth int) *Patch {
	full := Support(center, halfWidth)
	p := &Patch{
		Center:    center,
		HalfWidth: halfWidth,
		Region:    full.Intersect(m.Bounds()),
		State:     Invalid,
	}
	switch {
	case m.IsFullyValid(full):
		p.State = Source
	case m.IsBoundary(center):
		p.State = Target
	}
	return p
}

// Finalize computes ValidOffsets and HoleOffsets inside Region, row-major.
// The center offset (0,0) is never listed among HoleOffsets; painters paint
// the center last.
// Complexity: O(HalfWidth²).
func (p *Patch) Finalize(m *gridgraph.Mask) {
	p.ValidOffsets = p.ValidOffsets[:0]
	p.HoleOffsets = p.HoleOffsets[:0]
	for y := p.Region.Min.Y; y < p.Region.Max.Y; y++ {
		for x := p.Region.Min.X; x < p.Region.Max.X; x++ {
			q := image.Pt(x, y)
			off := q.Sub(p.Center)
			switch {
			case m.IsValid(q):
				p.ValidOffsets = append(p.ValidOffsets, off)
			case m.IsHole(q) && off != (image.Point{}):
				p.HoleOffsets = append(p.HoleOffsets, off)
			}
		}
	}
}
