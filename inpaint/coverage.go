package inpaint

import (
	"image"

	"github.com/katalvlaran/inpaint/engine"
)

// Coverage is a visitor recording, for every painted pixel, the source pixel
// it was copied from. Add it with WithVisitor.
type Coverage struct {
	engine.NopVisitor[image.Point]
	width int
	from  []image.Point
	set   []bool
	n     int
}

// NewCoverage returns an empty Coverage for a width×height image.
func NewCoverage(width, height int) *Coverage {
	return &Coverage{
		width: width,
		from:  make([]image.Point, width*height),
		set:   make([]bool, width*height),
	}
}

// PaintVertex records t ← s.
func (c *Coverage) PaintVertex(t, s image.Point) {
	i := t.Y*c.width + t.X
	if t.X < 0 || t.X >= c.width || i < 0 || i >= len(c.set) {
		return
	}
	if !c.set[i] {
		c.set[i] = true
		c.n++
	}
	c.from[i] = s
}

// Source returns the pixel p was copied from, if p was painted.
func (c *Coverage) Source(p image.Point) (image.Point, bool) {
	i := p.Y*c.width + p.X
	if p.X < 0 || p.X >= c.width || i < 0 || i >= len(c.set) || !c.set[i] {
		return image.Point{}, false
	}
	return c.from[i], true
}

// Len returns the number of painted pixels.
func (c *Coverage) Len() int { return c.n }
