package painter

import (
	"errors"
	"fmt"
	"image"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/gridgraph"
)

// Sentinel errors for painters.
var (
	// ErrFillTooWide indicates a fill half-width larger than the patch half-width.
	ErrFillTooWide = errors.New("painter: fill half-width exceeds patch half-width")
	// ErrNegativeFill indicates a negative fill half-width.
	ErrNegativeFill = errors.New("painter: negative fill half-width")
	// ErrUnknownPainter is returned by ByName for unregistered names.
	ErrUnknownPainter = errors.New("painter: unknown painter")
	// ErrNotTarget indicates Paint was called with a non-target patch.
	ErrNotTarget = errors.New("painter: patch is not a target")
)

// PixelFunc copies the pixel at source onto target.
type PixelFunc func(target, source image.Point) error

// Painter paints the hole pixels around target.Center from the matching
// pixels around source, returning the number of pixels painted.
type Painter interface {
	Paint(target *descriptor.Patch, source image.Point, paint PixelFunc) (int, error)
	// FillHalfWidth is the radius of the square written per fill.
	FillHalfWidth() int
}

// HoleList paints from the target's precomputed hole offsets.
type HoleList struct {
	fill int
}

// NewHoleList returns a HoleList painter with fill half-width fill.
func NewHoleList(fill int) *HoleList { return &HoleList{fill: fill} }

// FillHalfWidth implements Painter.
func (h *HoleList) FillHalfWidth() int { return h.fill }

// Paint implements Painter. target must have been finalized.
func (h *HoleList) Paint(target *descriptor.Patch, source image.Point, paint PixelFunc) (int, error) {
	if target.State != descriptor.Target {
		return 0, ErrNotTarget
	}
	shift := source.Sub(target.Center)
	n := 0
	for _, off := range target.HoleOffsets {
		if !within(off, h.fill) {
			continue
		}
		t := target.Center.Add(off)
		if err := paint(t, t.Add(shift)); err != nil {
			return n, err
		}
		n++
	}
	if err := paint(target.Center, source); err != nil {
		return n, err
	}
	return n + 1, nil
}

// MaskedGrid paints by checking the mask at every offset.
type MaskedGrid struct {
	mask *gridgraph.Mask
	fill int
}

// NewMaskedGrid returns a MaskedGrid painter over m.
func NewMaskedGrid(m *gridgraph.Mask, fill int) *MaskedGrid {
	return &MaskedGrid{mask: m, fill: fill}
}

// FillHalfWidth implements Painter.
func (g *MaskedGrid) FillHalfWidth() int { return g.fill }

// Paint implements Painter. Only target.Center and target.State are read.
func (g *MaskedGrid) Paint(target *descriptor.Patch, source image.Point, paint PixelFunc) (int, error) {
	if target.State != descriptor.Target {
		return 0, ErrNotTarget
	}
	c := target.Center
	shift := source.Sub(c)
	r := descriptor.Support(c, g.fill).Intersect(g.mask.Bounds())
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			t := image.Pt(x, y)
			if t == c || !g.mask.IsHole(t) {
				continue
			}
			if err := paint(t, t.Add(shift)); err != nil {
				return n, err
			}
			n++
		}
	}
	if err := paint(c, source); err != nil {
		return n, err
	}
	return n + 1, nil
}

// ByName builds the painter called name: "hole-list" or "masked-grid".
func ByName(name string, m *gridgraph.Mask, fill, patchHalfWidth int) (Painter, error) {
	switch {
	case fill < 0:
		return nil, ErrNegativeFill
	case fill > patchHalfWidth:
		return nil, fmt.Errorf("%w: %d > %d", ErrFillTooWide, fill, patchHalfWidth)
	}
	switch name {
	case "", "hole-list":
		return NewHoleList(fill), nil
	case "masked-grid":
		return NewMaskedGrid(m, fill), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPainter, name)
}

func within(off image.Point, hw int) bool {
	return off.X >= -hw && off.X <= hw && off.Y >= -hw && off.Y <= hw
}
