package inpaint

import (
	"image"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/engine"
	"github.com/katalvlaran/inpaint/frontier"
	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/painter"
	"github.com/katalvlaran/inpaint/priority"
	"github.com/katalvlaran/inpaint/raster"
)

// patchVisitor is the pixel implementation of engine.Visitor.
type patchVisitor struct {
	mask      *gridgraph.Mask
	im        *raster.Image
	patches   *descriptor.Store[*descriptor.Patch]
	prio      priority.Function
	queue     *frontier.Queue[image.Point]
	matcher   *matcher
	hw, fill  int
	threshold float64

	isSource []bool
	holes    int
	painted  []image.Point
	paintErr error

	// reinit re-initializes a vertex through the composed visitor chain.
	reinit func(image.Point)
}

// InitializeVertex rebuilds the patch of p, registers new sources and keeps
// the queue in sync with p's boundary status.
func (v *patchVisitor) InitializeVertex(p image.Point) {
	d := descriptor.NewPatch(v.mask, p, v.hw)
	v.patches.Set(p, d)
	switch d.State {
	case descriptor.Target:
		_ = v.queue.Push(p, v.prio.Compute(p))
		return
	case descriptor.Source:
		if i := v.mask.Index(p); !v.isSource[i] {
			v.isSource[i] = true
			v.matcher.addSource(d)
		}
	}
	_ = v.queue.Remove(p)
}

// DiscoverVertex rebuilds and finalizes the target patch.
func (v *patchVisitor) DiscoverVertex(p image.Point) {
	d := descriptor.NewPatch(v.mask, p, v.hw)
	d.Finalize(v.mask)
	v.patches.Set(p, d)
	v.painted = v.painted[:0]
	v.paintErr = nil
}

// PotentialMatchMade is a no-op; the matcher records candidates itself.
func (v *patchVisitor) PotentialMatchMade(_, _ image.Point) {}

// PaintVertex copies every channel of s onto t.
func (v *patchVisitor) PaintVertex(t, s image.Point) {
	if err := v.im.CopyPixel(t, s); err != nil && v.paintErr == nil {
		v.paintErr = err
	}
	v.painted = append(v.painted, t)
}

// AcceptPaintedVertex rejects failed copies, non-finite samples and, with a
// threshold set, matches scoring above it.
func (v *patchVisitor) AcceptPaintedVertex(image.Point) bool {
	if v.paintErr != nil {
		return false
	}
	if v.threshold > 0 && v.matcher.best > v.threshold {
		return false
	}
	for _, p := range v.painted {
		if !v.im.IsFinite(p) {
			return false
		}
	}
	return true
}

// FinishVertex commits the fill:
//  1. priority confidence flows into the painted pixels;
//  2. the fill square is marked valid;
//  3. every pixel whose patch overlaps the fill square is re-initialized,
//     so added visitors see those calls too.
func (v *patchVisitor) FinishVertex(t, _ image.Point) {
	v.prio.Update(t, v.painted)
	v.holes -= v.mask.MarkFilled(descriptor.Support(t, v.fill))

	r := descriptor.Support(t, v.fill+v.hw).Intersect(v.mask.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v.reinit(image.Pt(x, y))
		}
	}
}

// patchPainter adapts a painter.Painter to engine.Inpainter.
type patchPainter struct {
	painter painter.Painter
	patches *descriptor.Store[*descriptor.Patch]
}

// Paint implements engine.Inpainter.
func (a patchPainter) Paint(target, source image.Point, vis engine.Visitor[image.Point]) error {
	_, err := a.painter.Paint(a.patches.Get(target), source, func(t, s image.Point) error {
		vis.PaintVertex(t, s)
		return nil
	})
	return err
}
