package gridgraph

import (
	"fmt"
	"image"
	"math"
)

// FindPixelAcrossHole steps from origin along dir (normalized internally)
// through consecutive hole pixels and returns the first valid pixel reached.
//
// Behavior:
//  1. origin outside the mask → ErrOutOfRange.
//  2. dir is zero, or the first step leaves the image or the hole → origin.
//  3. The walk leaves the image before reaching a valid pixel → the last
//     hole pixel visited.
//  4. The walk meets an indeterminate pixel → that pixel.
//
// Used by structure-aware priority functions to compare both sides of a hole.
// Complexity: O(L), L = hole width along dir.
func (m *Mask) FindPixelAcrossHole(origin image.Point, dir Vec) (image.Point, error) {
	if !m.Contains(origin) {
		return origin, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, origin, m.Width, m.Height)
	}
	u := dir.Unit()
	if u == (Vec{}) {
		return origin, nil
	}
	last := origin
	for step := 1; ; step++ {
		p := image.Pt(
			origin.X+int(math.Round(float64(step)*u.X)),
			origin.Y+int(math.Round(float64(step)*u.Y)),
		)
		if p == last {
			continue
		}
		if !m.Contains(p) {
			return last, nil
		}
		if !m.IsHole(p) {
			if step == 1 {
				return origin, nil
			}
			return p, nil
		}
		last = p
	}
}
