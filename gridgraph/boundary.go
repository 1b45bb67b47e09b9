package gridgraph

import "image"

// IsBoundary reports whether p is a hole with at least one in-bounds,
// non-hole neighbor under m.Conn.
// Complexity: O(d), d = 4 or 8.
func (m *Mask) IsBoundary(p image.Point) bool {
	if !m.IsHole(p) {
		return false
	}
	for _, d := range m.neighborOffsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if !m.InBounds(nx, ny) {
			continue
		}
		if m.Cells[m.index(nx, ny)] != m.HoleValue {
			return true
		}
	}
	return false
}

// FindBoundary returns every boundary pixel in row-major order.
// Used once at initialization to seed the fill queue.
// Complexity: O(W×H×d).
func (m *Mask) FindBoundary() []image.Point {
	var out []image.Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := image.Pt(x, y)
			if m.IsBoundary(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// BoundaryIn returns the boundary pixels inside r ∩ mask bounds, row-major.
// After a fill only the filled region grown by one pixel needs re-evaluation.
// Complexity: O(|r|×d).
func (m *Mask) BoundaryIn(r image.Rectangle) []image.Point {
	r = r.Intersect(m.Bounds())
	var out []image.Point
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := image.Pt(x, y)
			if m.IsBoundary(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// MarkFilled sets every hole pixel inside r to ValidValue and returns how
// many pixels changed. Valid and indeterminate pixels are left untouched,
// so calling it twice is the same as calling it once.
// Complexity: O(|r|).
func (m *Mask) MarkFilled(r image.Rectangle) int {
	r = r.Intersect(m.Bounds())
	changed := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Cells[y*m.Width : (y+1)*m.Width]
		for x := r.Min.X; x < r.Max.X; x++ {
			if row[x] == m.HoleValue {
				row[x] = m.ValidValue
				changed++
			}
		}
	}
	return changed
}

// HolesIn returns the hole pixels inside r ∩ mask bounds, row-major.
func (m *Mask) HolesIn(r image.Rectangle) []image.Point {
	r = r.Intersect(m.Bounds())
	var out []image.Point
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.Cells[m.index(x, y)] == m.HoleValue {
				out = append(out, image.Pt(x, y))
			}
		}
	}
	return out
}
