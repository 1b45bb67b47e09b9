package gridgraph

// HoleComponents finds all contiguous hole regions according to m.Conn.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Mask) HoleComponents() [][]int {
	seen := make([]bool, m.Width*m.Height)
	var comps [][]int

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i0 := m.index(x, y)
			if m.Cells[i0] != m.HoleValue || seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := m.Coordinate(queue[qi])
				for _, d := range m.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !m.InBounds(vx, vy) {
						continue
					}
					vi := m.index(vx, vy)
					if !seen[vi] && m.Cells[vi] == m.HoleValue {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
