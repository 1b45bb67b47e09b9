package gridgraph

// ExpandHole grows every hole region by amount pixels under m.Conn and
// returns how many pixels became holes. Indeterminate pixels are absorbed too.
//
// Behavior:
//  1. Multi-source BFS seeded with every hole pixel at distance 0.
//  2. Any non-hole neighbor at distance < amount is converted and enqueued.
//
// Complexity: O(W×H×d), Memory: O(W×H).
func (m *Mask) ExpandHole(amount int) (int, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	if amount == 0 {
		return 0, nil
	}
	n := m.Width * m.Height
	dist := make([]int, n)
	queue := make([]int, 0, n)
	for i, v := range m.Cells {
		if v == m.HoleValue {
			queue = append(queue, i)
		} else {
			dist[i] = -1
		}
	}

	changed := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if dist[u] >= amount {
			continue
		}
		ux, uy := m.Coordinate(u)
		for _, d := range m.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !m.InBounds(vx, vy) {
				continue
			}
			v := m.index(vx, vy)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			m.Cells[v] = m.HoleValue
			changed++
			queue = append(queue, v)
		}
	}
	return changed, nil
}

// Invert swaps hole and valid pixels. Indeterminate pixels are unchanged.
// Complexity: O(W×H).
func (m *Mask) Invert() {
	for i, v := range m.Cells {
		switch v {
		case m.HoleValue:
			m.Cells[i] = m.ValidValue
		case m.ValidValue:
			m.Cells[i] = m.HoleValue
		}
	}
}

// Cleanup snaps every indeterminate pixel to the nearer sentinel value.
// Ties resolve to HoleValue, so ambiguous pixels get synthesized rather than trusted.
// Returns the number of pixels changed.
// Complexity: O(W×H).
func (m *Mask) Cleanup() int {
	changed := 0
	for i, v := range m.Cells {
		if v == m.HoleValue || v == m.ValidValue {
			continue
		}
		if absDiff(v, m.HoleValue) <= absDiff(v, m.ValidValue) {
			m.Cells[i] = m.HoleValue
		} else {
			m.Cells[i] = m.ValidValue
		}
		changed++
	}
	return changed
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
