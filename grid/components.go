package grid

// offsets4 lists the orthogonal neighbours N, E, S, W. Rooms only ever meet
// along edges, so diagonal contact never joins two islands.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Components finds all 4-connected islands of free cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	total := g.Width * g.Height
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets4 {
				vx, vy := ux+d[0], uy+d[1]
				if g.Blocked(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Labels returns a per-cell component label: labels[idx] is the position of
// the cell's component in Components(), or -1 for blocked cells.
func (g *Grid) Labels() []int {
	labels := make([]int, g.Width*g.Height)
	for i := range labels {
		labels[i] = -1
	}
	for c, comp := range g.Components() {
		for _, idx := range comp {
			labels[idx] = c
		}
	}
	return labels
}
