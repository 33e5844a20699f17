// Package maxrect finds the largest all-free axis-aligned rectangle in a grid
// using the histogram method.
//
// For every row, heights[x] holds the number of consecutive free cells ending
// at that row in column x. Each row's histogram is scanned once with a
// monotonic stack, so a whole grid costs O(W·H) time and O(W) memory.
//
// Tie-breaking is deterministic: a candidate replaces the current best only
// when its area is strictly greater, rows are scanned top to bottom and the
// end-of-row flush walks the stack from bottom to top. The first rectangle
// found therefore wins ties.
package maxrect

import (
	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/grid"
)

// bar is one stack entry: a run of columns starting at x whose height is at
// least height, with top row y.
type bar struct {
	x, y, height int
}

// scanner holds the per-grid scratch buffers reused across rows.
type scanner struct {
	heights []int
	stack   []bar // arena; stack[:top] is live
	top     int
}

// Largest returns the largest free rectangle of g and true, or the zero
// Area and false when g has no free cell.
// Complexity: O(W·H) time, O(W) memory.
func Largest(g *grid.Grid) (geom.Area, bool) {
	if g.Width == 0 || g.Height == 0 {
		return geom.Area{}, false
	}
	s := &scanner{
		heights: make([]int, g.Width),
		stack:   make([]bar, g.Width),
	}

	var best geom.Area
	for y := 0; y < g.Height; y++ {
		for x := range s.heights {
			if g.Blocked(x, y) {
				s.heights[x] = 0
			} else {
				s.heights[x]++
			}
		}
		if candidate := s.row(y); candidate.Size() > best.Size() {
			best = candidate
		}
	}

	return best, best.Size() > 0
}

// row finds the largest rectangle of the current histogram whose bottom edge
// is row y.
func (s *scanner) row(y int) geom.Area {
	var best geom.Area
	consider := func(b bar, right int) {
		if a := (geom.Area{X: b.x, Y: b.y, Width: right - b.x, Height: b.height}); a.Size() > best.Size() {
			best = a
		}
	}

	s.top = 0
	for x, h := range s.heights {
		start := x
		for {
			if s.top == 0 || h > s.stack[s.top-1].height {
				s.push(bar{x: start, y: y - h + 1, height: h})
				break
			}
			if h < s.stack[s.top-1].height {
				// a taller run ends here: close it at column x and let the
				// shorter bar inherit its start column
				b := s.pop()
				consider(b, x)
				start = b.x
				continue
			}
			break // equal height: the open bar already covers x
		}
	}

	// flush the remaining bars against the row end
	for i := 0; i < s.top; i++ {
		consider(s.stack[i], len(s.heights))
	}
	return best
}

func (s *scanner) push(b bar) {
	s.stack[s.top] = b
	s.top++
}

func (s *scanner) pop() bar {
	s.top--
	return s.stack[s.top]
}
