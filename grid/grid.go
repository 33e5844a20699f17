package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular occupancy map. The zero value is an empty 0×0 grid.
// Cells are stored row-major; blocked[y*Width+x] reports whether (x,y) is blocked.
type Grid struct {
	Width, Height int
	blocked       []bool
}

// New returns a width×height grid with every cell free.
// Negative dimensions are treated as zero.
// Complexity: O(W×H).
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	return &Grid{Width: width, Height: height, blocked: make([]bool, width*height)}
}

// From2D constructs a Grid from a 2D slice indexed [y][x]. Any non-zero
// value marks the cell as blocked. The input is copied; later mutation of
// values does not affect the Grid.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		for y, row := range values {
			if len(row) != 0 {
				return nil, fmt.Errorf("%w: row %d has %d cells, want 0", ErrNonRectangular, y, len(row))
			}
		}
		return &Grid{}, nil
	}
	h, w := len(values), len(values[0])
	g := New(w, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			g.blocked[g.index(x, y)] = v != 0
		}
	}

	return g, nil
}

// Parse builds a Grid from text rows, one string per row: '#' marks a
// blocked cell, any other rune a free one. Handy for tests and fixtures.
func Parse(rows ...string) (*Grid, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		values[y] = make([]int, len(runes))
		for x, r := range runes {
			if r == '#' {
				values[y][x] = 1
			}
		}
	}
	return From2D(values)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Blocked reports whether (x,y) is blocked. Cells outside the grid count as blocked.
func (g *Grid) Blocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.blocked[g.index(x, y)]
}

// Free reports whether (x,y) is inside the grid and not blocked.
func (g *Grid) Free(x, y int) bool { return !g.Blocked(x, y) }

// Set marks (x,y) as blocked or free.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Set(x, y int, blocked bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	g.blocked[g.index(x, y)] = blocked
	return nil
}

// Fill marks every in-bounds cell of the rectangle [x, x+w) × [y, y+h) as blocked.
// Used by decomposition to consume a found room in its working copy.
func (g *Grid) Fill(x, y, w, h int) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			if g.InBounds(cx, cy) {
				g.blocked[g.index(cx, cy)] = true
			}
		}
	}
}

// FreeCount returns the number of free cells.
func (g *Grid) FreeCount() int {
	n := 0
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height}
	if g.blocked != nil {
		c.blocked = make([]bool, len(g.blocked))
		copy(c.blocked, g.blocked)
	}
	return c
}

// Invert returns a new grid where free and blocked are swapped.
// Decomposing the inverse yields the walls of the map as rectangles.
func (g *Grid) Invert() *Grid {
	c := g.Clone()
	for i, b := range c.blocked {
		c.blocked[i] = !b
	}
	return c
}

// Rows returns a [y][x] copy of the grid, 1 = blocked and 0 = free.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]int, g.Width)
		for x := 0; x < g.Width; x++ {
			if g.blocked[g.index(x, y)] {
				rows[y][x] = 1
			}
		}
	}
	return rows
}

// String renders the grid in the Parse format ('#' blocked, '.' free).
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.blocked[g.index(x, y)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y+1 < g.Height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Index is the exported form of the row-major cell index.
func (g *Grid) Index(x, y int) int { return g.index(x, y) }
