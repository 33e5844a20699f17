// Package geom holds the small value types shared by every layer of roomnav:
// continuous points in grid space and integer-aligned rectangles.
//
// Coordinates follow the grid: X grows to the right (columns), Y grows
// downward (rows). A cell (x,y) is covered by an Area when
// Area.X <= x < Area.X+Area.Width and Area.Y <= y < Area.Y+Area.Height.
package geom

import (
	"fmt"
	"math"
)

// Point is a real-valued position in grid space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// String renders p as "(x,y)" using the shortest float representation.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Area is an axis-aligned integer rectangle. Width and Height are positive
// for every Area produced by decomposition; the zero Area means "nothing".
type Area struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Size returns Width*Height.
func (a Area) Size() int { return a.Width * a.Height }

// Empty reports whether the area covers no cells.
func (a Area) Empty() bool { return a.Width <= 0 || a.Height <= 0 }

// Right returns the first column past the area.
func (a Area) Right() int { return a.X + a.Width }

// Bottom returns the first row past the area.
func (a Area) Bottom() int { return a.Y + a.Height }

// Contains reports whether p lies inside the half-open rectangle
// [X, X+Width) × [Y, Y+Height).
func (a Area) Contains(p Point) bool {
	return p.X >= float64(a.X) && p.X < float64(a.Right()) &&
		p.Y >= float64(a.Y) && p.Y < float64(a.Bottom())
}

// ContainsCell reports whether cell (x,y) is covered by the area.
func (a Area) ContainsCell(x, y int) bool {
	return x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom()
}

// Overlaps reports whether a and b share at least one cell.
func (a Area) Overlaps(b Area) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Center returns the continuous centre of the rectangle.
func (a Area) Center() Point {
	return Point{X: float64(a.X) + float64(a.Width)/2, Y: float64(a.Y) + float64(a.Height)/2}
}

// String renders the area as "WxH@(x,y)".
func (a Area) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", a.Width, a.Height, a.X, a.Y)
}

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Lerp returns the point at parameter t on the line through a and b:
// a at t=0, b at t=1. t is not restricted to [0, 1].
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}
