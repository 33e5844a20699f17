package navmesh

import (
	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/rooms"
)

// Smooth makes one forward pass over path and moves each interior portal
// waypoint b, along its portal, to where the line from its predecessor a to
// its successor c crosses the portal, clamped to the portal's extent.
// a and c are always read from the input, never from already moved points.
//
// Endpoints, waypoints lacking a neighbour on either side, and portals
// parallel to the line a→c are left where they are. The result has the same
// length and endpoints as path; path itself is not modified.
func Smooth(path []Waypoint) []Waypoint {
	out := make([]Waypoint, len(path))
	copy(out, path)

	for i := 1; i+1 < len(path); i++ {
		b := path[i]
		if b.Kind != KindPortal || b.Connection == nil {
			continue
		}
		out[i].Point = cross(path[i-1].Point, b.Point, path[i+1].Point, b.Connection)
	}

	return out
}

// cross slides b along c's segment onto the line a→next.
func cross(a, b, next geom.Point, c *rooms.Connection) geom.Point {
	if c.Vertical() {
		dx := next.X - a.X
		if dx == 0 {
			return b
		}
		p := geom.Lerp(a, next, (b.X-a.X)/dx)
		return geom.Point{X: b.X, Y: geom.Clamp(p.Y, c.Start.Y, c.End.Y)}
	}

	dy := next.Y - a.Y
	if dy == 0 {
		return b
	}
	p := geom.Lerp(a, next, (b.Y-a.Y)/dy)
	return geom.Point{X: geom.Clamp(p.X, c.Start.X, c.End.X), Y: b.Y}
}
