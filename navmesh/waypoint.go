package navmesh

import (
	"fmt"

	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/rooms"
)

// Kind tells what a Waypoint stands for.
type Kind uint8

const (
	// KindEndpoint is a query start or end point.
	KindEndpoint Kind = iota
	// KindPortal is the midpoint (or smoothed point) of a room connection.
	KindPortal
)

// String returns "endpoint" or "portal".
func (k Kind) String() string {
	switch k {
	case KindEndpoint:
		return "endpoint"
	case KindPortal:
		return "portal"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Waypoint is one step of a path. Portal waypoints carry the connection they
// cross; endpoint waypoints carry the room they lie in. The back-references
// alias the rooms the graph was built from.
type Waypoint struct {
	Kind       Kind
	Point      geom.Point
	Connection *rooms.Connection // KindPortal only
	Room       *rooms.Room       // KindEndpoint only
}

// Portal returns the waypoint at the midpoint of c.
func Portal(c *rooms.Connection) Waypoint {
	return Waypoint{Kind: KindPortal, Point: c.Midpoint(), Connection: c}
}

// Endpoint returns a query waypoint at p inside room r.
func Endpoint(p geom.Point, r *rooms.Room) Waypoint {
	return Waypoint{Kind: KindEndpoint, Point: p, Room: r}
}

// String renders the waypoint for logs and examples.
func (w Waypoint) String() string {
	if w.Kind == KindPortal && w.Connection != nil {
		return fmt.Sprintf("portal %s %v", w.Connection.ID(), w.Point)
	}
	return fmt.Sprintf("%v %v", w.Kind, w.Point)
}

// Points projects a path onto its positions.
func Points(path []Waypoint) []geom.Point {
	pts := make([]geom.Point, len(path))
	for i, w := range path {
		pts[i] = w.Point
	}
	return pts
}
