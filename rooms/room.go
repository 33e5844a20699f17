package rooms

import (
	"strconv"

	"github.com/katalvlaran/roomnav/geom"
)

// Room is a maximal free rectangle produced by Decompose.
// Rooms are immutable once computed.
type Room struct {
	// ID is the discovery index of the room within its decomposition.
	ID int `json:"id"`

	// Area is the rectangle of cells covered by the room.
	Area geom.Area `json:"area"`

	// Connections lists the portals of this room, ordered by the other room's ID.
	Connections []Connection `json:"connections,omitempty"`
}

// Orientation tells which way a portal segment runs.
type Orientation uint8

const (
	// OrientUnknown is the zero value; Vertical falls back to comparing X.
	OrientUnknown Orientation = iota
	// OrientVertical marks a constant-x segment between left and right neighbours.
	OrientVertical
	// OrientHorizontal marks a constant-y segment between upper and lower neighbours.
	OrientHorizontal
)

// Connection is the border segment shared by exactly two rooms.
// Start and End share one coordinate; Start <= End on the other axis.
//
// A one-cell overlap gives Start == End, so the orientation is recorded
// explicitly rather than read back from the coordinates.
type Connection struct {
	Start       geom.Point  `json:"start"`
	End         geom.Point  `json:"end"`
	RoomIDs     [2]int      `json:"rooms"` // ascending
	Orientation Orientation `json:"orientation"`
}

// ConnectionID returns the identity key of the connection between rooms a
// and b: the two IDs in ascending order joined by '-'. The key is the same
// whichever order the rooms are given in.
func ConnectionID(a, b int) string {
	if a > b {
		a, b = b, a
	}
	buf := make([]byte, 0, 8)
	buf = strconv.AppendInt(buf, int64(a), 10)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, int64(b), 10)
	return string(buf)
}

// ID returns the identity key of c (see ConnectionID).
func (c Connection) ID() string { return ConnectionID(c.RoomIDs[0], c.RoomIDs[1]) }

// Vertical reports whether c is a constant-x segment, i.e. it joins a room
// to its left or right neighbour.
func (c Connection) Vertical() bool {
	switch c.Orientation {
	case OrientVertical:
		return true
	case OrientHorizontal:
		return false
	}
	return c.Start.X == c.End.X
}

// Midpoint returns the centre of the segment, used as the portal's graph position.
func (c Connection) Midpoint() geom.Point {
	return geom.Point{X: (c.Start.X + c.End.X) / 2, Y: (c.Start.Y + c.End.Y) / 2}
}

// Other returns the ID of the room on the far side of c from roomID, and
// false if roomID is not one of c's rooms.
func (c Connection) Other(roomID int) (int, bool) {
	switch roomID {
	case c.RoomIDs[0]:
		return c.RoomIDs[1], true
	case c.RoomIDs[1]:
		return c.RoomIDs[0], true
	}
	return 0, false
}

// Connection returns the room's portal to room other, if any.
func (r Room) Connection(other int) (Connection, bool) {
	for _, c := range r.Connections {
		if o, _ := c.Other(r.ID); o == other {
			return c, true
		}
	}
	return Connection{}, false
}
