package rooms

import (
	"github.com/katalvlaran/roomnav/grid"
	"github.com/katalvlaran/roomnav/maxrect"
)

// Decompose tiles the free cells of g with rectangular rooms and links
// neighbouring rooms with Connections. g itself is not modified.
//
// Behavior:
//  1. Clone g into a working copy.
//  2. Find the largest free rectangle of the copy; stop if there is none.
//  3. Mark the rectangle blocked in the copy and record it as Room{ID: len(rooms)}.
//  4. Repeat from 2.
//  5. Connect all rooms.
//
// An empty or fully blocked grid yields no rooms (a nil slice).
func Decompose(g *grid.Grid) []Room {
	rooms := areas(g)
	Connect(rooms)
	return rooms
}

// Walls decomposes the blocked cells of g into rectangles, the inverse of
// Decompose. The walls are returned with their own IDs and connections
// between touching walls.
func Walls(g *grid.Grid) []Room {
	return Decompose(g.Invert())
}

func areas(g *grid.Grid) []Room {
	work := g.Clone()
	var rooms []Room
	for {
		area, ok := maxrect.Largest(work)
		if !ok {
			return rooms
		}
		work.Fill(area.X, area.Y, area.Width, area.Height)
		rooms = append(rooms, Room{ID: len(rooms), Area: area})
	}
}
