package navmesh

import (
	"fmt"

	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/grid"
	"github.com/katalvlaran/roomnav/rooms"
)

// Mesh holds the rooms of one map and their portal graph.
// A Mesh is immutable and safe for concurrent use.
type Mesh struct {
	rooms []rooms.Room
	graph *Graph
}

// New decomposes g and builds the portal graph.
// Returns ErrEmptyGrid wrapped when g is nil; a grid without free cells
// yields a valid, empty Mesh.
func New(g *grid.Grid) (*Mesh, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrEmptyGrid)
	}
	return FromRooms(rooms.Decompose(g))
}

// FromRooms builds a Mesh over already decomposed rooms, such as rooms read
// back from a saved document. The mesh takes ownership of rs.
func FromRooms(rs []rooms.Room) (*Mesh, error) {
	graph, err := BuildGraph(rs)
	if err != nil {
		return nil, err
	}
	return &Mesh{rooms: rs, graph: graph}, nil
}

// Rooms returns the rooms of the mesh. Callers must not modify them.
func (m *Mesh) Rooms() []rooms.Room { return m.rooms }

// Graph returns the portal graph.
func (m *Mesh) Graph() *Graph { return m.graph }

// Empty reports whether the map has no free space.
func (m *Mesh) Empty() bool { return len(m.rooms) == 0 }

// FindPath plans a path between two points of the map. See FindPath.
func (m *Mesh) FindPath(start, end geom.Point, opts ...Option) ([]Waypoint, error) {
	return FindPath(start, end, m.rooms, m.graph, opts...)
}
