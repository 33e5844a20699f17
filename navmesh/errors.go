package navmesh

import "errors"

var (
	// ErrNoContainingRoom is returned when a query point lies in no room
	// (inside a wall or outside the grid).
	ErrNoContainingRoom = errors.New("navmesh: point is not inside any room")

	// ErrNoPathFound is returned when the two rooms are not connected.
	ErrNoPathFound = errors.New("navmesh: no path found")

	// ErrEmptyGrid reports a map without free space. A Mesh over such a map
	// is valid but cannot answer queries.
	ErrEmptyGrid = errors.New("navmesh: grid has no free cells")

	// ErrNilGraph is returned by FindPath when no graph is supplied.
	ErrNilGraph = errors.New("navmesh: graph is nil")

	// ErrInvalidRooms is returned by BuildGraph when a room lists a connection
	// that does not name it.
	ErrInvalidRooms = errors.New("navmesh: inconsistent rooms")
)
