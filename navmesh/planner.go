package navmesh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roomnav/bfs"
	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/rooms"
)

// FindPath returns the waypoints from start to end crossing the fewest
// portals. The first waypoint is start and the last is end, both of
// KindEndpoint; everything in between is a portal waypoint. Two points in
// the same room give [start, end].
//
// g must have been built from rs. The transient nodes of the query are
// removed before FindPath returns, on every path.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrNoContainingRoom if start or end lies in no room.
//   - ErrNoPathFound if the two rooms are not connected.
func FindPath(start, end geom.Point, rs []rooms.Room, g *Graph, opts ...Option) ([]Waypoint, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sr, ok := rooms.Locate(start, rs)
	if !ok {
		return nil, fmt.Errorf("%w: start %v", ErrNoContainingRoom, start)
	}
	er, ok := rooms.Locate(end, rs)
	if !ok {
		return nil, fmt.Errorf("%w: end %v", ErrNoContainingRoom, end)
	}

	q, release, err := g.inject(Endpoint(start, sr), Endpoint(end, er))
	defer release()
	if err != nil {
		return nil, err
	}

	res, err := bfs.BFS(g.nodes, q.start,
		bfs.WithTarget(q.end),
		bfs.WithFilterNeighbor(q.admits),
	)
	if err != nil {
		return nil, fmt.Errorf("navmesh: search: %w", err)
	}
	ids, err := res.PathTo(q.end)
	if errors.Is(err, bfs.ErrNoPath) {
		return nil, fmt.Errorf("%w: room %d to room %d", ErrNoPathFound, sr.ID, er.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("navmesh: search: %w", err)
	}

	path := make([]Waypoint, len(ids))
	for i, id := range ids {
		path[i], _ = g.nodes.Node(id)
	}
	if o.smoothing {
		path = Smooth(path)
	}

	return path, nil
}
