package navmesh

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/katalvlaran/roomnav/core"
	"github.com/katalvlaran/roomnav/rooms"
)

// Transient node keys are "start:<n>" and "end:<n>". Portal keys are
// "<id>-<id>" and can never carry these prefixes.
const (
	startPrefix = "start:"
	endPrefix   = "end:"
)

// Graph is the portal graph of one set of rooms.
// It is safe for concurrent queries.
type Graph struct {
	nodes *core.Graph[Waypoint]
	seq   atomic.Uint64
}

// BuildGraph creates one node per connection and links the connections of
// each room pairwise. A connection is added once even though both of its
// rooms list it. The waypoints alias rs, which must outlive the graph and
// must not be modified.
//
// Returns ErrInvalidRooms when a room lists a connection that does not name
// the room itself.
// Complexity: O(R + Σ k²) for k connections per room.
func BuildGraph(rs []rooms.Room) (*Graph, error) {
	g := &Graph{nodes: core.NewGraph[Waypoint]()}

	for i := range rs {
		r := &rs[i]
		for j := range r.Connections {
			c := &r.Connections[j]
			if _, ok := c.Other(r.ID); !ok {
				return nil, fmt.Errorf("%w: room %d lists connection %s", ErrInvalidRooms, r.ID, c.ID())
			}
			if g.nodes.HasNode(c.ID()) {
				continue
			}
			if err := g.nodes.AddNode(c.ID(), Portal(c)); err != nil {
				return nil, fmt.Errorf("navmesh: add portal %s: %w", c.ID(), err)
			}
		}
	}

	for i := range rs {
		cs := rs[i].Connections
		for a := 0; a < len(cs); a++ {
			for b := a + 1; b < len(cs); b++ {
				ida, idb := cs[a].ID(), cs[b].ID()
				if g.nodes.HasLink(ida, idb) {
					continue
				}
				if err := g.nodes.AddLink(ida, idb); err != nil {
					return nil, fmt.Errorf("navmesh: link %s and %s: %w", ida, idb, err)
				}
			}
		}
	}

	return g, nil
}

// NodeCount returns the number of nodes, transient ones included.
func (g *Graph) NodeCount() int { return g.nodes.NodeCount() }

// LinkCount returns the number of links, transient ones included.
func (g *Graph) LinkCount() int { return g.nodes.LinkCount() }

// Nodes returns every node ID in ascending order.
func (g *Graph) Nodes() []string { return g.nodes.Nodes() }

// Links returns every link once, sorted.
func (g *Graph) Links() []core.Link { return g.nodes.Links() }

// Waypoint returns the waypoint stored under id.
func (g *Graph) Waypoint(id string) (Waypoint, bool) { return g.nodes.Node(id) }

// Neighbors returns the sorted IDs linked to id.
func (g *Graph) Neighbors(id string) ([]string, error) { return g.nodes.NeighborIDs(id) }

// query names the transient nodes of one FindPath call.
type query struct {
	start, end string
}

// admits reports whether the search may step onto nbr: every node except
// the transient nodes of other queries.
func (q query) admits(_, nbr string) bool {
	if !transient(nbr) {
		return true
	}
	return nbr == q.start || nbr == q.end
}

func transient(id string) bool {
	return strings.HasPrefix(id, startPrefix) || strings.HasPrefix(id, endPrefix)
}

// inject adds start and end as transient nodes linked to every connection
// of their rooms, and to each other when they share a room. The returned
// release func removes both nodes with their links; it is never nil and must
// be called even when inject fails.
func (g *Graph) inject(start, end Waypoint) (query, func(), error) {
	n := strconv.FormatUint(g.seq.Add(1), 10)
	q := query{start: startPrefix + n, end: endPrefix + n}
	release := func() {
		_ = g.nodes.RemoveNode(q.start)
		_ = g.nodes.RemoveNode(q.end)
	}

	for _, t := range []struct {
		id string
		wp Waypoint
	}{{q.start, start}, {q.end, end}} {
		if err := g.nodes.AddNode(t.id, t.wp); err != nil {
			return q, release, fmt.Errorf("navmesh: add %s: %w", t.id, err)
		}
		for _, c := range t.wp.Room.Connections {
			if err := g.nodes.AddLink(t.id, c.ID()); err != nil {
				return q, release, fmt.Errorf("navmesh: link %s to portal %s: %w", t.id, c.ID(), err)
			}
		}
	}
	if start.Room.ID == end.Room.ID {
		if err := g.nodes.AddLink(q.start, q.end); err != nil {
			return q, release, fmt.Errorf("navmesh: link %s to %s: %w", q.start, q.end, err)
		}
	}

	return q, release, nil
}
