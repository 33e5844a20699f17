// File: methods_links.go
// Role: Link lifecycle & neighbourhood queries.
//
// Determinism:
//   - NeighborIDs() returns IDs sorted lexicographically ascending.
//   - Links() returns links sorted by (A, B).
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.

package core

import (
	"fmt"
	"sort"
)

// AddLink joins a and b with an undirected link.
//
// Steps:
//  1. Validate IDs (ErrEmptyNodeID) and the loop policy (ErrLoopNotAllowed).
//  2. Under the write lock, require both nodes (ErrNodeNotFound).
//  3. Reject a second link between the same pair (ErrMultiLinkNotAllowed).
//  4. Record the link in both adjacency buckets.
//
// Unlike AddNode, AddLink never creates nodes: every node needs a value.
// Complexity: O(1).
func (g *Graph[T]) AddLink(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [2]string{a, b} {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	if _, linked := g.adjacency[a][b]; linked {
		return fmt.Errorf("%w: %q-%q", ErrMultiLinkNotAllowed, a, b)
	}

	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.links++

	return nil
}

// RemoveLink deletes the link between a and b.
// Returns ErrLinkNotFound if the nodes are not linked (or do not exist).
// Complexity: O(1).
func (g *Graph[T]) RemoveLink(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, linked := g.adjacency[a][b]; !linked {
		return fmt.Errorf("%w: %q-%q", ErrLinkNotFound, a, b)
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	g.links--

	return nil
}

// HasLink reports whether a and b are linked. Order does not matter.
// Complexity: O(1).
func (g *Graph[T]) HasLink(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// NeighborIDs returns the IDs linked to id, sorted ascending.
// Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(d log d) time, O(d) space.
func (g *Graph[T]) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	ids := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Links returns every link once, sorted by (A, B).
// Complexity: O(E log E) time, O(E) space.
func (g *Graph[T]) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Link, 0, g.links)
	for a, nbrs := range g.adjacency {
		for b := range nbrs {
			if a <= b {
				out = append(out, newLink(a, b))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// LinkCount returns the number of undirected links.
// Complexity: O(1).
func (g *Graph[T]) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links
}
