// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with the given value.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock, reject an existing ID (ErrNodeExists).
//   - Stage 3: Register the value and bootstrap an empty adjacency bucket.
//
// Behavior highlights:
//   - Not idempotent: a duplicate ID is an error so that a transient node can
//     never silently replace a permanent one.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeExists: if id is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[T]) AddNode(id string, value T) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrNodeExists, id)
	}
	g.nodes[id] = value
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// SetNode replaces the value stored on an existing node.
// Returns ErrEmptyNodeID or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph[T]) SetNode(id string, value T) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	g.nodes[id] = value

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph[T]) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the value stored on id and whether the node exists.
// Complexity: O(1).
func (g *Graph[T]) Node(id string) (T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.nodes[id]

	return v, ok
}

// RemoveNode deletes a node and all its incident links.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under the write lock verify presence (ErrNodeNotFound).
//   - Stage 3: Unlink every neighbour's mirror entry, then drop the node.
//
// Behavior highlights:
//   - Leaves the graph exactly as it was before the node and its links were added.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph[T]) RemoveNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	for nbr := range nbrs {
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
		g.links--
	}
	delete(g.adjacency, id)
	delete(g.nodes, id)

	return nil
}

// Nodes returns all node IDs in lexicographic ascending order.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph[T]) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of nodes.
// Complexity: O(1).
func (g *Graph[T]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of links incident to id (a self-loop counts once).
// Complexity: O(1).
func (g *Graph[T]) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return len(nbrs), nil
}
