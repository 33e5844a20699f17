// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone holds the read lock of the source; the clone is a fresh instance.

package core

// Clone returns a structural copy of the graph: policy flags, nodes and links.
// Node values are copied by assignment (pointers inside T are shared).
// Complexity: O(V+E).
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[T]{
		allowLoops: g.allowLoops,
		links:      g.links,
		nodes:      make(map[string]T, len(g.nodes)),
		adjacency:  make(map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id, v := range g.nodes {
		c.nodes[id] = v
	}
	for id, nbrs := range g.adjacency {
		m := make(map[string]struct{}, len(nbrs))
		for nbr := range nbrs {
			m[nbr] = struct{}{}
		}
		c.adjacency[id] = m
	}

	return c
}

// Clear removes all nodes and links; policy flags are preserved.
// Complexity: O(1) (old maps are left to the garbage collector).
func (g *Graph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]T)
	g.adjacency = make(map[string]map[string]struct{})
	g.links = 0
}
