// Package bfs provides breadth-first search over any unweighted graph that
// can enumerate neighbours, returning unweighted shortest-path distances,
// parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (link count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (links) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort the search with an error).
//   - Neighbour filtering via WithFilterNeighbor.
//   - Early exit once a target is discovered (WithTarget).
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs and neighbours are enqueued in
//	that order, so the visit sequence and the discovered paths are fully
//	reproducible.
//
// Complexity (V = |Nodes|, E = |Links|)
//
//   - Time:   O(V + E·log d) (neighbour lists are sorted per node)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithTarget("end"))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation, ErrNeighbors, or hook errors
//	}
//	path, err := res.PathTo("end") // ErrNoPath if "end" was never reached
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbour enumeration fails for a node.
//   - ErrNoPath               from PathTo when the destination was not reached.
//   - Wrapped OnVisit hook errors and context errors.
package bfs
