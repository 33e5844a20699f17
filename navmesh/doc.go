// Package navmesh turns decomposed rooms into a portal graph and answers
// shortest-path queries between arbitrary points on it.
//
// What
//
//   - BuildGraph: one node per portal (keyed by rooms.Connection.ID, placed at
//     the portal midpoint); the portals of each room are linked pairwise.
//   - FindPath: locate the rooms holding the two query points, attach
//     transient start/end nodes for the duration of the query, run an
//     unweighted breadth-first search and return the waypoint sequence.
//   - Smooth: one forward pass that slides every portal waypoint along its
//     portal towards the straight line between its neighbours.
//   - Mesh: rooms and graph of one map bundled together.
//
// Cost model
//
//	The search minimises the number of portals crossed, not the Euclidean
//	length. Smoothing shortens the result without changing which portals are
//	crossed.
//
// Concurrency
//
//	Rooms are read-only after decomposition and the graph is guarded by its
//	own lock. Each query injects nodes under a key unique to that query and
//	ignores every other query's nodes, so any number of FindPath calls may
//	share one Graph. After a query returns, successful or not, the graph holds
//	exactly the nodes and links it held before.
//
// Usage
//
//	mesh, err := navmesh.New(g)
//	if err != nil { ... }
//	path, err := mesh.FindPath(geom.Pt(0.5, 0.5), geom.Pt(9.5, 3.5))
//	switch {
//	case errors.Is(err, navmesh.ErrNoContainingRoom): // a point is in a wall
//	case errors.Is(err, navmesh.ErrNoPathFound):      // different islands
//	}
//	for _, p := range navmesh.Points(path) { ... }
package navmesh
