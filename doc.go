// Package roomnav turns a binary occupancy grid into rooms and portals and
// plans paths across them.
//
// 🚀 What is roomnav?
//
//	A small, thread-safe navigation toolkit that brings together:
//		• Decomposition: tile the free cells with maximal rectangles (rooms)
//		• Portals: the border segment shared by every pair of touching rooms
//		• Planning: unweighted shortest path between any two points, through portals
//		• Smoothing: a single pass that pulls the path straight across each portal
//		• Following: step an agent from waypoint to waypoint
//
// Under the hood, everything is organized into subpackages:
//
//	geom/      Point and Area value types
//	grid/      occupancy grid, islands, bitmap loading
//	maxrect/   largest free rectangle (histogram + monotonic stack)
//	rooms/     decomposition, portal discovery, room lookup
//	core/      thread-safe node/link graph with typed payloads
//	bfs/       breadth-first search with hooks, filters and early exit
//	navmesh/   portal graph, path queries, smoothing, Mesh facade
//	follow/    waypoint follower for motion loops
//	meshio/    JSON map documents and their JSON Schema
//	cmd/roomnav command line front end and WebSocket query server
//
// Quick ASCII example:
//
//	. . # # #
//	. . # # #      room 0: 2x3 at (0,0)
//	. . . . .      room 1: 3x1 at (2,2), portal 0-1 at x=1.5, y=2
//
// A path from (0.5,0.5) to (4.5,2.5) crosses the single portal.
package roomnav
