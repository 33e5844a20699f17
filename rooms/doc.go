// Package rooms decomposes the free space of a grid into rectangular rooms
// and discovers the portals (shared border segments) between them.
//
// What
//
//   - Decompose repeatedly extracts the largest free rectangle from a private
//     working copy of the grid until no free cell remains. The result tiles
//     the free space exactly: every free cell belongs to one room, no two rooms
//     overlap. Room IDs follow discovery order (0, 1, 2, ...).
//   - Connect/Between find, for every pair of rooms, the border segment they
//     share. Each segment is a Connection keyed "min-max" by the two room IDs.
//   - Locate finds the room containing a continuous point (half-open areas).
//   - Walls decomposes the inverted grid: the blocked space as rectangles.
//
// Portal geometry
//
//	Cells are centred on integer coordinates, so the boundary between
//	column b.X-1 and column b.X lies at x = b.X - 0.5. A vertical portal
//	between a room ending at column 4 and one starting at column 5 is the
//	segment x = 4.5, from the first to the last shared row.
//
// Determinism
//
//	Decompose is deterministic for a given grid; Connections of a room are
//	ordered by the other room's ID.
//
// Complexity
//
//   - Decompose: O(R·W·H) for R rooms; worst case quadratic in grid area for
//     highly fragmented maps. It runs once per map.
//   - Connect:   O(R²).
//   - Locate:    O(R).
package rooms
