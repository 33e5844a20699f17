package rooms

import (
	"github.com/katalvlaran/roomnav/geom"
)

// Connect fills the Connections of every room in rs from every other room,
// in room order. Existing Connections are replaced.
// Complexity: O(R²).
func Connect(rs []Room) {
	for i := range rs {
		rs[i].Connections = nil
		for j := range rs {
			if i == j {
				continue
			}
			if c, ok := Between(rs[i], rs[j]); ok {
				rs[i].Connections = append(rs[i].Connections, c)
			}
		}
	}
}

// Between computes the connection shared by rooms a and b.
//
// The X axis is tested first: a vertical portal exists when one room ends
// exactly where the other begins horizontally and their row ranges overlap.
// Otherwise the Y axis is tested symmetrically for a horizontal portal.
// Rooms from one tiling never touch on both axes at once.
//
// The result is symmetric: Between(a, b) and Between(b, a) are identical.
func Between(a, b Room) (Connection, bool) {
	ids := [2]int{a.ID, b.ID}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}

	if x, ok := touching(a.Area.X, a.Area.Width, b.Area.X, b.Area.Width); ok {
		if lo, hi, ok := overlap(a.Area.Y, a.Area.Height, b.Area.Y, b.Area.Height); ok {
			return Connection{
				Start:       geom.Point{X: x, Y: float64(lo)},
				End:         geom.Point{X: x, Y: float64(hi)},
				RoomIDs:     ids,
				Orientation: OrientVertical,
			}, true
		}
	}
	if y, ok := touching(a.Area.Y, a.Area.Height, b.Area.Y, b.Area.Height); ok {
		if lo, hi, ok := overlap(a.Area.X, a.Area.Width, b.Area.X, b.Area.Width); ok {
			return Connection{
				Start:       geom.Point{X: float64(lo), Y: y},
				End:         geom.Point{X: float64(hi), Y: y},
				RoomIDs:     ids,
				Orientation: OrientHorizontal,
			}, true
		}
	}
	return Connection{}, false
}

// touching returns the boundary coordinate between two spans on one axis
// when one ends exactly where the other starts: the midpoint between the
// last cell of the first span and the first cell of the second.
func touching(aPos, aLen, bPos, bLen int) (float64, bool) {
	switch {
	case aPos+aLen == bPos:
		return float64(bPos) - 0.5, true
	case bPos+bLen == aPos:
		return float64(aPos) - 0.5, true
	}
	return 0, false
}

// overlap returns the inclusive range of cells shared by two spans.
func overlap(aPos, aLen, bPos, bLen int) (lo, hi int, ok bool) {
	lo = max(aPos, bPos)
	hi = min(aPos+aLen, bPos+bLen) - 1
	return lo, hi, hi >= lo
}
