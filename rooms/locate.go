package rooms

import "github.com/katalvlaran/roomnav/geom"

// Locate returns the first room of rs whose area contains p, using
// half-open containment: x in [X, X+Width), y in [Y, Y+Height).
// The returned pointer aliases rs.
func Locate(p geom.Point, rs []Room) (*Room, bool) {
	for i := range rs {
		if rs[i].Area.Contains(p) {
			return &rs[i], true
		}
	}
	return nil, false
}
