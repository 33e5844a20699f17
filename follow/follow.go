// Package follow steps an agent along a planned path: it tracks which
// waypoint the agent is heading for and moves on once the agent is close
// enough to it.
//
// A Follower is driven from a motion loop:
//
//	f, _ := follow.New(navmesh.Points(path))
//	for !f.Done() {
//	    target, _ := f.Target(agent.Position())
//	    agent.SteerTowards(target)
//	}
//
// A Follower is not safe for concurrent use.
package follow

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/roomnav/geom"
)

// DefaultThreshold is the distance below which a waypoint counts as reached.
const DefaultThreshold = 6.0

// ErrInvalidThreshold is returned by New for a non-positive threshold.
var ErrInvalidThreshold = errors.New("follow: threshold must be positive")

// Option configures a Follower.
type Option func(*Follower)

// WithThreshold sets the reach distance. It must be positive.
func WithThreshold(d float64) Option {
	return func(f *Follower) {
		if d <= 0 || math.IsNaN(d) {
			f.err = fmt.Errorf("%w: %v", ErrInvalidThreshold, d)
			return
		}
		f.threshold = d
	}
}

// Follower walks a fixed list of waypoints.
type Follower struct {
	path      []geom.Point
	next      int
	threshold float64
	err       error
}

// New returns a Follower at the start of path. The path is copied.
func New(path []geom.Point, opts ...Option) (*Follower, error) {
	f := &Follower{
		path:      append([]geom.Point(nil), path...),
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f, nil
}

// Target advances past every waypoint lying strictly within the threshold
// of pos and returns the first one that does not. ok is false once the
// whole path has been reached.
func (f *Follower) Target(pos geom.Point) (target geom.Point, ok bool) {
	for f.next < len(f.path) && pos.Dist(f.path[f.next]) < f.threshold {
		f.next++
	}
	if f.Done() {
		return geom.Point{}, false
	}
	return f.path[f.next], true
}

// Heading returns the angle in radians from pos towards the current target,
// measured from the positive X axis with Y pointing down the grid.
func (f *Follower) Heading(pos geom.Point) (float64, bool) {
	t, ok := f.Target(pos)
	if !ok {
		return 0, false
	}
	d := t.Sub(pos)
	return math.Atan2(d.Y, d.X), true
}

// Done reports whether every waypoint has been reached.
func (f *Follower) Done() bool { return f.next >= len(f.path) }

// Remaining returns the waypoints not reached yet, current target first.
func (f *Follower) Remaining() []geom.Point {
	return append([]geom.Point(nil), f.path[f.next:]...)
}

// Reset starts over from the first waypoint.
func (f *Follower) Reset() { f.next = 0 }
