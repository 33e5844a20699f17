package navmesh_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomnav/core"
	"github.com/katalvlaran/roomnav/geom"
	"github.com/katalvlaran/roomnav/grid"
	"github.com/katalvlaran/roomnav/navmesh"
	"github.com/katalvlaran/roomnav/rooms"
)

func mustMesh(t testing.TB, rows ...string) *navmesh.Mesh {
	t.Helper()
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	m, err := navmesh.New(g)
	require.NoError(t, err)
	return m
}

func randomGrid(rng *rand.Rand, w, h, blockedOneIn int) *grid.Grid {
	g := grid.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = g.Set(x, y, rng.Intn(blockedOneIn) == 0)
		}
	}
	return g
}

func cellCenter(x, y int) geom.Point { return geom.Pt(float64(x)+0.5, float64(y)+0.5) }

type snapshot struct {
	nodes []string
	links []core.Link
}

func snap(g *navmesh.Graph) snapshot { return snapshot{nodes: g.Nodes(), links: g.Links()} }

// cross3 is a horizontal corridor with one cell above and one below its middle:
//
//	# B #
//	A A A
//	# C #
func cross3() []rooms.Room {
	rs := []rooms.Room{
		{ID: 0, Area: geom.Area{X: 0, Y: 1, Width: 3, Height: 1}},
		{ID: 1, Area: geom.Area{X: 1, Y: 0, Width: 1, Height: 1}},
		{ID: 2, Area: geom.Area{X: 1, Y: 2, Width: 1, Height: 1}},
	}
	rooms.Connect(rs)
	return rs
}

//----------------------------------------------------------------------------//
// BuildGraph
//----------------------------------------------------------------------------//

func TestBuildGraph_PortalsAndCliques(t *testing.T) {
	g, err := navmesh.BuildGraph(cross3())
	require.NoError(t, err)

	assert.Equal(t, []string{"0-1", "0-2"}, g.Nodes(), "one node per connection, added once")
	assert.Equal(t, []core.Link{{A: "0-1", B: "0-2"}}, g.Links(), "portals of room 0 linked pairwise")

	wp, ok := g.Waypoint("0-1")
	require.True(t, ok)
	assert.Equal(t, navmesh.KindPortal, wp.Kind)
	assert.Equal(t, geom.Pt(1, 0.5), wp.Point, "midpoint of the portal")
	require.NotNil(t, wp.Connection)
	assert.Equal(t, "0-1", wp.Connection.ID())
}

func TestBuildGraph_SinglePortalRoomAddsNoLinks(t *testing.T) {
	m := mustMesh(t, "..###", "..###", ".....")
	assert.Equal(t, []string{"0-1"}, m.Graph().Nodes())
	assert.Zero(t, m.Graph().LinkCount())
}

func TestBuildGraph_Empty(t *testing.T) {
	g, err := navmesh.BuildGraph(nil)
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.LinkCount())
}

func TestBuildGraph_RejectsForeignConnection(t *testing.T) {
	rs := cross3()
	rs[1].Connections = append(rs[1].Connections, rooms.Connection{RoomIDs: [2]int{0, 2}})
	_, err := navmesh.BuildGraph(rs)
	assert.ErrorIs(t, err, navmesh.ErrInvalidRooms)
}

//----------------------------------------------------------------------------//
// FindPath scenarios
//----------------------------------------------------------------------------//

func TestFindPath_ThroughDoorway(t *testing.T) {
	m := mustMesh(t, "..###", "..###", ".....")
	start, end := geom.Pt(0.5, 0.5), geom.Pt(4.5, 2.5)

	for _, opts := range [][]navmesh.Option{nil, {navmesh.WithSmoothing(false)}} {
		path, err := m.FindPath(start, end, opts...)
		require.NoError(t, err)
		require.Len(t, path, 3)

		assert.Equal(t, []geom.Point{start, geom.Pt(1.5, 2), end}, navmesh.Points(path))
		assert.Equal(t, navmesh.KindEndpoint, path[0].Kind)
		assert.Equal(t, navmesh.KindPortal, path[1].Kind)
		assert.Equal(t, navmesh.KindEndpoint, path[2].Kind)
		assert.Equal(t, 0, path[0].Room.ID)
		assert.Equal(t, 1, path[2].Room.ID)
		assert.Equal(t, "0-1", path[1].Connection.ID())
	}
}

func TestFindPath_BlockedGrid(t *testing.T) {
	m := mustMesh(t, "###", "###")
	assert.True(t, m.Empty())

	_, err := m.FindPath(geom.Pt(0.5, 0.5), geom.Pt(1.5, 1.5))
	assert.ErrorIs(t, err, navmesh.ErrNoContainingRoom)
}

func TestFindPath_PointInWallOrOutside(t *testing.T) {
	m := mustMesh(t, "..#..")
	_, err := m.FindPath(geom.Pt(2.5, 0.5), geom.Pt(0.5, 0.5))
	assert.ErrorIs(t, err, navmesh.ErrNoContainingRoom, "start in a wall")
	_, err = m.FindPath(geom.Pt(0.5, 0.5), geom.Pt(5, 0.5))
	assert.ErrorIs(t, err, navmesh.ErrNoContainingRoom, "end on the right border is outside")
	_, err = m.FindPath(geom.Pt(-0.1, 0.5), geom.Pt(0.5, 0.5))
	assert.ErrorIs(t, err, navmesh.ErrNoContainingRoom)
}

func TestFindPath_DisconnectedPockets(t *testing.T) {
	m := mustMesh(t, "..#..")
	require.Len(t, m.Rooms(), 2)

	before := snap(m.Graph())
	_, err := m.FindPath(geom.Pt(0.5, 0.5), geom.Pt(4.5, 0.5))
	assert.ErrorIs(t, err, navmesh.ErrNoPathFound)
	assert.Equal(t, before, snap(m.Graph()), "failed query leaves the graph unchanged")
}

func TestFindPath_SameRoom(t *testing.T) {
	m := mustMesh(t, "....", "....")
	require.Len(t, m.Rooms(), 1)

	start, end := geom.Pt(0.2, 0.3), geom.Pt(3.9, 1.9)
	path, err := m.FindPath(start, end)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{start, end}, navmesh.Points(path))
}

func TestFindPath_SameRoomWithPortals(t *testing.T) {
	m, err := navmesh.FromRooms(cross3())
	require.NoError(t, err)

	path, err := m.FindPath(geom.Pt(0.5, 1.5), geom.Pt(2.5, 1.5))
	require.NoError(t, err)
	assert.Len(t, path, 2, "direct link inside a room beats going through a portal")
}

func TestFindPath_TwoPortals(t *testing.T) {
	m, err := navmesh.FromRooms(cross3())
	require.NoError(t, err)

	start, end := geom.Pt(1.5, 0.5), geom.Pt(1.5, 2.5)
	path, err := m.FindPath(start, end, navmesh.WithSmoothing(false))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{start, geom.Pt(1, 0.5), geom.Pt(1, 1.5), end}, navmesh.Points(path))
}

func TestFindPath_NilGraph(t *testing.T) {
	_, err := navmesh.FindPath(geom.Pt(0, 0), geom.Pt(1, 1), cross3(), nil)
	assert.ErrorIs(t, err, navmesh.ErrNilGraph)
}

func TestNew_NilGrid(t *testing.T) {
	_, err := navmesh.New(nil)
	assert.ErrorIs(t, err, navmesh.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestFindPath_ReachabilityMatchesComponents checks that a path exists
// exactly when both cells lie on the same 4-connected island, and that every
// query hands the graph back untouched.
func TestFindPath_ReachabilityMatchesComponents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 20; iter++ {
		g := randomGrid(rng, 4+rng.Intn(8), 4+rng.Intn(8), 3)
		m, err := navmesh.New(g)
		require.NoError(t, err)
		labels := g.Labels()
		before := snap(m.Graph())

		for q := 0; q < 30; q++ {
			ax, ay := rng.Intn(g.Width), rng.Intn(g.Height)
			bx, by := rng.Intn(g.Width), rng.Intn(g.Height)
			path, err := m.FindPath(cellCenter(ax, ay), cellCenter(bx, by))

			la, lb := labels[g.Index(ax, ay)], labels[g.Index(bx, by)]
			switch {
			case la < 0 || lb < 0:
				assert.ErrorIs(t, err, navmesh.ErrNoContainingRoom)
			case la == lb:
				require.NoError(t, err, "grid:\n%s", g)
				assert.Equal(t, cellCenter(ax, ay), path[0].Point)
				assert.Equal(t, cellCenter(bx, by), path[len(path)-1].Point)
			default:
				assert.ErrorIs(t, err, navmesh.ErrNoPathFound, "grid:\n%s", g)
			}
			require.Equal(t, before, snap(m.Graph()))
		}
	}
}

func TestFindPath_SmoothedStaysOnPortals(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomGrid(rng, 20, 20, 4)
	m, err := navmesh.New(g)
	require.NoError(t, err)

	for q := 0; q < 200; q++ {
		a := geom.Pt(rng.Float64()*20, rng.Float64()*20)
		b := geom.Pt(rng.Float64()*20, rng.Float64()*20)
		raw, err := m.FindPath(a, b, navmesh.WithSmoothing(false))
		if err != nil {
			continue
		}
		smooth, err := m.FindPath(a, b)
		require.NoError(t, err)
		require.Len(t, smooth, len(raw))

		for i, w := range smooth {
			assert.Equal(t, raw[i].Kind, w.Kind)
			if w.Kind != navmesh.KindPortal {
				assert.Equal(t, raw[i].Point, w.Point)
				continue
			}
			c := w.Connection
			assert.GreaterOrEqual(t, w.Point.X, c.Start.X)
			assert.LessOrEqual(t, w.Point.X, c.End.X)
			assert.GreaterOrEqual(t, w.Point.Y, c.Start.Y)
			assert.LessOrEqual(t, w.Point.Y, c.End.Y)
		}
	}
}

func TestFindPath_Concurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGrid(rng, 24, 24, 5)
	m, err := navmesh.New(g)
	require.NoError(t, err)
	before := snap(m.Graph())

	type job struct{ a, b geom.Point }
	jobs := make([]job, 64)
	want := make([][]geom.Point, len(jobs))
	for i := range jobs {
		jobs[i] = job{geom.Pt(rng.Float64()*24, rng.Float64()*24), geom.Pt(rng.Float64()*24, rng.Float64()*24)}
		if path, err := m.FindPath(jobs[i].a, jobs[i].b); err == nil {
			want[i] = navmesh.Points(path)
		}
	}

	got := make([][]geom.Point, len(jobs))
	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if path, err := m.FindPath(jobs[i].a, jobs[i].b); err == nil {
				got[i] = navmesh.Points(path)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, got, "concurrent queries see only their own transient nodes")
	assert.Equal(t, before, snap(m.Graph()))
}

func BenchmarkFindPath(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m, err := navmesh.New(randomGrid(rng, 64, 64, 5))
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.FindPath(geom.Pt(rng.Float64()*64, rng.Float64()*64), geom.Pt(rng.Float64()*64, rng.Float64()*64))
	}
}
