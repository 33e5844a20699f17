package bfs_test

import (
	"testing"

	"github.com/katalvlaran/roomnav/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10000
	g := chain(b, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0", bfs.WithTarget("v9999"))
	}
}
