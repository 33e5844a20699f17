// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Link, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards nodes, adjacency and the link counter.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeExists indicates AddNode was called with an ID already present.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrLinkNotFound indicates an operation referenced a non-existent link.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiLinkNotAllowed indicates a second link between the same pair of nodes.
	ErrMultiLinkNotAllowed = errors.New("core: parallel links not allowed")
)

// Link is an undirected connection between two nodes.
// A is always the lexicographically smaller ID (A == B only for self-loops).
type Link struct {
	A, B string
}

// newLink orders a and b so equal pairs compare equal.
func newLink(a, b string) Link {
	if b < a {
		a, b = b, a
	}
	return Link{A: a, B: b}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(c *config)

type config struct {
	allowLoops bool
	capacity   int
}

// WithLoops permits self-loops (links from a node to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// WithCapacity pre-sizes the node maps for n nodes. Non-positive n is ignored.
func WithCapacity(n int) GraphOption {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is an undirected, unweighted graph with a value of type T per node.
//
// The zero value is not usable; construct with NewGraph.
type Graph[T any] struct {
	mu sync.RWMutex // guards everything below

	allowLoops bool

	nodes map[string]T // node ID → value
	links int          // number of undirected links

	// adjacency[a][b] exists iff a and b are linked; mirrored for undirected links.
	adjacency map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default loops are rejected.
// Complexity: O(1) (plus pre-sizing when WithCapacity is given).
func NewGraph[T any](opts ...GraphOption) *Graph[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Graph[T]{
		allowLoops: c.allowLoops,
		nodes:      make(map[string]T, c.capacity),
		adjacency:  make(map[string]map[string]struct{}, c.capacity),
	}
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph[T]) Looped() bool {
	return g.allowLoops // immutable after construction
}

// IsNil reports whether the receiver is a nil pointer, so callers holding a
// *Graph[T] behind an interface can detect a typed nil without reflection.
func (g *Graph[T]) IsNil() bool { return g == nil }
