// Package core provides a thread-safe, in-memory, undirected and unweighted
// graph whose nodes carry a typed value.
//
// The Graph G = (V,E) is the storage under roomnav's portal graph: nodes are
// portals (plus two short-lived query endpoints), links say "you can walk
// from one to the other inside a room".
//
//   - Typed payloads: Graph[T] stores one T per node (a waypoint in roomnav).
//   - Undirected links: adjacency[a][b] and adjacency[b][a] always agree.
//   - No parallel links: a second AddLink(a,b) returns ErrMultiLinkNotAllowed.
//   - Self-loops rejected unless WithLoops() is given.
//   - O(1) node and link membership via nested maps.
//   - One sync.RWMutex guards nodes and adjacency together, so a RemoveNode
//     never leaves a half-unlinked neighbourhood visible to readers.
//
// Deterministic iteration:
//
//	Nodes(), NeighborIDs() and Links() return sorted results, so searches
//	that walk them are fully reproducible.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string, value T) error      // O(1), ErrNodeExists on duplicates
//	SetNode(id string, value T) error      // O(1), replaces the value of an existing node
//	HasNode(id string) bool                // O(1)
//	Node(id string) (T, bool)              // O(1)
//	RemoveNode(id string) error            // O(deg(v))
//
//	// Link lifecycle
//	AddLink(a, b string) error             // O(1)
//	RemoveLink(a, b string) error          // O(1)
//	HasLink(a, b string) bool              // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Nodes() []string                         // O(V·log V), sorted
//	Links() []Link                           // O(E·log E), sorted
//	NodeCount() int / LinkCount() int        // O(1)
//
//	// Maintenance
//	Clone() *Graph[T]                        // O(V+E) structural copy
//	Clear()                                  // O(1)
//
// Errors:
//
//	ErrEmptyNodeID         – zero-length node ID
//	ErrNodeNotFound        – missing node
//	ErrNodeExists          – AddNode on an existing ID
//	ErrLinkNotFound        – RemoveLink on a missing link
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiLinkNotAllowed – second link between the same pair
package core
