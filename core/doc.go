// Package core implements Graph: a thread-safe, directed, unweighted,
// simple adjacency structure.
//
// Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error      // O(1)
//	HasVertex(id string) bool       // O(1)
//	RemoveVertex(id string) error   // O(V)
//	Vertices() []string             // O(V log V), sorted
//
//	// Edge lifecycle
//	AddEdge(from, to string) error    // O(1)
//	RemoveEdge(from, to string) error // O(1)
//	HasEdge(from, to string) bool     // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d log d), sorted
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//
// Within this module, swap builds its exchange graph on top of Graph: one
// vertex per schedulable item plus the reserved "s" and "t" vertices
// (core.SourceID, core.SinkID), with edges representing live swap
// witnesses. Item vertex IDs are zero-padded decimal strings (ItemVertexID)
// so the lexicographic vertex ordering Vertices/NeighborIDs already provide
// doubles as numeric item-index ordering, which swap's deterministic
// tie-break rules rely on.
package core
