// Package bfs finds the shortest augmenting path through a core.Graph's
// reserved source and sink vertices: breadth-first search from a start
// vertex, returning visit order, per-vertex depth, and parent links so the
// caller can reconstruct the path to any reached vertex via
// BFSResult.PathTo.
//
// Complexity (V = |Vertices|, E = |Edges|): O(V + E) time, O(V) memory.
//
// Determinism: core.Graph.NeighborIDs returns sorted vertex IDs, and BFS
// enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Usage:
//
//	result, err := bfs.BFS(g, "s")
//	path, err := result.PathTo("t")
//
// Errors:
//
//   - ErrGraphNil if the graph pointer is nil.
//   - ErrStartVertexNotFound if the start vertex does not exist.
package bfs
