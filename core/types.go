// Package core defines the exchange graph's backing structure: a directed,
// unweighted graph without parallel edges, indexed by
// vertex ID, protected by a pair of sync.RWMutex locks so swap can mutate it
// from a single goroutine per allocation run while still being safe to
// inspect concurrently (e.g. from a caller watching progress).
//
// This is deliberately not a general-purpose graph library: the exchange
// graph swap builds never needs weights, multi-edges, undirected edges, or
// cloning, so none of those concerns exist here. Item vertices are addressed
// by core.ItemVertexID, and the two reserved vertices (core.SourceID,
// core.SinkID) are plain vertex IDs like any other.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex ID was supplied.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex identifies a single node in the graph by its ID alone — the
// exchange graph carries no per-vertex payload.
type Vertex struct {
	ID string
}

// Graph is a directed, unweighted adjacency structure: at most one edge
// from any vertex to any other. AddEdge does not reject a self-loop
// (from == to). muVert guards the vertex catalog; muAdj guards the
// adjacency sets.
type Graph struct {
	muVert sync.RWMutex
	muAdj  sync.RWMutex

	vertices  map[string]*Vertex
	adjacency map[string]map[string]struct{} // from -> set of to
}

// NewGraph constructs an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
}
