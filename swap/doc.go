// Package swap implements the exchange-graph allocator: General Yankee
// Swap (GYS) plus the serial-dictatorship/SPIRE and round-robin
// baselines it is compared against.
//
// GYS repeatedly picks the currently worst-off active agent (by a
// configurable gain-vector criterion), builds a transient "s" source
// vertex wired to every item that agent would gain from taking outright,
// and searches the exchange graph — one vertex per item plus a permanent
// "t" sink representing the unallocated pool — for a shortest augmenting
// path from s to t. A found path is a chain of swaps: the agent takes the
// item nearest s, which displaces its current owner onto the next item in
// the chain, and so on until the chain bottoms out at an unallocated item
// taken from the pool. No path means the agent cannot improve and is
// retired from the active set.
//
// The exchange graph's edges are witnessed: edge i->j exists because some
// agent currently holding item i would not be worse off trading it for
// item j. The witness sets (exchangeGraph.witness) are maintained
// incrementally after every augmentation rather than recomputed from
// scratch, and the lowest-index witness is always the one a chain
// augmentation acts through, keeping the whole run deterministic.
//
// The graph itself is a *core.Graph (directed, unweighted); path search is
// bfs.BFS plus BFSResult.PathTo. Zero-padded decimal item-vertex IDs
// (core.ItemVertexID) make core's lexicographic ordering coincide with
// numeric item-index ordering, so BFS's sorted neighbor traversal gives a
// deterministic tie-break among equal-length augmenting paths.
package swap
