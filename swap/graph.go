package swap

import (
	"sort"
	"strconv"

	"github.com/fairsched/allocate/core"
)

// exchangeGraph bundles the directed core.Graph the augmenting-path
// search runs over with the N×N witness matrix: witness[i][j] is the
// sorted, duplicate-free list of agent indices currently willing to give
// up item i in exchange for item j. An edge i->j exists in g iff
// witness[i][j] is non-empty; a witness matrix entry and its graph edge
// are always kept in lock-step by addWitness/removeWitness.
type exchangeGraph struct {
	g       *core.Graph
	n       int
	width   int
	witness [][][]int
}

func newExchangeGraph(n int) *exchangeGraph {
	width := core.DecimalWidth(n)
	g := core.NewGraph()
	g.AddVertex(core.SinkID)
	for i := 0; i < n; i++ {
		g.AddVertex(core.ItemVertexID(i, width))
	}

	witness := make([][][]int, n)
	for i := range witness {
		witness[i] = make([][]int, n)
	}

	return &exchangeGraph{g: g, n: n, width: width, witness: witness}
}

func (eg *exchangeGraph) vertexID(itemIdx int) string {
	return core.ItemVertexID(itemIdx, eg.width)
}

func (eg *exchangeGraph) itemIndex(vertexID string) int {
	idx, _ := strconv.Atoi(vertexID)
	return idx
}

// setSinkEdge keeps the i->t edge present iff item i still has pool
// capacity remaining.
func (eg *exchangeGraph) setSinkEdge(itemIdx int, present bool) {
	vid := eg.vertexID(itemIdx)
	switch {
	case present:
		eg.g.AddEdge(vid, core.SinkID)
	default:
		eg.g.RemoveEdge(vid, core.SinkID)
	}
}

// hasWitness reports whether agentIdx currently witnesses the i->j edge.
func (eg *exchangeGraph) hasWitness(i, j, agentIdx int) bool {
	for _, a := range eg.witness[i][j] {
		if a == agentIdx {
			return true
		}
	}
	return false
}

// addWitness registers agentIdx as a witness of the i->j edge, inserting
// it in ascending order so the lowest-index witness is always first, and
// adds the graph edge the first time a witness appears.
func (eg *exchangeGraph) addWitness(i, j, agentIdx int) {
	if eg.hasWitness(i, j, agentIdx) {
		return
	}
	w := append(eg.witness[i][j], agentIdx)
	sort.Ints(w)
	eg.witness[i][j] = w
	if len(w) == 1 {
		eg.g.AddEdge(eg.vertexID(i), eg.vertexID(j))
	}
}

// removeWitness deregisters agentIdx from the i->j edge, removing the
// graph edge once no witness remains.
func (eg *exchangeGraph) removeWitness(i, j, agentIdx int) {
	w := eg.witness[i][j]
	for k, a := range w {
		if a == agentIdx {
			eg.witness[i][j] = append(w[:k], w[k+1:]...)
			break
		}
	}
	if len(eg.witness[i][j]) == 0 {
		eg.g.RemoveEdge(eg.vertexID(i), eg.vertexID(j))
	}
}

// firstWitness returns the lowest-index agent witnessing the i->j edge.
// Callers only invoke this on an edge known to exist on the just-found
// augmenting path, so the witness list is guaranteed non-empty.
func (eg *exchangeGraph) firstWitness(i, j int) int {
	return eg.witness[i][j][0]
}
