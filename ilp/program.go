package ilp

import (
	"github.com/fairsched/allocate/valuation"
)

// Program is a block-diagonal 0/1 linear program: one diagonal block per
// agent, each block the agent's own compiled (A, b), acting on the
// concatenation of every agent's indicator vector over the shared item
// universe. The objective is implicitly "maximize the number of 1s" —
// Solve treats every variable's coefficient as -1, so minimizing the
// objective maximizes utilitarian welfare.
type Program struct {
	numAgents int
	numItems  int
	a         [][]int64 // Σ rows_a rows, numAgents*numItems columns
	b         []int64
}

// NewProgram compiles each valuation (see valuation.Valuation.Compile)
// and assembles the block-diagonal program. Every valuation must share
// the same Extent (the same item universe); a valuation's block occupies
// columns [i*numItems, (i+1)*numItems) of the combined variable vector.
func NewProgram(valuations []*valuation.Valuation) (*Program, error) {
	if len(valuations) == 0 {
		return nil, ErrEmptyInstance
	}
	numItems := valuations[0].Extent()
	for _, v := range valuations {
		if v.Extent() != numItems {
			return nil, ExtentMismatchError{Expected: numItems, Got: v.Extent()}
		}
	}

	numAgents := len(valuations)
	width := numAgents * numItems

	var a [][]int64
	var b []int64
	for agentIdx, v := range valuations {
		blockA, blockB := v.Compile().Matrix()
		offset := agentIdx * numItems
		for r, row := range blockA {
			full := make([]int64, width)
			copy(full[offset:offset+numItems], row)
			a = append(a, full)
			b = append(b, blockB[r])
		}
	}

	return &Program{numAgents: numAgents, numItems: numItems, a: a, b: b}, nil
}

// NumAgents returns the number of agent blocks.
func (p *Program) NumAgents() int { return p.numAgents }

// NumItems returns the shared item-universe size every block is defined
// over.
func (p *Program) NumItems() int { return p.numItems }

// Width returns the number of 0/1 variables in the assembled program:
// NumAgents() * NumItems().
func (p *Program) Width() int { return p.numAgents * p.numItems }
