package agent

import "github.com/fairsched/allocate/item"

// Valuer is the minimal surface an Agent's underlying valuation needs to
// expose — satisfied by *valuation.Valuation and *valuation.Unique alike.
type Valuer interface {
	Value(item.Bundle) int
}

// Agent is a single participant in the allocation: a valuation plus a
// preference order over items, queried by swap's exchange-graph
// construction and gain-vector criteria.
type Agent interface {
	// Value returns the agent's valuation of bundle.
	Value(bundle item.Bundle) int

	// MarginalContribution returns value(bundle + it) - value(bundle):
	// how much adding it to bundle is worth to this agent.
	MarginalContribution(bundle item.Bundle, it item.Item) int

	// ExchangeContribution returns value(bundle + add - drop) -
	// value(bundle): the net effect of swapping drop out for add.
	ExchangeContribution(bundle item.Bundle, add, drop item.Item) int

	// DesiredItemIndices returns this agent's preferred items' indices,
	// in preference order (most preferred first).
	DesiredItemIndices() []int
}

type studentAgent struct {
	valuation Valuer
	preferred item.Bundle
}

// New wraps v with a preference order over preferred, returning a
// concrete Agent.
func New(v Valuer, preferred item.Bundle) Agent {
	return &studentAgent{valuation: v, preferred: preferred}
}

func (a *studentAgent) Value(bundle item.Bundle) int {
	return a.valuation.Value(bundle)
}

func (a *studentAgent) MarginalContribution(bundle item.Bundle, it item.Item) int {
	return a.valuation.Value(bundle.With(it)) - a.valuation.Value(bundle)
}

func (a *studentAgent) ExchangeContribution(bundle item.Bundle, add, drop item.Item) int {
	swapped := bundle.Without(drop.Index()).With(add)
	return a.valuation.Value(swapped) - a.valuation.Value(bundle)
}

func (a *studentAgent) DesiredItemIndices() []int {
	return a.preferred.Indices()
}
