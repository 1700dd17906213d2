package valuation

import (
	"github.com/fairsched/allocate/constraint"
	"github.com/fairsched/allocate/item"
)

// Stats reports memo-table hit/miss counters, useful for diagnosing
// whether a workload actually benefits from memoization.
type Stats struct {
	IndependentHits   int
	IndependentMisses int
	ValueHits         int
	ValueMisses       int
}

// Valuation is a matroid-rank valuation over a fixed item universe: a
// bundle's value is the size of its largest independent sub-bundle, where
// independence means "respects every item's capacity and every declared
// LinearConstraint."
type Valuation struct {
	capacity []int64
	compiled constraint.LinearConstraint
	opts     options

	independentMemo map[string]bool
	valueMemo       map[string]int
	stats           Stats
}

// NewValuation compiles constraints (via constraint.Stack) against the
// given item universe and builds a Valuation over it. items supplies each
// item's capacity, keyed by index; constraints may reference any index in
// [0, len(items)).
func NewValuation(items []item.Item, constraints []constraint.Constraint, opts ...Option) (*Valuation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	capacity := make([]int64, len(items))
	for _, it := range items {
		if it.Index() >= 0 && it.Index() < len(items) {
			capacity[it.Index()] = int64(it.Capacity())
		}
	}

	var compiled constraint.LinearConstraint
	if len(constraints) > 0 {
		var err error
		compiled, err = constraint.Stack(constraints...)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		compiled, err = constraint.NewLinearConstraint(nil, nil, len(items))
		if err != nil {
			return nil, err
		}
	}

	v := &Valuation{
		capacity: capacity,
		compiled: compiled,
		opts:     o,
	}
	if o.memoize {
		v.independentMemo = make(map[string]bool)
		v.valueMemo = make(map[string]int)
	}

	return v, nil
}

// Extent returns the size of the item universe this valuation is defined
// over.
func (v *Valuation) Extent() int { return len(v.capacity) }

// Compile returns the single pruned LinearConstraint this valuation's
// independence oracle evaluates against — every declared constraint
// already stacked into one by NewValuation via constraint.Stack. It is
// exposed so callers that need direct access to (A, b), such as the ilp
// bridge, don't have to re-derive it.
func (v *Valuation) Compile() constraint.LinearConstraint { return v.compiled }

// Stats returns a snapshot of the memo-table hit/miss counters.
func (v *Valuation) Stats() Stats { return v.stats }

// Independent reports whether bundle respects every item's capacity and
// every compiled constraint.
func (v *Valuation) Independent(bundle item.Bundle) bool {
	key := bundle.Key()
	if v.opts.memoize {
		if got, ok := v.independentMemo[key]; ok {
			v.stats.IndependentHits++
			return got
		}
		v.stats.IndependentMisses++
	}

	result := v.withinCapacity(bundle) && v.compiled.Satisfies(bundle)
	if v.opts.memoize {
		v.independentMemo[key] = result
	}
	return result
}

func (v *Valuation) withinCapacity(bundle item.Bundle) bool {
	counts := make(map[int]int64)
	for _, it := range bundle {
		counts[it.Index()]++
	}
	for idx, count := range counts {
		if idx < 0 || idx >= len(v.capacity) {
			continue
		}
		if count > v.capacity[idx] {
			return false
		}
	}
	return true
}

// Value computes the matroid rank of bundle via greedy augmentation: walk
// the bundle in canonical (Key-sorted) order, keep an item only if adding
// it preserves independence. Correct for any matroid-rank valuation,
// and the production path per the module's design.
func (v *Valuation) Value(bundle item.Bundle) int {
	key := bundle.Key()
	if v.opts.memoize {
		if got, ok := v.valueMemo[key]; ok {
			v.stats.ValueHits++
			return got
		}
		v.stats.ValueMisses++
	}

	var selected item.Bundle
	for _, it := range bundle.Sorted() {
		candidate := selected.With(it)
		if v.Independent(candidate) {
			selected = candidate
		}
	}
	result := len(selected)

	if v.opts.memoize {
		v.valueMemo[key] = result
	}
	return result
}

// BruteForceValue recomputes Value's result via the original project-
// fair's recursive drop-one-item scheme: if bundle is independent, its
// value is its size; otherwise the value is the max over dropping any
// single item. Exponential in the worst case — a test oracle only, never
// the production path.
func (v *Valuation) BruteForceValue(bundle item.Bundle) int {
	if v.Independent(bundle) {
		return len(bundle)
	}
	if len(bundle) == 0 {
		return 0
	}

	best := 0
	for i := range bundle {
		reduced := make(item.Bundle, 0, len(bundle)-1)
		reduced = append(reduced, bundle[:i]...)
		reduced = append(reduced, bundle[i+1:]...)
		if r := v.BruteForceValue(reduced); r > best {
			best = r
		}
	}
	return best
}
