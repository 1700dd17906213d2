package matroidcheck

import "github.com/fairsched/allocate/item"

// valuer is the minimal surface matroidcheck needs from a valuation —
// satisfied by *valuation.Valuation and *valuation.Unique alike.
type valuer interface {
	Value(item.Bundle) int
}

// Powerset enumerates every sub-bundle of bundle, including the empty
// bundle and bundle itself. Exponential — callers must restrict to small
// fixtures, exactly as the original set_tools.powerset does.
func Powerset(bundle item.Bundle) []item.Bundle {
	n := len(bundle)
	out := make([]item.Bundle, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var sub item.Bundle
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				sub = append(sub, bundle[i])
			}
		}
		out = append(out, sub)
	}
	return out
}

// NonNegative reports whether v(S) >= 0 for every sub-bundle of universe.
func NonNegative(v valuer, universe item.Bundle) bool {
	for _, s := range Powerset(universe) {
		if v.Value(s) < 0 {
			return false
		}
	}
	return true
}

// RankLeqCardinality reports whether v(S) <= |S| for every sub-bundle of
// universe — a defining property of a matroid rank function.
func RankLeqCardinality(v valuer, universe item.Bundle) bool {
	for _, s := range Powerset(universe) {
		if v.Value(s) > len(s) {
			return false
		}
	}
	return true
}

// MonotonicNonDecreasing reports whether v(S) <= v(S ∪ {x}) for every
// sub-bundle S of universe and every x in universe \ S.
func MonotonicNonDecreasing(v valuer, universe item.Bundle) bool {
	for _, s := range Powerset(universe) {
		base := v.Value(s)
		for _, x := range universe {
			if s.Contains(x.Index()) {
				continue
			}
			if v.Value(s.With(x)) < base {
				return false
			}
		}
	}
	return true
}

// Submodular reports whether, for every pair of sub-bundles A ⊆ B of
// universe and every x in universe \ B,
//
//	v(A ∪ {x}) - v(A) >= v(B ∪ {x}) - v(B)
//
// i.e. diminishing marginal returns as the bundle grows.
func Submodular(v valuer, universe item.Bundle) bool {
	subsets := Powerset(universe)
	for _, a := range subsets {
		for _, b := range subsets {
			if !isSubsetOf(a, b) {
				continue
			}
			for _, x := range universe {
				if b.Contains(x.Index()) {
					continue
				}
				marginA := v.Value(a.With(x)) - v.Value(a)
				marginB := v.Value(b.With(x)) - v.Value(b)
				if marginA < marginB {
					return false
				}
			}
		}
	}
	return true
}

// IsMatroidRankFunction reports whether v satisfies all four matroid-rank
// laws over universe: non-negativity, rank <= cardinality, monotonicity,
// and submodularity.
func IsMatroidRankFunction(v valuer, universe item.Bundle) bool {
	return NonNegative(v, universe) &&
		RankLeqCardinality(v, universe) &&
		MonotonicNonDecreasing(v, universe) &&
		Submodular(v, universe)
}

func isSubsetOf(a, b item.Bundle) bool {
	for _, it := range a {
		if !b.Contains(it.Index()) {
			return false
		}
	}
	return true
}
