package metrics

import (
	"github.com/fairsched/allocate/agent"
	"github.com/fairsched/allocate/item"
	"github.com/fairsched/allocate/swap"
)

// EF reports envy-free violations: for every ordered pair (i, j), i != j,
// a violation is counted if agent i values agent j's bundle strictly more
// than its own. enviers is the number of distinct agents that envy at
// least one other agent.
func EF(X *swap.Matrix, agents []agent.Agent) (violations, enviers int) {
	return countEnvy(X, agents, func(_ agent.Agent, own, other int, _, _ item.Bundle) bool {
		return own < other
	})
}

// EF1 reports envy-free-up-to-one-item violations: agent i envies agent j
// only if no single item in j's bundle can be dropped to relieve the envy
// — the envy must survive every possible single-item removal before it
// counts. This is the stricter of the two up-to-one-item notions this
// package reports, so EF1's count never exceeds EF's.
func EF1(X *swap.Matrix, agents []agent.Agent) (violations, enviers int) {
	return countEnvy(X, agents, func(a agent.Agent, own, other int, _, otherBundle item.Bundle) bool {
		if own >= other {
			return false
		}
		return !existsRemovalAtOrBelow(a, own, otherBundle)
	})
}

// EFX reports envy-free-up-to-any-item violations: agent i envies agent j
// if there is some single item in j's bundle whose removal still leaves i
// envying j — a violation is flagged as soon as one such item exists. This
// is the more permissive of the two notions: every EF1 violation is also
// an EFX violation, since surviving every removal implies surviving some
// removal.
func EFX(X *swap.Matrix, agents []agent.Agent) (violations, enviers int) {
	return countEnvy(X, agents, func(a agent.Agent, own, other int, _, otherBundle item.Bundle) bool {
		if own >= other {
			return false
		}
		return existsRemovalStillAbove(a, own, otherBundle)
	})
}

// countEnvy runs violates over every ordered pair (i, j), i != j, and
// tallies how many pairs violate plus how many distinct agents i are the
// envying side of at least one violation.
func countEnvy(X *swap.Matrix, agents []agent.Agent, violates func(a agent.Agent, own, other int, ownBundle, otherBundle item.Bundle) bool) (violations, enviers int) {
	n := len(agents)
	bundles := make([]item.Bundle, n)
	for i := range agents {
		bundles[i] = X.Bundle(i)
	}

	envious := make([]bool, n)
	for i, a := range agents {
		own := a.Value(bundles[i])
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			other := a.Value(bundles[j])
			if violates(a, own, other, bundles[i], bundles[j]) {
				violations++
				envious[i] = true
			}
		}
	}
	for _, e := range envious {
		if e {
			enviers++
		}
	}
	return violations, enviers
}

// existsRemovalAtOrBelow reports whether some single item can be dropped
// from otherBundle so that a's valuation of what remains is at or below
// own.
func existsRemovalAtOrBelow(a agent.Agent, own int, otherBundle item.Bundle) bool {
	for i := range otherBundle {
		reduced := dropAt(otherBundle, i)
		if a.Value(reduced) <= own {
			return true
		}
	}
	return false
}

// existsRemovalStillAbove reports whether some single item can be
// dropped from otherBundle while a's valuation of what remains still
// exceeds own.
func existsRemovalStillAbove(a agent.Agent, own int, otherBundle item.Bundle) bool {
	for i := range otherBundle {
		reduced := dropAt(otherBundle, i)
		if a.Value(reduced) > own {
			return true
		}
	}
	return false
}

func dropAt(bundle item.Bundle, i int) item.Bundle {
	out := make(item.Bundle, 0, len(bundle)-1)
	out = append(out, bundle[:i]...)
	out = append(out, bundle[i+1:]...)
	return out
}
