package valuation

import "github.com/fairsched/allocate/item"

// Unique wraps a Valuation so that every query is evaluated against the
// bundle's set of distinct item indices, ignoring repeats — the adapter
// the original project-fair used to let a "legacy" single-unit-per-item
// agent view sit on top of a valuation whose underlying items may carry
// capacity > 1.
type Unique struct {
	inner *Valuation
}

// NewUnique wraps v as a Unique adapter.
func NewUnique(v *Valuation) *Unique {
	return &Unique{inner: v}
}

func dedup(bundle item.Bundle) item.Bundle {
	seen := make(map[int]struct{}, len(bundle))
	out := make(item.Bundle, 0, len(bundle))
	for _, it := range bundle {
		if _, ok := seen[it.Index()]; ok {
			continue
		}
		seen[it.Index()] = struct{}{}
		out = append(out, it)
	}
	return out
}

// Independent delegates to the wrapped Valuation over bundle's distinct
// items.
func (u *Unique) Independent(bundle item.Bundle) bool {
	return u.inner.Independent(dedup(bundle))
}

// Value delegates to the wrapped Valuation over bundle's distinct items.
func (u *Unique) Value(bundle item.Bundle) int {
	return u.inner.Value(dedup(bundle))
}

// Extent returns the wrapped Valuation's extent.
func (u *Unique) Extent() int { return u.inner.Extent() }
