package item

import (
	"fmt"
	"strings"

	"github.com/fairsched/allocate/feature"
)

// Item is a single schedulable unit: a named tuple of feature values with
// a stable index (its column in every LinearConstraint and its vertex in
// every exchange graph) and a capacity (how many agents can hold a unit of
// it at once — 1 for an exclusive seat, N for an N-seat section).
type Item struct {
	name     string
	features []feature.Feature
	values   []string
	index    int
	capacity int
}

// NewItem validates that values has one entry per feature and that each
// value belongs to its feature's domain, then constructs the Item.
func NewItem(name string, features []feature.Feature, values []string, index, capacity int) (Item, error) {
	if len(features) != len(values) {
		return Item{}, feature.FeatureError{Op: "NewItem", Expected: len(features), Got: len(values)}
	}
	if capacity < 0 {
		return Item{}, fmt.Errorf("item: %s: capacity must be >= 0, got %d", name, capacity)
	}
	for i, f := range features {
		if err := f.Validate(values[i]); err != nil {
			return Item{}, err
		}
	}

	fCopy := make([]feature.Feature, len(features))
	copy(fCopy, features)
	vCopy := make([]string, len(values))
	copy(vCopy, values)

	return Item{name: name, features: fCopy, values: vCopy, index: index, capacity: capacity}, nil
}

// Name returns the item's human-readable identifier.
func (it Item) Name() string { return it.name }

// Index returns the item's stable position: its column in LinearConstraint
// matrices and its vertex ID (via core.ItemVertexID) in the exchange graph.
func (it Item) Index() int { return it.index }

// Capacity returns how many agents may simultaneously hold a unit of it.
func (it Item) Capacity() int { return it.capacity }

// WithCapacity returns a copy of it with a different capacity, used by
// SubSchedule to rebuild items at multiplicity-derived capacities.
func (it Item) WithCapacity(capacity int) Item {
	it.capacity = capacity
	return it
}

// WithIndex returns a copy of it re-indexed, used when an item list is
// restricted or reordered (e.g. building a PMMS sub-instance).
func (it Item) WithIndex(index int) Item {
	it.index = index
	return it
}

// Value returns the value assigned to the named feature and whether that
// feature is declared on this item at all.
func (it Item) Value(featureName string) (string, bool) {
	for i, f := range it.features {
		if f.Name() == featureName {
			return it.values[i], true
		}
	}
	return "", false
}

// Features returns a copy of the item's declared features.
func (it Item) Features() []feature.Feature {
	cp := make([]feature.Feature, len(it.features))
	copy(cp, it.features)
	return cp
}

// Key renders a canonical string encoding of the item's identity
// (name + every feature value, in declaration order) suitable for sorting
// and for building a bundle's memoization key — mirrors the original's
// reliance on a hashable, orderable item representation.
func (it Item) Key() string {
	var b strings.Builder
	b.WriteString(it.name)
	for i, f := range it.features {
		b.WriteByte('|')
		b.WriteString(f.Name())
		b.WriteByte('=')
		b.WriteString(it.values[i])
	}
	return b.String()
}

// Less orders items by Key, giving a total, deterministic order usable
// for canonical bundle sorting independent of allocation-time index churn.
func (it Item) Less(other Item) bool {
	return it.Key() < other.Key()
}
