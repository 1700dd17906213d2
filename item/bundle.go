package item

import "sort"

// Bundle is an ordered collection of items an agent holds or is probing.
// Bundle is not required to be sorted by callers; use Sorted for a
// canonical, memoization-safe ordering.
type Bundle []Item

// Indices returns the bundle's item indices, in the bundle's own order.
func (b Bundle) Indices() []int {
	out := make([]int, len(b))
	for i, it := range b {
		out[i] = it.Index()
	}
	return out
}

// Sorted returns a copy of b ordered by Item.Key ascending — the canonical
// order valuation's memoization keys off of, mirroring the original's
// tuple(sorted(bundle)) memo key.
func (b Bundle) Sorted() Bundle {
	cp := make(Bundle, len(b))
	copy(cp, b)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })
	return cp
}

// Key renders the canonical memoization key for the bundle: the
// concatenation of each item's Key in Sorted order.
func (b Bundle) Key() string {
	sorted := b.Sorted()
	var total int
	for _, it := range sorted {
		total += len(it.Key()) + 1
	}
	key := make([]byte, 0, total)
	for _, it := range sorted {
		key = append(key, it.Key()...)
		key = append(key, ';')
	}
	return string(key)
}

// Contains reports whether an item with the given index is present.
func (b Bundle) Contains(index int) bool {
	for _, it := range b {
		if it.Index() == index {
			return true
		}
	}
	return false
}

// Without returns a copy of b with the item at the given index removed
// (first occurrence only — bundles model a set, but removal by index is
// unambiguous since indices are unique within one instance).
func (b Bundle) Without(index int) Bundle {
	out := make(Bundle, 0, len(b))
	removed := false
	for _, it := range b {
		if !removed && it.Index() == index {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out
}

// With returns a copy of b with it appended.
func (b Bundle) With(it Item) Bundle {
	out := make(Bundle, len(b), len(b)+1)
	copy(out, b)
	return append(out, it)
}

// SubSchedule builds the restricted item set a PMMS check recurses on: the
// union of every item appearing in any of bundles, each rebuilt at a
// capacity equal to its multiplicity across the combined bundles (not its
// original capacity) — the original project-fair sub_schedule's
// resolution for what capacity a shared sub-instance should expose.
// Items are re-indexed 0..n-1 in Sorted (Key-ascending) order; the second
// return value maps an original index to its new index, for translating
// agent valuations onto the sub-schedule.
func SubSchedule(bundles ...Bundle) (Bundle, map[int]int) {
	mult := make(map[string]int)
	byKey := make(map[string]Item)
	for _, bundle := range bundles {
		for _, it := range bundle {
			k := it.Key()
			mult[k]++
			if _, ok := byKey[k]; !ok {
				byKey[k] = it
			}
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Bundle, 0, len(keys))
	remap := make(map[int]int, len(keys))
	for newIdx, k := range keys {
		it := byKey[k]
		remap[it.Index()] = newIdx
		out = append(out, it.WithIndex(newIdx).WithCapacity(mult[k]))
	}

	return out, remap
}
