package item_test

import (
	"testing"

	"github.com/fairsched/allocate/feature"
	"github.com/fairsched/allocate/item"
)

func mustItem(t *testing.T, name, value string, index, capacity int) item.Item {
	t.Helper()
	section := mustFeature(t, "section", []string{"A", "B", "C"})
	it, err := item.NewItem(name, []feature.Feature{section}, []string{value}, index, capacity)
	if err != nil {
		t.Fatalf("NewItem: unexpected error: %v", err)
	}
	return it
}

func TestBundleKeyIsOrderIndependent(t *testing.T) {
	a := mustItem(t, "CS101", "A", 0, 1)
	b := mustItem(t, "CS101", "B", 1, 1)

	k1 := item.Bundle{a, b}.Key()
	k2 := item.Bundle{b, a}.Key()
	if k1 != k2 {
		t.Fatalf("Bundle.Key: want order independence, got %q vs %q", k1, k2)
	}
}

func TestBundleWithoutRemovesFirstMatch(t *testing.T) {
	a := mustItem(t, "CS101", "A", 0, 1)
	b := mustItem(t, "CS101", "B", 1, 1)
	bundle := item.Bundle{a, b}

	out := bundle.Without(0)
	if len(out) != 1 || out[0].Index() != 1 {
		t.Fatalf("Without(0): got %+v", out)
	}
}

func TestSubScheduleCapacityIsMultiplicity(t *testing.T) {
	shared := mustItem(t, "CS101", "A", 0, 1)
	other := mustItem(t, "CS102", "B", 1, 1)

	agent1 := item.Bundle{shared, other}
	agent2 := item.Bundle{shared}

	sub, remap := item.SubSchedule(agent1, agent2)

	var got item.Item
	found := false
	for _, it := range sub {
		if it.Name() == "CS101" {
			got = it
			found = true
		}
	}
	if !found {
		t.Fatalf("SubSchedule: missing shared item")
	}
	if got.Capacity() != 2 {
		t.Fatalf("SubSchedule: shared item capacity = %d, want 2 (multiplicity)", got.Capacity())
	}
	if len(sub) != 2 {
		t.Fatalf("SubSchedule: len(sub) = %d, want 2", len(sub))
	}
	if _, ok := remap[0]; !ok {
		t.Fatalf("SubSchedule: remap missing original index 0")
	}
}
