package item_test

import (
	"errors"
	"testing"

	"github.com/fairsched/allocate/feature"
	"github.com/fairsched/allocate/item"
)

func mustFeature(t *testing.T, name string, domain []string) feature.Feature {
	t.Helper()
	f, err := feature.NewFeature(name, domain)
	if err != nil {
		t.Fatalf("NewFeature(%s): unexpected error: %v", name, err)
	}
	return f
}

func TestNewItemValidatesCardinality(t *testing.T) {
	section := mustFeature(t, "section", []string{"A", "B"})
	_, err := item.NewItem("CS101", []feature.Feature{section}, []string{"A", "extra"}, 0, 1)
	if err == nil {
		t.Fatalf("NewItem: want error for mismatched values")
	}
	var fe feature.FeatureError
	if !errors.As(err, &fe) {
		t.Fatalf("NewItem: want FeatureError, got %v", err)
	}
}

func TestNewItemValidatesDomain(t *testing.T) {
	section := mustFeature(t, "section", []string{"A", "B"})
	_, err := item.NewItem("CS101", []feature.Feature{section}, []string{"Z"}, 0, 1)
	if !errors.Is(err, feature.ErrDomainViolation) {
		t.Fatalf("NewItem: want ErrDomainViolation, got %v", err)
	}
}

func TestItemValueLookup(t *testing.T) {
	section := mustFeature(t, "section", []string{"A", "B"})
	it, err := item.NewItem("CS101", []feature.Feature{section}, []string{"A"}, 3, 2)
	if err != nil {
		t.Fatalf("NewItem: unexpected error: %v", err)
	}
	v, ok := it.Value("section")
	if !ok || v != "A" {
		t.Fatalf("Value(section): got (%q,%v) want (A,true)", v, ok)
	}
	if _, ok := it.Value("missing"); ok {
		t.Fatalf("Value(missing): want ok=false")
	}
	if it.Index() != 3 || it.Capacity() != 2 {
		t.Fatalf("Index/Capacity: got (%d,%d) want (3,2)", it.Index(), it.Capacity())
	}
}

func TestItemKeyOrdersConsistently(t *testing.T) {
	section := mustFeature(t, "section", []string{"A", "B"})
	a, _ := item.NewItem("CS101", []feature.Feature{section}, []string{"A"}, 0, 1)
	b, _ := item.NewItem("CS101", []feature.Feature{section}, []string{"B"}, 1, 1)
	if !a.Less(b) {
		t.Fatalf("Less: want a<b by Key")
	}
}
