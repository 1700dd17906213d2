package feature_test

import (
	"errors"
	"testing"

	"github.com/fairsched/allocate/feature"
)

func mustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got=%d want=%d", op, got, want)
	}
}

func TestNewFeatureRejectsDuplicates(t *testing.T) {
	_, err := feature.NewFeature("section", []string{"A", "B", "A"})
	if !errors.Is(err, feature.ErrDomainViolation) {
		t.Fatalf("NewFeature duplicates: want ErrDomainViolation, got %v", err)
	}
}

func TestFeatureIndexOfAndContains(t *testing.T) {
	f, err := feature.NewFeature("section", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("NewFeature: unexpected error: %v", err)
	}
	mustEqualInt(t, f.IndexOf("B"), 1, "IndexOf(B)")
	mustEqualInt(t, f.IndexOf("Z"), -1, "IndexOf(Z)")
	if !f.Contains("C") {
		t.Fatalf("Contains(C): want true")
	}
	if f.Contains("Z") {
		t.Fatalf("Contains(Z): want false")
	}
}

func TestFeatureValidate(t *testing.T) {
	f, _ := feature.NewFeature("section", []string{"A", "B"})
	if err := f.Validate("A"); err != nil {
		t.Fatalf("Validate(A): unexpected error: %v", err)
	}
	err := f.Validate("Z")
	if !errors.Is(err, feature.ErrDomainViolation) {
		t.Fatalf("Validate(Z): want ErrDomainViolation, got %v", err)
	}
	var de feature.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("Validate(Z): want errors.As DomainError, got %v", err)
	}
	if de.Feature != "section" || de.Value != "Z" {
		t.Fatalf("DomainError: got %+v", de)
	}
}

func TestFeatureDomainIsACopy(t *testing.T) {
	f, _ := feature.NewFeature("section", []string{"A", "B"})
	d := f.Domain()
	d[0] = "mutated"
	if f.IndexOf("A") != 0 {
		t.Fatalf("Domain() copy leaked into Feature's internal domain")
	}
}
