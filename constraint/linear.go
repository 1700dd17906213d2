package constraint

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fairsched/allocate/item"
)

// Constraint is anything that can present itself as a LinearConstraint.
// LinearConstraint itself satisfies Constraint trivially; builder
// functions return a LinearConstraint directly, which is always usable
// wherever a Constraint is accepted.
type Constraint interface {
	AsLinearConstraint() LinearConstraint
}

// LinearConstraint represents the inequality A·x <= b over a bundle's
// indicator vector x, where x[j] is the number of units of item j present
// in the bundle. A is stored dense: small course-allocation instances
// never justify a sparse representation, and pruning (below) keeps A
// itself small.
type LinearConstraint struct {
	a      [][]int64
	b      []int64
	extent int
}

// NewLinearConstraint validates that every row of a has width extent and
// that a and b have matching row counts, then builds the LinearConstraint.
func NewLinearConstraint(a [][]int64, b []int64, extent int) (LinearConstraint, error) {
	if len(a) != len(b) {
		return LinearConstraint{}, ShapeError{Op: "NewLinearConstraint", Expected: len(b), Got: len(a)}
	}
	for i, row := range a {
		if len(row) != extent {
			return LinearConstraint{}, ShapeError{Op: "NewLinearConstraint: row " + strconv.Itoa(i), Expected: extent, Got: len(row)}
		}
	}

	aCopy := make([][]int64, len(a))
	for i, row := range a {
		aCopy[i] = append([]int64(nil), row...)
	}
	bCopy := append([]int64(nil), b...)

	return LinearConstraint{a: aCopy, b: bCopy, extent: extent}, nil
}

// AsLinearConstraint implements Constraint.
func (c LinearConstraint) AsLinearConstraint() LinearConstraint { return c }

// Extent returns the number of columns (items) this constraint is defined
// over.
func (c LinearConstraint) Extent() int { return c.extent }

// Rows returns the number of inequality rows.
func (c LinearConstraint) Rows() int { return len(c.a) }

// Matrix returns defensive copies of A and b, for callers (the ilp
// bridge) that need the raw coefficients rather than a satisfies/prune
// query.
func (c LinearConstraint) Matrix() ([][]int64, []int64) {
	a := make([][]int64, len(c.a))
	for i, row := range c.a {
		a[i] = append([]int64(nil), row...)
	}
	b := append([]int64(nil), c.b...)
	return a, b
}

// Indicator builds the bundle's indicator vector x over this constraint's
// extent: x[j] is the number of units of item j present in bundle.
// Item indices outside [0, Extent()) are ignored — constraints restricted
// to a sub-schedule (PMMS) only ever see items within their own extent.
func (c LinearConstraint) Indicator(bundle item.Bundle) []int64 {
	x := make([]int64, c.extent)
	for _, it := range bundle {
		idx := it.Index()
		if idx >= 0 && idx < c.extent {
			x[idx]++
		}
	}
	return x
}

// Satisfies reports whether A·x <= b holds for bundle's indicator vector.
func (c LinearConstraint) Satisfies(bundle item.Bundle) bool {
	x := c.Indicator(bundle)
	for i, row := range c.a {
		var sum int64
		for j, coeff := range row {
			sum += coeff * x[j]
		}
		if sum > c.b[i] {
			return false
		}
	}
	return true
}

// ConstrainedItems returns, in ascending order, the column indices that
// appear with a non-zero coefficient in at least one row.
func (c LinearConstraint) ConstrainedItems() []int {
	seen := make(map[int]struct{})
	for _, row := range c.a {
		for j, coeff := range row {
			if coeff != 0 {
				seen[j] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(seen))
	for j := range seen {
		out = append(out, j)
	}
	sort.Ints(out)
	return out
}

// Prune drops rows that are either all-zero (trivially satisfied whenever
// b >= 0) or exact duplicates of an earlier row, keeping the constraint's
// matrix small after repeated Add-stacking.
func (c LinearConstraint) Prune() LinearConstraint {
	seen := make(map[string]struct{}, len(c.a))
	var a [][]int64
	var b []int64
	for i, row := range c.a {
		allZero := true
		for _, coeff := range row {
			if coeff != 0 {
				allZero = false
				break
			}
		}
		if allZero && c.b[i] >= 0 {
			continue
		}
		key := rowKey(row, c.b[i])
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		a = append(a, append([]int64(nil), row...))
		b = append(b, c.b[i])
	}
	return LinearConstraint{a: a, b: b, extent: c.extent}
}

func rowKey(row []int64, b int64) string {
	var sb strings.Builder
	for _, v := range row {
		sb.WriteString(strconv.FormatInt(v, 10))
		sb.WriteByte(',')
	}
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatInt(b, 10))
	return sb.String()
}

// Add stacks other's rows beneath c's, vertically concatenating A and b.
// Both constraints must share the same extent, else ErrShapeMismatch.
func (c LinearConstraint) Add(other LinearConstraint) (LinearConstraint, error) {
	if c.extent != other.extent {
		return LinearConstraint{}, ShapeError{Op: "Add", Expected: c.extent, Got: other.extent}
	}
	a := make([][]int64, 0, len(c.a)+len(other.a))
	for _, row := range c.a {
		a = append(a, append([]int64(nil), row...))
	}
	for _, row := range other.a {
		a = append(a, append([]int64(nil), row...))
	}
	b := make([]int64, 0, len(c.b)+len(other.b))
	b = append(b, c.b...)
	b = append(b, other.b...)

	return LinearConstraint{a: a, b: b, extent: c.extent}, nil
}

// Stack combines a list of constraints sharing the same extent into one,
// pruning trivial/duplicate rows at the end. It is the building block
// valuation.Compile uses to fold an agent's full constraint set into the
// single LinearConstraint its independence oracle evaluates against.
func Stack(constraints ...Constraint) (LinearConstraint, error) {
	if len(constraints) == 0 {
		return LinearConstraint{}, nil
	}
	acc := constraints[0].AsLinearConstraint()
	for _, c := range constraints[1:] {
		var err error
		acc, err = acc.Add(c.AsLinearConstraint())
		if err != nil {
			return LinearConstraint{}, err
		}
	}
	return acc.Prune(), nil
}
