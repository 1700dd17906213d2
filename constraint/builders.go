package constraint

import "fmt"

// groupConstraint builds one row per group: the sum of indicator entries
// for the items in group must not exceed that group's entry in limits.
// All three named builders below are this same shape — "at most
// `limits[k]` items from group k" — grounded on the original
// project-fair constraint module, which derives PreferenceConstraint,
// CourseTimeConstraint, and CourseSectionConstraint from the same
// row-per-group pattern.
func groupConstraint(groups [][]int, limits []int64, extent int) (LinearConstraint, error) {
	if len(limits) != len(groups) {
		return LinearConstraint{}, fmt.Errorf("constraint: groupConstraint: %d groups but %d limits", len(groups), len(limits))
	}
	a := make([][]int64, 0, len(groups))
	b := make([]int64, 0, len(groups))
	for k, group := range groups {
		row := make([]int64, extent)
		for _, idx := range group {
			if idx >= 0 && idx < extent {
				row[idx] = 1
			}
		}
		a = append(a, row)
		b = append(b, limits[k])
	}
	return NewLinearConstraint(a, b, extent)
}

func uniformLimits(n int, limit int64) []int64 {
	limits := make([]int64, n)
	for i := range limits {
		limits[i] = limit
	}
	return limits
}

// PreferenceConstraint limits how many items an agent may take from each
// named preference category: groups[k] lists the item indices belonging
// to category k, and limits[k] is that category's cap (e.g. "at most 2
// electives from the humanities list, at most 1 from languages"),
// mirroring PreferenceConstraint.from_item_lists, which takes one limit
// per category rather than a single shared one.
func PreferenceConstraint(groups [][]int, limits []int64, extent int) (LinearConstraint, error) {
	return groupConstraint(groups, limits, extent)
}

// CourseTimeConstraint forbids holding more than one item from each group
// of mutually-exclusive time slots, mirroring
// CourseTimeConstraint.mutually_exclusive_slots. slotGroups is typically
// built by collecting every item index sharing a given time-slot feature
// value.
func CourseTimeConstraint(slotGroups [][]int, extent int) (LinearConstraint, error) {
	return groupConstraint(slotGroups, uniformLimits(len(slotGroups), 1), extent)
}

// CourseSectionConstraint forbids holding more than one section of the
// same course, mirroring CourseSectionConstraint.one_section_per_course —
// the spec's MutualExclusivityConstraint. sectionGroups groups together
// the item indices of every section of a single course.
func CourseSectionConstraint(sectionGroups [][]int, extent int) (LinearConstraint, error) {
	return groupConstraint(sectionGroups, uniformLimits(len(sectionGroups), 1), extent)
}

// MutualExclusivityConstraint is an alias for CourseSectionConstraint,
// named after the spec's component of the same name.
func MutualExclusivityConstraint(sectionGroups [][]int, extent int) (LinearConstraint, error) {
	return CourseSectionConstraint(sectionGroups, extent)
}
