// Package constraint implements LinearConstraint, a dense integer linear
// inequality A·x <= b over a bundle's indicator vector x, and the builder
// functions that turn domain-level preference/scheduling rules into one.
//
// Builders are grounded on the original project-fair constraint module:
// PreferenceConstraint limits how many items from a named group may be
// taken together, CourseTimeConstraint forbids two items occupying the
// same time slot, and CourseSectionConstraint forbids taking more than one
// section of the same course.
package constraint
