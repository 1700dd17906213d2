// Package feature defines the typed, finite-domain axes that items are
// described over: a discrete feature (an ordered, duplicate-free list of
// string values, e.g. course section) or a time-slot feature (an ordered
// list of fixed-width ticks, e.g. a 15-minute class meeting grid).
//
// A Feature never carries a value itself — it is the axis, not the point.
// item.Item pairs a []Feature with a same-length []string of chosen values.
package feature
