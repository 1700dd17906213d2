// Package item defines Item, a feature-value tuple with a stable index
// and a capacity (how many agents may simultaneously hold a unit of it),
// plus Bundle, an ordered collection of items an agent might be allocated.
//
// Bundle also provides SubSchedule, the construction PMMS metrics use to
// build the restricted two-agent instance a pairwise envy check recurses
// into.
package item
