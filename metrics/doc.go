// Package metrics scores an allocation matrix for welfare and fairness:
// utilitarian, Nash, and leximin welfare, and three envy-freeness
// relaxations (EF, EF1, EFX) plus pairwise maximin share (PMMS).
//
// Every metric reads agents' valuations over the bundles swap.Matrix
// currently assigns — no metric mutates the allocation. PMMS is the
// exception that does real work: for every pair of agents it rebuilds
// the pair's combined items as a standalone sub-schedule (item.SubSchedule)
// and recursively runs swap.GeneralYankeeSwap on a 2-agent instance over
// it, the same way the original project-fair's pairwise_maximin_share
// bounds a pair's maximin share by re-running Yankee Swap on their
// combined courses.
package metrics
