// Package agent wraps a valuation with a preference order, exposing the
// marginal- and exchange-contribution queries the swap package's General
// Yankee Swap loop runs its gain-vector criteria over.
package agent
