// Package product builds the product (intersection) of two pattern timed
// automata: a state for every pair (s1, s2), with clock indices of the
// second automaton shifted by the first automaton's clock count.
//
// Grounded on intersection.cc's intersectionTA/intersectionSignalTA (the
// synchronous/epsilon/asynchronous transition rules and the clock/guard
// re-indexing) and shaped, as a two-structure joint exploration keyed by a
// pair type, the way flow/edmonds_karp.go encodes residual-graph state as a
// pair index.
package product
