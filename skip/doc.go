// Package skip computes the two window-advance heuristics the matcher uses
// to avoid re-examining every stream position: the Sunday shift table
// (spec.md section 4.6) and the KMP-style skip value function (spec.md
// section 4.7), both derived from the pattern's zone automaton.
//
// Grounded on sunday_skip_value.hh and kmp_skip_value.hh, and shaped, as a
// layered frontier-expansion with sentinel errors and a small value type,
// the way dijkstra.go walks a graph outward by increasing distance.
package skip
