// Package za builds the zone automaton (ZA) of a pattern timed automaton: a
// finite automaton whose states pair a ta.State with a reachable zone.Matrix,
// closed under elapse/guard/reset/abstractize/canonize and folded by zone
// subsumption so the BFS construction terminates.
//
// Grounded on zone_automaton.hh and abstract_nfa.hh for the construction and
// emptiness check, shaped as a BFS worklist the way bfs.BFS walks a
// core.Graph with a visited set and frontier queue.
package za
