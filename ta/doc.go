// Package ta defines the pattern timed-automaton data model MONAA matches
// against a timed word: states, transitions, guards and resets.
//
// Overview:
//
//   - State carries an accepting flag and a map from alphabet symbol to the
//     list of outgoing Transitions on that symbol, exactly as
//     core.Graph keeps an adjacency list keyed by vertex ID.
//   - Symbol 0 is reserved for epsilon transitions; Symbol '$' is reserved
//     for the pattern-end marker used by dollar-mode matching.
//   - Automaton owns all states and exposes Clone for the copy-then-remap
//     pattern the KMP-table construction needs.
//
// When to use:
//
//   - Constructing or consuming a pattern automaton handed to package za
//     (zone-automaton construction), package product (intersection) or
//     package match (the online matcher).
//
// Thread safety:
//
//   - An Automaton is built once and never mutated by the matcher; Clone
//     produces an independent deep copy for any caller that needs to modify
//     transitions (accepting-flag rebinding, dummy-state overlays for the
//     KMP skip-table construction).
package ta
