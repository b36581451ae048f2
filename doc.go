// Package monaa is a streaming, online timed-pattern matching engine: given
// a timed-automaton pattern and a timed word arriving as an unbounded
// stream of (symbol, timestamp) events, it reports every sub-interval of
// the stream whose restriction is accepted by the pattern, expressed as a
// zone (a range, not a point) over begin time, end time, and duration.
//
// The engine is organized as a pipeline of subpackages, each owning one
// concern:
//
//	zone/     — difference bound matrices (DBMs) and the dynamic-slot
//	            IntermediateZone used by the online matcher
//	interval/ — interval algebra (intersection, sum, Kleene-plus closure)
//	ta/       — the pattern timed-automaton data model
//	za/       — timed-automaton to zone-automaton conversion
//	product/  — synchronous/asynchronous product of two automata
//	skip/     — Sunday and KMP skip-value tables for the outer match loop
//	stream/   — lazy, windowed access to a timed word (ASCII/binary decoders)
//	sink/     — the answer sink matched zones are pushed to
//	match/    — the matcher itself: outer Sunday-shift loop, inner
//	            epsilon-closure/probe/advance loop
//
// See SPEC_FULL.md for the full specification and DESIGN.md for how each
// package is grounded.
package monaa
