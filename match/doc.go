// Package match implements the online timed-pattern matcher: an outer
// Sunday-shift loop over the window start, and an inner loop that advances
// a set of symbolic configurations (state, reset times, DBM) one stream
// event at a time, probing for acceptance before every advancing step.
//
// Grounded on dtw/dtw.go for the windowed two-pointer loop shape and
// graph/bfs.go for the current/next frontier-vector pattern; the guard and
// acceptance logic itself follows monaa.hh's three matching variants,
// unified here into one engine parameterized by AcceptMode.
package match
