// Package stream implements the matcher's windowed view of a timed word
// (spec.md section 6's stream container contract): fetch/at/setFront/size
// over a lazily-decoded sequence of (symbol, timestamp) events, plus the
// ASCII and binary timed-word record decoders.
//
// WindowReader is safe for concurrent use: a producer goroutine decoding
// ahead and a matcher goroutine calling Fetch/At/SetFront (spec.md section
// 5) are guarded by an internal sync.RWMutex.
//
// Grounded on builder's validate-then-construct discipline (fast-fail
// panics on contract violations, sentinel errors for recoverable ones) and
// lazy_deque.hh for the discardable-prefix buffering shape.
package stream
