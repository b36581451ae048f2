package stream

import "errors"

// ErrMalformedRecord is returned by a Decoder when a record cannot be
// parsed into a (symbol, timestamp) pair. Per spec.md section 7's error
// taxonomy this terminates the run with a diagnostic; it is not absorbed
// the way a per-configuration matcher failure is.
var ErrMalformedRecord = errors.New("stream: malformed timed-word record")

// ErrSetFrontBackwards is the contract-violation message SetFront panics
// with when called with an argument smaller than the most recent one: the
// matcher must never ask the container to un-discard prefix it already
// released.
var ErrSetFrontBackwards = errors.New("stream: setFront called with a smaller index than before")
