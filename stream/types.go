package stream

import "github.com/monaa-go/monaa/ta"

// SizeUnknown is the Size() sentinel a Reader returns when its total length
// is not known upfront (the common case for a live stream).
const SizeUnknown = -1

// Reader is the matcher's view of a timed word: lazy, windowed access with a
// discardable prefix. Fetch(n) must return true before At(n) is called for
// that index; SetFront(n) transfers exclusive ownership of the prefix
// [0,n) back to the Reader, which may release it, and must be called with a
// monotonically nondecreasing n (see ErrSetFrontBackwards).
type Reader interface {
	Fetch(n int) bool
	At(n int) ta.TimedSymbol
	SetFront(n int)
	Size() int
}

// Decoder produces one timed-word event at a time, returning io.EOF when
// the underlying source is exhausted.
type Decoder interface {
	Next() (ta.TimedSymbol, error)
}
