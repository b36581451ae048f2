package stream

import "github.com/monaa-go/monaa/ta"

// SliceReader is an in-memory Reader over a fixed, already-known slice of
// events — the matcher's Reader contract without any actual lazy decoding,
// for tests and small inputs.
type SliceReader struct {
	events []ta.TimedSymbol
	front  int
}

// NewSliceReader returns a Reader over a fixed slice of events.
func NewSliceReader(events []ta.TimedSymbol) *SliceReader {
	return &SliceReader{events: events}
}

// Fetch reports whether index n is within bounds.
func (s *SliceReader) Fetch(n int) bool {
	return n >= 0 && n < len(s.events)
}

// At returns the event at index n.
func (s *SliceReader) At(n int) ta.TimedSymbol {
	return s.events[n]
}

// SetFront records the discard boundary; panics on a backward move.
func (s *SliceReader) SetFront(n int) {
	if n < s.front {
		panic(ErrSetFrontBackwards.Error())
	}
	s.front = n
}

// Size returns the total number of events, which is always known upfront.
func (s *SliceReader) Size() int {
	return len(s.events)
}
