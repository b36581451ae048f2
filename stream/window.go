package stream

import (
	"io"
	"sync"

	"github.com/monaa-go/monaa/ta"
)

// WindowReader is the lazy, windowed Reader backed by a Decoder: it pulls
// events on demand and only ever holds the suffix from the most recent
// SetFront call onward.
//
// mu guards buf/offset/exhausted, so a producer goroutine decoding ahead
// and a matcher goroutine calling Fetch/At/SetFront concurrently (spec.md
// section 5) see a consistent window, the same single-lock-per-related-
// fields discipline core.Graph uses for its adjacency state.
type WindowReader struct {
	dec Decoder

	mu        sync.RWMutex
	buf       []ta.TimedSymbol // buf[i] holds the event at absolute index offset+i
	offset    int
	exhausted bool
}

// NewWindowReader returns a Reader that decodes events from dec on demand.
func NewWindowReader(dec Decoder) *WindowReader {
	return &WindowReader{dec: dec}
}

// Fetch ensures index n is readable, pulling from dec as needed. Returns
// false at end of stream.
func (w *WindowReader) Fetch(n int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for n-w.offset >= len(w.buf) {
		if w.exhausted {
			return false
		}
		ev, err := w.dec.Next()
		if err != nil {
			w.exhausted = true
			if err != io.EOF {
				panic(err)
			}
			return false
		}
		w.buf = append(w.buf, ev)
	}
	return true
}

// At returns the event at index n. Precondition: Fetch(n) most recently
// returned true.
func (w *WindowReader) At(n int) ta.TimedSymbol {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.buf[n-w.offset]
}

// SetFront discards the prefix strictly below n, releasing it for garbage
// collection. Panics if n is smaller than a previous SetFront argument.
func (w *WindowReader) SetFront(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if n < w.offset {
		panic(ErrSetFrontBackwards.Error())
	}
	cut := n - w.offset
	if cut > len(w.buf) {
		cut = len(w.buf)
	}
	w.buf = w.buf[cut:]
	w.offset = n
}

// Size always reports SizeUnknown: a live decoder does not know its total
// length in advance.
func (w *WindowReader) Size() int {
	return SizeUnknown
}
