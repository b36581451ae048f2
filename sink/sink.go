package sink

import (
	"bufio"
	"fmt"
	"io"

	"github.com/monaa-go/monaa/interval"
	"github.com/monaa-go/monaa/zone"
)

// AnswerZone wraps the fixed 3x3 DBM a matched window collapses to: variable
// 1 is the window's begin time, variable 2 its end time, and their
// difference is the match's duration. Produced by zone.IntermediateZone.ToAns.
type AnswerZone struct {
	Zone *zone.Matrix
}

// Begin returns the interval of possible begin times.
func (a AnswerZone) Begin() interval.Interval {
	return interval.Interval{Lower: a.Zone.At(0, 1).Neg(), Upper: a.Zone.At(1, 0)}
}

// End returns the interval of possible end times.
func (a AnswerZone) End() interval.Interval {
	return interval.Interval{Lower: a.Zone.At(0, 2).Neg(), Upper: a.Zone.At(2, 0)}
}

// Delta returns the interval of possible match durations (end - begin).
func (a AnswerZone) Delta() interval.Interval {
	return interval.Interval{Lower: a.Zone.At(1, 2).Neg(), Upper: a.Zone.At(2, 1)}
}

// Sink is the push-back interface every match destination implements,
// mirroring AnsContainer's size/push_back/clear/reserve contract.
type Sink interface {
	Push(z AnswerZone)
	Clear()
	Size() int
	Reserve(n int)
}

// VectorSink accumulates every answer zone in memory, mirroring AnsVec.
type VectorSink struct {
	zones []AnswerZone
}

// NewVectorSink returns an empty in-memory sink.
func NewVectorSink() *VectorSink {
	return &VectorSink{}
}

func (v *VectorSink) Push(z AnswerZone) { v.zones = append(v.zones, z) }
func (v *VectorSink) Clear()            { v.zones = v.zones[:0] }
func (v *VectorSink) Size() int         { return len(v.zones) }

func (v *VectorSink) Reserve(n int) {
	if cap(v.zones) >= n {
		return
	}
	grown := make([]AnswerZone, len(v.zones), n)
	copy(grown, v.zones)
	v.zones = grown
}

// Zones returns the accumulated answer zones in push order.
func (v *VectorSink) Zones() []AnswerZone {
	return v.zones
}

// CountingSink discards every answer zone and keeps only a running count,
// mirroring IntContainer/AnsNum for callers that only need the match count.
type CountingSink struct {
	count int
}

// NewCountingSink returns a sink that only counts pushes.
func NewCountingSink() *CountingSink {
	return &CountingSink{}
}

func (c *CountingSink) Push(AnswerZone) { c.count++ }
func (c *CountingSink) Clear()          { c.count = 0 }
func (c *CountingSink) Size() int       { return c.count }
func (c *CountingSink) Reserve(int)     {}

// PrintSink streams each answer zone to w as three inequalities describing
// the begin, end, and delta intervals, mirroring PrintContainer. When quiet
// is set, pushes are only counted and nothing is ever written.
type PrintSink struct {
	w     *bufio.Writer
	quiet bool
	count int
}

// NewPrintSink returns a sink that writes to w as zones are pushed.
func NewPrintSink(w io.Writer, quiet bool) *PrintSink {
	return &PrintSink{w: bufio.NewWriter(w), quiet: quiet}
}

func (p *PrintSink) Push(z AnswerZone) {
	p.count++
	if p.quiet {
		return
	}
	begin, end, delta := z.Begin(), z.End(), z.Delta()
	fmt.Fprintf(p.w, "%s <= begin <= %s\n", boundString(begin.Lower, false), boundString(begin.Upper, true))
	fmt.Fprintf(p.w, "%s <= end <= %s\n", boundString(end.Lower, false), boundString(end.Upper, true))
	fmt.Fprintf(p.w, "%s <= delta <= %s\n", boundString(delta.Lower, false), boundString(delta.Upper, true))
	p.w.Flush()
}

func (p *PrintSink) Clear()      { p.count = 0 }
func (p *PrintSink) Size() int   { return p.count }
func (p *PrintSink) Reserve(int) {}

// boundString renders a zone.Bound as a plain decimal, or the appropriate
// infinity symbol when unbounded. isUpper selects +Inf vs -Inf for an
// infinite bound (a lower bound is never +Inf in a satisfiable zone, but an
// upper bound can legitimately be +Inf).
func boundString(b zone.Bound, isUpper bool) string {
	if b.IsInf() {
		if isUpper {
			return "inf"
		}
		return "-inf"
	}
	return fmt.Sprintf("%g", b.Value)
}
