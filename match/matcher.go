package match

import (
	"github.com/monaa-go/monaa/sink"
	"github.com/monaa-go/monaa/skip"
	"github.com/monaa-go/monaa/stream"
	"github.com/monaa-go/monaa/ta"
	"github.com/monaa-go/monaa/zone"
)

// AcceptMode selects which transitions count as entering an accepting
// state, unifying monaa.hh's three near-identical functions into one
// engine.
type AcceptMode int

const (
	// EndSymbol requires a transition into an accepting state to be
	// labelled with the reserved end marker ta.Dollar; transitions on the
	// real stream symbol never trigger acceptance. Mirrors monaaDollar.
	EndSymbol AcceptMode = iota
	// EndOfStream probes acceptance only on the real stream symbol;
	// ta.Dollar is never consulted. Mirrors monaa (signal matching).
	EndOfStream
	// Either probes both the real stream symbol and ta.Dollar. Mirrors
	// monaaNotNecessaryDollar.
	Either
)

// scratchHeadroom is how many DBM slots beyond one-per-clock a matching
// attempt preallocates. Two of them are the permanent Begin and End slots;
// the rest hold in-flight epsilon/advance scratch clocks.
const scratchHeadroom = 4

// Matcher runs the timed FJS algorithm for one pattern automaton.
type Matcher struct {
	a      *ta.Automaton
	sunday *skip.Sunday
	kmp    *skip.KMP
	mode   AcceptMode
}

// New precomputes the skip tables for a and returns a ready Matcher.
// a.Validate's error propagates if the pattern is malformed (spec.md
// section 7); ErrEmptyPattern (via skip.BuildSunday) propagates if a
// accepts no word.
func New(a *ta.Automaton, mode AcceptMode) (*Matcher, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	sunday, err := skip.BuildSunday(a)
	if err != nil {
		return nil, err
	}
	kmp := skip.BuildKMP(a, sunday.M)
	return &Matcher{a: a, sunday: sunday, kmp: kmp, mode: mode}, nil
}

// config is one live matching attempt at some point in the inner loop: its
// current pattern state, each pattern clock's last reset time, and the DBM
// tracking the attempt's Begin slot plus any still-referenced scratch
// clocks.
type config struct {
	state      *ta.State
	resetTimes []zone.ResetTime
	z          *zone.IntermediateZone
}

func (cfg config) clone() config {
	return config{
		state:      cfg.state,
		resetTimes: append([]zone.ResetTime(nil), cfg.resetTimes...),
		z:          cfg.z.Clone(),
	}
}

func windowBound(hasPrev bool, prevTime float64) zone.Bound {
	if !hasPrev {
		return zone.NonStrictBound(0)
	}
	return zone.Strict(prevTime)
}

// Run drives one streaming match attempt over r to completion, pushing
// every accepted window's answer zone to out.
func (m *Matcher) Run(r stream.Reader, out sink.Sink) {
	i := 0
	mLen := m.sunday.M
	for r.Fetch(i + mLen - 1) {
		if mLen > 1 {
			for !m.sunday.EndChars[r.At(i+mLen-1).Symbol] {
				if !r.Fetch(i + mLen) {
					return
				}
				i += m.sunday.Shift(r.At(i + mLen).Symbol)
				r.SetFront(i - 1)
				if !r.Fetch(i + mLen - 1) {
					return
				}
			}
		}
		if !r.Fetch(i) {
			return
		}

		// The initial Begin window is the opposite shape from every
		// End/epsilon window below: closed on the left (a match may
		// begin exactly at the previous outer position, or at 0), open
		// on the right (it may not begin at or after the current
		// event), matching monaa.hh's istate/InternalState construction
		// rather than windowBound's (prev,cur] convention.
		beginLower := zone.NonStrictBound(valueAt(r, i-1))
		beginUpper := zone.Strict(r.At(i).Time)

		var cur []config
		for _, init := range m.a.InitialStates {
			iz := zone.NewIntermediateZone(m.a.ClockSize() + scratchHeadroom)
			iz.Rebind(iz.Begin(), beginLower, beginUpper)
			// Every pattern clock starts out as if freshly reset at the
			// window's begin instant.
			resetTimes := make([]zone.ResetTime, m.a.ClockSize())
			for x := range resetTimes {
				resetTimes[x] = zone.AtSlot(iz.Begin())
			}
			cur = append(cur, config{
				state:      init,
				resetTimes: resetTimes,
				z:          iz,
			})
		}
		last := cur

		j := i
		for len(cur) > 0 && r.Fetch(j) {
			cur = m.closeEpsilon(cur, windowBound(j > 0, valueAt(r, j-1)), zone.NonStrictBound(r.At(j).Time))

			c := r.At(j).Symbol
			t := r.At(j).Time
			endLower := windowBound(j > 0, valueAt(r, j-1))
			endUpper := zone.NonStrictBound(t)

			if m.mode != EndSymbol {
				m.probe(cur, c, endLower, endUpper, out)
			}
			if m.mode != EndOfStream {
				m.probe(cur, ta.Dollar, endLower, endUpper, out)
			}

			// Snapshot the pre-advance configurations: if advancing leaves
			// no live configuration, these (not the empty result) are the
			// final states the KMP skip value is drawn from. If the stream
			// runs dry instead, the end-of-stream block below replaces them
			// with the configurations left after the last advance.
			last = cur

			var next []config
			for _, cfg := range cur {
				for _, e := range cfg.state.Next[c] {
					if e.Target == nil {
						continue
					}
					if nc, ok := m.advance(cfg, e, t); ok {
						next = append(next, nc)
					}
				}
			}
			cur = next
			j++
		}
		if !r.Fetch(j) {
			if m.mode != EndOfStream {
				endLower := windowBound(j > 0, valueAt(r, j-1))
				m.probe(cur, ta.Dollar, endLower, zone.PosInf, out)
			}
			last = cur
		}

		greatestN := 1
		for _, cfg := range last {
			if n := m.kmp.At(cfg.state); n > greatestN {
				greatestN = n
			}
		}
		i += greatestN
		r.SetFront(i - 1)
	}
}

func valueAt(r stream.Reader, idx int) float64 {
	if idx < 0 {
		return 0
	}
	return r.At(idx).Time
}

// closeEpsilon expands cur with every configuration reachable by zero or
// more epsilon transitions, each crossing a fresh scratch clock bounded to
// (lower, upper] — the same window the next real event will occupy, since
// an epsilon transition may conceptually fire at any instant before it.
func (m *Matcher) closeEpsilon(cur []config, lower, upper zone.Bound) []config {
	out := append([]config(nil), cur...)
	frontier := cur
	for len(frontier) > 0 {
		var next []config
		for _, cfg := range frontier {
			for _, e := range cfg.state.Next[ta.Epsilon] {
				if e.Target == nil {
					continue
				}
				nc := cfg.clone()
				slot, err := nc.z.Alloc(lower, upper)
				if err != nil {
					panic(err)
				}
				if !nc.z.Tighten(e.Guard, nc.resetTimes) {
					continue
				}
				for _, x := range e.ResetVars {
					nc.resetTimes[x] = zone.AtSlot(slot)
				}
				nc.z.Update(nc.resetTimes)
				nc.state = e.Target
				next = append(next, nc)
				out = append(out, nc)
			}
		}
		frontier = next
	}
	return out
}

// probe tries, for every live configuration, every transition on symbol
// labelling an edge into an accepting state, and emits an answer zone for
// every one that remains satisfiable once the candidate end window and the
// edge's guard are applied. The probe never mutates or retains a
// configuration: its DBM clone is discarded either way.
func (m *Matcher) probe(cur []config, symbol ta.Alphabet, lower, upper zone.Bound, out sink.Sink) {
	for _, cfg := range cur {
		for _, e := range cfg.state.Next[symbol] {
			if e.Target == nil || !e.Target.Accepting {
				continue
			}
			tmp := cfg.z.Clone()
			tmp.Rebind(tmp.End(), lower, upper)
			tmp.UseAsNewest(tmp.End())
			if !tmp.Tighten(e.Guard, cfg.resetTimes) {
				continue
			}
			out.Push(sink.AnswerZone{Zone: tmp.ToAns()})
		}
	}
}

// advance applies a non-epsilon, non-probe transition: a fresh scratch
// clock pinned to the single instant t (the edge fires exactly when t is
// observed), guard-checked against it, with any reset clocks now symbolic
// references to that instant.
func (m *Matcher) advance(cfg config, e ta.Transition, t float64) (config, bool) {
	nc := cfg.clone()
	slot, err := nc.z.Alloc(zone.NonStrictBound(t), zone.NonStrictBound(t))
	if err != nil {
		panic(err)
	}
	if !nc.z.Tighten(e.Guard, nc.resetTimes) {
		return config{}, false
	}
	for _, x := range e.ResetVars {
		nc.resetTimes[x] = zone.AtSlot(slot)
	}
	nc.z.Update(nc.resetTimes)
	nc.state = e.Target
	return nc, true
}
