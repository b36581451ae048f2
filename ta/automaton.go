package ta

// Automaton is a timed automaton: a set of States, a subset of InitialStates,
// and a per-clock ceiling (MaxConstraints) used for DBM abstraction.
//
// States are owned by the Automaton and referenced directly by pointer
// (*State) rather than through an arena of integer handles: Go's garbage
// collector removes the dangling-pointer hazard the original's weak_ptr
// graph was built to avoid, so a plain pointer graph — the same shape
// core.Graph uses for *Vertex/*Edge — is the idiomatic choice here.
type Automaton struct {
	States         []*State
	InitialStates  []*State
	MaxConstraints []int
}

// New returns an empty automaton with clockCount clocks, all ceilings zero.
func New(clockCount int) *Automaton {
	return &Automaton{MaxConstraints: make([]int, clockCount)}
}

// ClockSize returns the number of clock variables used by this automaton.
func (a *Automaton) ClockSize() int {
	return len(a.MaxConstraints)
}

// AddState appends a new state to the automaton and returns it.
func (a *Automaton) AddState(accepting bool) *State {
	s := NewState(accepting)
	a.States = append(a.States, s)
	return s
}

// Ceiling returns the largest max-constraint across all clocks, used as the
// single abstraction bound for a zone built from this automaton (see
// package zone). Matches the original's single-Bound Zone.M, set once per
// zone from the owning automaton's maxConstraints.
func (a *Automaton) Ceiling() int {
	m := 0
	for _, c := range a.MaxConstraints {
		if c > m {
			m = c
		}
	}
	return m
}

// Clone returns a deep copy of a, with every transition's Target rewritten to
// point into the copy. Mirrors TimedAutomaton::deepCopy: the KMP skip-table
// construction needs independent automata it can freely rebind (accepting
// flags, dummy overlay states) without mutating the original pattern. The
// matcher itself does not clone the pattern.
func (a *Automaton) Clone() (*Automaton, map[*State]*State) {
	dest := &Automaton{
		MaxConstraints: append([]int(nil), a.MaxConstraints...),
	}
	old2new := make(map[*State]*State, len(a.States))
	dest.States = make([]*State, 0, len(a.States))
	for _, old := range a.States {
		ns := &State{Accepting: old.Accepting, Next: make(map[Alphabet][]Transition, len(old.Next))}
		dest.States = append(dest.States, ns)
		old2new[old] = ns
	}
	for _, old := range a.States {
		ns := old2new[old]
		for c, edges := range old.Next {
			newEdges := make([]Transition, len(edges))
			for i, e := range edges {
				newEdges[i] = Transition{
					Target:    old2new[e.Target],
					Guard:     append([]Constraint(nil), e.Guard...),
					ResetVars: append([]ClockVariable(nil), e.ResetVars...),
				}
			}
			ns.Next[c] = newEdges
		}
	}
	dest.InitialStates = make([]*State, 0, len(a.InitialStates))
	for _, s := range a.InitialStates {
		dest.InitialStates = append(dest.InitialStates, old2new[s])
	}
	return dest, old2new
}

// Validate reports the first contract violation found in a (spec.md section
// 7): no initial states, a transition whose guard or reset references a
// clock index outside [0, ClockSize), or a transition with a nil target.
// match.New calls this before building skip tables, so a malformed pattern
// is rejected with a sentinel error rather than panicking or matching
// nothing silently later on.
func (a *Automaton) Validate() error {
	if len(a.InitialStates) == 0 {
		return ErrNoInitialStates
	}
	clockSize := a.ClockSize()
	for _, s := range a.States {
		for _, edges := range s.Next {
			for _, e := range edges {
				if e.Target == nil {
					return ErrNilState
				}
				for _, g := range e.Guard {
					if int(g.Clock) < 0 || int(g.Clock) >= clockSize {
						return ErrClockOutOfRange
					}
				}
				for _, x := range e.ResetVars {
					if int(x) < 0 || int(x) >= clockSize {
						return ErrClockOutOfRange
					}
				}
			}
		}
	}
	return nil
}

// IsMember solves the membership problem directly, by simulating every
// clock valuation along w. It is not used by the streaming matcher (which
// works symbolically); it exists as a ground-truth oracle for tests, the way
// the original kept TimedAutomaton::isMember "only for testing". It does not
// support epsilon transitions.
func (a *Automaton) IsMember(w []TimedSymbol) bool {
	type config struct {
		s      *State
		clocks []float64
	}
	clockSize := a.ClockSize()
	cur := make([]config, 0, len(a.InitialStates))
	for _, s := range a.InitialStates {
		cur = append(cur, config{s: s, clocks: make([]float64, clockSize)})
	}
	var prevT float64
	for i, ev := range w {
		var elapsed float64
		if i > 0 {
			elapsed = ev.Time - prevT
		} else {
			elapsed = ev.Time
		}
		prevT = ev.Time
		next := make([]config, 0, len(cur))
		for _, cfg := range cur {
			clocks := make([]float64, clockSize)
			for i, v := range cfg.clocks {
				clocks[i] = v + elapsed
			}
			edges, ok := cfg.s.Next[ev.Symbol]
			if !ok {
				continue
			}
			for _, e := range edges {
				if !guardSatisfied(e.Guard, clocks) {
					continue
				}
				if e.Target == nil {
					continue
				}
				nc := append([]float64(nil), clocks...)
				for _, x := range e.ResetVars {
					nc[x] = 0
				}
				next = append(next, config{s: e.Target, clocks: nc})
			}
		}
		cur = next
	}
	for _, cfg := range cur {
		if cfg.s.Accepting {
			return true
		}
	}
	return false
}

func guardSatisfied(guard []Constraint, clocks []float64) bool {
	for _, g := range guard {
		if !g.Satisfy(clocks[g.Clock]) {
			return false
		}
	}
	return true
}

// TimedSymbol is a single (symbol, absolute timestamp) event of a timed word.
type TimedSymbol struct {
	Symbol Alphabet
	Time   float64
}
