package product

import "github.com/monaa-go/monaa/ta"

// Pair identifies a product state by its two source states.
type Pair struct {
	S1 *ta.State
	S2 *ta.State
}

// Result is a built product automaton together with the (s1,s2)->state
// mapping used to rebind it after either factor changes, via
// UpdateInitAccepting, without rebuilding the state set.
type Result struct {
	Automaton *ta.Automaton
	Pairs     map[Pair]*ta.State
}

// Build constructs the synchronous product of a and b: a state for every
// pair (s1, s2), with a transition added when (i) both sides have a
// transition on the same non-epsilon symbol (synchronous), or (ii) one side
// has an epsilon transition and the other state holds still. Clock indices
// from b are shifted by a.ClockSize().
func Build(a, b *ta.Automaton) *Result {
	return build(a, b, false)
}

// Signal additionally adds an asynchronous transition for a symbol that
// labels an outgoing edge of s1 and also labels some outgoing edge of s2:
// either side may advance alone, exposed as an epsilon move of the product.
// Only symbols that label edges on both sides produce asynchronous
// transitions; a symbol that labels an edge of only s1 or only s2 produces
// none.
func Signal(a, b *ta.Automaton) *Result {
	return build(a, b, true)
}

func build(a, b *ta.Automaton, async bool) *Result {
	clockShift := a.ClockSize()
	out := ta.New(clockShift + b.ClockSize())
	copy(out.MaxConstraints, a.MaxConstraints)
	copy(out.MaxConstraints[clockShift:], b.MaxConstraints)

	pairs := make(map[Pair]*ta.State, len(a.States)*len(b.States))
	state := func(s1, s2 *ta.State) *ta.State {
		p := Pair{s1, s2}
		if st, ok := pairs[p]; ok {
			return st
		}
		st := out.AddState(s1.Accepting && s2.Accepting)
		pairs[p] = st
		return st
	}

	for _, s1 := range a.States {
		for _, s2 := range b.States {
			cur := state(s1, s2)

			for symbol, edges1 := range s1.Next {
				if symbol == ta.Epsilon {
					continue
				}
				edges2, ok := s2.Next[symbol]
				if !ok {
					continue
				}
				for _, e1 := range edges1 {
					if e1.Target == nil {
						continue
					}
					for _, e2 := range edges2 {
						if e2.Target == nil {
							continue
						}
						target := state(e1.Target, e2.Target)
						cur.AddTransition(symbol, ta.Transition{
							Target:    target,
							Guard:     concatGuard(e1.Guard, shiftGuard(e2.Guard, clockShift)),
							ResetVars: concatResets(e1.ResetVars, shiftResets(e2.ResetVars, clockShift)),
						})
					}
				}
				if async {
					for _, e1 := range edges1 {
						if e1.Target == nil {
							continue
						}
						target := state(e1.Target, s2)
						cur.AddTransition(ta.Epsilon, ta.Transition{
							Target:    target,
							Guard:     append([]ta.Constraint(nil), e1.Guard...),
							ResetVars: append([]ta.ClockVariable(nil), e1.ResetVars...),
						})
					}
					for _, e2 := range edges2 {
						if e2.Target == nil {
							continue
						}
						target := state(s1, e2.Target)
						cur.AddTransition(ta.Epsilon, ta.Transition{
							Target:    target,
							Guard:     shiftGuard(e2.Guard, clockShift),
							ResetVars: shiftResets(e2.ResetVars, clockShift),
						})
					}
				}
			}

			for _, e1 := range s1.Next[ta.Epsilon] {
				if e1.Target == nil {
					continue
				}
				target := state(e1.Target, s2)
				cur.AddTransition(ta.Epsilon, ta.Transition{
					Target:    target,
					Guard:     append([]ta.Constraint(nil), e1.Guard...),
					ResetVars: append([]ta.ClockVariable(nil), e1.ResetVars...),
				})
			}
			for _, e2 := range s2.Next[ta.Epsilon] {
				if e2.Target == nil {
					continue
				}
				target := state(s1, e2.Target)
				cur.AddTransition(ta.Epsilon, ta.Transition{
					Target:    target,
					Guard:     shiftGuard(e2.Guard, clockShift),
					ResetVars: shiftResets(e2.ResetVars, clockShift),
				})
			}
		}
	}

	r := &Result{Automaton: out, Pairs: pairs}
	r.UpdateInitAccepting(a, b)
	return r
}

// UpdateInitAccepting rebinds r's initial and accepting sets from a and b's
// current initial/accepting state sets, without rebuilding the product
// state set — for use after either factor has been mutated in place (e.g.
// the KMP skip-table construction's dummy-state overlays).
func (r *Result) UpdateInitAccepting(a, b *ta.Automaton) {
	aInit := make(map[*ta.State]bool, len(a.InitialStates))
	for _, s := range a.InitialStates {
		aInit[s] = true
	}
	bInit := make(map[*ta.State]bool, len(b.InitialStates))
	for _, s := range b.InitialStates {
		bInit[s] = true
	}
	r.Automaton.InitialStates = r.Automaton.InitialStates[:0]
	for pair, st := range r.Pairs {
		st.Accepting = pair.S1.Accepting && pair.S2.Accepting
		if aInit[pair.S1] && bInit[pair.S2] {
			r.Automaton.InitialStates = append(r.Automaton.InitialStates, st)
		}
	}
}

func shiftGuard(guard []ta.Constraint, shift int) []ta.Constraint {
	out := make([]ta.Constraint, len(guard))
	for i, g := range guard {
		out[i] = g
		out[i].Clock += ta.ClockVariable(shift)
	}
	return out
}

func shiftResets(resets []ta.ClockVariable, shift int) []ta.ClockVariable {
	out := make([]ta.ClockVariable, len(resets))
	for i, x := range resets {
		out[i] = x + ta.ClockVariable(shift)
	}
	return out
}

func concatGuard(g1, g2 []ta.Constraint) []ta.Constraint {
	out := make([]ta.Constraint, 0, len(g1)+len(g2))
	out = append(out, g1...)
	out = append(out, g2...)
	return out
}

func concatResets(r1, r2 []ta.ClockVariable) []ta.ClockVariable {
	out := make([]ta.ClockVariable, 0, len(r1)+len(r2))
	out = append(out, r1...)
	out = append(out, r2...)
	return out
}
