package za

import (
	"github.com/monaa-go/monaa/ta"
	"github.com/monaa-go/monaa/zone"
)

// Build runs the BFS construction of spec.md section 4.4: starting from A's
// initial states paired with initialZone, it closes every reachable pair
// under elapse, guard application, reset, abstractize and canonize, folding
// a newly-discovered pair (s, Z) into an already-built (s, Z') whenever Z'
// subsumes Z. The ceiling used for abstraction is A's own Ceiling()+1, the
// standard zone-graph widening bound (one past the largest constant any
// guard can mention, so equality at the ceiling is never conflated with
// "unbounded").
func Build(A *ta.Automaton, initialZone *zone.Matrix) *Automaton {
	out := &Automaton{}
	ceiling := zone.NonStrictBound(float64(A.Ceiling() + 1))

	byTAState := make(map[*ta.State][]*State)

	newNode := func(s *ta.State, z *zone.Matrix) *State {
		n := &State{TAState: s, Zone: z, Accepting: s.Accepting, Next: make(map[ta.Alphabet][]*State)}
		out.States = append(out.States, n)
		byTAState[s] = append(byTAState[s], n)
		return n
	}

	// fold reports an existing node whose zone subsumes z for the same TA
	// state, if one has already been built.
	fold := func(s *ta.State, z *zone.Matrix) (*State, bool) {
		for _, existing := range byTAState[s] {
			if existing.Zone.Subsumes(z) {
				return existing, true
			}
		}
		return nil, false
	}

	var queue []*State
	for _, s0 := range A.InitialStates {
		z0 := initialZone.Clone()
		z0.M = ceiling
		if !z0.IsSatisfiable() {
			continue
		}
		z0.Abstractize()
		if existing, folded := fold(s0, z0); folded {
			out.InitialStates = append(out.InitialStates, existing)
			continue
		}
		n := newNode(s0, z0)
		out.InitialStates = append(out.InitialStates, n)
		queue = append(queue, n)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for symbol, edges := range cur.TAState.Next {
			for _, e := range edges {
				if e.Target == nil {
					continue
				}
				nz := cur.Zone.Clone()
				// (i) elapse, (ii) apply guard
				nz.Elapse()
				nz.TightenGuard(e.Guard)
				if !nz.IsSatisfiable() {
					continue
				}
				// (iii) reset assigned clocks
				for _, x := range e.ResetVars {
					nz.Reset(x)
				}
				// (iv) abstractize, (v) canonize
				nz.M = ceiling
				nz.Abstractize()
				nz.Canonize()
				if !nz.IsSatisfiable() {
					continue
				}
				if existing, folded := fold(e.Target, nz); folded {
					cur.Next[symbol] = append(cur.Next[symbol], existing)
					continue
				}
				n := newNode(e.Target, nz)
				cur.Next[symbol] = append(cur.Next[symbol], n)
				queue = append(queue, n)
			}
		}
	}
	return out
}

// EpsilonClosure returns the set of states reachable from states by zero or
// more epsilon transitions, states themselves included.
func EpsilonClosure(states []*State) []*State {
	seen := make(map[*State]bool, len(states))
	var out []*State
	var stack []*State
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range cur.Next[ta.Epsilon] {
			if !seen[next] {
				seen[next] = true
				out = append(out, next)
				stack = append(stack, next)
			}
		}
	}
	return out
}
