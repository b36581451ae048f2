package za

import "github.com/monaa-go/monaa/ta"

// Empty reports whether A accepts no timed word: true iff no accepting
// state is reachable from an initial state. Cycles (including self-loops)
// are handled by the visited set alone — no separate parent-set guard is
// needed for a forward reachability search, unlike RemoveDeadStates' query
// "can this state still reach an accepting state", which is naturally
// expressed backward instead of as guarded recursion.
func Empty(A *Automaton) bool {
	visited := make(map[*State]bool, len(A.States))
	var stack []*State
	for _, s := range A.InitialStates {
		if !visited[s] {
			visited[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Accepting {
			return false
		}
		for _, edges := range cur.Next {
			for _, next := range edges {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
	return true
}

// RemoveDeadStates returns the sub-automaton of A reachable from an initial
// state AND able to reach an accepting state. The second half is computed by
// a backward BFS from every accepting state over the reverse edge relation,
// which sidesteps the self-loop/cycle hazard a recursive "can reach
// accepting" query would hit: a plain visited-set BFS never revisits a node,
// so a self-loop or longer cycle simply contributes no new reachability
// rather than needing a guard against infinite recursion.
func RemoveDeadStates(A *Automaton) *Automaton {
	reverse := make(map[*State][]*State, len(A.States))
	for _, s := range A.States {
		for _, edges := range s.Next {
			for _, next := range edges {
				reverse[next] = append(reverse[next], s)
			}
		}
	}

	live := make(map[*State]bool, len(A.States))
	var stack []*State
	for _, s := range A.States {
		if s.Accepting && !live[s] {
			live[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, pred := range reverse[cur] {
			if !live[pred] {
				live[pred] = true
				stack = append(stack, pred)
			}
		}
	}

	reachable := make(map[*State]bool, len(A.States))
	var fwd []*State
	for _, s := range A.InitialStates {
		if live[s] && !reachable[s] {
			reachable[s] = true
			fwd = append(fwd, s)
		}
	}
	for len(fwd) > 0 {
		cur := fwd[len(fwd)-1]
		fwd = fwd[:len(fwd)-1]
		for _, edges := range cur.Next {
			for _, next := range edges {
				if live[next] && !reachable[next] {
					reachable[next] = true
					fwd = append(fwd, next)
				}
			}
		}
	}

	out := &Automaton{}
	oldToNew := make(map[*State]*State, len(A.States))
	for _, s := range A.States {
		if !reachable[s] {
			continue
		}
		n := &State{TAState: s.TAState, Zone: s.Zone, Accepting: s.Accepting, Next: make(map[ta.Alphabet][]*State)}
		out.States = append(out.States, n)
		oldToNew[s] = n
	}
	// Second pass: rebuild edges now that every surviving node exists.
	for _, s := range A.States {
		if !reachable[s] {
			continue
		}
		ns := oldToNew[s]
		for symbol, edges := range s.Next {
			for _, next := range edges {
				if reachable[next] {
					ns.Next[symbol] = append(ns.Next[symbol], oldToNew[next])
				}
			}
		}
	}
	for _, s := range A.InitialStates {
		if reachable[s] {
			out.InitialStates = append(out.InitialStates, oldToNew[s])
		}
	}
	return out
}

