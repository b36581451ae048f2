package skip

import (
	"github.com/monaa-go/monaa/product"
	"github.com/monaa-go/monaa/ta"
	"github.com/monaa-go/monaa/za"
	"github.com/monaa-go/monaa/zone"
)

// KMP is the precomputed per-state skip value function of spec.md section
// 4.7: beta[s] bounds how far the matcher may safely advance the window
// start after a failed match ending in state s.
type KMP struct {
	beta map[*ta.State]int
}

// At returns beta[s], the KMP skip value for state s.
func (k *KMP) At(s *ta.State) int {
	return k.beta[s]
}

// BuildKMP computes A's KMP skip value function given m, the minimum timed
// word length A accepts (BuildSunday's M). For each state s, beta[s] is the
// smallest n in [1,m] such that n arbitrary ("dummy") prefix events followed
// by a path reaching s can still lead to acceptance when every other state
// is forced non-accepting — tested by building the product of "A preceded
// by n dummy events, entering at state s" against "A restricted to accept
// only at s" and checking the product's zone automaton for non-emptiness.
// If no n in [1,m] works, beta[s] = m.
func BuildKMP(A *ta.Automaton, m int) *KMP {
	A0, extended := makeAn(A, m)
	As, old2newS, toDummy := makeAs(A)
	prod := product.Build(A0, As)

	beta := make(map[*ta.State]int, len(A.States))
	for _, origState := range A.States {
		sCopy := old2newS[origState]
		dummy := toDummy[sCopy]
		for _, st := range As.States {
			st.Accepting = st == sCopy || st == dummy
		}

		found := 0
		for n := 1; n <= m; n++ {
			A0.InitialStates = []*ta.State{extended[n]}
			prod.UpdateInitAccepting(A0, As)
			zonedProd := za.Build(prod.Automaton, zone.Zero(prod.Automaton.ClockSize()))
			if !za.Empty(zonedProd) {
				found = n
				break
			}
		}
		if found == 0 {
			found = m
		}
		beta[origState] = found
	}
	return &KMP{beta: beta}
}

// makeAn builds A_{+n}*: a copy of A preceded by a chain of m dummy states
// extended[m] -> extended[m-1] -> ... -> extended[0], each consuming any one
// symbol (wildcard), with extended[0] epsilon-entering A's original initial
// states with every clock reset. It also adds a dummy accepting sink,
// wildcard-self-looping, reachable from every edge that used to target an
// accepting state (via a widened copy of that edge's guard, alongside the
// original edge). extended[n] is therefore the entry point for "n dummy
// events then A".
func makeAn(A *ta.Automaton, m int) (*ta.Automaton, []*ta.State) {
	A0, _ := A.Clone()

	extended := make([]*ta.State, m+1)
	for i := range extended {
		extended[i] = ta.NewState(false)
	}
	allClocks := make([]ta.ClockVariable, A0.ClockSize())
	for i := range allClocks {
		allClocks[i] = ta.ClockVariable(i)
	}
	for _, init := range A0.InitialStates {
		extended[0].AddTransition(ta.Epsilon, ta.Transition{Target: init, ResetVars: allClocks})
	}
	for i := 1; i <= m; i++ {
		for c := 1; c < 256; c++ {
			extended[i].AddTransition(ta.Alphabet(c), ta.Transition{Target: extended[i-1]})
		}
	}

	dummyAccept := ta.NewState(true)
	for c := 1; c < 256; c++ {
		dummyAccept.AddTransition(ta.Alphabet(c), ta.Transition{Target: dummyAccept})
	}
	for _, s := range A0.States {
		for symbol, edges := range s.Next {
			for _, e := range edges {
				if e.Target == nil || !e.Target.Accepting {
					continue
				}
				widened := ta.Widen(append([]ta.Constraint(nil), e.Guard...))
				s.AddTransition(symbol, ta.Transition{Target: dummyAccept, Guard: widened, ResetVars: e.ResetVars})
			}
		}
	}

	A0.States = append(A0.States, dummyAccept)
	A0.States = append(A0.States, extended...)
	return A0, extended
}

// makeAs builds A_s* (parameterized by s, bound later via Accepting flags):
// a copy of A where every state additionally holds an epsilon edge to its
// own dummy state, which wildcard-self-loops forever. Once the caller marks
// exactly one original-state copy and its dummy as accepting, this
// automaton accepts precisely the prefixes of A's language that reach s,
// followed by anything.
func makeAs(A *ta.Automaton) (*ta.Automaton, map[*ta.State]*ta.State, map[*ta.State]*ta.State) {
	As, old2newS := A.Clone()
	toDummy := make(map[*ta.State]*ta.State, len(As.States))
	for _, s := range As.States {
		dummy := ta.NewState(false)
		s.AddTransition(ta.Epsilon, ta.Transition{Target: dummy})
		for c := 1; c < 256; c++ {
			dummy.AddTransition(ta.Alphabet(c), ta.Transition{Target: dummy})
		}
		toDummy[s] = dummy
	}
	for _, dummy := range toDummy {
		As.States = append(As.States, dummy)
	}
	return As, old2newS, toDummy
}
