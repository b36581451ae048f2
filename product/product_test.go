package product_test

import (
	"testing"

	"github.com/monaa-go/monaa/product"
	"github.com/monaa-go/monaa/ta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoStateOnA(accepting bool) *ta.Automaton {
	x := ta.New(1)
	s0 := x.AddState(false)
	s1 := x.AddState(accepting)
	s0.AddTransition('a', ta.Transition{Target: s1, ResetVars: []ta.ClockVariable{0}})
	x.InitialStates = []*ta.State{s0}
	return x
}

func TestBuildSynchronizesOnSharedSymbol(t *testing.T) {
	x := twoStateOnA(true)
	y := twoStateOnA(true)
	r := product.Build(x, y)

	require.Len(t, r.Automaton.InitialStates, 1)
	init := r.Automaton.InitialStates[0]
	edges := init.Next['a']
	require.Len(t, edges, 1)
	assert.True(t, edges[0].Target.Accepting, "both factors accept after 'a', product state must accept")
	// b's clock (index 0) is shifted by a's clock size (1), so its reset
	// var must read back as 1.
	assert.Equal(t, []ta.ClockVariable{0, 1}, edges[0].ResetVars)
}

func TestBuildOmitsAsynchronousTransitions(t *testing.T) {
	x := twoStateOnA(true)
	y := twoStateOnA(true)
	r := product.Build(x, y)
	init := r.Automaton.InitialStates[0]
	assert.Empty(t, init.Next[ta.Epsilon], "plain Build must not add asynchronous/epsilon edges for a shared symbol")
}

func TestSignalAddsAsynchronousTransitionsBothWays(t *testing.T) {
	x := twoStateOnA(true)
	y := twoStateOnA(true)
	r := product.Signal(x, y)
	init := r.Automaton.InitialStates[0]

	require.Len(t, init.Next[ta.Epsilon], 2, "signal product must add one async edge per side for a shared symbol")
	byTarget := make(map[*ta.State]product.Pair, len(r.Pairs))
	for pair, st := range r.Pairs {
		byTarget[st] = pair
	}
	var sawXAlone, sawYAlone bool
	for _, e := range init.Next[ta.Epsilon] {
		pair := byTarget[e.Target]
		if pair.S1 == x.States[1] && pair.S2 == y.States[0] {
			sawXAlone = true
		}
		if pair.S1 == x.States[0] && pair.S2 == y.States[1] {
			sawYAlone = true
		}
	}
	assert.True(t, sawXAlone, "x must be able to advance alone on the shared symbol")
	assert.True(t, sawYAlone, "y must be able to advance alone on the shared symbol")
}

func TestUpdateInitAcceptingRebindsWithoutRebuildingStates(t *testing.T) {
	x := twoStateOnA(false)
	y := twoStateOnA(false)
	r := product.Build(x, y)
	statesBefore := len(r.Automaton.States)

	// mutate in place: x's second state becomes accepting
	x.States[1].Accepting = true
	r.UpdateInitAccepting(x, y)

	assert.Equal(t, statesBefore, len(r.Automaton.States), "rebinding must not add or remove states")
	edges := r.Automaton.InitialStates[0].Next['a']
	assert.False(t, edges[0].Target.Accepting, "y's component is still non-accepting")
}
