package za_test

import (
	"testing"

	"github.com/monaa-go/monaa/ta"
	"github.com/monaa-go/monaa/za"
	"github.com/monaa-go/monaa/zone"
	"github.com/stretchr/testify/assert"
)

// buildAB mirrors ta_test.buildAB: s0 --a/reset x0--> s1 --b, guard x0<1--> s2 (accepting).
func buildAB() *ta.Automaton {
	a := ta.New(1)
	a.MaxConstraints[0] = 1
	s0 := a.AddState(false)
	s1 := a.AddState(false)
	s2 := a.AddState(true)
	s0.AddTransition('a', ta.Transition{Target: s1, ResetVars: []ta.ClockVariable{0}})
	s1.AddTransition('b', ta.Transition{Target: s2, Guard: []ta.Constraint{ta.NewConstraint(0, ta.LT, 1)}})
	a.InitialStates = []*ta.State{s0}
	return a
}

// buildImpossible is buildAB with an unsatisfiable guard (x0<0 after an
// elapse has already forced x0 strictly positive), so its ZA must be empty.
func buildImpossible() *ta.Automaton {
	a := ta.New(1)
	a.MaxConstraints[0] = 1
	s0 := a.AddState(false)
	s1 := a.AddState(false)
	s2 := a.AddState(true)
	s0.AddTransition('a', ta.Transition{Target: s1, ResetVars: []ta.ClockVariable{0}})
	s1.AddTransition('b', ta.Transition{Target: s2, Guard: []ta.Constraint{ta.NewConstraint(0, ta.LT, 0)}})
	a.InitialStates = []*ta.State{s0}
	return a
}

func TestBuildReachesAcceptingState(t *testing.T) {
	A := buildAB()
	zonedA := za.Build(A, zone.Zero(1))
	assert.False(t, za.Empty(zonedA), "a--b within the guard must be reachable")
}

func TestBuildOfUnsatisfiableGuardIsEmpty(t *testing.T) {
	A := buildImpossible()
	zonedA := za.Build(A, zone.Zero(1))
	assert.True(t, za.Empty(zonedA))
}

func TestRemoveDeadStatesPreservesEmptiness(t *testing.T) {
	A := buildAB()
	zonedA := za.Build(A, zone.Zero(1))
	pruned := za.RemoveDeadStates(zonedA)
	assert.Equal(t, za.Empty(zonedA), za.Empty(pruned))
	assert.LessOrEqual(t, len(pruned.States), len(zonedA.States))
}

func TestEpsilonClosureIncludesSelf(t *testing.T) {
	s := &za.State{Next: map[ta.Alphabet][]*za.State{}}
	closure := za.EpsilonClosure([]*za.State{s})
	assert.Equal(t, []*za.State{s}, closure)
}
