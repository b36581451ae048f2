package skip_test

import (
	"testing"

	"github.com/monaa-go/monaa/skip"
	"github.com/monaa-go/monaa/ta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestBuildSundayComputesShiftTable(t *testing.T) {
	sv, err := skip.BuildSunday(buildAB())
	require.NoError(t, err)

	assert.Equal(t, 2, sv.M)
	assert.Equal(t, 2, sv.Shift('a'))
	assert.Equal(t, 1, sv.Shift('b'))
	assert.Equal(t, 3, sv.Shift('z'), "a symbol absent from every layer must get m+1")
	assert.True(t, sv.EndChars['b'])
	assert.False(t, sv.EndChars['a'])
}

func TestBuildSundayRejectsEmptyPattern(t *testing.T) {
	_, err := skip.BuildSunday(buildImpossible())
	assert.ErrorIs(t, err, skip.ErrEmptyPattern)
}

func TestBuildKMPCoversEveryStateWithinBounds(t *testing.T) {
	A := buildAB()
	sv, err := skip.BuildSunday(A)
	require.NoError(t, err)

	kmp := skip.BuildKMP(A, sv.M)
	for _, s := range A.States {
		beta := kmp.At(s)
		assert.GreaterOrEqual(t, beta, 1)
		assert.LessOrEqual(t, beta, sv.M)
	}
}
