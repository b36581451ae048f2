package za

import (
	"github.com/monaa-go/monaa/ta"
	"github.com/monaa-go/monaa/zone"
)

// State is a node of a zone automaton: a pair (TAState, Zone). Accepting is
// copied from TAState at construction time so callers never have to chase
// the TA pointer to test acceptance.
type State struct {
	TAState   *ta.State
	Zone      *zone.Matrix
	Accepting bool
	// Next maps an alphabet symbol (including ta.Epsilon) to the ZA states
	// reachable on it.
	Next map[ta.Alphabet][]*State
}

// Automaton is a zone automaton: every reachable (TAstate, Zone) pair
// discovered from a set of initial pairs, subsumption-folded.
type Automaton struct {
	States        []*State
	InitialStates []*State
}
