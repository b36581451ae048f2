package skip

import (
	"github.com/monaa-go/monaa/ta"
	"github.com/monaa-go/monaa/za"
	"github.com/monaa-go/monaa/zone"
)

// Sunday is the precomputed Boyer-Moore-style shift table of spec.md
// section 4.6: how far the matcher's outer loop may advance the window
// start when the symbol one past the window cannot extend any match.
type Sunday struct {
	// M is the minimum timed-word length A accepts.
	M int
	// EndChars is Sigma_{M-1}: every symbol labelling an edge out of the
	// last BFS layer, the layer whose targets include the first accepting
	// state. Not every such edge leads to an accepting state.
	EndChars map[ta.Alphabet]bool
	delta    map[ta.Alphabet]int
}

// Shift returns the number of stream positions to advance for a symbol seen
// one past the current window.
func (s *Sunday) Shift(c ta.Alphabet) int {
	if v, ok := s.delta[c]; ok {
		return v
	}
	return s.M + 1
}

// BuildSunday computes A's Sunday skip table: build the zone automaton,
// remove dead states, then expand outward layer by layer via
// epsilon-closed one-step transitions, collecting at layer i the symbols
// labelling any edge taken, until a layer reaches an accepting state. Layer
// i contributes delta[c] = m-i for every symbol c it labels; a symbol
// appearing in more than one layer keeps the value from its deepest (largest
// i) layer, since later layers are processed last and overwrite.
func BuildSunday(A *ta.Automaton) (*Sunday, error) {
	zonedA := za.RemoveDeadStates(za.Build(A, zone.Zero(A.ClockSize())))

	var layers []map[ta.Alphabet]bool
	current := zonedA.InitialStates
	m := 0
	accepted := false
	for !accepted {
		if len(current) == 0 {
			return nil, ErrEmptyPattern
		}
		m++
		layer := make(map[ta.Alphabet]bool)
		var next []*za.State
		for _, s := range za.EpsilonClosure(current) {
			for symbol, targets := range s.Next {
				if symbol == ta.Epsilon {
					continue
				}
				for _, target := range targets {
					accepted = accepted || target.Accepting
					next = append(next, target)
					layer[symbol] = true
				}
			}
		}
		layers = append(layers, layer)
		current = next
	}

	delta := make(map[ta.Alphabet]int)
	for i := 0; i <= m-1; i++ {
		for c := range layers[i] {
			delta[c] = m - i
		}
	}
	return &Sunday{M: m, EndChars: layers[m-1], delta: delta}, nil
}
