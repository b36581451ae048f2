package ta

import "errors"

var (
	// ErrNoInitialStates indicates an automaton with an empty initial-state set.
	ErrNoInitialStates = errors.New("ta: automaton has no initial states")
	// ErrClockOutOfRange indicates a constraint or reset referring to a clock
	// index beyond the automaton's declared clock count.
	ErrClockOutOfRange = errors.New("ta: clock index out of range")
	// ErrNilState indicates a transition whose target state is nil.
	ErrNilState = errors.New("ta: transition has a nil target state")
)
