package skip

import "errors"

// ErrEmptyPattern is returned when the pattern automaton's zone automaton
// accepts no timed word at all: the layering BFS used by BuildSunday runs
// out of reachable states before finding an accepting layer.
var ErrEmptyPattern = errors.New("skip: pattern automaton accepts no timed word")
