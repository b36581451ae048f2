package interval

import "errors"

// ErrTooManyIntervals is returned by PlusAll when given 32 or more operand
// intervals: the subset-enumeration separation step is exponential, and
// spec.md section 4.3 fixes the hard cap at 31.
var ErrTooManyIntervals = errors.New("interval: plus-closure argument has 32 or more intervals")
