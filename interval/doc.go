// Package interval implements the interval algebra of spec.md section 4.3:
// intersection, sum, and the Kleene-plus closure used to compile a bounded
// repetition like (a%(1,2))+ down to a finite union of intervals.
//
// Grounded on interval.hh (plus/land/operator+) and shaped, as a small
// value-type package, the way dtw/types.go shapes its bounded alignment
// window.
package interval
