package zone

import "errors"

var (
	// ErrSlotsExhausted indicates alloc was called on an IntermediateZone with
	// no free slot and no room to grow — a contract violation per spec.md
	// section 7 (the caller must preallocate enough slots).
	ErrSlotsExhausted = errors.New("zone: no free clock slot to allocate")
	// ErrDimensionMismatch indicates an operation between matrices of
	// differing variable counts.
	ErrDimensionMismatch = errors.New("zone: matrix dimension mismatch")
)
