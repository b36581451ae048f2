// Package zone implements the difference-bound-matrix (DBM) algebra that
// underlies MONAA's symbolic timed-pattern matching.
//
// Overview:
//
//   - Bound is a (value, non-strict) pair: the atomic ingredient of every
//     clock-difference constraint xi - xj <= Bound.
//   - Matrix is an (n+1)x(n+1) canonical DBM over n clock variables plus the
//     constant-zero reference variable 0, supporting tighten, reset, elapse,
//     canonize, abstractize and isSatisfiable.
//   - IntermediateZone wraps a Matrix with a bitmap of allocated clock slots
//     so the matcher can allocate a fresh clock per input event and free it
//     again once no configuration still references it.
//
// When to use:
//
//   - Building or abstracting a zone automaton from a timed automaton (see
//     package za).
//   - Tracking the symbolic begin/end/delta answer region of a streaming
//     match (see package match).
//
// Thread safety:
//
//   - Matrix and IntermediateZone are plain value-ish structs with no
//     internal locking. A matching attempt owns its configurations
//     exclusively (spec.md section 5); callers sharing a Matrix across
//     goroutines must synchronize externally.
package zone
