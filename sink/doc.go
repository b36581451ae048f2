// Package sink implements the answer sink of spec.md section 4.9: a
// push-back interface for the 3x3 answer zones the matcher emits, plus
// concrete sinks (counting-only, in-memory vector, streaming printer).
//
// Grounded on ans_vec.hh's AnsContainer/AnsVec/IntContainer/PrintContainer
// family, translated from a template-parameterized container to a Go
// interface with three small implementations.
package sink
