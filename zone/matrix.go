package zone

import "github.com/monaa-go/monaa/ta"

// Matrix is a canonical (or, transiently, unsatisfiable) difference-bound
// matrix. Internal row/column 0 is the constant-zero reference variable;
// rows/columns 1..n correspond to the caller's 0-origin clocks 0..n-1.
// value[i][j] represents the constraint x_i - x_j <= value[i][j].
type Matrix struct {
	value [][]Bound
	// M is the abstraction ceiling for this zone: entries >= M collapse to
	// +infinity in Abstractize. A single Bound shared by every clock,
	// matching the original's Zone::M (see DESIGN.md).
	M Bound
}

// NumVars returns the number of clock variables (excluding the constant row).
func (z *Matrix) NumVars() int {
	return len(z.value) - 1
}

// Zero returns the n-clock zone where every clock equals 0.
func Zero(n int) *Matrix {
	v := make([][]Bound, n+1)
	for i := range v {
		v[i] = make([]Bound, n+1)
		for j := range v[i] {
			v[i][j] = Zero_
		}
	}
	return &Matrix{value: v, M: PosInf}
}

// Zero_ is the diagonal/zero-clock bound (0, <=).
var Zero_ = Bound{Value: 0, NonStrict: true}

// Universal returns the n-clock zone with no constraints at all: every
// off-diagonal entry is +infinity (not even x_i >= 0 is recorded) and every
// diagonal entry is (0, <=).
func Universal(n int) *Matrix {
	v := make([][]Bound, n+1)
	for i := range v {
		v[i] = make([]Bound, n+1)
		for j := range v[i] {
			v[i][j] = PosInf
		}
		v[i][i] = Zero_
	}
	return &Matrix{value: v, M: PosInf}
}

// Clone returns a deep copy.
func (z *Matrix) Clone() *Matrix {
	v := make([][]Bound, len(z.value))
	for i, row := range z.value {
		v[i] = append([]Bound(nil), row...)
	}
	return &Matrix{value: v, M: z.M}
}

// At returns the raw entry value[i][j] using internal 0-origin indices
// (0 = constant row/column, i+1 = clock i).
func (z *Matrix) At(i, j int) Bound { return z.value[i][j] }

// Set writes the raw entry value[i][j], internal indices.
func (z *Matrix) Set(i, j int, b Bound) { z.value[i][j] = b }

// Const is the sentinel ClockVariable denoting the constant-zero reference
// variable (internal index 0) in calls to Tighten, so that a single-clock
// constraint "x <ord> c" can be expressed as Tighten(x, Const, c) (x <= c)
// or Tighten(Const, x, c) (-x <= c, i.e. x >= -c), alongside genuine
// two-clock relations Tighten(x, y, c).
const Const ta.ClockVariable = -1

// Tighten adds the constraint x - y <= c, where x and y are either genuine
// clocks or the Const sentinel for the constant reference variable, then
// restores canonicity with the single-edge closure close1.
func (z *Matrix) Tighten(x, y ta.ClockVariable, c Bound) {
	xi, yi := int(x)+1, int(y)+1
	if c.LessEqual(z.value[xi][yi]) {
		z.value[xi][yi] = Min(z.value[xi][yi], c)
		z.close1(xi)
		z.close1(yi)
	}
}

// close1 restores canonicity after a single entry at row/col k changed, by
// relaxing every other entry through k: value[i][j] = min(value[i][j],
// value[i][k]+value[k][j]). Equivalent to one pass of Floyd-Warshall pivoted
// at k, sufficient after a single-edge tightening (spec.md section 4.1).
func (z *Matrix) close1(k int) {
	n := len(z.value)
	for i := 0; i < n; i++ {
		ik := z.value[i][k]
		for j := 0; j < n; j++ {
			via := ik.Add(z.value[k][j])
			if via.Less(z.value[i][j]) {
				z.value[i][j] = via
			}
		}
	}
}

// Reset sets clock x to 0: x - 0 <= 0 and 0 - x <= 0, then copies the
// constant row/column into x's row/column (x now moves in lock-step with the
// reference variable).
func (z *Matrix) Reset(x ta.ClockVariable) {
	xi := int(x) + 1
	z.value[0][xi] = Zero_
	z.value[xi][0] = Zero_
	n := len(z.value)
	for i := 1; i < n; i++ {
		z.value[i][xi] = z.value[i][0]
		z.value[xi][i] = z.value[0][i]
	}
}

// Clear detaches clock x from every other clock and the constant reference,
// as if it had never been constrained: x_i - x <= +inf and x - x_i <= +inf
// for every other clock i, x - x <= 0. Used before a scratch slot is (re)
// bound to a fresh window, and when a slot is freed, so that stale relations
// left over from whatever the slot previously represented can never leak
// into a later Canonize's closure (mirrors the original IntermediateZone's
// deallocate).
func (z *Matrix) Clear(x ta.ClockVariable) {
	xi := int(x) + 1
	n := len(z.value)
	for i := 0; i < n; i++ {
		z.value[i][xi] = PosInf
		z.value[xi][i] = PosInf
	}
	z.value[xi][xi] = Zero_
}

// Elapse lets time pass unboundedly: the constant column becomes +infinity
// (no clock has an upper bound relative to the origin any more) and the
// constant row becomes strict (every clock is now, in the limit, strictly
// greater than any past reference point).
func (z *Matrix) Elapse() {
	n := len(z.value)
	for i := 0; i < n; i++ {
		z.value[i][0] = PosInf
	}
	for j := 0; j < n; j++ {
		z.value[0][j].NonStrict = false
	}
}

// Canonize performs full Floyd-Warshall closure.
func (z *Matrix) Canonize() {
	n := len(z.value)
	for k := 0; k < n; k++ {
		z.close1(k)
	}
}

// IsSatisfiable canonizes z and reports whether every entry pair (i,j),(j,i)
// sums to at least (0, <=) — the standard DBM emptiness test.
func (z *Matrix) IsSatisfiable() bool {
	z.Canonize()
	n := len(z.value)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if z.value[i][j].Add(z.value[j][i]).Less(Zero_) {
				return false
			}
		}
	}
	return true
}

// MakeUnsat forces z into an unsatisfiable state.
func (z *Matrix) MakeUnsat() {
	z.value[0][0] = NegInf
}

// Abstractize widens every entry at or beyond the ceiling M to +infinity, the
// standard zone-graph abstraction that keeps the reachable zone set finite.
func (z *Matrix) Abstractize() {
	for i := range z.value {
		for j := range z.value[i] {
			if z.M.LessEqual(z.value[i][j]) {
				z.value[i][j] = PosInf
			}
		}
	}
}

// MakeGuard canonizes and abstractizes z, then projects it back to the
// strongest guard (conjunction of Constraints) consistent with it.
func (z *Matrix) MakeGuard() []ta.Constraint {
	z.Canonize()
	z.Abstractize()
	var guard []ta.Constraint
	for i := 0; i < z.NumVars(); i++ {
		// value[0][i+1] bounds -x_i, so the clock's lower bound is its negation.
		lower := z.value[0][i+1]
		if lower.Value < 0 || (lower.Value == 0 && !lower.NonStrict) {
			if lower.NonStrict {
				guard = append(guard, ta.NewConstraint(ta.ClockVariable(i), ta.GE, int(-lower.Value)))
			} else {
				guard = append(guard, ta.NewConstraint(ta.ClockVariable(i), ta.GT, int(-lower.Value)))
			}
		}
		upper := z.value[i+1][0]
		if upper.Less(z.M) {
			if upper.NonStrict {
				guard = append(guard, ta.NewConstraint(ta.ClockVariable(i), ta.LE, int(upper.Value)))
			} else {
				guard = append(guard, ta.NewConstraint(ta.ClockVariable(i), ta.LT, int(upper.Value)))
			}
		}
	}
	return guard
}

// Equal compares two zones entry-wise, ignoring the (0,0) diagonal (which
// MakeUnsat and Elapse overwrite, so it carries no clock constraint).
func (z *Matrix) Equal(o *Matrix) bool {
	if len(z.value) != len(o.value) {
		return false
	}
	for i := range z.value {
		for j := range z.value[i] {
			if i == 0 && j == 0 {
				continue
			}
			if z.value[i][j] != o.value[i][j] {
				return false
			}
		}
	}
	return true
}

// Subsumes reports whether z entry-wise dominates (is weaker than or equal
// to) o — i.e. o's zone is contained in z's. Used by za's subsumption fold
// (spec.md section 4.4): a newly-discovered (state, zone) pair is folded into
// an existing one when the existing zone subsumes it.
func (z *Matrix) Subsumes(o *Matrix) bool {
	if len(z.value) != len(o.value) {
		return false
	}
	for i := range z.value {
		for j := range z.value[i] {
			if z.value[i][j].Less(o.value[i][j]) {
				return false
			}
		}
	}
	return true
}

// TightenConstraint applies a single TA guard clause "x <ord> c" as a
// constraint between clock x and the constant reference, translating each
// comparison operator into the matching Tighten call.
func (z *Matrix) TightenConstraint(c ta.Constraint) {
	switch c.Ord {
	case ta.LT:
		z.Tighten(c.Clock, Const, Strict(float64(c.C)))
	case ta.LE:
		z.Tighten(c.Clock, Const, NonStrictBound(float64(c.C)))
	case ta.GT:
		z.Tighten(Const, c.Clock, Strict(float64(-c.C)))
	case ta.GE:
		z.Tighten(Const, c.Clock, NonStrictBound(float64(-c.C)))
	}
}

// TightenGuard applies every clause of a guard (conjunction of Constraints).
func (z *Matrix) TightenGuard(guard []ta.Constraint) {
	for _, c := range guard {
		z.TightenConstraint(c)
	}
}

// IntersectionAssign replaces z with the tightest zone consistent with both z
// and o (entry-wise min), then restores canonicity. Fails with
// ErrDimensionMismatch if z and o do not track the same number of clocks.
func (z *Matrix) IntersectionAssign(o *Matrix) error {
	if len(z.value) != len(o.value) {
		return ErrDimensionMismatch
	}
	for i := range z.value {
		for j := range z.value[i] {
			z.value[i][j] = Min(z.value[i][j], o.value[i][j])
		}
	}
	z.Canonize()
	return nil
}
