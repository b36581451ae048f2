package zone

import "github.com/monaa-go/monaa/ta"

// ResetTime records when a clock was last reset: either a concrete absolute
// timestamp (the clock was reset at a real time already known), or the
// index of another DBM slot whose value is that reset time symbolically
// (the clock was reset at a time this zone is still tracking abstractly).
// Mirrors the boost::variant<double, ClockVariables> reset-time vector of
// the original matcher (spec.md section 4.2).
type ResetTime struct {
	Concrete bool
	Time     float64
	Slot     ta.ClockVariable
}

// AtTime builds a concrete ResetTime.
func AtTime(t float64) ResetTime { return ResetTime{Concrete: true, Time: t} }

// AtSlot builds a symbolic ResetTime pointing at another DBM slot.
func AtSlot(s ta.ClockVariable) ResetTime { return ResetTime{Slot: s} }

// IntermediateZone is a Matrix with a bitmap of dynamically allocated clock
// slots. Slots 0 ("begin") and 1 ("end") are permanently allocated; every
// further slot is a scratch clock allocated for one input event (typically
// while closing a configuration under epsilon transitions) and freed again
// once Update finds no reset-time entry still referencing it.
type IntermediateZone struct {
	M         *Matrix
	allocated []bool
	newest    ta.ClockVariable
}

// NewIntermediateZone preallocates a DBM with room for capacity clocks.
// Allocating beyond capacity is a contract violation (spec.md section 7):
// the matcher must preallocate enough slots for one matching attempt.
func NewIntermediateZone(capacity int) *IntermediateZone {
	if capacity < 2 {
		capacity = 2
	}
	iz := &IntermediateZone{
		M:         Universal(capacity),
		allocated: make([]bool, capacity),
		newest:    1,
	}
	iz.allocated[0] = true
	iz.allocated[1] = true
	return iz
}

// Begin is the permanently-allocated clock slot representing the window's
// begin time.
func (iz *IntermediateZone) Begin() ta.ClockVariable { return 0 }

// End is the permanently-allocated clock slot representing the most recent
// event's time.
func (iz *IntermediateZone) End() ta.ClockVariable { return 1 }

// Newest returns the most recently allocated clock slot.
func (iz *IntermediateZone) Newest() ta.ClockVariable { return iz.newest }

// Alloc returns a fresh clock slot constrained to lie between lower and upper
// relative to the constant reference, each end open or closed as that
// Bound's NonStrict flag says, preferentially reusing
// a freed slot over growing. Fails with ErrSlotsExhausted when every
// preallocated slot is in use, a contract violation per spec.md section 7.
func (iz *IntermediateZone) Alloc(lower, upper Bound) (ta.ClockVariable, error) {
	for i := 2; i < len(iz.allocated); i++ {
		if !iz.allocated[i] {
			iz.allocated[i] = true
			x := ta.ClockVariable(i)
			iz.M.Clear(x)
			iz.M.Tighten(x, Const, upper)
			iz.M.Tighten(Const, x, Bound{Value: -lower.Value, NonStrict: lower.NonStrict})
			iz.newest = x
			return x, nil
		}
	}
	return 0, ErrSlotsExhausted
}

// Rebind forces clock x to lie between lower and upper (each end open or
// closed as that Bound's NonStrict flag says), discarding whatever
// constraint it carried before. Used to re-anchor the permanent
// Begin/End slots to a new window boundary at the start of a matching
// attempt or inner-loop step, the same detach-then-bound sequence Alloc uses
// for a fresh scratch clock.
func (iz *IntermediateZone) Rebind(x ta.ClockVariable, lower, upper Bound) {
	iz.M.Clear(x)
	iz.M.Tighten(x, Const, upper)
	iz.M.Tighten(Const, x, Bound{Value: -lower.Value, NonStrict: lower.NonStrict})
}

// UseAsNewest points Newest at clock x, so a following Tighten call applies
// guard clauses to x. Used when x is a permanent slot (Begin/End) rather
// than one just returned by Alloc, which sets Newest itself.
func (iz *IntermediateZone) UseAsNewest(x ta.ClockVariable) {
	iz.newest = x
}

// boundForGuard splits a TA guard clause into the Bound it contributes and
// whether it constrains the newest clock from above (LT/LE) or the newest
// clock from below (GT/GE), matching monaa.hh's branch on delta.odr.
func boundForGuard(c ta.Constraint) (b Bound, upper bool) {
	switch c.Ord {
	case ta.LT:
		return Strict(float64(c.C)), true
	case ta.LE:
		return NonStrictBound(float64(c.C)), true
	case ta.GT:
		return Strict(float64(-c.C)), false
	case ta.GE:
		return NonStrictBound(float64(-c.C)), false
	default:
		return PosInf, true
	}
}

// Tighten applies guard to the newest allocated clock, using resetTimes to
// resolve each referenced clock's reset time (indexed by ta.ClockVariable,
// i.e. the pattern automaton's own clock numbering — distinct from this
// zone's slot numbering). It reports whether the zone remains satisfiable;
// an unsatisfiable zone means the owning configuration must be dropped
// (spec.md section 4.8, "Invalid configuration" is local and silent).
func (iz *IntermediateZone) Tighten(guard []ta.Constraint, resetTimes []ResetTime) bool {
	newest := iz.newest
	for _, g := range guard {
		if int(g.Clock) >= len(resetTimes) {
			continue
		}
		rt := resetTimes[g.Clock]
		b, upper := boundForGuard(g)
		switch {
		case rt.Concrete && upper:
			iz.M.Tighten(newest, Const, Bound{Value: b.Value + rt.Time, NonStrict: b.NonStrict})
		case rt.Concrete && !upper:
			iz.M.Tighten(Const, newest, Bound{Value: b.Value - rt.Time, NonStrict: b.NonStrict})
		case !rt.Concrete && upper:
			iz.M.Tighten(newest, rt.Slot, b)
		default:
			iz.M.Tighten(rt.Slot, newest, b)
		}
	}
	return iz.M.IsSatisfiable()
}

// TightenAt is the three-argument overload: it checks guard against a known
// concrete timestamp t standing in for the newest clock's value, without
// touching the DBM. Only concrete reset times are checked; symbolic ones are
// skipped. Package match does not call it.
func (iz *IntermediateZone) TightenAt(guard []ta.Constraint, resetTimes []ResetTime, t float64) bool {
	for _, g := range guard {
		if int(g.Clock) >= len(resetTimes) {
			continue
		}
		rt := resetTimes[g.Clock]
		if !rt.Concrete {
			continue // symbolic: deferred to a full Tighten against the DBM
		}
		if !g.Satisfy(t - rt.Time) {
			return false
		}
	}
	return true
}

// Update frees any allocated slot beyond Begin/End/Newest that resetTimes no
// longer references symbolically. A freed slot is cleared immediately (not
// left to the next Alloc), so its stale relations can never leak into a
// Canonize run before it is reused.
func (iz *IntermediateZone) Update(resetTimes []ResetTime) {
	referenced := map[ta.ClockVariable]bool{0: true, 1: true, iz.newest: true}
	for _, rt := range resetTimes {
		if !rt.Concrete {
			referenced[rt.Slot] = true
		}
	}
	for i := 2; i < len(iz.allocated); i++ {
		if iz.allocated[i] && !referenced[ta.ClockVariable(i)] {
			iz.allocated[i] = false
			iz.M.Clear(ta.ClockVariable(i))
		}
	}
}

// ToAns canonicalizes the zone and projects it down to the fixed 3x3 answer
// zone (begin=variable 1, end=variable 2, delta implicit) described in
// spec.md section 6.
func (iz *IntermediateZone) ToAns() *Matrix {
	iz.M.Canonize()
	ans := Zero(2)
	ans.value[0][1] = iz.M.value[0][1]
	ans.value[1][0] = iz.M.value[1][0]
	ans.value[0][2] = iz.M.value[0][2]
	ans.value[2][0] = iz.M.value[2][0]
	ans.value[1][2] = iz.M.value[1][2]
	ans.value[2][1] = iz.M.value[2][1]
	return ans
}

// Clone returns a deep, independent copy.
func (iz *IntermediateZone) Clone() *IntermediateZone {
	return &IntermediateZone{
		M:         iz.M.Clone(),
		allocated: append([]bool(nil), iz.allocated...),
		newest:    iz.newest,
	}
}
