package zone_test

import (
	"testing"

	"github.com/monaa-go/monaa/ta"
	"github.com/monaa-go/monaa/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonizeIsIdempotent(t *testing.T) {
	z := zone.Universal(2)
	z.Tighten(0, 1, zone.NonStrictBound(3))
	z.Tighten(1, 0, zone.NonStrictBound(-1))
	z.Canonize()
	once := z.Clone()
	z.Canonize()
	assert.True(t, z.Equal(once), "canonizing twice must be a no-op")
}

func TestAbstractizeWithInfiniteCeilingIsIdentity(t *testing.T) {
	z := zone.Universal(2)
	z.M = zone.PosInf
	z.Tighten(0, 1, zone.NonStrictBound(5))
	before := z.Clone()
	z.Abstractize()
	assert.True(t, z.Equal(before))
}

func TestResetThenElapseThenResetLeavesOtherClocksUnchanged(t *testing.T) {
	z := zone.Zero(2)
	z.Tighten(zone.Const, 1, zone.NonStrictBound(-4)) // clock 1 pinned to (at least) 4
	before := z.At(0, 2)

	z.Reset(0) // reset clock 0 only
	z.Elapse()
	z.Reset(0)

	assert.Equal(t, before, z.At(0, 2), "resetting/elapsing clock 0 must not disturb clock 1's bound")
}

func TestIsSatisfiableDetectsEmptyZone(t *testing.T) {
	z := zone.Universal(1)
	z.Tighten(zone.Const, 0, zone.Strict(-1)) // x0 > 1
	z.Tighten(0, zone.Const, zone.Strict(-1)) // x0 < -1, contradicts x0 > 1
	assert.False(t, z.IsSatisfiable())
}

func TestMakeGuardRoundTrips(t *testing.T) {
	// Zero, then elapse (x0 becomes strictly positive, unbounded above), then
	// tighten the upper bound: the guard should read back as 0 < x0 < 1.
	z := zone.Zero(1)
	z.M = zone.NonStrictBound(10)
	z.Elapse()
	z.Tighten(0, zone.Const, zone.Strict(1)) // x0 < 1
	guard := z.MakeGuard()
	require.Len(t, guard, 2)
	byOrd := map[ta.Order]ta.Constraint{}
	for _, g := range guard {
		byOrd[g.Ord] = g
	}
	require.Contains(t, byOrd, ta.GT)
	require.Contains(t, byOrd, ta.LT)
	assert.Equal(t, 0, byOrd[ta.GT].C)
	assert.Equal(t, 1, byOrd[ta.LT].C)
}

func TestIntermediateZoneAllocAndToAns(t *testing.T) {
	iz := zone.NewIntermediateZone(4)
	iz.M.Tighten(iz.Begin(), zone.Const, zone.NonStrictBound(1.0))
	iz.M.Tighten(zone.Const, iz.Begin(), zone.NonStrictBound(-1.0))
	iz.M.Tighten(iz.End(), zone.Const, zone.NonStrictBound(1.5))
	iz.M.Tighten(zone.Const, iz.End(), zone.NonStrictBound(-1.5))

	ans := iz.ToAns()
	assert.Equal(t, zone.NonStrictBound(-1.0), ans.At(0, 1))
	assert.Equal(t, zone.NonStrictBound(1.5), ans.At(2, 0))
}

func TestIntermediateZoneUpdateFreesUnreferencedSlots(t *testing.T) {
	iz := zone.NewIntermediateZone(4) // slots 2 and 3 are free for Alloc
	slot, err := iz.Alloc(zone.NonStrictBound(-1), zone.NonStrictBound(2))
	require.NoError(t, err)
	require.Equal(t, iz.Newest(), slot)
	_, err = iz.Alloc(zone.NonStrictBound(-1), zone.NonStrictBound(2))
	require.NoError(t, err)

	iz.Update(nil) // nothing references slot symbolically, and it is no longer the newest
	reused, err := iz.Alloc(zone.NonStrictBound(-1), zone.NonStrictBound(2))
	assert.NoError(t, err, "freed slot should be reusable")
	assert.Equal(t, slot, reused)
}

func TestIntersectionAssignNarrowsToBothConstraints(t *testing.T) {
	z := zone.Zero(1)
	z.M = zone.NonStrictBound(10)
	z.Elapse()
	z.Tighten(0, zone.Const, zone.NonStrictBound(5)) // x0 <= 5

	o := zone.Zero(1)
	o.M = zone.NonStrictBound(10)
	o.Elapse()
	o.Tighten(zone.Const, 0, zone.NonStrictBound(-2)) // x0 >= 2

	require.NoError(t, z.IntersectionAssign(o))
	guard := z.MakeGuard()
	require.Len(t, guard, 2)
	byOrd := map[ta.Order]ta.Constraint{}
	for _, g := range guard {
		byOrd[g.Ord] = g
	}
	assert.Equal(t, 2, byOrd[ta.GE].C)
	assert.Equal(t, 5, byOrd[ta.LE].C)
}

func TestIntersectionAssignRejectsDimensionMismatch(t *testing.T) {
	z := zone.Zero(1)
	o := zone.Zero(2)
	assert.ErrorIs(t, z.IntersectionAssign(o), zone.ErrDimensionMismatch)
}

func TestAllocExhaustionIsContractViolation(t *testing.T) {
	iz := zone.NewIntermediateZone(2) // only slots 0,1, none free for Alloc
	_, err := iz.Alloc(zone.NonStrictBound(-1), zone.NonStrictBound(2))
	assert.ErrorIs(t, err, zone.ErrSlotsExhausted)
}
