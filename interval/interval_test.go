package interval_test

import (
	"testing"

	"github.com/monaa-go/monaa/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAndIsCommutativeAssociativeIdempotent(t *testing.T) {
	a := interval.New(1, 5)
	b := interval.New(2, 7)
	c := interval.New(0, 10)

	assert.Equal(t, interval.And(a, b), interval.And(b, a))
	assert.Equal(t, interval.And(interval.And(a, b), c), interval.And(a, interval.And(b, c)))
	assert.Equal(t, a, interval.And(a, a))
}

func TestSumAddsBounds(t *testing.T) {
	a := interval.New(1, 2)
	b := interval.New(3, 4)
	sum := interval.Sum(a, b)
	assert.Equal(t, 4.0, sum.Lower.Value)
	assert.Equal(t, 6.0, sum.Upper.Value)
}

func TestPlusOfUnboundedIsItself(t *testing.T) {
	iv := interval.Unbounded(2)
	closure := iv.Plus()
	require.Len(t, closure, 1)
	assert.Equal(t, iv, closure[0])
}

func TestPlusOfBoundedCoversGrowingMultiples(t *testing.T) {
	iv := interval.New(1, 2)
	closure := iv.Plus()
	require.NotEmpty(t, closure)
	// the midpoint of every multiple n*iv must lie inside some closure interval
	for n := 1; n <= 5; n++ {
		t1, t2 := float64(n)*1.0, float64(n)*2.0
		mid := (t1 + t2) / 2
		covered := false
		for _, c := range closure {
			if c.Contain(mid) {
				covered = true
				break
			}
		}
		assert.True(t, covered, "n=%d midpoint %v not covered", n, mid)
	}
	last := closure[len(closure)-1]
	assert.True(t, last.Upper.IsInf(), "closure must end in an unbounded tail")
}

func TestPlusAllRejectsTooManyIntervals(t *testing.T) {
	many := make([]interval.Interval, 32)
	for i := range many {
		many[i] = interval.New(1, 2)
	}
	_, err := interval.PlusAll(many)
	assert.ErrorIs(t, err, interval.ErrTooManyIntervals)
}

func TestPlusAllSingleIntervalMatchesPlus(t *testing.T) {
	iv := interval.New(1, 2)
	all, err := interval.PlusAll([]interval.Interval{iv})
	require.NoError(t, err)
	assert.Equal(t, iv.Plus(), all)
}
