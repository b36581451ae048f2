package interval

import (
	"math"

	"github.com/monaa-go/monaa/zone"
)

// Interval is a convex range of real numbers bounded by a zone.Bound pair.
type Interval struct {
	Lower zone.Bound
	Upper zone.Bound
}

// New builds the open interval (lower, upper).
func New(lower, upper int) Interval {
	return Interval{Lower: zone.Strict(float64(lower)), Upper: zone.Strict(float64(upper))}
}

// Unbounded builds the open-ended interval (lower, +inf).
func Unbounded(lower int) Interval {
	return Interval{Lower: zone.Strict(float64(lower)), Upper: zone.PosInf}
}

// Contain reports whether value lies within the interval.
func (iv Interval) Contain(value float64) bool {
	lowerOK := value > iv.Lower.Value
	if iv.Lower.NonStrict {
		lowerOK = value >= iv.Lower.Value
	}
	upperOK := value < iv.Upper.Value
	if iv.Upper.NonStrict {
		upperOK = value <= iv.Upper.Value
	}
	return lowerOK && upperOK
}

// And intersects two intervals: pointwise max on the lower bound, min on the
// upper bound.
func And(a, b Interval) Interval {
	lower := a.Lower
	if b.Lower.Neg().Less(a.Lower.Neg()) {
		lower = b.Lower
	}
	return Interval{Lower: lower, Upper: zone.Min(a.Upper, b.Upper)}
}

// Sum is the Minkowski sum {t+t' | t in a, t' in b}.
func Sum(a, b Interval) Interval {
	return Interval{Lower: a.Lower.Add(b.Lower), Upper: a.Upper.Add(b.Upper)}
}

// Empty reports whether the interval's lower bound is past its upper bound.
func (iv Interval) Empty() bool {
	return iv.Upper.Less(iv.Lower)
}

// LandSet intersects every interval in a set with right, in place semantics
// expressed functionally: returns the filtered, intersected set.
func LandSet(set []Interval, right Interval) []Interval {
	out := set[:0]
	for _, iv := range set {
		n := And(iv, right)
		if !n.Empty() {
			out = append(out, n)
		}
	}
	return out
}

// SumSets returns the set of sums {l+r | l in left, r in right}.
func SumSets(left, right []Interval) []Interval {
	out := make([]Interval, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			out = append(out, Sum(l, r))
		}
	}
	return out
}

// Plus computes the Kleene-plus closure {n*I : n >= 1} of a single interval,
// represented as ceil(l/(u-l)) intervals in all: the bounded multiples n*I
// for n = 1 .. ceil(l/(u-l))-1, then one unbounded tail starting at
// ceil(l/(u-l))*l, per spec.md section 4.3 and interval.hh's Interval::plus.
// An already-unbounded interval is its own closure.
func (iv Interval) Plus() []Interval {
	if math.IsInf(iv.Upper.Value, 1) {
		return []Interval{iv}
	}
	width := iv.Upper.Value - iv.Lower.Value
	m := int(math.Ceil(iv.Lower.Value / width))
	if m < 1 {
		m = 1
	}
	out := make([]Interval, 0, m)
	for i := 1; i < m; i++ {
		out = append(out, Interval{
			Lower: zone.Bound{Value: iv.Lower.Value * float64(i), NonStrict: iv.Lower.NonStrict},
			Upper: zone.Bound{Value: iv.Upper.Value * float64(i), NonStrict: iv.Upper.NonStrict},
		})
	}
	out = append(out, Interval{
		Lower: zone.Bound{Value: iv.Lower.Value * float64(m), NonStrict: iv.Lower.NonStrict},
		Upper: zone.PosInf,
	})
	return out
}

// PlusAll computes the Kleene-plus closure of a sum of intervals (the
// separation step for a plus-closure over more than one alternative), by
// enumerating the 2^n-1 non-empty subsets of per-interval closures and
// summing each subset. Rejects n >= 32 per spec.md section 4.3 and the 31
// hard cap of section 1's Non-goals.
func PlusAll(intervals []Interval) ([]Interval, error) {
	if len(intervals) >= 32 {
		return nil, ErrTooManyIntervals
	}
	if len(intervals) == 1 {
		return intervals[0].Plus(), nil
	}
	perInterval := make([][]Interval, len(intervals))
	for i, iv := range intervals {
		if math.IsInf(iv.Upper.Value, 1) {
			perInterval[i] = []Interval{iv}
		} else {
			perInterval[i] = iv.Plus()
		}
	}

	var out []Interval
	subsetCount := uint32(1) << uint(len(intervals))
	for mask := uint32(1); mask < subsetCount; mask++ {
		acc := []Interval{{Lower: zone.Zero_, Upper: zone.Zero_}}
		for j := 0; j < len(intervals); j++ {
			if mask&(1<<uint(j)) != 0 {
				acc = SumSets(acc, perInterval[j])
			}
		}
		out = append(out, acc...)
	}
	return out, nil
}
