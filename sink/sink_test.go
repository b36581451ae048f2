package sink_test

import (
	"bytes"
	"testing"

	"github.com/monaa-go/monaa/sink"
	"github.com/monaa-go/monaa/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerZone builds an AnswerZone equivalent to what IntermediateZone.ToAns
// would produce for begin in [1, 1], end in [1.5, 1.5].
func answerZone() sink.AnswerZone {
	m := zone.Universal(2)
	m.Tighten(0, zone.Const, zone.NonStrictBound(1.0))  // begin <= 1
	m.Tighten(zone.Const, 0, zone.NonStrictBound(-1.0)) // begin >= 1
	m.Tighten(1, zone.Const, zone.NonStrictBound(1.5))  // end <= 1.5
	m.Tighten(zone.Const, 1, zone.NonStrictBound(-1.5)) // end >= 1.5
	return sink.AnswerZone{Zone: m}
}

func TestAnswerZoneIntervals(t *testing.T) {
	az := answerZone()
	assert.Equal(t, zone.NonStrictBound(1.0), az.Begin().Lower)
	assert.Equal(t, zone.NonStrictBound(1.0), az.Begin().Upper)
	assert.Equal(t, zone.NonStrictBound(1.5), az.End().Lower)
	assert.Equal(t, zone.NonStrictBound(1.5), az.End().Upper)
}

func TestVectorSinkAccumulatesInOrder(t *testing.T) {
	v := sink.NewVectorSink()
	v.Reserve(4)
	v.Push(answerZone())
	v.Push(answerZone())
	require.Equal(t, 2, v.Size())
	assert.Len(t, v.Zones(), 2)

	v.Clear()
	assert.Equal(t, 0, v.Size())
}

func TestCountingSinkOnlyCounts(t *testing.T) {
	c := sink.NewCountingSink()
	c.Push(answerZone())
	c.Push(answerZone())
	c.Push(answerZone())
	assert.Equal(t, 3, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestPrintSinkWritesThreeInequalitiesPerZone(t *testing.T) {
	var buf bytes.Buffer
	p := sink.NewPrintSink(&buf, false)
	p.Push(answerZone())

	out := buf.String()
	assert.Contains(t, out, "begin")
	assert.Contains(t, out, "end")
	assert.Contains(t, out, "delta")
	assert.Equal(t, 1, p.Size())
}

func TestPrintSinkQuietSuppressesOutput(t *testing.T) {
	var buf bytes.Buffer
	p := sink.NewPrintSink(&buf, true)
	p.Push(answerZone())

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, p.Size())
}
