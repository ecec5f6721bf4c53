package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerReportsAtInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	var events uint64 = 10
	var buf bytes.Buffer

	p := NewProfiler(
		WithClock(clock.now),
		WithInterval(2*time.Second),
		WithEventCounter(func() uint64 { return events }),
		WithLogger(log.New(&buf, "", 0)),
	)

	for rangeIdx := 0; rangeIdx < 39; rangeIdx++ {
		clock.advance(time.Second / 20)
		assert.False(t, p.Tick())
	}
	assert.Empty(t, buf.String())

	events = 30
	clock.advance(time.Second / 20)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "[Profiler] TPS: 20.00 | Events: 10.00/s")

	buf.Reset()
	clock.advance(time.Second)
	assert.False(t, p.Tick(), "counters restart after a report")
	assert.Empty(t, buf.String())
}

func TestProfilerWithoutEventCounter(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var buf bytes.Buffer
	p := NewProfiler(WithClock(clock.now), WithLogger(log.New(&buf, "", 0)), WithInterval(0))

	clock.advance(time.Second)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "TPS: 1.00 | Events: 0.00/s")
}
