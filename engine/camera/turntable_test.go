package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurntableSteps(t *testing.T) {
	r, sink := newTestRig(t, WithRotation(1))
	tt := NewTurntable(r, WithStep(0.5), WithInterval(1))

	tt.Tick(5)
	assert.Equal(t, float32(1), r.Rotation(), "stopped turntable ignores ticks")

	tt.Start()
	require.True(t, tt.Running())

	tt.Tick(0.5)
	assert.Equal(t, float32(1), r.Rotation(), "first step waits for a full interval")

	tt.Tick(0.5)
	assert.Equal(t, float32(0), r.Rotation())

	tt.Tick(1)
	assert.Equal(t, float32(0.5), r.Rotation())

	tt.Tick(2)
	assert.Equal(t, float32(1.5), r.Rotation(), "one step per elapsed interval")
	assert.Len(t, sink.got, 5)
}

func TestTurntableStopsAfterOneRevolution(t *testing.T) {
	r, _ := newTestRig(t)
	tt := NewTurntable(r, WithStep(1), WithInterval(1))

	tt.Start()
	tt.Tick(100)
	assert.False(t, tt.Running())
	assert.Equal(t, float32(6), r.Rotation(), "last step not past 2π")
	assert.LessOrEqual(t, r.Rotation(), float32(2*math.Pi))
}

func TestTurntableStopResetsRotation(t *testing.T) {
	r, _ := newTestRig(t)
	tt := NewTurntable(r)

	tt.Toggle()
	require.True(t, tt.Running())
	for rangeIdx := 0; rangeIdx < 10; rangeIdx++ {
		tt.Tick(0.05)
	}
	assert.Greater(t, r.Rotation(), float32(0))

	tt.Toggle()
	assert.False(t, tt.Running())
	assert.Equal(t, float32(0), r.Rotation())
}

func TestTurntableDefaults(t *testing.T) {
	r, _ := newTestRig(t)
	tt := NewTurntable(r, WithStep(-1), WithInterval(0))
	assert.Equal(t, float32(0.05), tt.step)
	assert.Equal(t, float32(0.05), tt.interval)
}
