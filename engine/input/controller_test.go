package input

import (
	"io"
	"log"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRig(options ...camera.RigOption) camera.Rig {
	return camera.NewRig(append([]camera.RigOption{camera.WithLogger(log.New(io.Discard, "", 0))}, options...)...)
}

func TestTranslateKey(t *testing.T) {
	cases := []struct {
		code uint32
		want camera.Key
	}{
		{common.KeyLeft, camera.KeyLeft},
		{common.KeyA, camera.KeyLeft},
		{common.KeyRight, camera.KeyRight},
		{common.KeyD, camera.KeyRight},
		{common.KeyUp, camera.KeyUp},
		{common.KeyW, camera.KeyUp},
		{common.KeyDown, camera.KeyDown},
		{common.KeyS, camera.KeyDown},
		{common.KeyR, camera.KeyOther},
		{common.KeyEsc, camera.KeyOther},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TranslateKey(c.code), "key %d", c.code)
	}
}

func TestLeftDragOrbitsInYUpFrame(t *testing.T) {
	rig := newTestRig()
	c := NewController(rig, WithViewportHeight(func() int { return 600 }))

	c.MouseDown(common.MouseButtonLeft, 100, 300)
	// Window y grows downward, so moving the cursor up 20px is +20 in the rig frame.
	c.MouseMove(110, 280)
	assert.InDelta(t, -0.1, rig.Rotation(), 1e-6)
	assert.InDelta(t, 0.2, rig.Inclination(), 1e-6)

	c.MouseUp(common.MouseButtonLeft, 110, 280)
	c.MouseMove(500, 500)
	assert.InDelta(t, -0.1, rig.Rotation(), 1e-6, "motion after release is ignored")
	assert.Equal(t, uint64(3), c.Events())
}

func TestLeftDragWithoutViewportHeight(t *testing.T) {
	rig := newTestRig()
	c := NewController(rig)

	c.MouseDown(common.MouseButtonLeft, 0, 0)
	c.MouseMove(0, -10)
	assert.InDelta(t, 0.1, rig.Inclination(), 1e-6)
}

func TestRightDragEmulatesPinch(t *testing.T) {
	rig := newTestRig(camera.WithRadius(5))
	c := NewController(rig, WithPinchScale(0.01))

	c.MouseDown(common.MouseButtonRight, 0, 200)
	assert.Equal(t, rig.BaseRadius(), rig.Radius(), "gesture begin resets to the base radius")

	c.MouseMove(0, 100) // magnification 2
	assert.InDelta(t, 2*rig.BaseRadius(), rig.Radius(), 1e-5)

	c.MouseMove(0, 10000) // floored magnification
	assert.InDelta(t, rig.BaseRadius()*minMagnification, rig.Radius(), 1e-5)

	c.MouseUp(common.MouseButtonRight, 0, 10000)
	before := rig.Radius()
	c.MouseMove(0, 0)
	assert.Equal(t, before, rig.Radius())
}

func TestKeysDriveRig(t *testing.T) {
	rig := newTestRig()
	c := NewController(rig)

	c.KeyDown(common.KeyD, false)
	c.KeyDown(common.KeyRight, true)
	assert.InDelta(t, 0.03, rig.Rotation(), 1e-6)

	c.KeyDown(common.KeyW, false)
	assert.InDelta(t, -0.01, rig.Inclination(), 1e-6)

	c.KeyDown(common.KeyEsc, false)
	assert.InDelta(t, 0.03, rig.Rotation(), 1e-6)
	assert.Equal(t, uint64(4), c.Events())
}

func TestResetKey(t *testing.T) {
	rig := newTestRig()
	c := NewController(rig)

	rig.SetRotation(1.2)
	rig.SetInclination(-0.7)
	rig.SetRadius(5)
	c.MouseDown(common.MouseButtonLeft, 10, 10)

	c.KeyDown(common.KeyR, true)
	assert.InDelta(t, 1.2, rig.Rotation(), 1e-6, "auto-repeat does not reset")

	c.KeyDown(common.KeyR, false)
	assert.Equal(t, float32(0), rig.Rotation())
	assert.Equal(t, float32(0), rig.Inclination())
	assert.Equal(t, rig.BaseRadius(), rig.Radius())

	c.MouseMove(200, 10)
	assert.Equal(t, float32(0), rig.Rotation(), "the drag in progress was dropped")

	rig.SetRotation(0.4)
	rig.SetMode(camera.ModeFreeFly)
	c.KeyDown(common.KeyR, false)
	assert.InDelta(t, 0.4, rig.Rotation(), 1e-6, "free-fly ignores reset")
}

func TestModeToggle(t *testing.T) {
	rig := newTestRig()
	c := NewController(rig)

	c.MouseDown(common.MouseButtonLeft, 0, 0)
	c.KeyDown(common.KeyM, false)
	require.Equal(t, camera.ModeFreeFly, rig.Mode())

	c.KeyDown(common.KeyM, true)
	assert.Equal(t, camera.ModeFreeFly, rig.Mode(), "auto-repeat does not toggle")

	c.KeyDown(common.KeyA, false)
	c.MouseMove(100, 100)
	assert.Equal(t, float32(0), rig.Rotation())

	c.KeyDown(common.KeyM, false)
	assert.Equal(t, camera.ModeOrbit, rig.Mode())
	c.MouseMove(100, 100)
	assert.Equal(t, float32(0), rig.Rotation(), "the drag was cancelled by the mode switch")
}

func TestSpaceTogglesTurntable(t *testing.T) {
	rig := newTestRig()
	tt := camera.NewTurntable(rig)
	c := NewController(rig, WithTurntable(tt))

	c.KeyDown(common.KeySpace, false)
	assert.True(t, tt.Running())
	c.KeyDown(common.KeySpace, true)
	assert.True(t, tt.Running())
	c.KeyDown(common.KeySpace, false)
	assert.False(t, tt.Running())

	// Without a turntable the space bar does nothing.
	NewController(rig).KeyDown(common.KeySpace, false)
}
