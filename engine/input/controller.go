// Package input adapts raw window events (mouse buttons, cursor motion, key codes) into camera rig calls.
package input

import (
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/camera"
)

// minMagnification keeps the emulated pinch reading positive.
const minMagnification = float32(0.05)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*Controller)

// WithTurntable attaches a turntable toggled by the space bar.
//
// Parameters:
//   - t: the turntable driving the rig's rotation
//
// Returns:
//   - ControllerOption: option function to apply
func WithTurntable(t *camera.Turntable) ControllerOption {
	return func(c *Controller) {
		c.turntable = t
	}
}

// WithViewportHeight sets the function reporting the current viewport height in pixels.
// Window coordinates are y-down; the height is used to flip them into the rig's y-up frame.
//
// Parameters:
//   - height: returns the viewport height
//
// Returns:
//   - ControllerOption: option function to apply
func WithViewportHeight(height func() int) ControllerOption {
	return func(c *Controller) {
		c.viewportHeight = height
	}
}

// WithPinchScale sets how much magnification one pixel of right-button drag produces.
//
// Parameters:
//   - scale: magnification per pixel
//
// Returns:
//   - ControllerOption: option function to apply
func WithPinchScale(scale float32) ControllerOption {
	return func(c *Controller) {
		if scale > 0 {
			c.pinchScale = scale
		}
	}
}

// Controller maps window input onto a camera.Rig.
//
//   - Left button drag: orbit (pointer-drag mapper).
//   - Right button drag: pinch emulation (magnify mapper), dragging up raises the magnification.
//   - Arrows / WASD: keyboard mapper, auto-repeat doubles the step.
//   - M: toggle between orbit and free-fly modes.
//   - Space: start or stop the turntable, if one is attached.
//   - R: reset rotation and inclination to zero and the radius to the rig's base radius.
type Controller struct {
	rig            camera.Rig
	turntable      *camera.Turntable
	viewportHeight func() int
	pinchScale     float32

	dragging    bool
	pinching    bool
	pinchStartY float32

	events uint64
}

// NewController creates a Controller driving rig.
//
// Parameters:
//   - rig: the camera rig receiving mapped input
//   - options: functional options to configure the controller
//
// Returns:
//   - *Controller: the newly created controller
func NewController(rig camera.Rig, options ...ControllerOption) *Controller {
	c := &Controller{
		rig:        rig,
		pinchScale: 0.005,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// TranslateKey maps a GLFW key code to the rig's directional keys.
//
// Parameters:
//   - keyCode: GLFW key code
//
// Returns:
//   - camera.Key: the directional key, or camera.KeyOther
func TranslateKey(keyCode uint32) camera.Key {
	switch keyCode {
	case common.KeyLeft, common.KeyA:
		return camera.KeyLeft
	case common.KeyRight, common.KeyD:
		return camera.KeyRight
	case common.KeyUp, common.KeyW:
		return camera.KeyUp
	case common.KeyDown, common.KeyS:
		return camera.KeyDown
	default:
		return camera.KeyOther
	}
}

// Events returns the number of input events handled so far.
//
// Returns:
//   - uint64: handled event count
func (c *Controller) Events() uint64 {
	return c.events
}

// point converts y-down window coordinates into the rig's y-up frame.
func (c *Controller) point(x, y float64) camera.Point {
	if c.viewportHeight != nil {
		return camera.Point{X: float32(x), Y: float32(float64(c.viewportHeight()) - y)}
	}
	return camera.Point{X: float32(x), Y: float32(-y)}
}

// MouseDown handles a mouse button press at window coordinates (x, y).
//
// Parameters:
//   - button: mouse button (common.MouseButtonLeft, ...)
//   - x, y: cursor position in window pixels, origin top-left
func (c *Controller) MouseDown(button int, x, y float64) {
	c.events++
	switch button {
	case common.MouseButtonLeft:
		c.dragging = true
		c.rig.HandlePointerDragBegin(c.point(x, y))
	case common.MouseButtonRight:
		c.pinching = true
		c.pinchStartY = float32(y)
		c.rig.HandleMagnifyBegin(1.0)
	}
}

// MouseUp handles a mouse button release.
//
// Parameters:
//   - button: mouse button
//   - x, y: cursor position in window pixels
func (c *Controller) MouseUp(button int, x, y float64) {
	c.events++
	switch button {
	case common.MouseButtonLeft:
		c.dragging = false
		c.rig.HandlePointerDragEnd()
	case common.MouseButtonRight:
		c.pinching = false
		c.rig.HandleMagnifyEnd()
	}
}

// MouseMove handles cursor motion. Motion with no button held is ignored.
//
// Parameters:
//   - x, y: cursor position in window pixels
func (c *Controller) MouseMove(x, y float64) {
	if !c.dragging && !c.pinching {
		return
	}
	c.events++
	if c.dragging {
		c.rig.HandlePointerDragMove(c.point(x, y))
	}
	if c.pinching {
		magnification := 1 + (c.pinchStartY-float32(y))*c.pinchScale
		if magnification < minMagnification {
			magnification = minMagnification
		}
		c.rig.HandleMagnifyUpdate(magnification)
	}
}

// KeyDown handles a key press or auto-repeat.
//
// Parameters:
//   - keyCode: GLFW key code
//   - repeat: true when the event is an auto-repeat from a held key
func (c *Controller) KeyDown(keyCode uint32, repeat bool) {
	c.events++
	switch keyCode {
	case common.KeyM:
		if repeat {
			return
		}
		if c.rig.Mode() == camera.ModeOrbit {
			c.rig.SetMode(camera.ModeFreeFly)
		} else {
			c.rig.SetMode(camera.ModeOrbit)
		}
		c.dragging = false
		c.pinching = false
	case common.KeySpace:
		if repeat || c.turntable == nil {
			return
		}
		c.turntable.Toggle()
	case common.KeyR:
		if repeat || c.rig.Mode() != camera.ModeOrbit {
			return
		}
		c.resetView()
	default:
		c.rig.HandleKeyEvent(TranslateKey(keyCode), repeat)
	}
}

// resetView returns the rig to its home pose and drops any gesture in progress.
func (c *Controller) resetView() {
	c.dragging = false
	c.pinching = false
	c.rig.SetRotation(0)
	c.rig.SetInclination(0)
	c.rig.SetRadius(c.rig.BaseRadius())
}
