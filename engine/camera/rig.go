package camera

import "github.com/go-gl/mathgl/mgl32"

// Rig is the camera-control state machine. It holds the orbit degrees of freedom (inclination,
// rotation, radius) around a look-at target, maps pointer drag, keyboard and magnify input onto
// them according to the current MotionMode, and pushes a freshly composed Transform to every
// attached Sink after each accepted change.
//
// A Rig is driven from a single thread and is not safe for concurrent use.
type Rig interface {
	rigInputMapper

	// Mode returns the current motion mode.
	//
	// Returns:
	//   - MotionMode: ModeOrbit or ModeFreeFly
	Mode() MotionMode

	// SetMode switches the motion mode. Any active drag or magnify session is discarded.
	//
	// Parameters:
	//   - mode: the new motion mode
	SetMode(mode MotionMode)

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// SetTarget sets the look-at point and pushes the new transform. A target with a NaN or
	// infinite coordinate is ignored.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// Inclination returns the elevation angle in radians, always within [-π/2, π/2].
	//
	// Returns:
	//   - float32: inclination in radians
	Inclination() float32

	// SetInclination stores v clamped to [-π/2, π/2] and pushes the new transform. NaN is ignored.
	//
	// Parameters:
	//   - v: inclination in radians
	SetInclination(v float32)

	// Rotation returns the azimuth angle in radians. It is never clamped or wrapped.
	//
	// Returns:
	//   - float32: rotation in radians
	Rotation() float32

	// SetRotation stores v unmodified and pushes the new transform. NaN and ±Inf are ignored.
	//
	// Parameters:
	//   - v: rotation in radians
	SetRotation(v float32)

	// Radius returns the orbital distance from the target, always > 0.
	//
	// Returns:
	//   - float32: distance from target
	Radius() float32

	// SetRadius stores max(v, MinRadius) and pushes the new transform. NaN and ±Inf are ignored.
	//
	// Parameters:
	//   - v: distance from target
	SetRadius(v float32)

	// BaseRadius returns the fixed reference distance used by the magnify mapper.
	//
	// Returns:
	//   - float32: magnify reference radius
	BaseRadius() float32

	// DragSpeed returns the radians applied per unit of pointer drag.
	//
	// Returns:
	//   - float32: drag sensitivity
	DragSpeed() float32

	// KeySpeed returns the radians applied per key press (doubled on auto-repeat).
	//
	// Returns:
	//   - float32: key sensitivity
	KeySpeed() float32

	// Transform composes the current camera pose. Calling it twice without an intervening
	// mutation yields identical results.
	//
	// Returns:
	//   - Transform: the current camera pose
	Transform() Transform

	// Tick recomputes the transform and pushes it to every sink even when no input arrived.
	// Called once per scene update.
	Tick()

	// AddSink registers a sink that receives every pushed transform, in registration order.
	// Registering the same sink twice has no effect.
	//
	// Parameters:
	//   - s: the sink to add (nil is ignored)
	AddSink(s Sink)
}

// rigInputMapper groups the per-input-class handlers. Every handler is a no-op in ModeFreeFly.
type rigInputMapper interface {
	// HandlePointerDragBegin starts a drag session at p, capturing the current angles.
	//
	// Parameters:
	//   - p: pointer location in a y-up frame
	HandlePointerDragBegin(p Point)

	// HandlePointerDragMove sets the angles from the total drag offset since the session began.
	// Horizontal motion maps to rotation (dragging right decreases it); vertical motion maps to
	// inclination, clamped to [-π/2, π/2]. A move without an active session is ignored.
	//
	// Parameters:
	//   - p: pointer location in a y-up frame
	HandlePointerDragMove(p Point)

	// HandlePointerDragEnd ends the drag session. The angles keep their last values.
	HandlePointerDragEnd()

	// HandleKeyEvent applies a directional key press. Left and right change rotation by the key
	// speed; up and down change inclination, but only when the result stays strictly inside
	// (-π/2, π/2), otherwise the event is dropped. The step doubles when repeat is true.
	//
	// Parameters:
	//   - key: the directional key
	//   - repeat: true for auto-repeat events from a held key
	//
	// Returns:
	//   - bool: true if the event changed the rig
	HandleKeyEvent(key Key, repeat bool) bool

	// HandleMagnifyBegin starts a magnify session with the gesture's current magnification and
	// applies it, which resets the radius to the base radius.
	//
	// Parameters:
	//   - magnitude: raw magnification reading at gesture start
	HandleMagnifyBegin(magnitude float32)

	// HandleMagnifyUpdate sets radius = baseRadius * magnitude / startMagnitude.
	// An update without an active session, or one that yields a non-finite radius, is ignored.
	//
	// Parameters:
	//   - magnitude: raw magnification reading
	HandleMagnifyUpdate(magnitude float32)

	// HandleMagnifyEnd ends the magnify session. The radius keeps its last value.
	HandleMagnifyEnd()
}
