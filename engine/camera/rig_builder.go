package camera

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// RigOption is a functional option for configuring a Rig.
type RigOption func(*rigImpl)

// WithMode sets the initial motion mode.
//
// Parameters:
//   - mode: ModeOrbit or ModeFreeFly
//
// Returns:
//   - RigOption: functional option to set the mode
func WithMode(mode MotionMode) RigOption {
	return func(r *rigImpl) {
		r.mode = mode
	}
}

// WithTarget sets the look-at point. Non-finite coordinates are ignored.
//
// Parameters:
//   - x: X coordinate of the target
//   - y: Y coordinate of the target
//   - z: Z coordinate of the target
//
// Returns:
//   - RigOption: functional option to set the target position
func WithTarget(x, y, z float32) RigOption {
	return func(r *rigImpl) {
		if finite(x, y, z) {
			r.target = mgl32.Vec3{x, y, z}
		}
	}
}

// WithInclination sets the initial inclination, clamped to [-π/2, π/2].
//
// Parameters:
//   - inclination: elevation angle in radians
//
// Returns:
//   - RigOption: functional option to set the inclination
func WithInclination(inclination float32) RigOption {
	return func(r *rigImpl) {
		r.inclination = clampInclination(inclination)
	}
}

// WithRotation sets the initial rotation (azimuth).
//
// Parameters:
//   - rotation: azimuth in radians
//
// Returns:
//   - RigOption: functional option to set the rotation
func WithRotation(rotation float32) RigOption {
	return func(r *rigImpl) {
		if finite(rotation) {
			r.rotation = rotation
		}
	}
}

// WithRadius sets the initial orbit radius, floored at MinRadius. Non-finite values are ignored.
//
// Parameters:
//   - radius: distance from the target
//
// Returns:
//   - RigOption: functional option to set the radius
func WithRadius(radius float32) RigOption {
	return func(r *rigImpl) {
		if finite(radius) {
			r.radius = floorRadius(radius)
		}
	}
}

// WithBaseRadius sets the reference distance the magnify mapper scales from.
//
// Parameters:
//   - radius: magnify reference distance
//
// Returns:
//   - RigOption: functional option to set the base radius
func WithBaseRadius(radius float32) RigOption {
	return func(r *rigImpl) {
		if finite(radius) {
			r.baseRadius = floorRadius(radius)
		}
	}
}

// WithDragSpeed sets the pointer drag sensitivity.
//
// Parameters:
//   - speed: radians per unit of drag
//
// Returns:
//   - RigOption: functional option to set drag speed
func WithDragSpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		if finite(speed) {
			r.dragSpeed = speed
		}
	}
}

// WithKeySpeed sets the keyboard step.
//
// Parameters:
//   - speed: radians per key press
//
// Returns:
//   - RigOption: functional option to set key speed
func WithKeySpeed(speed float32) RigOption {
	return func(r *rigImpl) {
		if finite(speed) {
			r.keySpeed = speed
		}
	}
}

// WithSink registers a sink at construction time. A sink already registered is not added again.
//
// Parameters:
//   - s: the sink receiving every pushed transform
//
// Returns:
//   - RigOption: functional option to add the sink
func WithSink(s Sink) RigOption {
	return func(r *rigImpl) {
		if s != nil && !r.hasSink(s) {
			r.sinks = append(r.sinks, s)
		}
	}
}

// WithLogger sets the logger used to report ignored out-of-session input.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - RigOption: functional option to set the logger
func WithLogger(logger *log.Logger) RigOption {
	return func(r *rigImpl) {
		if logger != nil {
			r.logger = logger
		}
	}
}
