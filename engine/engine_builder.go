package engine

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/profiler"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickInterval(fps)
	}
}

// WithWindow sets the window whose message loop drives the engine and whose events feed the rig.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRig sets a pre-configured camera rig instead of the default orbit rig.
//
// Parameters:
//   - r: the rig to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRig(r camera.Rig) EngineBuilderOption {
	return func(e *engine) {
		e.rig = r
	}
}

// WithCamera sets the perspective camera registered as a rig sink. A camera the rig from
// WithRig already carries as a sink is not registered a second time.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithTurntable sets a pre-configured turntable. It must drive the same rig as the engine.
//
// Parameters:
//   - t: the turntable
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTurntable(t *camera.Turntable) EngineBuilderOption {
	return func(e *engine) {
		e.turntable = t
	}
}

// WithProfiler sets a pre-configured profiler, replacing the default one that counts controller events.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithClock replaces time.Now for tick accounting.
//
// Parameters:
//   - now: clock function
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithSleep replaces time.Sleep for the wait between ticks.
//
// Parameters:
//   - sleep: blocks for the given duration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSleep(sleep func(time.Duration)) EngineBuilderOption {
	return func(e *engine) {
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// WithLogger sets the logger used by the engine and the components it creates.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
