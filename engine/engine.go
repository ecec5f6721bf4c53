package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/input"
	"github.com/Carmen-Shannon/oxy-view/engine/profiler"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine has no window")

// maxTicksPerUpdate bounds catch-up ticks after a stall (window drag, debugger pause).
const maxTicksPerUpdate = 5

// engine implements the Engine interface.
// Every callback runs on the window thread; the rig and camera are never touched concurrently.
type engine struct {
	closeOnce sync.Once

	window window.Window

	rig        camera.Rig
	camera     camera.Camera
	controller *input.Controller
	turntable  *camera.Turntable

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	now         func() time.Time
	sleep       func(time.Duration)
	lastUpdate  time.Time
	accumulated time.Duration

	logger *log.Logger
}

// Engine is the main entry point of the viewer.
// It owns the camera rig and its sinks and drives them from the window message loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil for a headless engine
	Window() window.Window

	// Rig returns the camera rig driven by input.
	//
	// Returns:
	//   - camera.Rig: the rig
	Rig() camera.Rig

	// Camera returns the perspective camera attached to the rig as a sink.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Controller returns the input controller translating window events to rig calls.
	//
	// Returns:
	//   - *input.Controller: the controller
	Controller() *input.Controller

	// Turntable returns the turntable spinning the rig.
	//
	// Returns:
	//   - *camera.Turntable: the turntable
	Turntable() *camera.Turntable

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, before the rig publishes.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run wires the window callbacks and blocks in the window message loop until it closes.
	//
	// Returns:
	//   - error: ErrNoWindow if no window was configured, or the window close error
	Run() error

	// Quit closes the window, ending Run. Safe to call multiple times.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A rig, camera, controller and turntable are created for any not supplied. The camera is
// registered as a rig sink and receives the initial transform immediately.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		engineTickRate: time.Second / 60,
		now:            time.Now,
		sleep:          time.Sleep,
		logger:         log.Default(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.rig == nil {
		e.rig = camera.NewRig(camera.WithLogger(e.logger))
	}
	if e.camera == nil {
		e.camera = camera.NewCamera()
	}
	// AddSink skips the camera if the supplied rig already carries it.
	e.rig.AddSink(e.camera)
	e.rig.Tick()

	if e.turntable == nil {
		e.turntable = camera.NewTurntable(e.rig)
	}
	if e.controller == nil {
		controllerOptions := []input.ControllerOption{input.WithTurntable(e.turntable)}
		if e.window != nil {
			controllerOptions = append(controllerOptions, input.WithViewportHeight(e.window.Height))
		}
		e.controller = input.NewController(e.rig, controllerOptions...)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(
			profiler.WithEventCounter(e.controller.Events),
			profiler.WithClock(e.now),
			profiler.WithLogger(e.logger),
		)
	}

	if e.window != nil {
		e.resize(e.window.Width(), e.window.Height())
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Rig() camera.Rig {
	return e.rig
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Controller() *input.Controller {
	return e.controller
}

func (e *engine) Turntable() *camera.Turntable {
	return e.turntable
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// Takes effect on the next window update.
func (e *engine) SetTickRate(fps float64) {
	e.engineTickRate = tickInterval(fps)
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}

	c := e.controller
	e.window.SetMouseDownCallback(c.MouseDown)
	e.window.SetMouseUpCallback(c.MouseUp)
	e.window.SetMouseMoveCallback(c.MouseMove)
	e.window.SetKeyDownCallback(c.KeyDown)
	e.window.SetResizeCallback(e.resize)
	e.window.SetUpdateCallback(e.update)

	e.lastUpdate = e.now()
	e.accumulated = 0
	e.logger.Printf("[Engine] running at %.0f ticks/s in %s mode", float64(time.Second)/float64(e.engineTickRate), e.rig.Mode())

	e.window.ProcessMessages()

	e.logger.Printf("[Engine] window closed")
	return e.closeWindow()
}

// Quit closes the window, which ends the message loop inside Run.
func (e *engine) Quit() {
	if err := e.closeWindow(); err != nil {
		e.logger.Printf("[Engine] quit: %v", err)
	}
}

// closeWindow releases the window exactly once, whether Run ended on its own or Quit was called.
func (e *engine) closeWindow() error {
	var err error
	e.closeOnce.Do(func() {
		if e.window != nil {
			err = e.window.Close()
		}
	})
	return err
}

// resize updates the camera aspect ratio from the framebuffer size.
// Minimized windows report a zero size and are ignored.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.camera.SetAspect(float32(width) / float32(height))
}

// update runs once per window message loop iteration, fires as many fixed ticks as the
// elapsed time covers, then sleeps until the next tick is due so the loop does not spin.
func (e *engine) update() {
	now := e.now()
	e.accumulated += now.Sub(e.lastUpdate)
	e.lastUpdate = now

	ticks := 0
	for e.accumulated >= e.engineTickRate {
		e.accumulated -= e.engineTickRate
		ticks++
		if ticks > maxTicksPerUpdate {
			e.accumulated = 0
			break
		}
		e.tick(float32(e.engineTickRate.Seconds()))
	}

	if remaining := e.engineTickRate - e.accumulated; remaining > 0 {
		e.sleep(remaining)
	}
}

// tick advances the turntable, lets the rig publish, and samples the profiler.
func (e *engine) tick(dt float32) {
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
	e.turntable.Tick(dt)
	e.rig.Tick()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
