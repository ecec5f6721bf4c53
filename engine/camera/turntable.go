package camera

import "math"

// TurntableOption is a functional option for configuring a Turntable.
type TurntableOption func(*Turntable)

// WithStep sets the rotation added per turntable step.
//
// Parameters:
//   - step: radians per step
//
// Returns:
//   - TurntableOption: functional option to set the step
func WithStep(step float32) TurntableOption {
	return func(t *Turntable) {
		if step > 0 {
			t.step = step
		}
	}
}

// WithInterval sets the time between turntable steps.
//
// Parameters:
//   - seconds: step interval in seconds
//
// Returns:
//   - TurntableOption: functional option to set the interval
func WithInterval(seconds float32) TurntableOption {
	return func(t *Turntable) {
		if seconds > 0 {
			t.interval = seconds
		}
	}
}

// Turntable spins a rig once around its target by stepping the rotation from 0 through 2π at a
// fixed interval, then stops on its own. It is advanced by the engine tick.
type Turntable struct {
	rig      Rig
	step     float32
	interval float32

	running bool
	index   int
	elapsed float32
}

// NewTurntable creates a stopped turntable that steps 0.05 radians every 50ms.
//
// Parameters:
//   - rig: the rig whose rotation is driven
//   - options: functional options to configure the turntable
//
// Returns:
//   - *Turntable: the newly created turntable
func NewTurntable(rig Rig, options ...TurntableOption) *Turntable {
	t := &Turntable{
		rig:      rig,
		step:     0.05,
		interval: 0.05,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Start begins a new revolution from rotation 0. The first step lands on the next interval.
func (t *Turntable) Start() {
	t.running = true
	t.index = 0
	t.elapsed = 0
}

// Stop cancels the revolution and resets the rig's rotation to 0.
func (t *Turntable) Stop() {
	t.running = false
	t.rig.SetRotation(0)
}

// Toggle stops a running turntable or starts a stopped one.
func (t *Turntable) Toggle() {
	if t.running {
		t.Stop()
		return
	}
	t.Start()
}

// Running reports whether a revolution is in progress.
func (t *Turntable) Running() bool {
	return t.running
}

// Tick advances the turntable by dt seconds, emitting one rotation per elapsed interval.
//
// Parameters:
//   - dt: elapsed time in seconds since the last tick
func (t *Turntable) Tick(dt float32) {
	if !t.running {
		return
	}
	t.elapsed += dt
	for t.running && t.elapsed >= t.interval {
		t.elapsed -= t.interval

		angle := float32(t.index) * t.step
		if angle > 2*math.Pi {
			t.running = false
			return
		}
		t.rig.SetRotation(angle)
		t.index++
	}
}
