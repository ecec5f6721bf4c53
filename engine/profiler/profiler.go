package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate, input event rate and memory statistics for the viewer loop.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastEvents     uint64

	events func() uint64
	now    func() time.Time
	logger *log.Logger
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged.
//
// Parameters:
//   - interval: time between reports
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithEventCounter sets the source of the monotonically increasing input event count.
//
// Parameters:
//   - events: returns the number of input events handled so far
//
// Returns:
//   - ProfilerOption: option function to apply
func WithEventCounter(events func() uint64) ProfilerOption {
	return func(p *Profiler) {
		p.events = events
	}
}

// WithClock replaces time.Now, mainly for tests.
//
// Parameters:
//   - now: clock function
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the logger stats are written to.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logger:         log.Default(),
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	if p.events != nil {
		p.lastEvents = p.events()
	}
	return p
}

// Tick should be called once per engine tick.
// Logs ticks/second, input events/second and heap usage when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.tickCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()

	var events uint64
	if p.events != nil {
		events = p.events()
	}
	eps := float64(events-p.lastEvents) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	p.logger.Printf("[Profiler] TPS: %.2f | Events: %.2f/s | Heap: %.2f MB | GC: %d",
		tps, eps, heapMB, p.memStats.NumGC)

	p.tickCount = 0
	p.lastTime = currentTime
	p.lastEvents = events
	return true
}
