package camera

import (
	"log"
	"math"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// keyBoundaryEpsilon keeps keyboard steps that land on a pole, within float32 rounding, from being accepted.
const keyBoundaryEpsilon = float32(1e-6)

// rigImpl is the single implementation of Rig.
type rigImpl struct {
	mode   MotionMode
	target mgl32.Vec3

	// Orbit degrees of freedom
	inclination float32 // pitch, clamped to [-π/2, π/2]
	rotation    float32 // yaw, unbounded
	radius      float32 // distance from target, >= MinRadius

	// Input sensitivity
	dragSpeed  float32
	keySpeed   float32
	baseRadius float32

	// Drag session, valid only while dragging is true
	dragging             bool
	dragStart            Point
	dragStartRotation    float32
	dragStartInclination float32

	// Magnify session, valid only while magnifying is true
	magnifying   bool
	magnifyStart float32

	sinks  []Sink
	logger *log.Logger
}

// Compile-time interface compliance check
var _ Rig = &rigImpl{}

// NewRig creates a camera rig in orbit mode, two units from a target at the origin, and pushes
// the initial transform to any sinks supplied through options.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(options ...RigOption) Rig {
	r := &rigImpl{
		mode:   ModeOrbit,
		target: mgl32.Vec3{0, 0, 0},

		inclination: 0,
		rotation:    0,
		radius:      2,

		dragSpeed:  0.01,
		keySpeed:   0.01,
		baseRadius: 2,

		logger: log.Default(),
	}

	for _, option := range options {
		option(r)
	}

	r.push()
	return r
}

// --- internal helpers ---

func finite(values ...float32) bool {
	for _, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return false
		}
	}
	return true
}

// clampInclination maps NaN to 0; mgl32.Clamp passes it through.
func clampInclination(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return mgl32.Clamp(v, -HalfPi, HalfPi)
}

// floorRadius also catches NaN, for which every ordered comparison is false.
func floorRadius(v float32) float32 {
	if !(v >= MinRadius) {
		return MinRadius
	}
	return v
}

// hasSink reports whether s is already registered. Sinks whose dynamic type is not comparable
// (SinkFunc) are never treated as duplicates.
func (r *rigImpl) hasSink(s Sink) bool {
	if !reflect.TypeOf(s).Comparable() {
		return false
	}
	for _, existing := range r.sinks {
		if existing == s {
			return true
		}
	}
	return false
}

// rejectNonFinite logs and reports true when any of values is NaN or infinite.
func (r *rigImpl) rejectNonFinite(what string, values ...float32) bool {
	if finite(values...) {
		return false
	}
	r.logger.Printf("[CameraRig] non-finite %s %v; ignored", what, values)
	return true
}

// push composes the current transform and hands it to every sink in order.
func (r *rigImpl) push() {
	if len(r.sinks) == 0 {
		return
	}
	t := r.Transform()
	for _, s := range r.sinks {
		s.ApplyTransform(t)
	}
}

func (r *rigImpl) orbiting() bool {
	return r.mode == ModeOrbit
}

func (r *rigImpl) endSessions() {
	r.dragging = false
	r.magnifying = false
}

// --- state ---

func (r *rigImpl) Mode() MotionMode {
	return r.mode
}

func (r *rigImpl) SetMode(mode MotionMode) {
	if mode == r.mode {
		return
	}
	r.mode = mode
	r.endSessions()
}

func (r *rigImpl) Target() mgl32.Vec3 {
	return r.target
}

func (r *rigImpl) SetTarget(target mgl32.Vec3) {
	if r.rejectNonFinite("target", target[:]...) {
		return
	}
	r.target = target
	r.push()
}

func (r *rigImpl) Inclination() float32 {
	return r.inclination
}

func (r *rigImpl) SetInclination(v float32) {
	if math.IsNaN(float64(v)) {
		r.logger.Printf("[CameraRig] inclination NaN; ignored")
		return
	}
	r.inclination = clampInclination(v)
	r.push()
}

func (r *rigImpl) Rotation() float32 {
	return r.rotation
}

func (r *rigImpl) SetRotation(v float32) {
	if r.rejectNonFinite("rotation", v) {
		return
	}
	r.rotation = v
	r.push()
}

func (r *rigImpl) Radius() float32 {
	return r.radius
}

func (r *rigImpl) SetRadius(v float32) {
	if r.rejectNonFinite("radius", v) {
		return
	}
	r.radius = floorRadius(v)
	r.push()
}

func (r *rigImpl) BaseRadius() float32 {
	return r.baseRadius
}

func (r *rigImpl) DragSpeed() float32 {
	return r.dragSpeed
}

func (r *rigImpl) KeySpeed() float32 {
	return r.keySpeed
}

func (r *rigImpl) Transform() Transform {
	return Compose(r.inclination, r.rotation, r.radius, r.target)
}

func (r *rigImpl) Tick() {
	r.push()
}

func (r *rigImpl) AddSink(s Sink) {
	if s == nil || r.hasSink(s) {
		return
	}
	r.sinks = append(r.sinks, s)
}

// --- pointer drag ---

func (r *rigImpl) HandlePointerDragBegin(p Point) {
	if !r.orbiting() || r.rejectNonFinite("drag point", p.X, p.Y) {
		return
	}
	r.dragging = true
	r.dragStart = p
	r.dragStartRotation = r.rotation
	r.dragStartInclination = r.inclination
}

func (r *rigImpl) HandlePointerDragMove(p Point) {
	if !r.orbiting() {
		return
	}
	if !r.dragging {
		r.logger.Printf("[CameraRig] drag move at (%.1f, %.1f) without an active drag; ignored", p.X, p.Y)
		return
	}

	if r.rejectNonFinite("drag point", p.X, p.Y) {
		return
	}

	dx := p.X - r.dragStart.X
	dy := p.Y - r.dragStart.Y
	rotation := r.dragStartRotation - dx*r.dragSpeed
	if r.rejectNonFinite("drag rotation", rotation) {
		return
	}
	r.rotation = rotation
	r.inclination = clampInclination(r.dragStartInclination + dy*r.dragSpeed)
	r.push()
}

func (r *rigImpl) HandlePointerDragEnd() {
	if !r.orbiting() {
		return
	}
	r.dragging = false
}

// --- keyboard ---

func (r *rigImpl) HandleKeyEvent(key Key, repeat bool) bool {
	if !r.orbiting() {
		return false
	}

	delta := r.keySpeed
	if repeat {
		delta *= 2
	}

	switch key {
	case KeyLeft:
		r.rotation -= delta
	case KeyRight:
		r.rotation += delta
	case KeyUp, KeyDown:
		if key == KeyUp {
			delta = -delta
		}
		// Guarded before applying: a step that would reach or cross a pole is dropped, not clamped.
		next := r.inclination + delta
		if next <= -HalfPi+keyBoundaryEpsilon || next >= HalfPi-keyBoundaryEpsilon {
			return false
		}
		r.inclination = next
	default:
		return false
	}

	r.push()
	return true
}

// --- magnify ---

func (r *rigImpl) HandleMagnifyBegin(magnitude float32) {
	if !r.orbiting() {
		return
	}
	if magnitude == 0 || r.rejectNonFinite("magnification", magnitude) {
		if magnitude == 0 {
			r.logger.Printf("[CameraRig] magnify began with zero magnification; ignored")
		}
		return
	}
	r.magnifying = true
	r.magnifyStart = magnitude
	r.HandleMagnifyUpdate(magnitude)
}

func (r *rigImpl) HandleMagnifyUpdate(magnitude float32) {
	if !r.orbiting() {
		return
	}
	if !r.magnifying {
		r.logger.Printf("[CameraRig] magnify update %.3f without an active gesture; ignored", magnitude)
		return
	}

	// Scales from the fixed base radius, not the radius at gesture start.
	multiplier := magnitude / r.magnifyStart
	radius := r.baseRadius * multiplier
	if r.rejectNonFinite("magnified radius", radius) {
		return
	}
	r.radius = floorRadius(radius)
	r.push()
}

func (r *rigImpl) HandleMagnifyEnd() {
	if !r.orbiting() {
		return
	}
	r.magnifying = false
}
