package camera

import "log"

// Sink receives every transform the rig computes and applies it to a scene camera.
type Sink interface {
	// ApplyTransform applies a freshly composed camera pose.
	//
	// Parameters:
	//   - t: the camera transform
	ApplyTransform(t Transform)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(t Transform)

// ApplyTransform calls f(t).
func (f SinkFunc) ApplyTransform(t Transform) {
	f(t)
}

// LogSink logs each applied pose. Useful when running headless or debugging input mapping.
type LogSink struct {
	Logger *log.Logger
}

// ApplyTransform logs the position and forward direction of t.
func (s LogSink) ApplyTransform(t Transform) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	p, f := t.Position, t.Forward()
	logger.Printf("[LogSink] position=(%.4f, %.4f, %.4f) forward=(%.4f, %.4f, %.4f)",
		p[0], p[1], p[2], f[0], f[1], f[2])
}
