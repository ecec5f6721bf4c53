package camera

import (
	"fmt"
	"strings"
)

// MotionMode selects which input mappers drive the rig.
type MotionMode int

const (
	// ModeOrbit keeps the camera trained on the target while drag, key and magnify input
	// change inclination, rotation and radius.
	ModeOrbit MotionMode = iota
	// ModeFreeFly is reserved for unconstrained movement. Every input mapper is a no-op in this mode.
	ModeFreeFly
)

// String returns the lowercase name of the mode.
func (m MotionMode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFreeFly:
		return "freefly"
	default:
		return fmt.Sprintf("MotionMode(%d)", int(m))
	}
}

// ParseMotionMode converts a mode name into a MotionMode. Matching is case-insensitive.
//
// Parameters:
//   - s: "orbit" or "freefly"
//
// Returns:
//   - MotionMode: the parsed mode
//   - error: error if the name is not a known mode
func ParseMotionMode(s string) (MotionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orbit", "arcball":
		return ModeOrbit, nil
	case "freefly", "firstperson":
		return ModeFreeFly, nil
	default:
		return ModeOrbit, fmt.Errorf("unknown motion mode %q", s)
	}
}

// Key is a directional key understood by the keyboard mapper.
type Key int

const (
	// KeyOther is any key the rig ignores.
	KeyOther Key = iota
	// KeyLeft rotates the camera left around the target (left arrow, A).
	KeyLeft
	// KeyRight rotates the camera right around the target (right arrow, D).
	KeyRight
	// KeyUp decreases inclination (up arrow, W).
	KeyUp
	// KeyDown increases inclination (down arrow, S).
	KeyDown
)

// Point is a pointer location in a y-up view frame (origin at the bottom-left corner).
type Point struct {
	X, Y float32
}
