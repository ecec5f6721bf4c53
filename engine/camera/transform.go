package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// HalfPi bounds the inclination angle on both sides.
	HalfPi = float32(math.Pi / 2)

	// MinRadius is the floor applied to every radius so the camera never collapses onto its target.
	MinRadius = float32(1e-4)

	// parallelEpsilon is the length below which the view direction and world up are treated as parallel.
	parallelEpsilon = float32(1e-6)
)

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	localForward = mgl32.Vec3{0, 0, -1}
)

// Transform is a camera pose: a world-space position and an orientation that maps the camera's
// local frame (forward -Z, up +Y) into world space.
type Transform struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// Matrix returns the world-from-camera matrix (translation * rotation).
//
// Returns:
//   - mgl32.Mat4: the camera's model matrix
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.Elem()).Mul4(t.Orientation.Mat4())
}

// ViewMatrix returns the camera-from-world matrix, the inverse of Matrix.
//
// Returns:
//   - mgl32.Mat4: the view matrix
func (t Transform) ViewMatrix() mgl32.Mat4 {
	return t.Matrix().Inv()
}

// Forward returns the world-space direction the camera faces.
//
// Returns:
//   - mgl32.Vec3: unit forward vector
func (t Transform) Forward() mgl32.Vec3 {
	return t.Orientation.Rotate(localForward)
}

// Up returns the world-space up direction of the camera.
//
// Returns:
//   - mgl32.Vec3: unit up vector
func (t Transform) Up() mgl32.Vec3 {
	return t.Orientation.Rotate(worldUp)
}

// Compose maps orbit angles and distance to a camera pose.
//
// The camera is first translated radius units along its local +Z, then rotated by yaw (rotation)
// and pitch (inclination) about the target, in that composition order: M = Target * R * T.
// Position comes from M; the orientation is recomputed with a look-at from that position to the
// target, so the camera always faces the target exactly.
//
// Parameters:
//   - inclination: pitch in radians
//   - rotation: yaw in radians
//   - radius: distance from the target, floored at MinRadius (NaN included)
//   - target: world-space look-at point
//
// Returns:
//   - Transform: the composed pose
func Compose(inclination, rotation, radius float32, target mgl32.Vec3) Transform {
	radius = floorRadius(radius)

	translation := mgl32.Translate3D(0, 0, radius)
	orbit := mgl32.HomogRotate3DY(rotation).Mul4(mgl32.HomogRotate3DX(inclination))

	// ORDER matters: rotating the translated offset orbits the target, the reverse spins in place.
	m := mgl32.Translate3D(target.Elem()).Mul4(orbit).Mul4(translation)
	position := m.Col(3).Vec3()

	up := orbit.Mul4x1(worldUp.Vec4(0)).Vec3()
	return Transform{
		Position:    position,
		Orientation: lookAt(position, target, up),
	}
}

// lookAt returns the orientation that points local -Z from eye at target.
// World up resolves roll; fallbackUp is used when the view direction is parallel to world up.
func lookAt(eye, target, fallbackUp mgl32.Vec3) mgl32.Quat {
	forward := target.Sub(eye).Normalize()

	right := forward.Cross(worldUp)
	if right.Len() < parallelEpsilon {
		right = forward.Cross(fallbackUp)
	}
	right = right.Normalize()
	up := right.Cross(forward)

	basis := mgl32.Mat3FromCols(right, up, forward.Mul(-1))
	return mgl32.Mat4ToQuat(basis.Mat4()).Normalize()
}
