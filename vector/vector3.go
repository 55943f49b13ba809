// Package vector holds the integer world-space coordinate used to assemble
// bounding volume meshes.
package vector

import "github.com/go-gl/mathgl/mgl64"

// Vector3 is an integer coordinate in world units.
// X and Z span the ground plane, Y is the vertical axis.
type Vector3 struct {
	X, Y, Z int
}

// New creates a Vector3
func New(x, y, z int) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Row returns the coordinates as an ordered (x, y, z) triple
func (v Vector3) Row() [3]int {
	return [3]int{v.X, v.Y, v.Z}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Vec3 converts to a floating point vector for projection math
func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}
