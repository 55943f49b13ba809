package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a position in 3D space.
// It anchors a volume to a moving entity, truncating its position to world units.
type Transform struct {
	Position mgl64.Vec3
}

// NewTransform creates a transform at the origin
func NewTransform() *Transform {
	return &Transform{
		Position: mgl64.Vec3{0, 0, 0},
	}
}

// MoveTo updates the position; volumes anchored to the transform follow on their next query
func (t *Transform) MoveTo(position mgl64.Vec3) {
	t.Position = position
}

func (t *Transform) X() int {
	return int(math.Trunc(t.Position.X()))
}

func (t *Transform) Z() int {
	return int(math.Trunc(t.Position.Z()))
}
