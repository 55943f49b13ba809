package scene

import "github.com/akmonengine/bounds/screen"

// Orthographic drops the Z axis: world (x, y, z) maps to screen (x, y)
type Orthographic struct{}

func (Orthographic) WorldToScreen(x, y, z int) screen.Point {
	return screen.Point{X: x, Y: y}
}
