package bounds

import "github.com/akmonengine/bounds/screen"

// Context is the world a volume is projected into.
// Implementations are expected to be synchronous and free of side effects.
type Context interface {
	// WorldToScreen projects a world coordinate; the result may lie off screen
	WorldToScreen(x, y, z int) screen.Point
	// InViewport reports whether a screen point is currently visible
	InViewport(p screen.Point) bool
	// TileHeight returns the terrain elevation of a world column on a plane
	TileHeight(x, z, plane int) int
	// Plane returns the active floor
	Plane() int
}

// Random is a uniform integer source
type Random interface {
	// IntN returns a value in [lo, hi)
	IntN(lo, hi int) int
}
