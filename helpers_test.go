package bounds

import (
	"github.com/akmonengine/bounds/screen"
)

// orthoContext projects (x, y, z) to (x, y) on a flat terrain
type orthoContext struct {
	viewport screen.Rect
	height   int
	plane    int

	projections int
	heightCalls []heightCall
}

type heightCall struct {
	x, z, plane int
}

func newOrthoContext(viewport screen.Rect, height int) *orthoContext {
	return &orthoContext{viewport: viewport, height: height}
}

func (c *orthoContext) WorldToScreen(x, y, z int) screen.Point {
	c.projections++
	return screen.Point{X: x, Y: y}
}

func (c *orthoContext) InViewport(p screen.Point) bool {
	return c.viewport.Contains(p)
}

func (c *orthoContext) TileHeight(x, z, plane int) int {
	c.heightCalls = append(c.heightCalls, heightCall{x, z, plane})
	return c.height
}

func (c *orthoContext) Plane() int {
	return c.plane
}

// readOnlyContext is orthoContext without bookkeeping, for concurrent tests
type readOnlyContext struct {
	viewport screen.Rect
}

func (c readOnlyContext) WorldToScreen(x, y, z int) screen.Point {
	return screen.Point{X: x, Y: y}
}

func (c readOnlyContext) InViewport(p screen.Point) bool { return c.viewport.Contains(p) }

func (c readOnlyContext) TileHeight(x, z, plane int) int { return 0 }

func (c readOnlyContext) Plane() int { return 0 }

// fixedRandom always returns the same value, clamped to the requested range
type fixedRandom int

func (f fixedRandom) IntN(lo, hi int) int {
	return min(max(int(f), lo), hi-1)
}

var wideViewport = screen.NewRect(-1000, -1000, 4000, 4000)
