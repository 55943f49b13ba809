// Package scene provides concrete worlds for bounding volumes to be projected into:
// projectors, terrains and a seeded random source.
package scene

import "github.com/akmonengine/bounds/screen"

// Projector converts world coordinates to screen coordinates
type Projector interface {
	WorldToScreen(x, y, z int) screen.Point
}

// Terrain returns the ground elevation of a world column
type Terrain interface {
	TileHeight(x, z, plane int) int
}

// Scene composes a projector, a viewport and a terrain on a given plane.
// It is read-only once built and safe for concurrent queries.
type Scene struct {
	Projector    Projector
	Viewport     screen.Rect
	Terrain      Terrain
	CurrentPlane int
}

func (s *Scene) WorldToScreen(x, y, z int) screen.Point {
	return s.Projector.WorldToScreen(x, y, z)
}

func (s *Scene) InViewport(p screen.Point) bool {
	return s.Viewport.Contains(p)
}

// TileHeight reads the terrain; a scene without terrain is flat at 0
func (s *Scene) TileHeight(x, z, plane int) int {
	if s.Terrain == nil {
		return 0
	}
	return s.Terrain.TileHeight(x, z, plane)
}

func (s *Scene) Plane() int {
	return s.CurrentPlane
}
