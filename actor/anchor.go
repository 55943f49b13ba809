package actor

// Anchor places a bounding volume on the ground plane.
// The same volume can be anchored to different entities without rebuilding its mesh.
type Anchor interface {
	X() int
	Z() int
}

// Tile anchors a volume to a grid tile.
// Size is the tile edge in world units; the anchor sits on the tile centre.
type Tile struct {
	GridX, GridZ int
	Size         int
}

func (t Tile) X() int {
	return t.GridX*t.Size + t.Size/2
}

func (t Tile) Z() int {
	return t.GridZ*t.Size + t.Size/2
}

// Point anchors a volume to fixed world coordinates
type Point struct {
	WorldX, WorldZ int
}

func (p Point) X() int { return p.WorldX }

func (p Point) Z() int { return p.WorldZ }
