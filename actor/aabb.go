package actor

import "github.com/akmonengine/bounds/vector"

// Box represents an axis-aligned box on integer world coordinates.
// Start holds the minimum of every axis and End the maximum.
type Box struct {
	Start vector.Vector3
	End   vector.Vector3
}

// NewBox builds a Box from two opposite corners given in any order per axis
func NewBox(x1, x2, y1, y2, z1, z2 int) Box {
	return Box{
		Start: vector.New(min(x1, x2), min(y1, y2), min(z1, z2)),
		End:   vector.New(max(x1, x2), max(y1, y2), max(z1, z2)),
	}
}

// Corners returns the 8 corners of the box.
// The lower face (Start.Y) comes first, walked from origin toward End.Z then End.X,
// and the upper face (End.Y) mirrors it.
func (b Box) Corners() [8]vector.Vector3 {
	s, e := b.Start, b.End
	return [8]vector.Vector3{
		{X: s.X, Y: s.Y, Z: s.Z},
		{X: s.X, Y: s.Y, Z: e.Z},
		{X: e.X, Y: s.Y, Z: e.Z},
		{X: e.X, Y: s.Y, Z: s.Z},
		{X: s.X, Y: e.Y, Z: s.Z},
		{X: s.X, Y: e.Y, Z: e.Z},
		{X: e.X, Y: e.Y, Z: e.Z},
		{X: e.X, Y: e.Y, Z: s.Z},
	}
}

// Extent returns the size of the box on each axis
func (b Box) Extent() vector.Vector3 {
	return b.End.Sub(b.Start)
}

// IsDegenerate reports a zero extent on at least one axis
func (b Box) IsDegenerate() bool {
	e := b.Extent()
	return e.X == 0 || e.Y == 0 || e.Z == 0
}

// Translate moves the box by offset
func (b Box) Translate(offset vector.Vector3) Box {
	return Box{Start: b.Start.Add(offset), End: b.End.Add(offset)}
}

// ContainsPoint checks if a point is inside the box, bounds included
func (b Box) ContainsPoint(point vector.Vector3) bool {
	return point.X >= b.Start.X && point.X <= b.End.X &&
		point.Y >= b.Start.Y && point.Y <= b.End.Y &&
		point.Z >= b.Start.Z && point.Z <= b.End.Z
}

// Overlaps checks if two boxes overlap
func (b Box) Overlaps(other Box) bool {
	// Boxes overlap if they overlap on all three axes
	return b.End.X >= other.Start.X && b.Start.X <= other.End.X &&
		b.End.Y >= other.Start.Y && b.Start.Y <= other.End.Y &&
		b.End.Z >= other.Start.Z && b.Start.Z <= other.End.Z
}
