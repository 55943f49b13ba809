// Package screen holds 2D viewport coordinates.
package screen

// Point is a pixel position, origin at the top-left of the viewport
type Point struct {
	X, Y int
}

// Sentinel is returned by the legacy query surface in place of a point
// that is out of range or outside the viewport.
var Sentinel = Point{X: -1, Y: -1}

// OrSentinel collapses an optional point to the legacy form
func OrSentinel(p Point, ok bool) Point {
	if !ok {
		return Sentinel
	}
	return p
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Dot is the integer dot product of p and other seen as 2D vectors
func (p Point) Dot(other Point) int {
	return p.X*other.X + p.Y*other.Y
}

// Rect is a viewport region, Min inclusive and Max exclusive
type Rect struct {
	Min, Max Point
}

// NewRect creates a viewport at (x, y) with the given size
func NewRect(x, y, width, height int) Rect {
	return Rect{Min: Point{x, y}, Max: Point{x + width, y + height}}
}

// Contains checks whether the point lies inside the viewport
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) Width() int { return r.Max.X - r.Min.X }

func (r Rect) Height() int { return r.Max.Y - r.Min.Y }
