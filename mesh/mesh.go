// Package mesh triangulates axis-aligned boxes into a fixed 12-triangle surface.
//
// Vertices stay in box-local coordinates: the owner of the mesh adds its world
// anchor at query time, so one mesh serves any number of placements.
//
// Triangle indices are stable: index = face*2 + triangle, faces in the order
// BOTTOM, TOP, FRONT, BACK, LEFT, RIGHT. Callers may index directly into this space.
package mesh

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/vector"
	"github.com/cespare/xxhash/v2"
)

// Face identifies one side of the box
type Face int

const (
	FaceBottom Face = iota
	FaceTop
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
)

const (
	FaceCount        = 6
	TrianglesPerFace = 2
	TriangleCount    = FaceCount * TrianglesPerFace
)

// faces lists each side as a planar quad of corner indices, see actor.Box.Corners
var faces = [FaceCount][4]int{
	FaceBottom: {0, 1, 2, 3},
	FaceTop:    {4, 5, 6, 7},
	FaceFront:  {1, 5, 6, 2},
	FaceBack:   {3, 7, 4, 0},
	FaceLeft:   {0, 4, 5, 1},
	FaceRight:  {2, 6, 7, 3},
}

// fan splits a quad in two triangles. Winding is not consistent across faces,
// the containment test does not depend on it.
var fan = [TrianglesPerFace][3]int{
	{0, 1, 3},
	{2, 3, 1},
}

// Triangle holds 3 box-local vertices
type Triangle [3]vector.Vector3

// Centroid averages the vertices per axis with truncating integer division
func (t Triangle) Centroid() vector.Vector3 {
	return vector.New(
		(t[0].X+t[1].X+t[2].X)/3,
		(t[0].Y+t[1].Y+t[2].Y)/3,
		(t[0].Z+t[1].Z+t[2].Z)/3,
	)
}

// Rows returns the vertices in row form
func (t Triangle) Rows() [3][3]int {
	return [3][3]int{t[0].Row(), t[1].Row(), t[2].Row()}
}

// Mesh is an ordered, read-only list of triangles
type Mesh struct {
	Triangles []Triangle
}

// Triangulate builds the surface mesh of a box
func Triangulate(box actor.Box) *Mesh {
	corners := box.Corners()
	triangles := make([]Triangle, TriangleCount)

	for f, side := range faces {
		for t, tri := range fan {
			triangles[f*TrianglesPerFace+t] = Triangle{
				corners[side[tri[0]]],
				corners[side[tri[1]]],
				corners[side[tri[2]]],
			}
		}
	}

	return &Mesh{Triangles: triangles}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Face returns the side a triangle index belongs to
func (m *Mesh) Face(index int) Face {
	return Face(index / TrianglesPerFace)
}

// Checksum hashes the row form of every vertex in mesh order
func (m *Mesh) Checksum() uint64 {
	digest := xxhash.New()
	buf := make([]byte, 0, len(m.Triangles)*9*8)
	for _, triangle := range m.Triangles {
		for _, row := range triangle.Rows() {
			for _, c := range row {
				buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(c)))
			}
		}
	}
	_, _ = digest.Write(buf)
	return digest.Sum64()
}

// Cache is either unbuilt or holds a built mesh. The transition happens once.
type Cache struct {
	once sync.Once
	mesh atomic.Pointer[Mesh]
}

// Build triangulates the box on first call; later calls return the cached mesh
// and ignore their argument.
func (c *Cache) Build(box actor.Box) *Mesh {
	c.once.Do(func() {
		c.mesh.Store(Triangulate(box))
	})
	return c.mesh.Load()
}

// Built reports whether the mesh exists
func (c *Cache) Built() bool {
	return c.mesh.Load() != nil
}

// Mesh returns the built mesh, or nil
func (c *Cache) Mesh() *Mesh {
	return c.mesh.Load()
}
