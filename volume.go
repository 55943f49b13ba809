package bounds

import (
	"github.com/akmonengine/bounds/actor"
	"github.com/akmonengine/bounds/log"
	"github.com/akmonengine/bounds/mesh"
	"github.com/akmonengine/bounds/screen"
	"github.com/akmonengine/bounds/vector"
	"github.com/google/uuid"
)

// Volume is a box of world space anchored to an entity and projected on screen.
//
// The mesh is expressed relative to the anchor. X and Z come from the anchor,
// Y is read from the terrain on every query so the volume follows the ground.
//
// Queries return (point, true) for a visible point and (screen.Sentinel, false)
// otherwise. An out-of-range index and an off-viewport projection are reported
// the same way; use screen.OrSentinel for the legacy single-value form.
type Volume struct {
	id     uuid.UUID
	ctx    Context
	anchor actor.Anchor
	rng    Random
	box    actor.Box
	cache  mesh.Cache
	logger log.Log
}

type Option func(*Volume)

// WithLogger sets the logger used to report why a query found no point
func WithLogger(logger log.Log) Option {
	return func(v *Volume) {
		v.logger = logger
	}
}

// WithID replaces the generated identifier
func WithID(id uuid.UUID) Option {
	return func(v *Volume) {
		v.id = id
	}
}

// New creates a volume from two opposite corners, given in any order per axis,
// and triangulates it immediately.
func New(ctx Context, anchor actor.Anchor, rng Random, x1, x2, y1, y2, z1, z2 int, opts ...Option) *Volume {
	v := &Volume{
		id:     uuid.New(),
		ctx:    ctx,
		anchor: anchor,
		rng:    rng,
		box:    actor.NewBox(x1, x2, y1, y2, z1, z2),
		logger: log.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(log.Stringer("volume", v.id))
	v.cache.Build(v.box)

	return v
}

func (v *Volume) ID() uuid.UUID {
	return v.id
}

// Box returns the normalized box in anchor-local coordinates
func (v *Volume) Box() actor.Box {
	return v.box
}

func (v *Volume) Mesh() *mesh.Mesh {
	return v.cache.Build(v.box)
}

func (v *Volume) TriangleCount() int {
	return v.Mesh().TriangleCount()
}

// WorldBounds returns the box placed at the current anchor
func (v *Volume) WorldBounds() actor.Box {
	return v.box.Translate(v.origin())
}

// Centroid projects the centroid of the triangle at index
func (v *Volume) Centroid(index int) (screen.Point, bool) {
	triangles := v.Mesh().Triangles
	if index < 0 || index >= len(triangles) {
		v.logger.Debug("centroid index out of range",
			log.Int("index", index),
			log.Int("triangles", len(triangles)),
		)
		return screen.Sentinel, false
	}

	p := v.project(v.origin().Add(triangles[index].Centroid()))
	if !v.ctx.InViewport(p) {
		v.logger.Debug("centroid outside viewport", log.Int("index", index), log.Any("point", p))
		return screen.Sentinel, false
	}
	return p, true
}

// NextPoint returns the centroid of a visible triangle, starting the search
// at a random index and wrapping around once.
func (v *Volume) NextPoint() (screen.Point, bool) {
	faces := v.TriangleCount()
	if faces == 0 {
		return screen.Sentinel, false
	}

	mark := v.rng.IntN(0, faces)
	origin := v.origin()
	if p, ok := v.firstVisibleCentroid(origin, mark, faces); ok {
		return p, true
	}
	if p, ok := v.firstVisibleCentroid(origin, 0, mark); ok {
		return p, true
	}

	v.logger.Debug("no visible triangle", log.Int("mark", mark))
	return screen.Sentinel, false
}

// CenterPoint projects the mean of the triangle centroids.
// Each centroid is truncated before averaging, as is the mean.
func (v *Volume) CenterPoint() (screen.Point, bool) {
	triangles := v.Mesh().Triangles
	faces := len(triangles)
	if faces == 0 {
		return screen.Sentinel, false
	}

	var sum vector.Vector3
	for _, triangle := range triangles {
		sum = sum.Add(triangle.Centroid())
	}
	avg := vector.New(sum.X/faces, sum.Y/faces, sum.Z/faces)

	p := v.project(v.origin().Add(avg))
	if !v.ctx.InViewport(p) {
		v.logger.Debug("center outside viewport", log.Any("point", p))
		return screen.Sentinel, false
	}
	return p, true
}

// Contains checks whether a screen point falls inside any projected triangle
func (v *Volume) Contains(p screen.Point) bool {
	origin := v.origin()
	for _, triangle := range v.Mesh().Triangles {
		a := v.project(origin.Add(triangle[0]))
		b := v.project(origin.Add(triangle[1]))
		c := v.project(origin.Add(triangle[2]))
		if Barycentric(p, a, b, c) {
			return true
		}
	}
	return false
}

// origin resolves the anchor, with the terrain height of its column on the current plane
func (v *Volume) origin() vector.Vector3 {
	x, z := v.anchor.X(), v.anchor.Z()
	return vector.New(x, v.ctx.TileHeight(x, z, v.ctx.Plane()), z)
}

func (v *Volume) project(world vector.Vector3) screen.Point {
	return v.ctx.WorldToScreen(world.X, world.Y, world.Z)
}

// firstVisibleCentroid scans [from, to) for a centroid inside the viewport
func (v *Volume) firstVisibleCentroid(origin vector.Vector3, from, to int) (screen.Point, bool) {
	triangles := v.Mesh().Triangles
	for index := from; index < to; index++ {
		p := v.project(origin.Add(triangles[index].Centroid()))
		if v.ctx.InViewport(p) {
			return p, true
		}
	}
	return screen.Sentinel, false
}
