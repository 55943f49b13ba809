package scene

import (
	"github.com/akmonengine/bounds/screen"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective projector looking from Eye toward Target.
// It renders into a Width x Height viewport whose top-left pixel is Origin.
type Camera struct {
	Eye, Target, Up mgl64.Vec3
	FovY            float64 // vertical field of view, degrees
	Near, Far       float64
	Width, Height   int
	Origin          screen.Point

	modelview  mgl64.Mat4
	projection mgl64.Mat4
}

// NewCamera creates a camera and computes its matrices
func NewCamera(eye, target, up mgl64.Vec3, fovY, near, far float64, width, height int) *Camera {
	c := &Camera{
		Eye:    eye,
		Target: target,
		Up:     up,
		FovY:   fovY,
		Near:   near,
		Far:    far,
		Width:  width,
		Height: height,
	}
	c.Update()

	return c
}

// Update recomputes the matrices after a field changed
func (c *Camera) Update() {
	aspect := float64(c.Width) / float64(c.Height)
	c.modelview = mgl64.LookAtV(c.Eye, c.Target, c.Up)
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// WorldToScreen projects a world point, truncating to pixels.
// Points outside the [Near, Far] depth range project to screen.Sentinel.
func (c *Camera) WorldToScreen(x, y, z int) screen.Point {
	obj := mgl64.Vec3{float64(x), float64(y), float64(z)}

	depth := -c.modelview.Mul4x1(obj.Vec4(1)).Z()
	if depth < c.Near || depth > c.Far {
		return screen.Sentinel
	}

	win := mgl64.Project(obj, c.modelview, c.projection, 0, 0, c.Width, c.Height)
	return screen.Point{
		X: c.Origin.X + int(win.X()),
		Y: c.Origin.Y + int(float64(c.Height)-win.Y()),
	}
}
