package bounds

import "github.com/akmonengine/bounds/screen"

// Barycentric tests whether p lies inside the screen triangle (a, b, c).
//
// Points on the edges through a are inside (u >= 0, v >= 0); points on the
// far edge bc are outside (u+v < 1), and so are b and c themselves.
//
// The denominator is not guarded. A collinear or zero-area triangle makes it
// infinite, u and v become ±Inf or NaN and every comparison fails, so a
// degenerate triangle never contains anything.
func Barycentric(p, a, b, c screen.Point) bool {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d02 := v0.Dot(v2)
	d11 := v1.Dot(v1)
	d12 := v1.Dot(v2)

	// Conversions round each product to float32 before the sum.
	denom := 1 / float32(d00*d11-d01*d01)
	u := float32(float32(d11*d02-d01*d12) * denom)
	v := float32(float32(d00*d12-d01*d02) * denom)

	return u >= 0 && v >= 0 && u+v < 1
}
