package image

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// Coordinates are image coordinates: x grows right, y grows down.
type Affine struct {
	a, b, c float64 // x' = ax + by + c
	d, e, f float64 // y' = dx + ey + f
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Rotate returns a rotation by angle radians around the origin.
// With y pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// Multiply returns a * other: other is applied first, then a.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.a*a.e - a.b*a.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}
	inv := 1.0 / det
	return Affine{
		a: a.e * inv,
		b: -a.b * inv,
		c: (a.b*a.f - a.c*a.e) * inv,
		d: -a.d * inv,
		e: a.a * inv,
		f: (a.c*a.d - a.a*a.f) * inv,
	}, true
}

// TransformPoint applies the transformation to (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// RotateAt returns a rotation by angle radians around (cx, cy).
func RotateAt(angle, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// RotateCCWAt returns a rotation that turns the picture counter-clockwise
// on screen by deg degrees around (cx, cy).
func RotateCCWAt(deg, cx, cy float64) Affine {
	return RotateAt(-deg*math.Pi/180, cx, cy)
}

// Aff3 converts the matrix to the form used by golang.org/x/image/draw.
func (a Affine) Aff3() f64.Aff3 {
	return f64.Aff3{a.a, a.b, a.c, a.d, a.e, a.f}
}
