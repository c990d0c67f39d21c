package bounce

import "math"

// Affine is a 2D affine transform. It maps (x, y) to
//
//	(XX·x + XY·y + X0, YX·x + YY·y + Y0)
//
// Transforms rotate and move irregular boundaries, and map the canvas onto
// output surfaces such as terminal cells.
type Affine struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// Identity maps every point to itself.
var Identity = Affine{XX: 1, YY: 1}

// Scale scales x by sx and y by sy.
func Scale(sx, sy float64) Affine {
	return Affine{XX: sx, YY: sy}
}

// Translate moves points by v.
func Translate(v Vec2) Affine {
	return Affine{XX: 1, YY: 1, X0: v.X, Y0: v.Y}
}

// Rotate rotates by th radians about the origin, turning the positive x axis
// toward positive y. On the y-down canvas that is clockwise.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{XX: cos, YX: sin, XY: -sin, YY: cos}
}

// RotateAbout rotates by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Then returns the transform that applies aff first and next second.
func (aff Affine) Then(next Affine) Affine {
	return Affine{
		XX: next.XX*aff.XX + next.XY*aff.YX,
		YX: next.YX*aff.XX + next.YY*aff.YX,
		XY: next.XX*aff.XY + next.XY*aff.YY,
		YY: next.YX*aff.XY + next.YY*aff.YY,
		X0: next.XX*aff.X0 + next.XY*aff.Y0 + next.X0,
		Y0: next.YX*aff.X0 + next.YY*aff.Y0 + next.Y0,
	}
}

func (aff Affine) ThenRotate(th float64) Affine {
	return aff.Then(Rotate(th))
}

func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.X0 += v.X
	aff.Y0 += v.Y
	return aff
}

// Invert returns the inverse transform. A singular transform yields NaNs or
// infinities.
func (aff Affine) Invert() Affine {
	det := aff.XX*aff.YY - aff.YX*aff.XY
	return Affine{
		XX: aff.YY / det,
		YX: -aff.YX / det,
		XY: -aff.XY / det,
		YY: aff.XX / det,
		X0: (aff.XY*aff.Y0 - aff.YY*aff.X0) / det,
		Y0: (aff.YX*aff.X0 - aff.XX*aff.Y0) / det,
	}
}
