package bounce

import (
	"fmt"
	"math"
)

// Point is a position on the canvas. The canvas is y-down, with the origin in
// the top left corner.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.XX*pt.X + aff.XY*pt.Y + aff.X0,
		Y: aff.YX*pt.X + aff.YY*pt.Y + aff.Y0,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Polar returns the angle and distance of pt as seen from center. The angle is
// in (−π, π], measured clockwise from the positive x axis in the y-down
// canvas.
func (pt Point) Polar(center Point) (th, r float64) {
	d := pt.Sub(center)
	return d.Angle(), d.Hypot()
}

// PointOnCircle returns the point at distance r and angle th from center.
func PointOnCircle(center Point, r, th float64) Point {
	return center.Translate(VecFromAngle(th).Mul(r))
}
