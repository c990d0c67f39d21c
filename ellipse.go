package bounce

import (
	"math"
	"math/rand/v2"
)

// Ellipse is an axis-aligned elliptical boundary.
type Ellipse struct {
	Center Point
	// Radii holds the horizontal and vertical radius.
	Radii Vec2
}

var _ Boundary = Ellipse{}

// DefaultEllipseRadii are the radii of the ellipse boundary until changed.
var DefaultEllipseRadii = Vec(300, 200)

// NewEllipse returns an ellipse with the given center and radii. Negative
// radii are made positive.
func NewEllipse(center Point, radii Vec2) Ellipse {
	return Ellipse{
		Center: center,
		Radii:  Vec(math.Abs(radii.X), math.Abs(radii.Y)),
	}
}

func (e Ellipse) Shape() Shape { return ShapeEllipse }

// Implicit evaluates (dx/a)² + (dy/b)² for the offset of pt from the center.
// It is below 1 inside the ellipse, 1 on it and above 1 outside.
func (e Ellipse) Implicit(pt Point) float64 {
	d := pt.Sub(e.Center)
	a, b := e.Radii.Splat()
	return d.X*d.X/(a*a) + d.Y*d.Y/(b*b)
}

func (e Ellipse) BoundingBox() Rect {
	return Rect{
		X0: e.Center.X - e.Radii.X,
		Y0: e.Center.Y - e.Radii.Y,
		X1: e.Center.X + e.Radii.X,
		Y1: e.Center.Y + e.Radii.Y,
	}
}

// Eval returns the point of the ellipse at parametric angle th.
func (e Ellipse) Eval(th float64) Point {
	sin, cos := math.Sincos(th)
	return e.Center.Translate(Vec(cos*e.Radii.X, sin*e.Radii.Y))
}

// Collide implements Boundary. Unlike the circle, the test ignores the
// disc's radius: the disc collides once its center reaches the ellipse. The
// normal is the normalized gradient of the implicit form, and the center is
// pulled back to 99% of the way to the ellipse along the ray from the
// ellipse's center. This is not the nearest point on the ellipse, but is
// close enough for small steps.
func (e Ellipse) Collide(pos Point, vel Vec2, radius float64) (Contact, bool) {
	f := e.Implicit(pos)
	if f < 1 || math.IsNaN(f) {
		return Contact{}, false
	}
	d := pos.Sub(e.Center)
	a, b := e.Radii.Splat()
	n, ok := Vec(d.X/(a*a), d.Y/(b*b)).TryNormalize()
	if !ok {
		return Contact{}, false
	}
	return Contact{
		Normal:   n.Negate(),
		Velocity: Reflect(vel, n),
		Position: e.Center.Translate(d.Mul(0.99 / math.Sqrt(f))),
	}, true
}

func (e Ellipse) Outline() []Point {
	out := make([]Point, outlineSamples)
	for i := range out {
		out[i] = e.Eval(2 * math.Pi * float64(i) / outlineSamples)
	}
	return out
}

// Spawn implements Boundary. The batch is spread along the ellipse around a
// random point of it, using the mean radius to turn Spacing into an angle.
func (e Ellipse) Spawn(rng *rand.Rand, n int, speed float64) []Particle {
	base := rng.Float64() * 2 * math.Pi
	heading := inwardHeading(rng, base)
	step := Spacing / ((e.Radii.X + e.Radii.Y) / 2)
	pos := make([]Point, n)
	for i, off := range offsets(n) {
		pos[i] = e.Eval(base + off/Spacing*step)
	}
	return batch(pos, heading, speed)
}
