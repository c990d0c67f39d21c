package bounce

import (
	"math"
	"math/rand/v2"
)

// Circle is a circular boundary.
type Circle struct {
	Center Point
	Radius float64
}

var _ Boundary = Circle{}

// NewCircle returns the default circular boundary for a canvas: centered, with
// a 20 unit margin to the nearest canvas edge.
func NewCircle(canvas Size) Circle {
	return Circle{
		Center: canvas.Center(),
		Radius: canvas.MinSide()/2 - 20,
	}
}

func (c Circle) Shape() Shape { return ShapeCircle }

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

// Collide implements Boundary. The disc touches the wall when its distance
// from the center plus its radius reaches the circle's radius. The normal is
// exact, and the disc is moved back along it by the overlap.
func (c Circle) Collide(pos Point, vel Vec2, radius float64) (Contact, bool) {
	d := pos.Sub(c.Center)
	dist := d.Hypot()
	if dist+radius < c.Radius {
		return Contact{}, false
	}
	// Outward normal. At the center every direction is as good as any other,
	// so there is nothing to reflect off.
	n, ok := d.TryNormalize()
	if !ok {
		return Contact{}, false
	}
	overlap := dist + radius - c.Radius
	return Contact{
		Normal:   n.Negate(),
		Velocity: Reflect(vel, n),
		Position: pos.Translate(n.Mul(-overlap)),
	}, true
}

func (c Circle) Outline() []Point {
	out := make([]Point, outlineSamples)
	for i := range out {
		out[i] = PointOnCircle(c.Center, c.Radius, 2*math.Pi*float64(i)/outlineSamples)
	}
	return out
}

// Spawn implements Boundary. The batch is spread along the arc around a
// random point of the circle, Spacing apart.
func (c Circle) Spawn(rng *rand.Rand, n int, speed float64) []Particle {
	base := rng.Float64() * 2 * math.Pi
	th := inwardHeading(rng, base)
	step := Spacing / c.Radius
	pos := make([]Point, n)
	for i, off := range offsets(n) {
		pos[i] = PointOnCircle(c.Center, c.Radius, base+off/Spacing*step)
	}
	return batch(pos, th, speed)
}
