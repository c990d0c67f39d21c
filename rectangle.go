package bounce

import (
	"math"
	"math/rand/v2"
)

// Rectangle is an axis-aligned rectangular boundary, normally spanning the
// whole canvas.
type Rectangle struct {
	Rect
}

var _ Boundary = Rectangle{}

// NewRectangle returns the boundary spanning a canvas of the given size.
func NewRectangle(canvas Size) Rectangle {
	return Rectangle{canvas.Rect()}
}

func (r Rectangle) Shape() Shape { return ShapeRectangle }

// Collide implements Boundary. Each axis is handled on its own: touching the
// left or right wall negates the x velocity, touching the top or bottom wall
// negates the y velocity. The disc is then clamped to r inset by its radius.
func (r Rectangle) Collide(pos Point, vel Vec2, radius float64) (Contact, bool) {
	var n Vec2
	hit := false
	if pos.X-radius <= r.X0 || pos.X+radius >= r.X1 {
		hit = true
		if pos.X-radius <= r.X0 {
			n.X += 1
		} else {
			n.X -= 1
		}
		vel.X = -vel.X
	}
	if pos.Y-radius <= r.Y0 || pos.Y+radius >= r.Y1 {
		hit = true
		if pos.Y-radius <= r.Y0 {
			n.Y += 1
		} else {
			n.Y -= 1
		}
		vel.Y = -vel.Y
	}
	if !hit {
		return Contact{}, false
	}
	// An axis that didn't touch a wall is already inside the inset.
	pos = r.Inset(radius).Clamp(pos)
	if nn, ok := n.TryNormalize(); ok {
		n = nn
	}
	return Contact{Normal: n, Velocity: vel, Position: pos}, true
}

func (r Rectangle) Outline() []Point {
	c := r.Corners()
	return c[:]
}

func (r Rectangle) BoundingBox() Rect { return r.Rect }

// Spawn implements Boundary. The batch starts on a random edge, laid out
// along that edge and centered on a random point of it, heading into the
// rectangle.
func (r Rectangle) Spawn(rng *rand.Rand, n int, speed float64) []Particle {
	var origin Point
	var th float64
	horizontal := false
	switch rng.IntN(4) {
	case 0: // top
		origin = Pt(r.X0+rng.Float64()*r.Width(), r.Y0)
		th = rng.Float64() * math.Pi
		horizontal = true
	case 1: // right
		origin = Pt(r.X1, r.Y0+rng.Float64()*r.Height())
		th = math.Pi/2 + rng.Float64()*math.Pi
	case 2: // bottom
		origin = Pt(r.X0+rng.Float64()*r.Width(), r.Y1)
		th = math.Pi + rng.Float64()*math.Pi
		horizontal = true
	default: // left
		origin = Pt(r.X0, r.Y0+rng.Float64()*r.Height())
		th = -math.Pi/2 + rng.Float64()*math.Pi
	}
	pos := make([]Point, n)
	for i, off := range offsets(n) {
		if horizontal {
			pos[i] = origin.Translate(Vec(off, 0))
		} else {
			pos[i] = origin.Translate(Vec(0, off))
		}
	}
	return batch(pos, th, speed)
}
