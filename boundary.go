package bounce

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Shape names the kind of boundary particles bounce inside of.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeCircle
	ShapeEllipse
	ShapeIrregular
)

var shapeNames = [...]string{
	ShapeRectangle: "rectangle",
	ShapeCircle:    "circle",
	ShapeEllipse:   "ellipse",
	ShapeIrregular: "irregular",
}

// Shapes lists all shapes in selection order.
var Shapes = []Shape{ShapeRectangle, ShapeCircle, ShapeEllipse, ShapeIrregular}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// ParseShape returns the shape with the given name. Matching ignores case and
// surrounding space.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == name {
			return Shape(s), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(shapeNames) {
		return nil, fmt.Errorf("invalid shape %d", int(s))
	}
	return []byte(shapeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Contact describes a resolved collision between a particle and a boundary.
type Contact struct {
	// Normal is the inward-pointing unit normal at the contact. For
	// rectangles hitting a corner it is the normalized sum of both walls'
	// normals.
	Normal Vec2
	// Velocity is the particle's velocity after reflection.
	Velocity Vec2
	// Position is the particle's position after penetration correction.
	Position Point
}

// Boundary is a closed region particles cannot leave.
type Boundary interface {
	// Shape reports the kind of boundary.
	Shape() Shape

	// Collide tests a disc of the given radius at pos, moving with velocity
	// vel, against the boundary. If the disc touches or crosses the
	// boundary, Collide returns the reflected velocity and corrected
	// position and reports true. Otherwise it reports false and the Contact
	// is meaningless.
	//
	// Collide never produces NaN values; degenerate configurations, such as
	// a disc exactly at the center of a curved boundary, report no contact.
	Collide(pos Point, vel Vec2, radius float64) (Contact, bool)

	// Outline returns the boundary as a closed polyline, for drawing. The
	// returned slice must not be modified.
	Outline() []Point

	// BoundingBox returns the smallest rectangle enclosing the boundary.
	BoundingBox() Rect

	// Spawn creates a batch of n particles at a random location on the
	// boundary, all heading in the same random inward direction at the
	// given speed.
	Spawn(rng *rand.Rand, n int, speed float64) []Particle
}

// Reflect reflects v across the unit normal n, v' = v − 2(v·n)n. The
// magnitude of v is preserved.
func Reflect(v, n Vec2) Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// outlineSamples is the resolution used when sampling curved boundaries for
// drawing.
const outlineSamples = 128
