package bounce

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ParticleRadius is the radius of every particle.
const ParticleRadius = 6

// Spacing is the distance between neighbouring particles of a freshly spawned
// batch.
const Spacing = 2

// Swatch is an entry of [Palette].
type Swatch uint8

// Palette holds the particle colors. Particle i of a batch uses swatch
// i mod len(Palette).
var Palette = mustPalette(
	"#e94560", "#ff6b6b", "#ee5a6f", "#ff4757", "#ff6348",
	"#ff7979", "#eb4d4b", "#f368e0", "#ff9ff3", "#feca57",
)

func mustPalette(hex ...string) []colorful.Color {
	out := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// SwatchFor returns the swatch of the i-th particle in a batch.
func SwatchFor(i int) Swatch {
	return Swatch(i % len(Palette))
}

// Color returns the swatch's color.
func (s Swatch) Color() colorful.Color {
	return Palette[int(s)%len(Palette)]
}

// Particle is a disc moving in a straight line until it hits the boundary.
type Particle struct {
	Position Point
	// Velocity is the displacement per tick.
	Velocity Vec2
	Radius   float64
	Swatch   Swatch
	// Path records every position the particle has been at, starting with its
	// spawn position. It only grows.
	Path []Point
}

// NewParticle returns a particle at pos whose path starts at pos.
func NewParticle(pos Point, vel Vec2, swatch Swatch) Particle {
	return Particle{
		Position: pos,
		Velocity: vel,
		Radius:   ParticleRadius,
		Swatch:   swatch,
		Path:     []Point{pos},
	}
}

// Speed returns the magnitude of the particle's velocity.
func (p *Particle) Speed() float64 {
	return p.Velocity.Hypot()
}

// SetSpeed rescales the velocity to the given magnitude while keeping its
// direction. Particles at rest stay at rest.
func (p *Particle) SetSpeed(speed float64) {
	cur := p.Speed()
	if cur > 0 && !math.IsInf(cur, 0) {
		p.Velocity = p.Velocity.Mul(speed / cur)
	}
}

// advance moves the particle by one tick, resolves a collision with b and
// records the resulting position. It reports whether the particle collided.
func (p *Particle) advance(b Boundary) bool {
	p.Position = p.Position.Translate(p.Velocity)
	c, hit := b.Collide(p.Position, p.Velocity, p.Radius)
	if hit {
		p.Velocity = c.Velocity
		p.Position = c.Position
	}
	p.Path = append(p.Path, p.Position)
	return hit
}
