package bounce

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Defaults for a simulation.
const (
	DefaultParticles = 1
	DefaultSpeed     = 3
)

// DefaultCanvas is the canvas size used when none is given.
var DefaultCanvas = Sz(800, 600)

// Options configures a new [Simulation]. Start from [DefaultOptions]: New
// replaces invalid values with their defaults, but zero is a valid Amplitude
// and a valid Seed and is kept as given.
type Options struct {
	Canvas Size
	Shape  Shape
	// Particles is the number of particles per batch.
	Particles int
	// Speed is the magnitude of particle velocities, in canvas units per tick.
	Speed        float64
	EllipseRadii Vec2
	// Amplitude and ControlPoints configure irregular boundaries; see
	// IrregularOptions.
	Amplitude     float64
	ControlPoints int
	// Seed seeds the generation of irregular boundaries.
	Seed uint32
	// SpawnSeed seeds spawn positions and headings, and the seeds picked by
	// Regenerate. Zero picks a seed from the clock.
	SpawnSeed uint64
}

// DefaultOptions returns the options of a freshly opened visualizer.
func DefaultOptions() Options {
	return Options{
		Canvas:        DefaultCanvas,
		Shape:         ShapeRectangle,
		Particles:     DefaultParticles,
		Speed:         DefaultSpeed,
		EllipseRadii:  DefaultEllipseRadii,
		Amplitude:     DefaultAmplitude,
		ControlPoints: DefaultControlPoints,
		Seed:          DefaultSeed,
	}
}

func (o Options) sanitize() Options {
	def := DefaultOptions()
	if o.Canvas.IsEmpty() {
		o.Canvas = def.Canvas
	}
	if o.Shape < 0 || int(o.Shape) >= len(shapeNames) {
		o.Shape = def.Shape
	}
	if o.Particles <= 0 {
		o.Particles = DefaultParticles
	}
	if !(o.Speed > 0) || math.IsInf(o.Speed, 0) {
		o.Speed = def.Speed
	}
	if !(o.EllipseRadii.X > 0) {
		o.EllipseRadii.X = def.EllipseRadii.X
	}
	if !(o.EllipseRadii.Y > 0) {
		o.EllipseRadii.Y = def.EllipseRadii.Y
	}
	if math.IsNaN(o.Amplitude) {
		o.Amplitude = def.Amplitude
	}
	if o.ControlPoints < 3 {
		o.ControlPoints = DefaultControlPoints
	}
	return o
}

// ParseParticleCount parses a particle count typed by the user, falling back
// to 1 for anything that is not a positive integer.
func ParseParticleCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return DefaultParticles
	}
	return n
}

// ParseControlPointCount parses a control point count typed by the user,
// falling back to 12 for anything that is not an integer of at least 3.
func ParseControlPointCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 3 {
		return DefaultControlPoints
	}
	return n
}

// Simulation holds the complete state of the visualizer: the active boundary,
// the particles and the settings that produced them. It is not safe for
// concurrent use; a single owner drives it one tick at a time.
type Simulation struct {
	canvas    Size
	shape     Shape
	boundary  Boundary
	particles []Particle

	count     int
	speed     float64
	radii     Vec2
	amplitude float64
	controls  int
	seed      uint32

	rng    *rand.Rand
	editor Editor
	ticks  int
}

// New returns a simulation with a spawned batch of particles.
func New(opts Options) *Simulation {
	opts = opts.sanitize()
	spawnSeed := opts.SpawnSeed
	if spawnSeed == 0 {
		spawnSeed = uint64(time.Now().UnixNano())
	}
	s := &Simulation{
		canvas:    opts.Canvas,
		shape:     opts.Shape,
		count:     opts.Particles,
		speed:     opts.Speed,
		radii:     opts.EllipseRadii,
		amplitude: opts.Amplitude,
		controls:  opts.ControlPoints,
		seed:      opts.Seed,
		rng:       rand.New(rand.NewPCG(spawnSeed, spawnSeed>>1|1)),
	}
	s.rebuild()
	s.Reset()
	return s
}

// rebuild replaces the boundary with a fresh one of the current shape.
func (s *Simulation) rebuild() {
	s.editor.Release()
	switch s.shape {
	case ShapeCircle:
		s.boundary = NewCircle(s.canvas)
	case ShapeEllipse:
		s.boundary = NewEllipse(s.canvas.Center(), s.radii)
	case ShapeIrregular:
		s.boundary = GenerateIrregular(s.IrregularOptions(), s.seed)
	default:
		s.boundary = NewRectangle(s.canvas)
	}
}

// IrregularOptions returns the options irregular boundaries are currently
// generated with.
func (s *Simulation) IrregularOptions() IrregularOptions {
	opts := DefaultIrregularOptions(s.canvas)
	opts.Amplitude = s.amplitude
	opts.Count = s.controls
	return opts
}

func (s *Simulation) Canvas() Size           { return s.canvas }
func (s *Simulation) Shape() Shape           { return s.shape }
func (s *Simulation) Boundary() Boundary     { return s.boundary }
func (s *Simulation) Speed() float64         { return s.speed }
func (s *Simulation) ParticleCount() int     { return s.count }
func (s *Simulation) EllipseRadii() Vec2     { return s.radii }
func (s *Simulation) Amplitude() float64     { return s.amplitude }
func (s *Simulation) ControlPointCount() int { return s.controls }
func (s *Simulation) Seed() uint32           { return s.seed }

// Ticks returns the number of steps since the particles were last spawned.
func (s *Simulation) Ticks() int { return s.ticks }

// Particles returns the particles. The caller may read but not modify them.
func (s *Simulation) Particles() []Particle { return s.particles }

// Irregular returns the active irregular boundary, or nil if another shape
// is active.
func (s *Simulation) Irregular() *Irregular {
	ir, _ := s.boundary.(*Irregular)
	return ir
}

// Step advances every particle by one tick: it moves the particle by its
// velocity, resolves a collision with the boundary and appends the new
// position to its path. It returns the number of particles that hit the
// boundary.
//
// Fast particles can pass through thin parts of a boundary in a single tick.
func (s *Simulation) Step() int {
	hits := 0
	for i := range s.particles {
		if s.particles[i].advance(s.boundary) {
			hits++
		}
	}
	s.ticks++
	return hits
}

// Reset replaces all particles with a new batch at a random point of the
// boundary. The boundary itself is unchanged.
func (s *Simulation) Reset() {
	s.particles = s.boundary.Spawn(s.rng, s.count, s.speed)
	s.ticks = 0
}

// SetShape switches to another shape and respawns the particles. Switching to
// the irregular shape generates a new boundary from the current seed,
// discarding earlier edits.
func (s *Simulation) SetShape(shape Shape) {
	if shape < 0 || int(shape) >= len(shapeNames) {
		return
	}
	s.shape = shape
	s.rebuild()
	s.Reset()
}

// SetParticleCount sets the batch size and respawns the particles. Counts
// below one are treated as one.
func (s *Simulation) SetParticleCount(n int) {
	if n <= 0 {
		n = DefaultParticles
	}
	s.count = n
	s.Reset()
}

// SetSpeed changes the speed of all current and future particles without
// changing their directions. Non-positive speeds are ignored.
func (s *Simulation) SetSpeed(speed float64) {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return
	}
	s.speed = speed
	for i := range s.particles {
		s.particles[i].SetSpeed(speed)
	}
}

// SetEllipseRadii changes the ellipse's radii. If the ellipse is active it is
// rebuilt and the particles respawn. Non-positive radii keep their old value.
func (s *Simulation) SetEllipseRadii(rx, ry float64) {
	if rx > 0 {
		s.radii.X = rx
	}
	if ry > 0 {
		s.radii.Y = ry
	}
	if s.shape == ShapeEllipse {
		s.rebuild()
		s.Reset()
	}
}

// SetAmplitude changes the perturbation amplitude of irregular boundaries. If
// the irregular shape is active it is regenerated from the current seed and
// the particles respawn.
func (s *Simulation) SetAmplitude(a float64) {
	if math.IsNaN(a) {
		return
	}
	s.amplitude = a
	if s.shape == ShapeIrregular {
		s.rebuild()
		s.Reset()
	}
}

// SetControlPointCount changes the number of control points of irregular
// boundaries, falling back to 12 for counts below 3. If the irregular shape is
// active it is regenerated and the particles respawn.
func (s *Simulation) SetControlPointCount(n int) {
	if n < 3 {
		n = DefaultControlPoints
	}
	s.controls = n
	if s.shape == ShapeIrregular {
		s.rebuild()
		s.Reset()
	}
}

// Regenerate picks a new random seed for irregular boundaries, regenerates
// the irregular boundary if it is active and respawns the particles.
func (s *Simulation) Regenerate() {
	s.RegenerateSeed(uint32(s.rng.IntN(10000)))
}

// RegenerateSeed is like Regenerate but uses the given seed.
func (s *Simulation) RegenerateSeed(seed uint32) {
	s.seed = seed
	if s.shape == ShapeIrregular {
		s.rebuild()
	}
	s.Reset()
}

// Editor returns the control point editor.
func (s *Simulation) Editor() *Editor { return &s.editor }

// PointerDown starts dragging the control point under pt, if the irregular
// shape is active. It reports whether a control point was grabbed.
func (s *Simulation) PointerDown(pt Point) bool {
	ir := s.Irregular()
	if ir == nil {
		return false
	}
	return s.editor.Press(ir, pt)
}

// PointerMove drags the grabbed control point, if any, to pt. It reports
// whether the boundary changed and needs to be redrawn.
func (s *Simulation) PointerMove(pt Point) bool {
	ir := s.Irregular()
	if ir == nil {
		return false
	}
	return s.editor.Move(ir, pt)
}

// PointerUp ends a drag.
func (s *Simulation) PointerUp() { s.editor.Release() }

// PointerLeave ends a drag because the pointer left the canvas.
func (s *Simulation) PointerLeave() { s.editor.Release() }

// Hover reports whether pt is over a control point that could be grabbed.
func (s *Simulation) Hover(pt Point) bool {
	ir := s.Irregular()
	if ir == nil {
		return false
	}
	return s.editor.Hover(ir, pt)
}
