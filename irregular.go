package bounce

import (
	"math"
	"math/rand/v2"
)

// normalReach is how many samples on either side of a contact are used to
// estimate the boundary's tangent.
const normalReach = 5

// IrregularOptions controls the generation of an irregular boundary's
// control points.
type IrregularOptions struct {
	// Center is the point the boundary is generated around. Collisions are
	// measured from it as well.
	Center Point
	// RadiusX and RadiusY are the radii of the unperturbed base ellipse.
	RadiusX, RadiusY float64
	// Amplitude is the largest relative change of the base radius. Values
	// in [0, 1] keep the boundary around its center; larger values are
	// allowed but may fold the curve over itself.
	Amplitude float64
	// Count is the number of control points, at least 3.
	Count int
}

// Defaults for irregular boundaries.
const (
	DefaultAmplitude     = 0.7
	DefaultControlPoints = 12
	DefaultSeed          = 42
)

// DefaultIrregularOptions returns the options used for a canvas until the user
// changes them.
func DefaultIrregularOptions(canvas Size) IrregularOptions {
	return IrregularOptions{
		Center:    canvas.Center(),
		RadiusX:   280,
		RadiusY:   180,
		Amplitude: DefaultAmplitude,
		Count:     DefaultControlPoints,
	}
}

// GenerateControlPoints places opts.Count control points at evenly spaced
// angles around opts.Center. The distance of each point is the base radius
// √((rx·cos θ)² + (ry·sin θ)²), scaled by 1 + p where p is drawn uniformly
// from [−Amplitude, Amplitude) using an LCG seeded with seed.
//
// With an amplitude of 0 the seed has no effect.
func GenerateControlPoints(opts IrregularOptions, seed uint32) CatmullRom {
	if opts.Count <= 0 {
		return nil
	}
	rng := NewLCG(seed)
	out := make(CatmullRom, opts.Count)
	for i := range out {
		th := float64(i) / float64(opts.Count) * 2 * math.Pi
		sin, cos := math.Sincos(th)
		base := math.Hypot(opts.RadiusX*cos, opts.RadiusY*sin)
		p := (rng.Float64() - 0.5) * 2 * opts.Amplitude
		out[i] = PointOnCircle(opts.Center, base*(1+p), th)
	}
	return out
}

// Irregular is a boundary following a closed Catmull-Rom spline through
// user-editable control points. Collisions are tested against BoundarySamples
// points sampled from the spline, as seen from a fixed center.
//
// The samples are derived state: every change to the control points resamples
// the whole spline.
type Irregular struct {
	center   Point
	controls CatmullRom
	samples  []Point
	// polar coordinates of samples, relative to center
	angles []float64
	dists  []float64
}

var _ Boundary = (*Irregular)(nil)

// NewIrregular returns an irregular boundary through a copy of controls,
// measured from center.
func NewIrregular(center Point, controls CatmullRom) *Irregular {
	ir := &Irregular{center: center}
	ir.SetControlPoints(controls)
	return ir
}

// GenerateIrregular is shorthand for generating control points and building
// a boundary around opts.Center from them.
func GenerateIrregular(opts IrregularOptions, seed uint32) *Irregular {
	return NewIrregular(opts.Center, GenerateControlPoints(opts, seed))
}

func (ir *Irregular) Shape() Shape { return ShapeIrregular }

// Center returns the point collisions are measured from.
func (ir *Irregular) Center() Point { return ir.center }

// ControlPoints returns the control points. The returned slice must not be
// modified; use SetControlPoint.
func (ir *Irregular) ControlPoints() CatmullRom { return ir.controls }

// Samples returns the sampled boundary. The returned slice must not be
// modified.
func (ir *Irregular) Samples() []Point { return ir.samples }

// SetControlPoints replaces all control points and resamples the boundary.
func (ir *Irregular) SetControlPoints(controls CatmullRom) {
	ir.controls = controls.Clone()
	ir.resample()
}

// SetControlPoint moves control point i to pt and resamples the boundary. It
// reports false and does nothing if there is no control point i.
func (ir *Irregular) SetControlPoint(i int, pt Point) bool {
	if i < 0 || i >= len(ir.controls) {
		return false
	}
	ir.controls[i] = pt
	ir.resample()
	return true
}

func (ir *Irregular) resample() {
	ir.samples = ir.controls.Sample(BoundarySamples)
	ir.angles = make([]float64, len(ir.samples))
	ir.dists = make([]float64, len(ir.samples))
	for i, s := range ir.samples {
		ir.angles[i], ir.dists[i] = s.Polar(ir.center)
	}
}

// Transform returns a new boundary with aff applied to the control points and
// the center.
func (ir *Irregular) Transform(aff Affine) *Irregular {
	return NewIrregular(ir.center.Transform(aff), ir.controls.Transform(aff))
}

// NearestAngle returns the index of the sample whose angle around the center
// is closest to th, or -1 if there are no samples. Angular distances wrap
// around at ±π. Ties go to the lowest index.
func (ir *Irregular) NearestAngle(th float64) int {
	best := -1
	bestDiff := math.Inf(1)
	for i, a := range ir.angles {
		diff := math.Abs(th - a)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}

// Normal returns the inward unit normal of the sampled boundary at sample
// idx, estimated from the samples normalReach steps before and after it.
func (ir *Irregular) Normal(idx int) (Vec2, bool) {
	n := len(ir.samples)
	prev := ir.samples[((idx-normalReach)%n+n)%n]
	next := ir.samples[(idx+normalReach)%n]
	normal, ok := next.Sub(prev).Perp().TryNormalize()
	if !ok {
		return Vec2{}, false
	}
	if normal.Dot(ir.center.Sub(ir.samples[idx])) < 0 {
		normal = normal.Negate()
	}
	return normal, true
}

// Collide implements Boundary. The sample at the angle closest to the disc's
// angle around the center stands in for the boundary in that direction: the
// disc collides when its distance from the center comes within its radius of
// that sample's distance. The disc is then pulled toward the center until it
// is two radii inside.
//
// Matching by angle assumes the boundary is star-shaped around the center.
// Strongly distorted curves with deep concavities or self-intersections can
// match the wrong part of the boundary.
func (ir *Irregular) Collide(pos Point, vel Vec2, radius float64) (Contact, bool) {
	th, dist := pos.Polar(ir.center)
	if dist == 0 || math.IsNaN(dist) {
		return Contact{}, false
	}
	idx := ir.NearestAngle(th)
	if idx < 0 {
		return Contact{}, false
	}
	bdist := ir.dists[idx]
	if dist < bdist-radius {
		return Contact{}, false
	}

	n, ok := ir.Normal(idx)
	if ok {
		vel = Reflect(vel, n)
	} else {
		// Degenerate tangent; fall back to the direction of the center and
		// leave the velocity alone.
		n = ir.center.Sub(pos).Div(dist)
	}
	target := max(bdist-2*radius, 0)
	return Contact{
		Normal:   n,
		Velocity: vel,
		Position: ir.center.Translate(pos.Sub(ir.center).Mul(target / dist)),
	}, true
}

func (ir *Irregular) Outline() []Point { return ir.samples }

func (ir *Irregular) BoundingBox() Rect { return BoundingBox(ir.samples) }

// Spawn implements Boundary. The batch starts at a random sample, laid out
// horizontally around it, heading roughly toward the center.
func (ir *Irregular) Spawn(rng *rand.Rand, n int, speed float64) []Particle {
	if len(ir.samples) == 0 {
		return nil
	}
	idx := rng.IntN(len(ir.samples))
	origin := ir.samples[idx]
	heading := inwardHeading(rng, ir.angles[idx])
	pos := make([]Point, n)
	for i, off := range offsets(n) {
		pos[i] = origin.Translate(Vec(off, 0))
	}
	return batch(pos, heading, speed)
}
