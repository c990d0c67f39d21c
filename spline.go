package bounce

import "math"

// BoundarySamples is the number of points an irregular boundary is sampled
// with.
const BoundarySamples = 512

// CatmullRom is a closed, uniform Catmull-Rom spline. It is encoded as its
// ordered control points [P₀, P₁, …, Pₙ₋₁]. Indexing is cyclic: the curve
// segment between Pₖ and Pₖ₊₁ is shaped by Pₖ₋₁ and Pₖ₊₂, and the segment
// between Pₙ₋₁ and P₀ closes the loop.
//
// The curve passes through every control point. A valid spline has at least
// three control points.
type CatmullRom []Point

// at returns the control point at cyclic index i.
func (c CatmullRom) at(i int) Point {
	n := len(c)
	return c[((i%n)+n)%n]
}

// catmullRom evaluates one axis of the segment p1→p2 at u ∈ [0, 1].
func catmullRom(p0, p1, p2, p3, u float64) float64 {
	u2 := u * u
	u3 := u2 * u
	return 0.5 * (2*p1 +
		(-p0+p2)*u +
		(2*p0-5*p1+4*p2-p3)*u2 +
		(-p0+3*p1-3*p2+p3)*u3)
}

// Eval evaluates the spline at the continuous parameter t. Integer values of
// t land on control points; t wraps around modulo len(c).
func (c CatmullRom) Eval(t float64) Point {
	k := math.Floor(t)
	return c.eval(int(k), t-k)
}

func (c CatmullRom) eval(k int, u float64) Point {
	p0, p1, p2, p3 := c.at(k-1), c.at(k), c.at(k+1), c.at(k+2)
	return Point{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, u),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, u),
	}
}

// Sample returns n points evenly spaced in parameter space, forming a closed
// loop: the point following the last sample is the first sample. Sample i
// lies at t = i/n × len(c).
//
// Sample returns nil if the spline has fewer than three control points or n
// is not positive.
func (c CatmullRom) Sample(n int) []Point {
	if len(c) < 3 || n <= 0 {
		return nil
	}
	out := make([]Point, n)
	count := float64(len(c))
	for i := range out {
		t := float64(i) / float64(n) * count
		k := math.Floor(t)
		out[i] = c.eval(int(k), t-k)
	}
	return out
}

// Transform returns a copy of the spline with aff applied to every control
// point. Catmull-Rom splines are affine invariant, so sampling the result is
// the same as transforming the samples.
func (c CatmullRom) Transform(aff Affine) CatmullRom {
	out := make(CatmullRom, len(c))
	for i, p := range c {
		out[i] = p.Transform(aff)
	}
	return out
}

// Clone returns a copy of the control points.
func (c CatmullRom) Clone() CatmullRom {
	return append(CatmullRom(nil), c...)
}
