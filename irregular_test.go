package bounce

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateControlPointsBaseRadius(t *testing.T) {
	opts := IrregularOptions{
		Center:    Pt(400, 300),
		RadiusX:   200,
		RadiusY:   200,
		Amplitude: 0,
		Count:     12,
	}
	for _, seed := range []uint32{0, 1, 42, 9999} {
		for i, p := range GenerateControlPoints(opts, seed) {
			if !approxEqual(p.Distance(opts.Center), 200, 1e-9) {
				t.Errorf("seed %d: control point %d is %v from the center", seed, i, p.Distance(opts.Center))
			}
			th, _ := p.Polar(opts.Center)
			want := float64(i) / 12 * 2 * math.Pi
			if !approxEqual(math.Remainder(th-want, 2*math.Pi), 0, 1e-9) {
				t.Errorf("seed %d: control point %d at angle %v, want %v", seed, i, th, want)
			}
		}
	}
}

func TestGenerateControlPointsAmplitude(t *testing.T) {
	opts := DefaultIrregularOptions(DefaultCanvas)
	opts.Amplitude = 0.5
	a := GenerateControlPoints(opts, 7)
	diff(t, a, GenerateControlPoints(opts, 7))
	if d := cmp.Diff(a, GenerateControlPoints(opts, 8)); d == "" {
		t.Error("different seeds generated the same control points")
	}
	for i, p := range a {
		th := float64(i) / float64(opts.Count) * 2 * math.Pi
		base := math.Hypot(opts.RadiusX*math.Cos(th), opts.RadiusY*math.Sin(th))
		r := p.Distance(opts.Center)
		if r < base*0.5-1e-9 || r > base*1.5+1e-9 {
			t.Errorf("control point %d at radius %v, base %v", i, r, base)
		}
	}

	// The first control point uses the first value of the LCG.
	lcg := NewLCG(7)
	want := opts.RadiusX * (1 + (lcg.Float64()-0.5)*2*opts.Amplitude)
	diff(t, opts.Center.Translate(Vec(want, 0)), a[0], approx(1e-9))
}

func testIrregular(t *testing.T, amplitude float64, count int, seed uint32) *Irregular {
	t.Helper()
	opts := DefaultIrregularOptions(DefaultCanvas)
	opts.Amplitude = amplitude
	opts.Count = count
	ir := GenerateIrregular(opts, seed)
	if len(ir.Samples()) != BoundarySamples {
		t.Fatalf("got %d samples, want %d", len(ir.Samples()), BoundarySamples)
	}
	return ir
}

func TestIrregularRotationSymmetry(t *testing.T) {
	ir := testIrregular(t, 0.5, 12, 5)
	center := ir.Center()
	for _, th := range []float64{0.3, 1, math.Pi / 2, 2.5, -2} {
		rot := RotateAbout(th, center)
		rotated := ir.Transform(rot)
		for _, idx := range []int{0, 37, 100, 255, 400, 511} {
			s := ir.Samples()[idx]
			for _, scale := range []float64{0.5, 0.99, 1.05} {
				pos := center.Translate(s.Sub(center).Mul(scale))
				vel := s.Sub(center).Normalize().Mul(3).Add(Vec(0.5, -0.25))

				want, wantHit := ir.Collide(pos, vel, ParticleRadius)
				got, gotHit := rotated.Collide(pos.Transform(rot), vel.Transform(rot), ParticleRadius)
				if wantHit != gotHit {
					t.Fatalf("θ=%v idx=%d scale=%v: contact %t after rotation, %t before", th, idx, scale, gotHit, wantHit)
				}
				if !wantHit {
					continue
				}
				diff(t, want.Position.Transform(rot), got.Position, approx(1e-6))
				diff(t, want.Velocity.Transform(rot), got.Velocity, approx(1e-6))
				diff(t, want.Normal.Transform(rot), got.Normal, approx(1e-6))
			}
		}
	}
}

func TestIrregularCollision(t *testing.T) {
	// Mild enough that every direction from the center meets the boundary
	// exactly once.
	ir := testIrregular(t, 0.3, 12, DefaultSeed)
	center := ir.Center()
	for idx, s := range ir.Samples() {
		bdist := s.Distance(center)
		pos := center.Translate(s.Sub(center).Mul(1.01))
		vel := s.Sub(center).Normalize().Mul(3)
		ct, hit := ir.Collide(pos, vel, ParticleRadius)
		if !hit {
			t.Fatalf("sample %d: no contact outside the boundary", idx)
		}
		if !approxEqual(ct.Velocity.Hypot(), 3, 1e-9) {
			t.Fatalf("sample %d: speed changed to %v", idx, ct.Velocity.Hypot())
		}
		if d := ct.Position.Distance(center); !approxEqual(d, bdist-2*ParticleRadius, 1e-6) {
			t.Fatalf("sample %d: moved to %v from the center, want %v", idx, d, bdist-2*ParticleRadius)
		}
		// Moving straight out, the particle comes back in as long as the
		// sampled normal is within 45° of the radial direction. Reflecting
		// off a steeper normal only turns it along the boundary.
		radial := center.Sub(s).Normalize()
		if ct.Normal.Dot(radial) > math.Sqrt2/2 && ct.Velocity.Dot(vel) >= 0 {
			t.Fatalf("sample %d: velocity %s still points outward", idx, ct.Velocity)
		}
		if ct.Position.IsNaN() || ct.Velocity.IsNaN() {
			t.Fatalf("sample %d: NaN in contact %+v", idx, ct)
		}
	}
}

func TestIrregularNormalPointsInward(t *testing.T) {
	ir := testIrregular(t, 0.7, 12, 1234)
	for idx, s := range ir.Samples() {
		n, ok := ir.Normal(idx)
		if !ok {
			t.Fatalf("sample %d: no normal", idx)
		}
		if !approxEqual(n.Hypot(), 1, 1e-9) {
			t.Fatalf("sample %d: normal %s is not a unit vector", idx, n)
		}
		if n.Dot(ir.Center().Sub(s)) < 0 {
			t.Fatalf("sample %d: normal %s points outward", idx, n)
		}
	}
}

func TestIrregularCircleNormal(t *testing.T) {
	// With equal radii and no perturbation the spline is close to a circle, so
	// the normal points at the center.
	opts := IrregularOptions{Center: Pt(0, 0), RadiusX: 200, RadiusY: 200, Count: 16}
	ir := GenerateIrregular(opts, 1)
	for idx, s := range ir.Samples() {
		n, _ := ir.Normal(idx)
		want := Pt(0, 0).Sub(s).Normalize()
		if n.Dot(want) < 0.995 {
			t.Fatalf("sample %d: normal %s, want about %s", idx, n, want)
		}
	}
}

func TestIrregularCenter(t *testing.T) {
	ir := testIrregular(t, 0.7, 12, DefaultSeed)
	if ct, hit := ir.Collide(ir.Center(), Vec(3, 0), ParticleRadius); hit {
		t.Errorf("unexpected contact at the center: %+v", ct)
	}

	opts := DefaultOptions()
	opts.Shape = ShapeIrregular
	opts.SpawnSeed = 1
	s := New(opts)
	center := s.Irregular().Center()
	s.particles = []Particle{NewParticle(center, Vec(0, 0), 0)}
	for range 10 {
		s.Step()
	}
	p := s.Particles()[0]
	if p.Position != center || p.Velocity.IsNaN() {
		t.Errorf("resting particle at the center ended up at %s with velocity %s", p.Position, p.Velocity)
	}
}

func TestIrregularDegenerate(t *testing.T) {
	center := Pt(400, 300)
	// Every sample lands on the same point, so there is no tangent.
	ir := NewIrregular(center, CatmullRom{{410, 300}, {410, 300}, {410, 300}})
	ct, hit := ir.Collide(Pt(420, 300), Vec(3, 0), ParticleRadius)
	if !hit {
		t.Fatal("no contact")
	}
	if ct.Position.IsNaN() || ct.Velocity.IsNaN() || ct.Normal.IsNaN() {
		t.Fatalf("NaN in contact %+v", ct)
	}
	// The boundary is closer than two radii, so the particle ends up at the
	// center, moving as before.
	diff(t, center, ct.Position)
	diff(t, Vec(3, 0), ct.Velocity)

	empty := NewIrregular(center, nil)
	if empty.NearestAngle(0) != -1 {
		t.Error("found a sample on an empty boundary")
	}
	if _, hit := empty.Collide(Pt(0, 0), Vec(1, 1), ParticleRadius); hit {
		t.Error("unexpected contact with an empty boundary")
	}
	if ps := empty.Spawn(testRand(), 3, 3); ps != nil {
		t.Errorf("spawned %d particles on an empty boundary", len(ps))
	}
}

func TestIrregularNearestAngleWraps(t *testing.T) {
	opts := IrregularOptions{Center: Pt(0, 0), RadiusX: 200, RadiusY: 200, Count: 4}
	ir := GenerateIrregular(opts, 1)
	if got := ir.NearestAngle(0); got != 0 {
		t.Errorf("NearestAngle(0) = %d, want 0", got)
	}
	// Sample 256 sits at an angle of π; −π + ε is right next to it.
	if got := ir.NearestAngle(-math.Pi + 1e-3); got != 256 {
		t.Errorf("NearestAngle(-π+ε) = %d, want 256", got)
	}
	if got := ir.NearestAngle(math.Pi / 2); got != 128 {
		t.Errorf("NearestAngle(π/2) = %d, want 128", got)
	}
}

func TestIrregularSetControlPoint(t *testing.T) {
	ir := testIrregular(t, 0.3, 8, 3)
	before := append([]Point(nil), ir.Samples()...)
	ir.SetControlPoint(2, Pt(700, 550))
	diff(t, Pt(700, 550), ir.ControlPoints()[2])
	diff(t, Pt(700, 550), ir.Samples()[2*BoundarySamples/8])
	// Only the segments shaped by control point 2 move.
	for i := 4 * BoundarySamples / 8; i < BoundarySamples; i++ {
		if ir.Samples()[i] != before[i] {
			t.Fatalf("sample %d moved from %s to %s", i, before[i], ir.Samples()[i])
		}
	}
	if th, r := ir.Samples()[2*BoundarySamples/8].Polar(ir.Center()); ir.angles[2*BoundarySamples/8] != th || ir.dists[2*BoundarySamples/8] != r {
		t.Error("polar cache is stale")
	}
}

func TestIrregularSetControlPointOutOfRange(t *testing.T) {
	ir := testIrregular(t, 0.3, 8, 3)
	controls := ir.ControlPoints().Clone()
	samples := append([]Point(nil), ir.Samples()...)
	for _, i := range []int{-1, 8, 100} {
		if ir.SetControlPoint(i, Pt(1, 1)) {
			t.Errorf("SetControlPoint(%d) reported a change", i)
		}
	}
	diff(t, controls, ir.ControlPoints())
	diff(t, samples, ir.Samples())
	if !ir.SetControlPoint(7, Pt(1, 1)) {
		t.Error("SetControlPoint(7) reported no change")
	}
}

func TestIrregularSpawn(t *testing.T) {
	ir := testIrregular(t, 0.7, 12, DefaultSeed)
	ps := ir.Spawn(testRand(), 4, 5)
	if len(ps) != 4 {
		t.Fatalf("got %d particles, want 4", len(ps))
	}
	for i := 1; i < len(ps); i++ {
		diff(t, float64(Spacing), ps[i].Position.X-ps[i-1].Position.X, approx(1e-9))
		diff(t, ps[0].Position.Y, ps[i].Position.Y)
		diff(t, ps[0].Velocity, ps[i].Velocity)
	}
	if !approxEqual(ps[0].Speed(), 5, 1e-9) {
		t.Errorf("got speed %v, want 5", ps[0].Speed())
	}
}
