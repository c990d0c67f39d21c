package bounce

import (
	"math"
	"math/rand/v2"
)

// batch returns one particle per position, all moving at speed in direction
// th.
func batch(positions []Point, th, speed float64) []Particle {
	vel := VecFromAngle(th).Mul(speed)
	out := make([]Particle, len(positions))
	for i, pos := range positions {
		out[i] = NewParticle(pos, vel, SwatchFor(i))
	}
	return out
}

// offsets returns n offsets Spacing apart, centered on 0.
func offsets(n int) []float64 {
	total := float64(n-1) * Spacing
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)*Spacing - total/2
	}
	return out
}

// inwardHeading returns a heading pointing from a boundary point at angle th
// (seen from the center) back into the region, varied by up to ±π/2.
func inwardHeading(rng *rand.Rand, th float64) float64 {
	return th + math.Pi + (rng.Float64()-0.5)*math.Pi
}
