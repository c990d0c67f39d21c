package bounce

// LCG is the 32-bit linear congruential generator that perturbs irregular
// boundaries. A given seed always produces the same boundary.
type LCG struct {
	seed uint32
}

func NewLCG(seed uint32) *LCG {
	return &LCG{seed: seed}
}

// Next advances the generator and returns the new state,
// seed = (seed × 1664525 + 1013904223) mod 2³².
func (r *LCG) Next() uint32 {
	r.seed = r.seed*1664525 + 1013904223
	return r.seed
}

// Float64 returns a value in [0, 1).
func (r *LCG) Float64() float64 {
	return float64(r.Next()) / (1 << 32)
}

// Seed returns the current state.
func (r *LCG) Seed() uint32 { return r.seed }
