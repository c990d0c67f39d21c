package bounce

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs of floats, with an absolute tolerance.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func approxEqual(x, y, tol float64) bool {
	return math.Abs(x-y) < tol
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
