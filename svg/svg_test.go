package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"honnef.co/go/bounce"
)

func render(t *testing.T, sim *bounce.Simulation, opts Options) string {
	t.Helper()
	sb := &strings.Builder{}
	if err := Render(sb, sim, opts); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid XML: %s\n%s", err, out)
		}
	}
	return out
}

func TestPathData(t *testing.T) {
	pts := []bounce.Point{{X: 0, Y: 0}, {X: 1.5, Y: 2}, {X: 100, Y: 1.0 / 3}}
	tests := []struct {
		closed bool
		prec   int
		want   string
	}{
		{false, 2, "M0,0 L1.5,2 L100,0.33"},
		{true, 2, "M0,0 L1.5,2 L100,0.33 Z"},
		{false, 0, "M0,0 L1.5,2 L100,0.3333333333333333"},
	}
	for _, tt := range tests {
		if got := PathData(pts, tt.closed, Options{MaxPrecision: tt.prec}); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
	if got := PathData(nil, true, Options{}); got != "" {
		t.Errorf("got %q for no points", got)
	}
}

func TestFormatFloat(t *testing.T) {
	for _, tt := range []struct {
		n    float64
		prec int
		want string
	}{
		{10, 3, "10"},
		{-0.0001, 2, "0"},
		{2.50, 1, "2.5"},
		{1e-7, 0, "0.0000001"},
	} {
		if got := formatFloat(tt.n, tt.prec); got != tt.want {
			t.Errorf("formatFloat(%v, %d) = %q, want %q", tt.n, tt.prec, got, tt.want)
		}
	}
}

func TestRenderRectangle(t *testing.T) {
	opts := bounce.DefaultOptions()
	opts.Particles = 3
	opts.SpawnSeed = 1
	sim := bounce.New(opts)
	for range 10 {
		sim.Step()
	}
	out := render(t, sim, Options{MaxPrecision: 3, Background: "#1a1a2e"})

	for _, want := range []string{
		`viewBox="0 0 800 600"`,
		`<rect width="100%" height="100%" fill="#1a1a2e"/>`,
		`<rect x="0" y="0" width="800" height="600" fill="none" stroke="#16213e" stroke-width="3"/>`,
		`stroke="rgba(255, 223, 0, 0.8)" stroke-width="4"`,
		`fill="#e94560" filter="url(#glow)"`,
		`fill="#ff6b6b" filter="url(#glow)"`,
		`fill="#ee5a6f" filter="url(#glow)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %s", want)
		}
	}
	if n := strings.Count(out, `filter="url(#glow)"`); n != 3 {
		t.Errorf("got %d particles, want 3", n)
	}
	if n := strings.Count(out, "stroke-width=\"4\""); n != 3 {
		t.Errorf("got %d trails, want 3", n)
	}
	if strings.Contains(out, HandleColor) {
		t.Error("rectangle has control handles")
	}

	out = render(t, sim, Options{HideTrails: true})
	if strings.Contains(out, TrailColor) {
		t.Error("trails were drawn")
	}
	if strings.Contains(out, `fill="#1a1a2e"`) {
		t.Error("background was drawn")
	}
}

func TestRenderFreshTrails(t *testing.T) {
	opts := bounce.DefaultOptions()
	opts.Shape = bounce.ShapeCircle
	opts.SpawnSeed = 1
	sim := bounce.New(opts)
	out := render(t, sim, Options{})
	// A path of one point is not drawn.
	if strings.Contains(out, TrailColor) {
		t.Error("drew a trail before the first step")
	}
	if !strings.Contains(out, `<circle cx="400" cy="300" r="280" fill="none"`) {
		t.Error("missing circle boundary")
	}
}

func TestRenderEllipse(t *testing.T) {
	opts := bounce.DefaultOptions()
	opts.Shape = bounce.ShapeEllipse
	opts.SpawnSeed = 1
	sim := bounce.New(opts)
	out := render(t, sim, Options{})
	if !strings.Contains(out, `<ellipse cx="400" cy="300" rx="300" ry="200" fill="none"`) {
		t.Error("missing ellipse boundary")
	}
}

func TestRenderIrregular(t *testing.T) {
	opts := bounce.DefaultOptions()
	opts.Shape = bounce.ShapeIrregular
	opts.ControlPoints = 6
	opts.SpawnSeed = 1
	sim := bounce.New(opts)
	out := render(t, sim, Options{MaxPrecision: 2})
	if n := strings.Count(out, `fill="`+HandleColor+`"`); n != 6 {
		t.Errorf("got %d handles, want 6", n)
	}
	if strings.Contains(out, DraggedColor) {
		t.Error("highlighted a handle without a drag")
	}
	if !strings.Contains(out, GuideColor) {
		t.Error("missing guide lines")
	}
	if n := strings.Count(out, " L"); n < bounce.BoundarySamples {
		t.Errorf("boundary has only %d segments", n)
	}

	sim.PointerDown(sim.Irregular().ControlPoints()[2])
	out = render(t, sim, Options{MaxPrecision: 2})
	if n := strings.Count(out, `fill="`+DraggedColor+`"`); n != 1 {
		t.Errorf("got %d highlighted handles, want 1", n)
	}
	if n := strings.Count(out, `fill="`+HandleColor+`"`); n != 5 {
		t.Errorf("got %d plain handles, want 5", n)
	}
}

type failWriter struct{ n int }

var errFull = errors.New("disk full")

func (w *failWriter) Write(b []byte) (int, error) {
	if w.n <= 0 {
		return 0, errFull
	}
	w.n--
	return len(b), nil
}

func TestRenderError(t *testing.T) {
	opts := bounce.DefaultOptions()
	opts.Shape = bounce.ShapeIrregular
	opts.SpawnSeed = 1
	sim := bounce.New(opts)
	for _, n := range []int{0, 3, 10} {
		if err := Render(&failWriter{n: n}, sim, Options{}); !errors.Is(err, errFull) {
			t.Errorf("after %d writes: got error %v, want %v", n, err, errFull)
		}
	}
	if err := WritePathData(&failWriter{}, []bounce.Point{{X: 1, Y: 2}}, false, Options{}); !errors.Is(err, errFull) {
		t.Errorf("got error %v, want %v", err, errFull)
	}
}
