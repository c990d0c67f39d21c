// Package svg renders frames of a simulation as SVG documents.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/bounce"
)

// Colors and stroke widths of the layers of a frame.
const (
	BoundaryColor = "#16213e"
	BoundaryWidth = 3
	TrailColor    = "rgba(255, 223, 0, 0.8)"
	TrailWidth    = 4
	GuideColor    = "rgba(33, 150, 243, 0.3)"
	GuideWidth    = 1
	HandleColor   = "#2196F3"
	DraggedColor  = "#f39c12"
	HandleStroke  = "#fff"
	HandleWidth   = 2
	HandleRadius  = 6

	// GlowBlur is the standard deviation of the blur behind particles.
	GlowBlur = 7.5
)

// Options specifies optional settings for [Render].
type Options struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Background fills the canvas if not empty.
	Background string
	// HideTrails omits the particles' paths.
	HideTrails bool
}

type writer struct {
	w    io.Writer
	err  error
	prec int
}

func (w *writer) printf(s string, v ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, s, v...)
}

func (w *writer) format(n float64) string {
	return formatFloat(n, w.prec)
}

func formatFloat(n float64, prec int) string {
	if prec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', prec, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func (w *writer) path(pts []bounce.Point, closed bool) {
	for i, p := range pts {
		if i > 0 {
			w.printf(" ")
		}
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		w.printf("%s%s,%s", cmd, w.format(p.X), w.format(p.Y))
	}
	if closed && len(pts) > 0 {
		w.printf(" Z")
	}
}

// PathData converts a polyline to a string of SVG path commands. A closed
// polyline ends with a close path command.
func PathData(pts []bounce.Point, closed bool, opts Options) string {
	sb := &strings.Builder{}
	WritePathData(sb, pts, closed, opts)
	return sb.String()
}

// WritePathData is like [PathData] but writes to w.
func WritePathData(w io.Writer, pts []bounce.Point, closed bool, opts Options) error {
	sw := &writer{w: w, prec: opts.MaxPrecision}
	sw.path(pts, closed)
	return sw.err
}

// Render writes the current state of sim as a standalone SVG document, in the
// order the layers are drawn on screen: the boundary, the particles' trails,
// the particles and, for irregular boundaries, the control points.
func Render(w io.Writer, sim *bounce.Simulation, opts Options) error {
	sw := &writer{w: w, prec: opts.MaxPrecision}
	width, height := sim.Canvas().Splat()
	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%[1]s" height="%[2]s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		sw.format(width), sw.format(height))
	sw.printf(`<defs><filter id="glow" x="-200%%" y="-200%%" width="500%%" height="500%%">`+
		`<feGaussianBlur in="SourceGraphic" stdDeviation="%s" result="blur"/>`+
		`<feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>`+
		"</filter></defs>\n", sw.format(GlowBlur))
	if opts.Background != "" {
		sw.printf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background)
	}

	boundary(sw, sim.Boundary())
	if !opts.HideTrails {
		trails(sw, sim.Particles())
	}
	particles(sw, sim.Particles())
	if ir := sim.Irregular(); ir != nil {
		controls(sw, ir, sim.Editor().Dragged())
	}

	sw.printf("</svg>\n")
	return sw.err
}

func boundary(w *writer, b bounce.Boundary) {
	stroke := fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%d"`, BoundaryColor, BoundaryWidth)
	switch b := b.(type) {
	case bounce.Rectangle:
		w.printf(`<rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
			w.format(b.X0), w.format(b.Y0), w.format(b.Width()), w.format(b.Height()), stroke)
	case bounce.Circle:
		w.printf(`<circle cx="%s" cy="%s" r="%s" %s/>`+"\n",
			w.format(b.Center.X), w.format(b.Center.Y), w.format(b.Radius), stroke)
	case bounce.Ellipse:
		w.printf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s" %s/>`+"\n",
			w.format(b.Center.X), w.format(b.Center.Y), w.format(b.Radii.X), w.format(b.Radii.Y), stroke)
	default:
		w.printf(`<path d="`)
		w.path(b.Outline(), true)
		w.printf(`" %s/>`+"\n", stroke)
	}
}

func trails(w *writer, ps []bounce.Particle) {
	for _, p := range ps {
		if len(p.Path) < 2 {
			continue
		}
		w.printf(`<path d="`)
		w.path(p.Path, false)
		w.printf(`" fill="none" stroke="%s" stroke-width="%d"/>`+"\n", TrailColor, TrailWidth)
	}
}

func particles(w *writer, ps []bounce.Particle) {
	for _, p := range ps {
		w.printf(`<circle cx="%s" cy="%s" r="%s" fill="%s" filter="url(#glow)"/>`+"\n",
			w.format(p.Position.X), w.format(p.Position.Y), w.format(p.Radius), p.Swatch.Color().Hex())
	}
}

func controls(w *writer, ir *bounce.Irregular, dragged int) {
	pts := ir.ControlPoints()
	w.printf(`<path d="`)
	w.path(pts, true)
	w.printf(`" fill="none" stroke="%s" stroke-width="%d"/>`+"\n", GuideColor, GuideWidth)
	for i, p := range pts {
		fill := HandleColor
		if i == dragged {
			fill = DraggedColor
		}
		w.printf(`<circle cx="%s" cy="%s" r="%d" fill="%s" stroke="%s" stroke-width="%d"/>`+"\n",
			w.format(p.X), w.format(p.Y), HandleRadius, fill, HandleStroke, HandleWidth)
	}
}
