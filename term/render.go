package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"honnef.co/go/bounce"
)

// cellAspect is the height of a terminal cell in units of its width.
const cellAspect = 2

// Renderer draws a simulation into a terminal screen. The canvas is scaled
// uniformly to fit above a one-line status bar, allowing for cells being
// taller than they are wide.
type Renderer struct {
	screen tcell.Screen
	// view maps canvas coordinates to cell coordinates; inv maps back.
	view bounce.Affine
	inv  bounce.Affine
	// size of the drawing area, in cells
	cols, rows int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		view:   bounce.Identity,
		inv:    bounce.Identity,
	}
}

// Fit recomputes the view for the current screen size. It has to be called
// after the screen was resized. The canvas edges map to the centers of the
// outermost cells, so that the whole boundary is visible.
func (r *Renderer) Fit(canvas bounce.Size) {
	w, h := r.screen.Size()
	r.cols, r.rows = w, h-1
	if r.cols < 2 || r.rows < 2 || canvas.IsEmpty() {
		r.view, r.inv = bounce.Identity, bounce.Identity
		return
	}
	cols, rows := float64(r.cols-1), float64(r.rows-1)
	s := min(cols/canvas.Width, cellAspect*rows/canvas.Height)
	off := bounce.Vec(
		(cols-canvas.Width*s)/2+0.5,
		(rows-canvas.Height*s/cellAspect)/2+0.5,
	)
	r.view = bounce.Scale(s, s/cellAspect).ThenTranslate(off)
	r.inv = r.view.Invert()
}

// View returns the transform from canvas to cell coordinates.
func (r *Renderer) View() bounce.Affine { return r.view }

// ToCell returns the cell containing the canvas point p.
func (r *Renderer) ToCell(p bounce.Point) (x, y int) {
	q := p.Transform(r.view)
	return int(math.Floor(q.X)), int(math.Floor(q.Y))
}

// ToCanvas returns the canvas point at the center of cell (x, y).
func (r *Renderer) ToCanvas(x, y int) bounce.Point {
	return bounce.Pt(float64(x)+0.5, float64(y)+0.5).Transform(r.inv)
}

// InCanvas reports whether cell (x, y) is part of the drawing area, as
// opposed to the status bar or outside the screen.
func (r *Renderer) InCanvas(x, y int) bool {
	return x >= 0 && x < r.cols && y >= 0 && y < r.rows
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if r.InCanvas(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *Renderer) line(l bounce.Line, ch rune, style tcell.Style) {
	x0, y0 := r.ToCell(l.P0)
	x1, y1 := r.ToCell(l.P1)
	bresenham(x0, y0, x1, y1, func(x, y int) {
		r.set(x, y, ch, style)
	})
}

func (r *Renderer) polyline(pts []bounce.Point, closed bool, ch rune, style tcell.Style) {
	if closed {
		for _, l := range bounce.ClosedLines(pts) {
			r.line(l, ch, style)
		}
		return
	}
	for i := 1; i < len(pts); i++ {
		r.line(bounce.Line{P0: pts[i-1], P1: pts[i]}, ch, style)
	}
}

// Draw renders one frame of sim, with status shown in the status bar.
func (r *Renderer) Draw(sim *bounce.Simulation, status string) {
	r.screen.Clear()

	r.polyline(sim.Boundary().Outline(), true, boundaryRune, boundaryStyle)
	for _, p := range sim.Particles() {
		r.polyline(p.Path, false, trailRune, trailStyle)
	}
	for _, p := range sim.Particles() {
		x, y := r.ToCell(p.Position)
		r.set(x, y, particleRune, particleStyle(p.Swatch))
	}
	if ir := sim.Irregular(); ir != nil {
		controls := ir.ControlPoints()
		r.polyline(controls, true, guideRune, guideStyle)
		dragged := sim.Editor().Dragged()
		for i, c := range controls {
			style := handleStyle
			if i == dragged {
				style = draggedStyle
			}
			x, y := r.ToCell(c)
			r.set(x, y, handleRune, style)
		}
	}

	r.statusBar(status)
	r.screen.Show()
}

func (r *Renderer) statusBar(status string) {
	w, h := r.screen.Size()
	if h <= 0 {
		return
	}
	y := h - 1
	x := 0
	for _, ch := range status {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
}

// bresenham calls plot for every cell on the line from (x0, y0) to (x1, y1),
// both ends included.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := x1-x0, y1-y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}
	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	err := absDx - absDy
	x, y := x0, y0
	for {
		plot(x, y)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}
