package bounce

// HitRadius is how close, in canvas units, a pointer has to be to a control
// point to grab it.
const HitRadius = 15

// HitTest returns the index of the control point nearest to pt that lies
// closer than HitRadius, or -1 if there is none.
func HitTest(pt Point, controls []Point) int {
	best := -1
	bestDist := float64(HitRadius * HitRadius)
	for i, c := range controls {
		if d := pt.DistanceSquared(c); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Editor tracks a pointer dragging control points of an irregular boundary.
// The zero value is an idle editor.
type Editor struct {
	// dragged is the index of the grabbed control point plus one, so that the
	// zero value means "nothing grabbed".
	dragged int
}

// Dragged returns the index of the control point being dragged, or -1.
func (e *Editor) Dragged() int { return e.dragged - 1 }

// Dragging reports whether a control point is grabbed.
func (e *Editor) Dragging() bool { return e.dragged > 0 }

// Press grabs the control point of ir under pt, if any, and reports whether
// it did.
func (e *Editor) Press(ir *Irregular, pt Point) bool {
	idx := HitTest(pt, ir.ControlPoints())
	e.dragged = idx + 1
	return idx >= 0
}

// Move drags the grabbed control point to pt. It reports whether the
// boundary changed.
func (e *Editor) Move(ir *Irregular, pt Point) bool {
	if !e.Dragging() {
		return false
	}
	return e.Drag(ir, e.Dragged(), pt)
}

// Drag moves control point i of ir to pt, resampling the boundary. Indices
// out of range are ignored and reported as no change.
func (e *Editor) Drag(ir *Irregular, i int, pt Point) bool {
	if ir == nil {
		return false
	}
	return ir.SetControlPoint(i, pt)
}

// Release lets go of the grabbed control point.
func (e *Editor) Release() {
	e.dragged = 0
}

// Hover reports whether pt is over a control point of ir, that is, whether
// pressing there would grab one.
func (e *Editor) Hover(ir *Irregular, pt Point) bool {
	return HitTest(pt, ir.ControlPoints()) >= 0
}
