package bounce

// Rect is an axis-aligned rectangle on the canvas.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inset shrinks a rectangle by a constant amount on every side. Negative
// amounts grow it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X0: r.X0 + d,
		Y0: r.Y0 + d,
		X1: r.X1 - d,
		Y1: r.Y1 - d,
	}
}

// Clamp returns the point of r closest to pt.
func (r Rect) Clamp(pt Point) Point {
	return Point{
		X: max(r.X0, min(r.X1, pt.X)),
		Y: max(r.Y0, min(r.Y1, pt.Y)),
	}
}

// Corners returns the four corners of r in clockwise order (in a y-down
// space), starting at the origin.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}

// BoundingBox returns the smallest rectangle enclosing all points. It returns
// the zero Rect for an empty slice.
func BoundingBox(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}
