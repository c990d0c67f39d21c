package bounce

// Line is a line segment, such as one leg of a sampled boundary or a guide
// line between two control points.
type Line struct {
	P0 Point
	P1 Point
}

// ClosedLines returns the segments of the closed polyline through pts,
// including the segment from the last point back to the first.
func ClosedLines(pts []Point) []Line {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Line, len(pts))
	for i, p := range pts {
		out[i] = Line{p, pts[(i+1)%len(pts)]}
	}
	return out
}
