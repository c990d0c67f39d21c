package bounce

import "fmt"

// Size is the extent of the canvas.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Center returns the center of a canvas of this size whose origin is (0, 0).
func (sz Size) Center() Point {
	return Point{
		X: sz.Width / 2,
		Y: sz.Height / 2,
	}
}

// Rect returns the rectangle spanning a canvas of this size.
func (sz Size) Rect() Rect {
	return Rect{X0: 0, Y0: 0, X1: sz.Width, Y1: sz.Height}
}

// IsEmpty reports whether either side is not positive. NaN sides are empty.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0) || !(sz.Height > 0)
}
