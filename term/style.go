package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/bounce"
)

// Glyphs of the drawn layers.
const (
	boundaryRune = '█'
	trailRune    = '·'
	particleRune = '●'
	guideRune    = '∙'
	handleRune   = '◆'
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// over composites c with opacity alpha onto the terminal's black background.
func over(c colorful.Color, alpha float64) colorful.Color {
	return colorful.Color{}.BlendRgb(c, alpha)
}

var (
	white = hex("#ffffff")

	// #16213e is all but invisible on a black terminal; lift it toward white.
	boundaryColor = hex("#16213e").BlendLuv(white, 0.45)
	trailColor    = over(hex("#ffdf00"), 0.8)
	guideColor    = over(hex("#2196f3"), 0.3)
	handleColor   = hex("#2196f3")
	draggedColor  = hex("#f39c12")
	statusColor   = hex("#16213e")
)

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fg(c colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(c))
}

var (
	boundaryStyle = fg(boundaryColor)
	trailStyle    = fg(trailColor)
	guideStyle    = fg(guideColor)
	handleStyle   = fg(handleColor)
	draggedStyle  = fg(draggedColor).Bold(true)
	statusStyle   = tcell.StyleDefault.Foreground(rgb(white)).Background(rgb(statusColor))
)

func particleStyle(s bounce.Swatch) tcell.Style {
	return fg(s.Color())
}
