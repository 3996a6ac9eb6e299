package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/golden-spiral/scene"
)

// RGB color definitions for chrome and the spiral curve
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbArc        = tcell.NewRGBColor(255, 215, 0)   // Gold spiral
	RgbArcHead    = tcell.NewRGBColor(255, 255, 200) // Bright tip of the partial arc
	RgbLabel      = tcell.NewRGBColor(230, 230, 230)
	RgbTitle      = tcell.NewRGBColor(180, 180, 180)

	RgbStatusText     = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBar      = tcell.NewRGBColor(60, 60, 80)
	RgbStatusHelp     = tcell.NewRGBColor(160, 160, 180)
	RgbModePlayBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbModePauseBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeCompleteBg = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbMessage        = tcell.NewRGBColor(255, 120, 120)
)

// squareFillDim is how far square interiors are darkened from their edge color
const squareFillDim = 0.72

// TcellColor converts a palette color to a tcell true color
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// SquareColors returns the edge and fill colors for a color-cycle index
func SquareColors(colorIndex int) (edge, fill tcell.Color) {
	c := scene.ColorFor(colorIndex)
	return TcellColor(c), TcellColor(scene.Dim(c, squareFillDim))
}
