package scene

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/golden-spiral/sequence"
)

// PaletteSize is the length of the square color cycle
const PaletteSize = 8

// GoldenAngle is the hue step between consecutive palette entries, degrees
var GoldenAngle = 360 * (1 - 1/sequence.Phi)

// Palette is the square color cycle, hues stepped by the golden angle at constant lightness
var Palette = buildPalette(PaletteSize, 40)

func buildPalette(size int, baseHue float64) []colorful.Color {
	p := make([]colorful.Color, size)
	for i := range p {
		h := math.Mod(baseHue+float64(i)*GoldenAngle, 360)
		p[i] = colorful.Hcl(h, 0.45, 0.72).Clamped()
	}
	return p
}

// ColorFor returns the palette entry for a color-cycle index
func ColorFor(colorIndex int) colorful.Color {
	return Palette[((colorIndex%PaletteSize)+PaletteSize)%PaletteSize]
}

// Dim darkens c toward black by t in [0, 1], blending in Lab space
func Dim(c colorful.Color, t float64) colorful.Color {
	return c.BlendLab(colorful.Color{}, t).Clamped()
}
