package screen

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// blend mixes two cell colors for seams. Grays mix in RGB so they stay
// neutral; anything else mixes in Lab for a perceptually even midpoint.
func blend(a, b color.Color, t float64) color.Color {
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	if isGray(ca) || isGray(cb) {
		return ca.BlendRgb(cb, t).Clamped()
	}
	return ca.BlendLab(cb, t).Clamped()
}

func isGray(c colorful.Color) bool {
	return c.R == c.G && c.G == c.B
}

// darken lowers a color's Hcl lightness by amount, keeping hue and
// chroma, so borders read as shading rather than a color shift.
func darken(src color.Color, amount float64) color.Color {
	c, _ := colorful.MakeColor(src)
	h, ch, l := c.Hcl()
	return colorful.Hcl(h, ch, l-amount).Clamped()
}
