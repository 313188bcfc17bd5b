package grid

import "fmt"

// Color is an 8-bit-per-channel RGBA value. Equality is channel-wise; a
// color carries no identity beyond its channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA implements image/color.Color with the usual 8-to-16 bit expansion.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)<<8 | uint32(c.R)
	g = uint32(c.G)<<8 | uint32(c.G)
	b = uint32(c.B)<<8 | uint32(c.B)
	a = uint32(c.A)<<8 | uint32(c.A)
	return
}

// ParseColor reads a #RGB, #RGBA, #RRGGBB or #RRGGBBAA hex string.
func ParseColor(s string) (Color, error) {
	c := Color{A: 0xFF}
	switch len(s) {
	case 4:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 5:
		if _, err := fmt.Sscanf(s, "#%1x%1x%1x%1x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("could not read color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	return c, nil
}
