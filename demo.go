package otp

import "github.com/TanGrumser/OTP/grid"

var demoPalette = []grid.Color{
	grid.RGB(0x3f, 0x3f, 0x74),
	grid.RGB(0x63, 0x9b, 0xff),
	grid.RGB(0x4b, 0x69, 0x2f),
	grid.RGB(0x6a, 0xbe, 0x30),
}

// DemoImage builds a procedural test picture: a ringed disk over diagonal
// bands. High-contrast structure makes misalignment obvious, which is the
// point of the exercise.
func DemoImage(w, h int) *grid.Grid {
	g := grid.New(w, h)

	r := w
	if h < r {
		r = h
	}
	r /= 3
	inner := r / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := demoPalette[((x+y)/4)%len(demoPalette)]

			dx, dy := x-w/2, y-h/2
			switch rr := dx*dx + dy*dy; {
			case rr < inner*inner:
				c = grid.RGB(0xfb, 0xf2, 0x36)
			case rr < r*r:
				c = grid.RGB(0xac, 0x32, 0x32)
			}

			g.Set(x, y, c)
		}
	}
	return g
}
