// Package screen draws color grids to a raster surface, one filled square
// per cell. It is the render collaborator of the engine: a pure projection
// of a grid, with no state of its own.
package screen

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/TanGrumser/OTP/grid"
)

// Renderer scales grid cells up to blocks of CellSize x CellSize pixels.
// With Border set, each cell keeps a one-pixel darkened edge on its right
// and bottom, which makes the pixel grid legible at larger cell sizes.
type Renderer struct {
	CellSize int
	Border   bool
}

// Render draws g into a new RGBA image of g.Width()*CellSize by
// g.Height()*CellSize pixels.
func (r Renderer) Render(g *grid.Grid) *image.RGBA {
	size := r.CellSize
	if size < 1 {
		size = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, g.Width()*size, g.Height()*size))
	for cy := 0; cy < g.Height(); cy++ {
		for cx := 0; cx < g.Width(); cx++ {
			c := g.At(cx, cy)
			edge := color.Color(c)
			if r.Border && size > 2 {
				edge = darken(c, 0.15)
			}
			for iy := 0; iy < size; iy++ {
				for ix := 0; ix < size; ix++ {
					co := color.Color(c)
					if ix == size-1 || iy == size-1 {
						co = edge
					}
					dst.Set(cx*size+ix, cy*size+iy, co)
				}
			}
		}
	}
	return dst
}

// Clear fills dst with c.
func Clear(dst *image.RGBA, c color.Color) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
