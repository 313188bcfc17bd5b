package screen

import (
	"image"
	"image/color"

	"github.com/TanGrumser/OTP/grid"
)

// SideBySide renders two grids of equal height next to each other with a
// thin divider, blending the divider out of both edge colors. Useful for
// showing an encrypted grid against a composited view.
func (r Renderer) SideBySide(left, right *grid.Grid) *image.RGBA {
	size := r.CellSize
	if size < 1 {
		size = 1
	}
	const gap = 2

	li := r.Render(left)
	ri := r.Render(right)

	lw, rw := li.Bounds().Dx(), ri.Bounds().Dx()
	h := li.Bounds().Dy()
	if rh := ri.Bounds().Dy(); rh > h {
		h = rh
	}

	dst := image.NewRGBA(image.Rect(0, 0, lw+gap+rw, h))
	Clear(dst, color.Gray{Y: 0x20})

	for y := 0; y < li.Bounds().Dy(); y++ {
		for x := 0; x < lw; x++ {
			dst.Set(x, y, li.At(x, y))
		}
	}
	for y := 0; y < ri.Bounds().Dy(); y++ {
		for x := 0; x < rw; x++ {
			dst.Set(lw+gap+x, y, ri.At(x, y))
		}
	}

	// Blend the divider toward the neighboring columns so it reads as a
	// seam rather than a stripe.
	for y := 0; y < h; y++ {
		seam := blend(dst.At(lw-1, y), dst.At(lw+gap, y), 0.5)
		for x := lw; x < lw+gap; x++ {
			dst.Set(x, y, darken(seam, 0.3))
		}
	}

	return dst
}
