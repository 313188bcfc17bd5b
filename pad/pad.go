// Package pad implements the one-time-pad half of the teaching aid: the
// per-channel XOR primitive, the encrypted-grid builder, and the live
// compositing rule used while the mask is dragged.
package pad

import (
	"fmt"
	"image/color"

	"github.com/TanGrumser/OTP/grid"
)

// Sentinel stands in for any combination whose inputs could not be read,
// so one bad cell never aborts a full-grid render.
var Sentinel = grid.RGB(0xFF, 0x00, 0xFF)

// Combine XORs two colors channel by channel. It is commutative and its
// own inverse: Combine(Combine(a, b), b) == a.
func Combine(a, b grid.Color) grid.Color {
	return grid.Color{
		R: a.R ^ b.R,
		G: a.G ^ b.G,
		B: a.B ^ b.B,
		A: 0xFF,
	}
}

// CombineColors combines two generic colors, degrading to Sentinel when
// either input is missing.
func CombineColors(a, b color.Color) grid.Color {
	if a == nil || b == nil {
		return Sentinel
	}
	r1, g1, b1, _ := a.RGBA()
	r2, g2, b2, _ := b.RGBA()
	return Combine(
		grid.RGB(uint8(r1>>8), uint8(g1>>8), uint8(b1>>8)),
		grid.RGB(uint8(r2>>8), uint8(g2>>8), uint8(b2>>8)),
	)
}

// ConfigurationError reports puzzle geometry that cannot produce a valid
// encrypted grid, e.g. a solution offset whose lookups leave the mask.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// CheckBounds verifies that every image cell lookup stays inside the mask
// when the mask sits at solution.
func CheckBounds(img, mask *grid.Grid, solution grid.Offset) error {
	if solution.X < 0 || solution.Y < 0 {
		return &ConfigurationError{
			Reason: fmt.Sprintf("solution offset (%d, %d) is negative", solution.X, solution.Y),
		}
	}
	if img.Width()+solution.X > mask.Width() || img.Height()+solution.Y > mask.Height() {
		return &ConfigurationError{
			Reason: fmt.Sprintf(
				"solution offset (%d, %d) pushes %dx%d image lookups outside %dx%d mask",
				solution.X, solution.Y, img.Width(), img.Height(), mask.Width(), mask.Height()),
		}
	}
	return nil
}

// BuildEncrypted combines every image cell with the mask cell it pairs
// with at solution, producing a grid the same shape as the image. Aligning
// the mask at exactly solution during live compositing then reproduces the
// image bit for bit.
func BuildEncrypted(img, mask *grid.Grid, solution grid.Offset) (*grid.Grid, error) {
	if err := CheckBounds(img, mask, solution); err != nil {
		return nil, err
	}

	enc := grid.New(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			enc.Set(x, y, Combine(img.At(x, y), mask.At(x+solution.X, y+solution.Y)))
		}
	}
	return enc, nil
}

// Decrypt recovers the source image from an encrypted grid and the mask
// it was built with. Since Combine is its own inverse this is
// BuildEncrypted run a second time.
func Decrypt(enc, mask *grid.Grid, solution grid.Offset) (*grid.Grid, error) {
	return BuildEncrypted(enc, mask, solution)
}

// Composite builds the displayed view for a candidate mask offset. The
// view has the mask's shape; where a mask cell overlays an encrypted cell
// the two are XORed, everywhere else the raw mask color shows through.
// Offset is in grid cells, in the same sense as BuildEncrypted: mask cell
// (x+off.X, y+off.Y) overlays image cell (x, y).
func Composite(enc, mask *grid.Grid, off grid.Offset) *grid.Grid {
	view := grid.New(mask.Width(), mask.Height())
	for my := 0; my < mask.Height(); my++ {
		for mx := 0; mx < mask.Width(); mx++ {
			ix, iy := mx-off.X, my-off.Y
			if enc.In(ix, iy) {
				view.Set(mx, my, Combine(enc.At(ix, iy), mask.At(mx, my)))
			} else {
				view.Set(mx, my, mask.At(mx, my))
			}
		}
	}
	return view
}
