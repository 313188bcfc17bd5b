// Package synth builds the random mask grids and ingests source rasters
// into the fixed puzzle shape. Both mask strategies are deterministic in
// the configured seed.
package synth

import (
	"fmt"
	"strings"

	"github.com/TanGrumser/OTP/grid"
	"github.com/TanGrumser/OTP/noise"
	"github.com/TanGrumser/OTP/random"
)

// Strategy selects how mask colors are generated.
type Strategy int

const (
	// Uniform draws three independent samples per cell.
	Uniform Strategy = iota
	// Coherent samples a smooth gradient-noise field per channel.
	Coherent
)

func (s Strategy) String() string {
	switch s {
	case Coherent:
		return "coherent"
	default:
		return "uniform"
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "uniform":
		return Uniform, nil
	case "coherent":
		return Coherent, nil
	default:
		return Uniform, fmt.Errorf("unknown mask strategy %q", name)
	}
}

// Coherent-noise tuning. The channel input offsets decorrelate R, G and B
// samples taken from the same field.
const (
	frequency = 0.1
	greenOffX = 100
	blueOffY  = 200
)

// Mask synthesizes a w x h mask grid. The random source is seeded once
// here and never reseeded mid-pass; cells are filled row-major, channels
// drawn R, G, B. Both orders are part of the determinism contract.
func Mask(seed uint32, w, h int, strategy Strategy) *grid.Grid {
	src := random.NewSource(seed)
	g := grid.New(w, h)

	switch strategy {
	case Coherent:
		f := noise.NewField(src)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				fx, fy := float64(x)*frequency, float64(y)*frequency
				g.Set(x, y, grid.RGB(
					channel(f.Sample(fx, fy)),
					channel(f.Sample(fx+greenOffX*frequency, fy)),
					channel(f.Sample(fx, fy+blueOffY*frequency)),
				))
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.Set(x, y, grid.RGB(src.Uint8(), src.Uint8(), src.Uint8()))
			}
		}
	}

	return g
}

// channel scales a [0,1) sample to [0,256).
func channel(v float64) uint8 {
	c := int(v * 256)
	if c > 255 {
		c = 255
	}
	if c < 0 {
		c = 0
	}
	return uint8(c)
}
