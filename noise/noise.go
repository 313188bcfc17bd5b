// Package noise evaluates classic 2D gradient noise over a permutation
// table shuffled by a deterministic random source. The same source state
// always yields the same field, and the field is continuous everywhere,
// including across integer cell boundaries.
package noise

import (
	"math"

	"github.com/TanGrumser/OTP/random"
)

type Field struct {
	// 256 entries duplicated to 512 so corner hashing never wraps.
	perm [512]int
}

// NewField builds a field whose permutation table is Fisher-Yates shuffled
// by src. The caller owns the seeding of src.
func NewField(src *random.Source) *Field {
	var p [256]int
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	f := &Field{}
	for i := range f.perm {
		f.perm[i] = p[i&255]
	}
	return f
}

// Sample evaluates the field at (x, y) and returns a value in [0, 1).
func (f *Field) Sample(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi, yi := int(fx)&255, int(fy)&255
	xf, yf := x-fx, y-fy

	u, v := fade(xf), fade(yf)

	aa := f.perm[f.perm[xi]+yi]
	ab := f.perm[f.perm[xi]+yi+1]
	ba := f.perm[f.perm[xi+1]+yi]
	bb := f.perm[f.perm[xi+1]+yi+1]

	n := lerp(
		lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u),
		lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u),
		v)

	// [-1,1] -> [0,1)
	n = (n + 1) / 2
	if n < 0 {
		return 0
	}
	if n >= 1 {
		return math.Nextafter(1, 0)
	}
	return n
}

// fade is the quintic ease curve t³(t(6t−15)+10).
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad selects one of eight gradient directions from the low 3 bits of a
// permutation hash and projects (x, y) onto it.
func grad(hash int, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return x - y
	case 2:
		return -x + y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}
