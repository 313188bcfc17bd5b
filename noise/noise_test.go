package noise

import (
	"math"
	"testing"

	"github.com/TanGrumser/OTP/random"
)

func TestReproducible(t *testing.T) {
	a := NewField(random.NewSource(12345))
	b := NewField(random.NewSource(12345))

	for y := 0.0; y < 4; y += 0.31 {
		for x := 0.0; x < 4; x += 0.27 {
			if a.Sample(x, y) != b.Sample(x, y) {
				t.Fatalf("fields diverge at (%v, %v)", x, y)
			}
		}
	}
}

func TestRange(t *testing.T) {
	f := NewField(random.NewSource(7))
	for y := -3.0; y < 3; y += 0.13 {
		for x := -3.0; x < 3; x += 0.17 {
			v := f.Sample(x, y)
			if v < 0 || v >= 1 {
				t.Fatalf("sample at (%v, %v) out of range: %v", x, y, v)
			}
		}
	}
}

func TestContinuity(t *testing.T) {
	f := NewField(random.NewSource(99))

	const eps = 1e-4
	const bound = 0.01
	points := []struct{ x, y float64 }{
		{0.5, 0.5},
		{1.25, 3.75},
		{2.5, 0.125},
	}
	for _, p := range points {
		base := f.Sample(p.x, p.y)
		if d := math.Abs(f.Sample(p.x+eps, p.y) - base); d > bound {
			t.Errorf("discontinuity at (%v, %v): x-step delta %v", p.x, p.y, d)
		}
		if d := math.Abs(f.Sample(p.x, p.y+eps) - base); d > bound {
			t.Errorf("discontinuity at (%v, %v): y-step delta %v", p.x, p.y, d)
		}
	}
}

// No jump across integer cell boundaries, where corner gradients change.
func TestCellBoundaryContinuity(t *testing.T) {
	f := NewField(random.NewSource(4321))

	const eps = 1e-5
	for i := 1.0; i <= 4; i++ {
		before := f.Sample(i-eps, 2.5)
		after := f.Sample(i+eps, 2.5)
		if d := math.Abs(after - before); d > 0.01 {
			t.Errorf("jump across x=%v: %v", i, d)
		}

		before = f.Sample(2.5, i-eps)
		after = f.Sample(2.5, i+eps)
		if d := math.Abs(after - before); d > 0.01 {
			t.Errorf("jump across y=%v: %v", i, d)
		}
	}
}
