package pad

import (
	"errors"
	"testing"

	"github.com/TanGrumser/OTP/grid"
	"github.com/TanGrumser/OTP/random"
)

var sampleColors = []grid.Color{
	grid.RGB(0, 0, 0),
	grid.RGB(255, 255, 255),
	grid.RGB(200, 100, 50),
	grid.RGB(1, 2, 3),
	grid.RGB(0xAA, 0x55, 0xF0),
}

func TestCombineSelfInverse(t *testing.T) {
	for _, a := range sampleColors {
		for _, b := range sampleColors {
			if got := Combine(Combine(a, b), b); got != grid.RGB(a.R, a.G, a.B) {
				t.Errorf("Combine(Combine(%v, %v), %v) = %v", a, b, b, got)
			}
		}
	}
}

func TestCombineCommutative(t *testing.T) {
	for _, a := range sampleColors {
		for _, b := range sampleColors {
			if Combine(a, b) != Combine(b, a) {
				t.Errorf("Combine(%v, %v) not commutative", a, b)
			}
		}
	}
}

func TestCombineZeroIdentity(t *testing.T) {
	black := grid.RGB(0, 0, 0)
	for _, a := range sampleColors {
		if got := Combine(a, black); got != grid.RGB(a.R, a.G, a.B) {
			t.Errorf("Combine(%v, black) = %v", a, got)
		}
	}
}

func TestCombineColorsSentinel(t *testing.T) {
	if CombineColors(nil, grid.RGB(1, 2, 3)) != Sentinel {
		t.Error("nil first input did not degrade to sentinel")
	}
	if CombineColors(grid.RGB(1, 2, 3), nil) != Sentinel {
		t.Error("nil second input did not degrade to sentinel")
	}
	if CombineColors(grid.RGB(1, 2, 3), grid.RGB(0, 0, 0)) != grid.RGB(1, 2, 3) {
		t.Error("valid inputs mangled")
	}
}

func randomGrid(seed uint32, w, h int) *grid.Grid {
	src := random.NewSource(seed)
	g := grid.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, grid.RGB(src.Uint8(), src.Uint8(), src.Uint8()))
		}
	}
	return g
}

func TestDecryptionCorrectness(t *testing.T) {
	img := randomGrid(1, 32, 32)
	mask := randomGrid(2, 48, 48)
	solution := grid.Offset{X: 8, Y: 8}

	enc, err := BuildEncrypted(img, mask, solution)
	if err != nil {
		t.Fatal(err)
	}
	if enc.Width() != img.Width() || enc.Height() != img.Height() {
		t.Fatalf("encrypted grid is %dx%d", enc.Width(), enc.Height())
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			got := Combine(enc.At(x, y), mask.At(x+solution.X, y+solution.Y))
			want := img.At(x, y)
			if got != grid.RGB(want.R, want.G, want.B) {
				t.Fatalf("cell (%d, %d) does not decrypt: got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDecryptRoundTrip(t *testing.T) {
	img := randomGrid(3, 16, 16)
	mask := randomGrid(4, 24, 24)
	solution := grid.Offset{X: 4, Y: 2}

	enc, err := BuildEncrypted(img, mask, solution)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decrypt(enc, mask, solution)
	if err != nil {
		t.Fatal(err)
	}
	if !dec.Equal(img) {
		t.Error("decrypted grid differs from the source image")
	}
}

func TestCheckBounds(t *testing.T) {
	img := grid.New(32, 32)
	mask := grid.New(48, 48)

	cases := []struct {
		sol grid.Offset
		ok  bool
	}{
		{grid.Offset{X: 0, Y: 0}, true},
		{grid.Offset{X: 16, Y: 16}, true},
		{grid.Offset{X: 17, Y: 0}, false},
		{grid.Offset{X: 0, Y: 17}, false},
		{grid.Offset{X: -1, Y: 0}, false},
	}
	for _, c := range cases {
		err := CheckBounds(img, mask, c.sol)
		if c.ok && err != nil {
			t.Errorf("CheckBounds(%v): unexpected error %v", c.sol, err)
		}
		if !c.ok {
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("CheckBounds(%v): expected ConfigurationError, got %v", c.sol, err)
			}
		}
	}
}

func TestBuildEncryptedRejectsBadSolution(t *testing.T) {
	img := grid.New(32, 32)
	mask := grid.New(48, 48)
	if _, err := BuildEncrypted(img, mask, grid.Offset{X: 20, Y: 20}); err == nil {
		t.Error("expected configuration error")
	}
}

func TestCompositeDualRegion(t *testing.T) {
	img := randomGrid(3, 4, 4)
	mask := randomGrid(4, 8, 8)
	solution := grid.Offset{X: 2, Y: 2}

	enc, err := BuildEncrypted(img, mask, solution)
	if err != nil {
		t.Fatal(err)
	}

	view := Composite(enc, mask, solution)
	if view.Width() != mask.Width() || view.Height() != mask.Height() {
		t.Fatalf("view is %dx%d", view.Width(), view.Height())
	}

	// Overlap region shows the original image.
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			want := img.At(x, y)
			if got := view.At(x+solution.X, y+solution.Y); got != grid.RGB(want.R, want.G, want.B) {
				t.Fatalf("overlap cell (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}

	// Outside the overlap the raw mask shows through.
	if view.At(0, 0) != mask.At(0, 0) {
		t.Error("cell outside the overlap is not the raw mask color")
	}
	if view.At(7, 7) != mask.At(7, 7) {
		t.Error("cell outside the overlap is not the raw mask color")
	}
}

func TestCompositeOffTarget(t *testing.T) {
	img := randomGrid(5, 8, 8)
	mask := randomGrid(6, 16, 16)
	solution := grid.Offset{X: 4, Y: 4}

	enc, err := BuildEncrypted(img, mask, solution)
	if err != nil {
		t.Fatal(err)
	}

	view := Composite(enc, mask, grid.Offset{})
	differs := false
	for y := 0; y < img.Height() && !differs; y++ {
		for x := 0; x < img.Width(); x++ {
			want := img.At(x, y)
			if view.At(x, y) != grid.RGB(want.R, want.G, want.B) {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Error("off-target composite reproduced the image")
	}
}
