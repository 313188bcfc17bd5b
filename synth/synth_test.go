package synth

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/TanGrumser/OTP/grid"
)

func TestUniformMaskDeterminism(t *testing.T) {
	a := Mask(12345, 48, 48, Uniform)
	b := Mask(12345, 48, 48, Uniform)
	if !a.Equal(b) {
		t.Error("same seed produced different uniform masks")
	}
}

func TestCoherentMaskDeterminism(t *testing.T) {
	a := Mask(12345, 48, 48, Coherent)
	b := Mask(12345, 48, 48, Coherent)
	if !a.Equal(b) {
		t.Error("same seed produced different coherent masks")
	}
}

func TestSeedsProduceDifferentMasks(t *testing.T) {
	a := Mask(1, 16, 16, Uniform)
	b := Mask(2, 16, 16, Uniform)
	if a.Equal(b) {
		t.Error("different seeds produced identical masks")
	}
}

func TestMaskShape(t *testing.T) {
	g := Mask(7, 96, 64, Coherent)
	if g.Width() != 96 || g.Height() != 64 {
		t.Errorf("mask is %dx%d", g.Width(), g.Height())
	}
}

// Neighboring coherent cells should usually be close in value; a uniform
// mask has no such structure. This is a loose structural check, not a
// statistical one.
func TestCoherentMaskIsSmooth(t *testing.T) {
	g := Mask(12345, 64, 64, Coherent)

	var total, count int
	for y := 0; y < g.Height(); y++ {
		for x := 1; x < g.Width(); x++ {
			a, b := g.At(x-1, y), g.At(x, y)
			d := int(a.R) - int(b.R)
			if d < 0 {
				d = -d
			}
			total += d
			count++
		}
	}
	if avg := float64(total) / float64(count); avg > 24 {
		t.Errorf("average neighbor delta %v, expected a smooth field", avg)
	}
}

func TestParseStrategy(t *testing.T) {
	if s, err := ParseStrategy("uniform"); err != nil || s != Uniform {
		t.Errorf("uniform: %v, %v", s, err)
	}
	if s, err := ParseStrategy("Coherent"); err != nil || s != Coherent {
		t.Errorf("coherent: %v, %v", s, err)
	}
	if _, err := ParseStrategy("perlin"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestIngestImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, grid.RGB(200, 100, 50))
		}
	}

	g, err := IngestImage(src, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.At(x, y) != grid.RGB(200, 100, 50) {
				t.Fatalf("cell (%d, %d) = %v", x, y, g.At(x, y))
			}
		}
	}
}

func TestIngestResamples(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.Set(x, y, grid.RGB(10, 20, 30))
		}
	}

	g, err := IngestImage(src, 16, 16)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 16 || g.Height() != 16 {
		t.Fatalf("resampled grid is %dx%d", g.Width(), g.Height())
	}
	if g.At(8, 8) != grid.RGB(10, 20, 30) {
		t.Errorf("resampled cell = %v", g.At(8, 8))
	}
}

func TestIngestRoundTripPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, grid.RGB(uint8(x*60), uint8(y*60), 128))
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	g, err := Ingest(&buf, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.At(2, 3) != grid.RGB(120, 180, 128) {
		t.Errorf("cell (2, 3) = %v", g.At(2, 3))
	}
}

func TestIngestLoadFailure(t *testing.T) {
	_, err := Ingest(bytes.NewReader([]byte("not an image")), 8, 8)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decErr.Op != "load" {
		t.Errorf("Op = %q, want load", decErr.Op)
	}
}

func TestIngestFileMissing(t *testing.T) {
	_, err := IngestFile("testdata/does-not-exist.png", 8, 8)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestIngestNilImage(t *testing.T) {
	_, err := IngestImage(nil, 8, 8)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decErr.Op != "read" {
		t.Errorf("Op = %q, want read", decErr.Op)
	}
}
