package synth

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/TanGrumser/OTP/grid"
)

// DecodeError reports a source raster that could not be turned into a
// grid. Op distinguishes the failure to obtain the raster ("load") from a
// failure to read its pixel data ("read").
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ingest: could not %s source image: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Ingest decodes a source raster from r and resamples it into a w x h
// color grid.
func Ingest(r io.Reader, w, h int) (*grid.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Op: "load", Err: err}
	}
	return IngestImage(img, w, h)
}

// IngestFile reads and ingests the raster at path.
func IngestFile(path string, w, h int) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Op: "load", Err: err}
	}
	defer f.Close()
	return Ingest(f, w, h)
}

// IngestImage resamples an already decoded raster into a w x h color
// grid. The source is treated as opaque; alpha is dropped.
func IngestImage(img image.Image, w, h int) (*grid.Grid, error) {
	if img == nil {
		return nil, &DecodeError{Op: "read", Err: fmt.Errorf("no image")}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Op: "read", Err: fmt.Errorf("empty bounds %v", b)}
	}

	if b.Dx() != w || b.Dy() != h {
		img = resize.Resize(uint(w), uint(h), img, resize.Bilinear)
		b = img.Bounds()
	}

	g := grid.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, gr, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			g.Set(x, y, grid.RGB(uint8(r>>8), uint8(gr>>8), uint8(bl>>8)))
		}
	}
	return g, nil
}
