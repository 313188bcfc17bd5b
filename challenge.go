package otp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/32bitkid/bitreader"

	"github.com/TanGrumser/OTP/grid"
	"github.com/TanGrumser/OTP/synth"
)

// A Challenge is a compact, shareable description of a puzzle. Grids are
// never stored; the seed and geometry reproduce them exactly.
type Challenge struct {
	Config Config
}

const challengeMagic uint32 = 0x4F545043 // "OTPC"
const challengeVersion = 1

// Challenge wire format, after the 32-bit magic:
//
// bits |
//    8 | format version
//   32 | seed
//    2 | mask strategy
//    6 | cell size
//   10 | image width       (all dimensions in grid cells)
//   10 | image height
//   10 | mask width
//   10 | mask height
//   10 | solution offset x
//   10 | solution offset y
//    6 | margin
//
// padded with zero bits to the next byte boundary.
const (
	maxDimension = 1<<10 - 1
	maxCellSize  = 1<<6 - 1
	maxMargin    = 1<<6 - 1
)

// Encode writes the bit-packed challenge. Configurations the format
// cannot represent are rejected, as is any invalid geometry.
func (c Challenge) Encode(w io.Writer) error {
	cfg := c.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch {
	case cfg.ImageWidth > maxDimension || cfg.ImageHeight > maxDimension ||
		cfg.MaskWidth > maxDimension || cfg.MaskHeight > maxDimension ||
		cfg.Solution.X > maxDimension || cfg.Solution.Y > maxDimension:
		return fmt.Errorf("challenge format cannot represent dimensions over %d cells", maxDimension)
	case cfg.CellSize > maxCellSize:
		return fmt.Errorf("challenge format cannot represent cell sizes over %d", maxCellSize)
	case cfg.Margin > maxMargin:
		return fmt.Errorf("challenge format cannot represent margins over %d", maxMargin)
	}

	bw := &bitWriter{w: w}
	bw.write(challengeMagic, 32)
	bw.write(challengeVersion, 8)
	bw.write(cfg.Seed, 32)
	bw.write(uint32(cfg.Strategy), 2)
	bw.write(uint32(cfg.CellSize), 6)
	bw.write(uint32(cfg.ImageWidth), 10)
	bw.write(uint32(cfg.ImageHeight), 10)
	bw.write(uint32(cfg.MaskWidth), 10)
	bw.write(uint32(cfg.MaskHeight), 10)
	bw.write(uint32(cfg.Solution.X), 10)
	bw.write(uint32(cfg.Solution.Y), 10)
	bw.write(uint32(cfg.Margin), 6)
	return bw.flush()
}

// DecodeChallenge reads a bit-packed challenge and validates its geometry.
func DecodeChallenge(r io.Reader) (Challenge, error) {
	bits := bitreader.NewReader(bufio.NewReader(r))

	magic, err := bits.Read32(32)
	if err != nil {
		return Challenge{}, fmt.Errorf("could not read challenge header: %w", err)
	}
	if magic != challengeMagic {
		return Challenge{}, fmt.Errorf("not a challenge file")
	}

	version, err := bits.Read8(8)
	if err != nil {
		return Challenge{}, fmt.Errorf("could not read challenge version: %w", err)
	}
	if version != challengeVersion {
		return Challenge{}, fmt.Errorf("unsupported challenge version %d", version)
	}

	var cfg Config
	if cfg.Seed, err = bits.Read32(32); err != nil {
		return Challenge{}, fmt.Errorf("could not read challenge body: %w", err)
	}

	strategy, err := bits.Read8(2)
	if err != nil {
		return Challenge{}, fmt.Errorf("could not read challenge body: %w", err)
	}
	if strategy > uint8(synth.Coherent) {
		return Challenge{}, fmt.Errorf("unknown mask strategy code %d", strategy)
	}
	cfg.Strategy = synth.Strategy(strategy)

	fields := []struct {
		bits uint
		dst  *int
	}{
		{6, &cfg.CellSize},
		{10, &cfg.ImageWidth},
		{10, &cfg.ImageHeight},
		{10, &cfg.MaskWidth},
		{10, &cfg.MaskHeight},
		{10, &cfg.Solution.X},
		{10, &cfg.Solution.Y},
		{6, &cfg.Margin},
	}
	for _, f := range fields {
		v, err := bits.Read16(f.bits)
		if err != nil {
			return Challenge{}, fmt.Errorf("could not read challenge body: %w", err)
		}
		*f.dst = int(v)
	}

	if err := cfg.Validate(); err != nil {
		return Challenge{}, err
	}
	return Challenge{Config: cfg}, nil
}

// Save writes the challenge to a file.
func (c Challenge) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadChallenge reads a challenge file.
func LoadChallenge(path string) (Challenge, error) {
	f, err := os.Open(path)
	if err != nil {
		return Challenge{}, err
	}
	defer f.Close()
	return DecodeChallenge(f)
}

// Session builds a fresh session from the challenge with the built-in
// demo picture sized to its geometry.
func (c Challenge) Session() (*Session, error) {
	return NewSession(c.Config, nil)
}

// SessionWith builds a session from the challenge over a supplied source
// grid.
func (c Challenge) SessionWith(source *grid.Grid) (*Session, error) {
	return NewSession(c.Config, source)
}

// bitWriter is the encode-side counterpart of the bitreader used for
// decode: values are packed most-significant bit first.
type bitWriter struct {
	w       io.Writer
	buf     uint64
	n       uint
	err     error
	scratch [1]byte
}

func (bw *bitWriter) write(v uint32, bits uint) {
	if bw.err != nil {
		return
	}
	bw.buf = bw.buf<<bits | uint64(v)&(1<<bits-1)
	bw.n += bits
	for bw.n >= 8 {
		bw.scratch[0] = uint8(bw.buf >> (bw.n - 8))
		bw.n -= 8
		if _, err := bw.w.Write(bw.scratch[:]); err != nil {
			bw.err = err
			return
		}
	}
}

func (bw *bitWriter) flush() error {
	if bw.err == nil && bw.n > 0 {
		bw.scratch[0] = uint8(bw.buf << (8 - bw.n))
		bw.n = 0
		if _, err := bw.w.Write(bw.scratch[:]); err != nil {
			bw.err = err
		}
	}
	return bw.err
}
