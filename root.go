// Package otp implements the engine behind an interactive one-time-pad
// teaching aid.
//
// A small "encrypted" pixel grid is built by XORing a source picture with
// a larger random mask grid at one fixed solution offset. The learner
// drags the mask across the encrypted grid; only at the solution offset
// does the XOR of the two reproduce the picture. The engine covers grid
// synthesis, compositing and drag/hint tracking; drawing and input
// capture belong to collaborators (see the screen package and cmd/otppad).
package otp

import (
	"github.com/TanGrumser/OTP/grid"
	"github.com/TanGrumser/OTP/pad"
	"github.com/TanGrumser/OTP/synth"
	"github.com/TanGrumser/OTP/tracker"
)

// Config describes one puzzle. All dimensions and the solution offset are
// in grid cells; CellSize maps cells to display pixels.
type Config struct {
	Seed        uint32
	ImageWidth  int
	ImageHeight int
	MaskWidth   int
	MaskHeight  int
	CellSize    int
	Solution    grid.Offset
	// Margin is the number of spare mask cells required beyond the image
	// at the solution offset, so off-target exploration always has
	// somewhere to go. The mask must exceed the image by more than the
	// solution offset plus margin; with Margin 0 one spare cell is still
	// required.
	Margin   int
	Strategy synth.Strategy
}

func DefaultConfig() Config {
	return Config{
		Seed:        12345,
		ImageWidth:  64,
		ImageHeight: 64,
		MaskWidth:   96,
		MaskHeight:  96,
		CellSize:    6,
		Solution:    grid.Offset{X: 16, Y: 16},
		Margin:      4,
		Strategy:    synth.Uniform,
	}
}

// Validate checks the puzzle geometry before any grid is built. A
// solution offset that would push encryption lookups outside the mask is
// a fatal configuration error, never a silent clamp.
func (cfg Config) Validate() error {
	switch {
	case cfg.ImageWidth <= 0 || cfg.ImageHeight <= 0:
		return &pad.ConfigurationError{Reason: "image dimensions must be positive"}
	case cfg.MaskWidth <= 0 || cfg.MaskHeight <= 0:
		return &pad.ConfigurationError{Reason: "mask dimensions must be positive"}
	case cfg.CellSize <= 0:
		return &pad.ConfigurationError{Reason: "cell size must be positive"}
	case cfg.Margin < 0:
		return &pad.ConfigurationError{Reason: "margin must not be negative"}
	case cfg.Solution.X < 0 || cfg.Solution.Y < 0:
		return &pad.ConfigurationError{Reason: "solution offset must not be negative"}
	case cfg.MaskWidth <= cfg.ImageWidth+cfg.Solution.X+cfg.Margin ||
		cfg.MaskHeight <= cfg.ImageHeight+cfg.Solution.Y+cfg.Margin:
		return &pad.ConfigurationError{
			Reason: "mask must strictly exceed the image by the solution offset plus margin on both axes",
		}
	}
	return nil
}

// Session owns the grids and the drag state for one puzzle. The source,
// mask and encrypted grids are built once per (re)generation and read-only
// afterwards; only the tracked offset mutates between inputs.
type Session struct {
	cfg       Config
	source    *grid.Grid
	mask      *grid.Grid
	encrypted *grid.Grid
	track     *tracker.Tracker
}

// NewSession validates cfg and builds the puzzle grids. A nil source uses
// the built-in demo picture.
func NewSession(cfg Config, source *grid.Grid) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = DemoImage(cfg.ImageWidth, cfg.ImageHeight)
	}
	if source.Width() != cfg.ImageWidth || source.Height() != cfg.ImageHeight {
		return nil, &pad.ConfigurationError{Reason: "source grid does not match the configured image size"}
	}

	s := &Session{cfg: cfg, source: source}
	if err := s.synthesize(cfg.Strategy); err != nil {
		return nil, err
	}
	s.track = tracker.New(cfg.CellSize, cfg.MaskWidth, cfg.MaskHeight, cfg.Solution, grid.Offset{})
	return s, nil
}

func (s *Session) synthesize(strategy synth.Strategy) error {
	mask := synth.Mask(s.cfg.Seed, s.cfg.MaskWidth, s.cfg.MaskHeight, strategy)
	enc, err := pad.BuildEncrypted(s.source, mask, s.cfg.Solution)
	if err != nil {
		return err
	}
	s.mask = mask
	s.encrypted = enc
	s.cfg.Strategy = strategy
	return nil
}

// Regenerate rebuilds the mask and encrypted grids with the given
// strategy. The drag state is dropped first, so from the caller's point
// of view the grids and the offset swap together.
func (s *Session) Regenerate(strategy synth.Strategy) error {
	if s.track != nil {
		s.track.Reset()
	}
	return s.synthesize(strategy)
}

// Reset restores the initial mask offset without resynthesizing grids.
func (s *Session) Reset() { s.track.Reset() }

// HandleInput forwards one pointer event to the alignment tracker.
func (s *Session) HandleInput(ev tracker.Event) tracker.State {
	return s.track.HandleInput(ev)
}

// View composites the encrypted grid with the mask at its current offset.
func (s *Session) View() *grid.Grid {
	return pad.Composite(s.encrypted, s.mask, s.track.Cells())
}

// ViewAt composites at an explicit offset in grid cells, independent of
// the drag state.
func (s *Session) ViewAt(cells grid.Offset) *grid.Grid {
	return pad.Composite(s.encrypted, s.mask, cells)
}

// HintAt reports the directional hint for an explicit offset in grid
// cells, independent of the drag state.
func (s *Session) HintAt(cells grid.Offset) string {
	step := s.cfg.CellSize
	return tracker.HintFor(cells.Scale(step), s.cfg.Solution.Scale(step), step)
}

func (s *Session) Hint() string          { return s.track.Hint() }
func (s *Session) Solved() bool          { return s.track.Solved() }
func (s *Session) Distance() float64     { return s.track.Distance() }
func (s *Session) Offset() grid.Offset   { return s.track.Cells() }
func (s *Session) Config() Config        { return s.cfg }
func (s *Session) Source() *grid.Grid    { return s.source }
func (s *Session) Mask() *grid.Grid      { return s.mask }
func (s *Session) Encrypted() *grid.Grid { return s.encrypted }
