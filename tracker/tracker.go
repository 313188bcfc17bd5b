// Package tracker maintains the mask's live offset while the learner
// drags it, snapped to the pixel grid, and turns the distance to the one
// correct alignment into a hint.
//
// Offsets here are display pixels. The solution offset is handed over in
// grid cells and converted once, so it always lands on a snap boundary.
package tracker

import (
	"math"

	"github.com/TanGrumser/OTP/grid"
)

// State of the drag interaction.
type State int

const (
	Idle State = iota
	Dragging
)

// EventKind identifies a discrete pointer input.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

// Event is one pointer input, with the pointer position in display pixels.
type Event struct {
	Kind EventKind
	X, Y int
}

// Tracker is the drag state machine. All transitions happen synchronously
// in HandleInput; there is no background work and no concurrent writer.
type Tracker struct {
	step     int
	solution grid.Offset // pixels, a multiple of step by construction
	initial  grid.Offset
	extent   grid.Offset // mask extent in pixels, for hit testing

	state     State
	offset    grid.Offset
	dragStart grid.Offset
	pointerAt grid.Offset
}

// New builds a tracker for a mask of maskW x maskH cells rendered at step
// pixels per cell. Solution and initial offsets are in grid cells.
func New(step, maskW, maskH int, solution, initial grid.Offset) *Tracker {
	return &Tracker{
		step:     step,
		solution: solution.Scale(step),
		initial:  initial.Scale(step),
		extent:   grid.Offset{X: maskW * step, Y: maskH * step},
		offset:   initial.Scale(step),
	}
}

func (t *Tracker) State() State { return t.state }

// Offset is the current snapped mask offset in pixels.
func (t *Tracker) Offset() grid.Offset { return t.offset }

// Cells is the current offset in grid cells. Exact, since the offset is
// always a multiple of the step.
func (t *Tracker) Cells() grid.Offset {
	return grid.Offset{X: t.offset.X / t.step, Y: t.offset.Y / t.step}
}

// Reset restores the initial offset and drops any drag in progress.
func (t *Tracker) Reset() {
	t.state = Idle
	t.offset = t.initial
}

// HandleInput advances the state machine by one pointer event and returns
// the new state. A drag begins only on a pointer-down inside the mask's
// current rectangle; releasing or leaving the surface keeps the last
// snapped offset.
func (t *Tracker) HandleInput(ev Event) State {
	switch ev.Kind {
	case PointerDown:
		if t.state == Idle && t.hit(ev.X, ev.Y) {
			t.state = Dragging
			t.dragStart = t.offset
			t.pointerAt = grid.Offset{X: ev.X, Y: ev.Y}
		}
	case PointerMove:
		if t.state == Dragging {
			delta := grid.Offset{X: ev.X, Y: ev.Y}.Sub(t.pointerAt)
			t.offset = t.snapOffset(t.dragStart.Add(delta))
		}
	case PointerUp, PointerLeave:
		t.state = Idle
	}
	return t.state
}

func (t *Tracker) hit(x, y int) bool {
	return x >= t.offset.X && x < t.offset.X+t.extent.X &&
		y >= t.offset.Y && y < t.offset.Y+t.extent.Y
}

// Snap rounds v to the nearest multiple of the step size.
func Snap(v, step int) int {
	return int(math.Round(float64(v)/float64(step))) * step
}

func (t *Tracker) snapOffset(o grid.Offset) grid.Offset {
	return grid.Offset{X: Snap(o.X, t.step), Y: Snap(o.Y, t.step)}
}

// Distance is the Euclidean distance from the current offset to the
// solution, in pixels.
func (t *Tracker) Distance() float64 {
	return t.offset.Dist(t.solution)
}

// Solved reports whether the mask rests close enough to the solution to
// count as aligned.
func (t *Tracker) Solved() bool {
	return t.Distance() < solvedThreshold*float64(t.step)
}

const solvedThreshold = 0.7

// Hint buckets, in grid steps.
const (
	veryNearSteps = 5
	nearSteps     = 15
	farSteps      = 30
)

const SolvedHint = "solved! the pad is aligned"

// Hint describes where the solution lies relative to the current offset.
func (t *Tracker) Hint() string {
	return HintFor(t.offset, t.solution, t.step)
}

// HintFor is the pure form of Hint: a compass arrow pointing from offset
// toward solution plus a coarse proximity qualifier, or the solved
// message within the alignment threshold. All arguments share a unit;
// step is the grid step in that unit.
func HintFor(offset, solution grid.Offset, step int) string {
	dist := offset.Dist(solution)
	if dist < solvedThreshold*float64(step) {
		return SolvedHint
	}

	d := solution.Sub(offset)
	half := step / 2

	row := 1
	switch {
	case d.Y < -half:
		row = 0
	case d.Y > half:
		row = 2
	}
	col := 1
	switch {
	case d.X < -half:
		col = 0
	case d.X > half:
		col = 2
	}
	arrow := compass[row][col]

	steps := dist / float64(step)
	switch {
	case steps < veryNearSteps:
		return arrow + " very near"
	case steps < nearSteps:
		return arrow + " near"
	case steps < farSteps:
		return arrow
	default:
		return arrow + " far"
	}
}

var compass = [3][3]string{
	{"↖", "↑", "↗"},
	{"←", "·", "→"},
	{"↙", "↓", "↘"},
}
