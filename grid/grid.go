// Package grid holds the data model shared by the synthesis, compositing
// and tracking layers: 8-bit RGBA colors, fixed-size row-major color
// grids, and integer offsets between them.
package grid

import "fmt"

// Grid is a fixed width x height raster of colors, origin at the top
// left, stored row-major. Cells are written during construction and read
// thereafter.
type Grid struct {
	w, h  int
	cells []Color
}

func New(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", w, h))
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Color, w*h),
	}
}

// NewUniform builds a grid with every cell set to c.
func NewUniform(w, h int, c Color) *Grid {
	g := New(w, h)
	for i := range g.cells {
		g.cells[i] = c
	}
	return g
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// In reports whether (x, y) addresses a cell.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). Out-of-range coordinates are a caller
// bug and panic rather than clamp.
func (g *Grid) At(x, y int) Color {
	if !g.In(x, y) {
		panic(fmt.Sprintf("grid: At(%d, %d) outside %dx%d", x, y, g.w, g.h))
	}
	return g.cells[y*g.w+x]
}

func (g *Grid) Set(x, y int, c Color) {
	if !g.In(x, y) {
		panic(fmt.Sprintf("grid: Set(%d, %d) outside %dx%d", x, y, g.w, g.h))
	}
	g.cells[y*g.w+x] = c
}

// Equal reports channel-wise equality of two grids.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
