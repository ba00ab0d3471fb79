// Package render turns a map and a camera pose into a frame of terminal cells.
package render

import "github.com/lucasb-eyer/go-colorful"

// Cell is one terminal cell of a rendered frame: a character plus foreground
// and background colors. The renderer emits half-block cells, so foreground
// carries the upper pixel and background the lower one.
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

// FrameBuffer is a completed frame: Height rows of Width cells, fully
// overwritten on every render. It carries no terminal state, so frames can
// be compared and inspected in tests without a screen.
type FrameBuffer struct {
	Width  int
	Height int
	cells  []Cell
}

// NewFrameBuffer allocates a zeroed frame of the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// At returns the cell at column x, row y.
func (f *FrameBuffer) At(x, y int) Cell {
	return f.cells[y*f.Width+x]
}

// Set stores the cell at column x, row y.
func (f *FrameBuffer) Set(x, y int, c Cell) {
	f.cells[y*f.Width+x] = c
}

// Equal reports whether two frames have identical dimensions and cells.
func (f *FrameBuffer) Equal(other *FrameBuffer) bool {
	if f.Width != other.Width || f.Height != other.Height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
