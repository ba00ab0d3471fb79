package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Aspenini/Raycast-TUI/internal/render"
)

// Presenter copies completed frames onto the terminal. All color conversion
// from the renderer's RGB space into tcell styles happens here, so the
// renderer itself never touches the terminal.
type Presenter struct {
	screen *Screen
}

// NewPresenter creates a presenter for the given screen.
func NewPresenter(screen *Screen) *Presenter {
	return &Presenter{screen: screen}
}

// Present writes every cell of the frame to the screen and flushes it.
func (p *Presenter) Present(frame *render.FrameBuffer) {
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			style := tcell.StyleDefault.
				Foreground(toTCellColor(cell.Fg)).
				Background(toTCellColor(cell.Bg))
			p.screen.SetContent(x, y, cell.Rune, style)
		}
	}
	p.screen.Show()
}

// toTCellColor converts a renderer color to a 24-bit tcell color.
func toTCellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
