package barigueira

import (
	"github.com/vovakirdan/barigueira/internal/config"
	"github.com/vovakirdan/barigueira/internal/core"
)

// Layout places slots and buttons on a screen of a given size.
// Units follow the metrics: cells for the terminal, pixels for the window.
type Layout struct {
	Metrics config.Metrics
	Width   int
	Height  int
}

// NewLayout creates a layout for a w x h screen.
func NewLayout(m config.Metrics, w, h int) Layout {
	return Layout{Metrics: m, Width: w, Height: h}
}

// Slots lays out n slots left to right, centered horizontally and evenly
// spaced, with their top edge SlotOffsetY below the screen middle.
func (l Layout) Slots(n int) []core.Rect {
	if n <= 0 {
		return nil
	}
	m := l.Metrics
	total := n*m.SlotWidth + (n-1)*m.SlotGap
	startX := (l.Width - total) / 2
	y := l.Height/2 + m.SlotOffsetY

	rects := make([]core.Rect, n)
	for i := range rects {
		rects[i] = core.NewRect(startX+i*(m.SlotWidth+m.SlotGap), y, m.SlotWidth, m.SlotHeight)
	}
	return rects
}

// MenuButton returns the rect of the i-th stacked menu button.
func (l Layout) MenuButton(i int) core.Rect {
	m := l.Metrics
	x := (l.Width - m.ButtonWidth) / 2
	y := m.ButtonTop + i*(m.ButtonHeight+m.ButtonGap)
	return core.NewRect(x, y, m.ButtonWidth, m.ButtonHeight)
}

// PauseButton returns the in-game pause button rect.
func (l Layout) PauseButton() core.Rect {
	m := l.Metrics
	return core.NewRect((l.Width-m.PauseWidth)/2, m.PauseTop, m.PauseWidth, m.PauseHeight)
}

// EndButtons returns the restart and main-menu button rects shown when a
// session has ended, placed side by side around the centre line.
func (l Layout) EndButtons() (restart, menu core.Rect) {
	m := l.Metrics
	y := l.Height/2 + m.EndButtonOffsetY
	restart = core.NewRect(l.Width/2-m.EndButtonGap-m.EndButtonWidth, y, m.EndButtonWidth, m.ButtonHeight)
	menu = core.NewRect(l.Width/2+m.EndButtonGap, y, m.EndButtonWidth, m.ButtonHeight)
	return restart, menu
}

// BottomButton returns the rect of the credits back button.
func (l Layout) BottomButton() core.Rect {
	m := l.Metrics
	return core.NewRect((l.Width-m.ButtonWidth)/2, l.Height-m.BottomMargin, m.ButtonWidth, m.ButtonHeight)
}
