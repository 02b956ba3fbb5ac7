// SPDX-License-Identifier: Unlicense OR MIT

// Package term presents window content on a terminal. Every pixel is
// shown as one character cell painted with the pixel's color.
package term

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Screen is a paint.Screen backed by a tcell screen.
type Screen struct {
	scr tcell.Screen
}

// New opens the terminal.
func New() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return Wrap(scr), nil
}

// Wrap returns a Screen presenting to an initialized tcell screen.
func Wrap(scr tcell.Screen) *Screen {
	return &Screen{scr: scr}
}

// Tcell returns the underlying tcell screen, for event polling.
func (s *Screen) Tcell() tcell.Screen {
	return s.scr
}

// Size returns the terminal size in cells.
func (s *Screen) Size() image.Point {
	w, h := s.scr.Size()
	return image.Pt(w, h)
}

// Present paints the cells of r with the colors of src and shows
// the screen.
func (s *Screen) Present(src *image.RGBA, r image.Rectangle) error {
	r = r.Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.scr.SetContent(x, y, ' ', nil, cellStyle(src.RGBAAt(x, y)))
		}
	}
	s.scr.Show()
	return nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.scr.Fini()
}

func cellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
