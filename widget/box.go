// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/layout"
	"github.com/retainui/retain/paint"
	"github.com/retainui/retain/view"
)

// Box fills its view with a color and strokes an optional border
// inside its edges.
type Box struct {
	Color       color.NRGBA
	Border      color.NRGBA
	BorderWidth float32
	// Preferred is the size reported to ResizeToPreferred. The zero
	// value keeps the current size.
	Preferred f32.Point

	size f32.Point
}

// NewBox returns a view drawing b.
func NewBox(b *Box, frame f32.Rectangle, mode layout.ResizingMode) *view.View {
	b.size = frame.Size()
	return view.New(b, frame, mode, 0)
}

// Draw fills r and strokes the border along the bounds of b.
func (b *Box) Draw(gc paint.Context, r f32.Rectangle) {
	gc.Fill(r, b.Color)
	if b.BorderWidth > 0 {
		gc.Stroke(f32.Rectangle{Max: b.size}, b.BorderWidth, b.Border)
	}
}

// FrameResized records the size the border is stroked at.
func (b *Box) FrameResized(width, height float32) {
	b.size = f32.Pt(width, height)
}

// PreferredSize returns Preferred, or the current size if unset.
func (b *Box) PreferredSize() (float32, float32) {
	if b.Preferred == (f32.Point{}) {
		return b.size.X, b.size.Y
	}
	return b.Preferred.X, b.Preferred.Y
}

// ParseColor parses an SVG color name, such as "steelblue", or a hex
// color of the form #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBAModel.Convert(c).(color.NRGBA), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == len(s) {
		return color.NRGBA{}, fmt.Errorf("widget: unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("widget: malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("widget: malformed color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
