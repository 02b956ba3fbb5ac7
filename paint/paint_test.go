// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/region"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func at(img *image.RGBA, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestFillRespectsClipAndOrigin(t *testing.T) {
	b := NewBuffer(image.Pt(20, 20))
	b.SetOrigin(f32.Pt(5, 5))
	b.SetClip(region.Rect(f32.Rect(0, 0, 10, 10)))
	b.Fill(f32.Rect(0, 0, 10, 10), red)

	img := b.Image()
	if got := at(img, 7, 7); got != red {
		t.Errorf("inside clip = %v, want red", got)
	}
	if got := at(img, 12, 12); got == red {
		t.Error("fill escaped the clip")
	}
	if got := at(img, 2, 2); got == red {
		t.Error("fill ignored the origin")
	}
}

func TestClearReplacesPixels(t *testing.T) {
	b := NewBuffer(image.Pt(4, 4))
	b.Fill(f32.Rect(0, 0, 4, 4), red)
	transparent := color.NRGBA{}
	b.Fill(f32.Rect(0, 0, 2, 4), transparent)
	if got := at(b.Image(), 1, 1); got != red {
		t.Errorf("transparent fill = %v, want red left in place", got)
	}
	b.Clear(f32.Rect(0, 0, 2, 4), transparent)
	if got := at(b.Image(), 1, 1); got != transparent {
		t.Errorf("cleared pixel = %v, want %v", got, transparent)
	}
	if got := at(b.Image(), 3, 1); got != red {
		t.Errorf("pixel outside clear = %v, want red", got)
	}
}

func TestStroke(t *testing.T) {
	b := NewBuffer(image.Pt(10, 10))
	b.Stroke(f32.Rect(0, 0, 10, 10), 1, blue)
	img := b.Image()
	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}, {5, 0}, {0, 5}} {
		if got := at(img, p.X, p.Y); got != blue {
			t.Errorf("edge %v = %v, want blue", p, got)
		}
	}
	if got := at(img, 5, 5); got == blue {
		t.Error("stroke filled the interior")
	}
}

func TestCopyOverlapping(t *testing.T) {
	b := NewBuffer(image.Pt(10, 1))
	b.Fill(f32.Rect(0, 0, 2, 1), red)
	b.Fill(f32.Rect(2, 0, 4, 1), blue)
	b.Copy(f32.Rect(0, 0, 4, 1), f32.Rect(2, 0, 6, 1))
	img := b.Image()
	want := []color.NRGBA{red, red, red, red, blue, blue}
	var got []color.NRGBA
	for x := 0; x < 6; x++ {
		got = append(got, at(img, x, 0))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pixels (-want +got):\n%s", diff)
	}
}

func TestResizeKeepsContent(t *testing.T) {
	b := NewBuffer(image.Pt(4, 4))
	b.Fill(f32.Rect(0, 0, 4, 4), red)
	b.Resize(image.Pt(8, 2))
	if got := b.Size(); got != image.Pt(8, 2) {
		t.Fatalf("size = %v", got)
	}
	if got := at(b.Image(), 3, 1); got != red {
		t.Errorf("kept pixel = %v, want red", got)
	}
	if got := at(b.Image(), 6, 1); got == red {
		t.Error("new area not cleared")
	}
	if !b.Clip().Equal(region.Rect(f32.Rect(0, 0, 8, 2))) {
		t.Errorf("clip after resize = %v", b.Clip())
	}
}

func TestImageScreen(t *testing.T) {
	b := NewBuffer(image.Pt(10, 10))
	b.Fill(f32.Rect(0, 0, 10, 10), red)
	s := NewImageScreen()
	if err := s.Present(b.Image(), image.Rect(2, 2, 4, 4)); err != nil {
		t.Fatal(err)
	}
	img := s.Image()
	if got := at(img, 3, 3); got != red {
		t.Errorf("presented pixel = %v, want red", got)
	}
	if got := at(img, 5, 5); got == red {
		t.Error("pixel outside the presented rectangle was copied")
	}
	if diff := cmp.Diff([]image.Rectangle{image.Rect(2, 2, 4, 4)}, s.Presents()); diff != "" {
		t.Errorf("presents (-want +got):\n%s", diff)
	}
}
