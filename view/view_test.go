// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/layout"
	"github.com/retainui/retain/paint"
	"github.com/retainui/retain/region"
)

type fill struct {
	color color.NRGBA
	draws []f32.Rectangle
	moves []f32.Point
	sizes []f32.Point
	pref  f32.Point
	// onResize is called from FrameResized.
	onResize func()
}

func (f *fill) Draw(gc paint.Context, r f32.Rectangle) {
	f.draws = append(f.draws, r)
	gc.Fill(r, f.color)
}

func (f *fill) FrameMoved(p f32.Point) {
	f.moves = append(f.moves, p)
}

func (f *fill) FrameResized(w, h float32) {
	f.sizes = append(f.sizes, f32.Pt(w, h))
	if f.onResize != nil {
		f.onResize()
	}
}

func (f *fill) PreferredSize() (float32, float32) {
	return f.pref.X, f.pref.Y
}

type sink struct{}

func (sink) Invalidate(f32.Rectangle, bool) {}

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func pixel(b *paint.Buffer, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(b.Image().At(x, y)).(color.NRGBA)
}

func TestExposePaintsVisibleRegions(t *testing.T) {
	root := layout.NewContainer(sink{})
	lower := &fill{color: red}
	upper := &fill{color: blue}
	lv := New(lower, f32.Rect(0, 0, 60, 60), layout.FollowNone, 0)
	uv := New(upper, f32.Rect(30, 30, 90, 90), layout.FollowNone, 0)
	root.AddItem(lv.Item(), -1)
	root.AddItem(uv.Item(), -1)

	buf := paint.NewBuffer(image.Pt(100, 100))
	if !Expose(root, buf, f32.Rect(0, 0, 100, 100), nil) {
		t.Fatal("expose interrupted")
	}
	if diff := cmp.Diff([]f32.Rectangle{f32.Rect(0, 0, 60, 60)}, upper.draws); diff != "" {
		t.Errorf("upper draws (-want +got):\n%s", diff)
	}
	var area float32
	for _, r := range lower.draws {
		area += r.Dx() * r.Dy()
	}
	if want := float32(60*60 - 30*30); area != want {
		t.Errorf("lower drew area %v, want %v", area, want)
	}
	if got := pixel(buf, 40, 40); got != blue {
		t.Errorf("overlap = %v, want blue", got)
	}
	if got := pixel(buf, 10, 10); got != red {
		t.Errorf("lower only = %v, want red", got)
	}
}

func TestUnionDraw(t *testing.T) {
	root := layout.NewContainer(sink{})
	lower := &fill{color: red}
	lv := New(lower, f32.Rect(0, 0, 60, 60), layout.FollowNone, UnionDraw)
	uv := New(nil, f32.Rect(20, 20, 40, 40), layout.FollowNone, 0)
	root.AddItem(lv.Item(), -1)
	root.AddItem(uv.Item(), -1)

	buf := paint.NewBuffer(image.Pt(100, 100))
	Expose(root, buf, f32.Rect(0, 0, 100, 100), nil)
	if diff := cmp.Diff([]f32.Rectangle{f32.Rect(0, 0, 60, 60)}, lower.draws); diff != "" {
		t.Errorf("draws (-want +got):\n%s", diff)
	}
	// The clip still protects the occluding view.
	if got := pixel(buf, 30, 30); got == red {
		t.Error("union draw painted over the occluding view")
	}
}

func TestExposeLocalCoordinates(t *testing.T) {
	root := layout.NewContainer(sink{})
	parent := New(nil, f32.Rect(10, 10, 110, 110), layout.FollowNone, 0)
	child := &fill{color: red}
	cv := New(child, f32.Rect(20, 20, 40, 40), layout.FollowNone, 0)
	root.AddItem(parent.Item(), -1)
	parent.AddChild(cv, -1)

	buf := paint.NewBuffer(image.Pt(200, 200))
	Expose(root, buf, f32.Rect(0, 0, 35, 35), nil)
	if diff := cmp.Diff([]f32.Rectangle{f32.Rect(0, 0, 5, 5)}, child.draws); diff != "" {
		t.Errorf("draws (-want +got):\n%s", diff)
	}
	if got := pixel(buf, 32, 32); got != red {
		t.Errorf("child pixel = %v, want red", got)
	}
	if got := pixel(buf, 36, 36); got == red {
		t.Error("child painted outside the exposed area")
	}
	want := region.Rect(f32.Rect(30, 30, 50, 50))
	if !cv.Clip().Equal(want) {
		t.Errorf("clip = %v, want %v", cv.Clip(), want)
	}
	if ch := parent.Children(); len(ch) != 1 || ch[0] != cv {
		t.Errorf("children = %v, want the child view", ch)
	}
	if cv.Parent() != parent {
		t.Error("child does not know its parent")
	}
}

func TestExposeInterrupt(t *testing.T) {
	root := layout.NewContainer(sink{})
	a, b := &fill{color: red}, &fill{color: blue}
	root.AddItem(New(a, f32.Rect(0, 0, 10, 10), layout.FollowNone, 0).Item(), -1)
	root.AddItem(New(b, f32.Rect(20, 20, 30, 30), layout.FollowNone, 0).Item(), -1)

	buf := paint.NewBuffer(image.Pt(50, 50))
	if Expose(root, buf, f32.Rect(0, 0, 50, 50), func() bool { return true }) {
		t.Error("interrupted expose reported completion")
	}
	if len(a.draws) != 1 || len(b.draws) != 0 {
		t.Errorf("draws after interruption: %d and %d, want 1 and 0", len(a.draws), len(b.draws))
	}
}

func TestLayoutCallbacks(t *testing.T) {
	root := layout.NewContainer(sink{})
	w := &fill{pref: f32.Pt(40, 20)}
	v := New(w, f32.Rect(0, 0, 10, 10), layout.FollowNone, 0)
	root.AddItem(v.Item(), -1)
	w.onResize = func() {
		if want := region.Rect(f32.Rect(5, 5, 45, 25)); !v.Clip().Equal(want) {
			t.Errorf("clip during FrameResized = %v, want %v", v.Clip(), want)
		}
	}

	v.MoveTo(f32.Pt(5, 5))
	v.ResizeToPreferred()
	if diff := cmp.Diff([]f32.Point{f32.Pt(5, 5)}, w.moves); diff != "" {
		t.Errorf("moves (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]f32.Point{f32.Pt(40, 20)}, w.sizes); diff != "" {
		t.Errorf("sizes (-want +got):\n%s", diff)
	}
	if pw, ph := New(nil, f32.Rect(0, 0, 7, 3), layout.FollowNone, 0).GetPreferredSize(); pw != 7 || ph != 3 {
		t.Errorf("preferred size without a sizer = %v×%v, want frame size", pw, ph)
	}
}
