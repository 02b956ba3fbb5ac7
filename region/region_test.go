// SPDX-License-Identifier: Unlicense OR MIT

package region_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/region"
)

var sortRects = cmpopts.SortSlices(func(a, b f32.Rectangle) bool {
	if a.Min.Y != b.Min.Y {
		return a.Min.Y < b.Min.Y
	}
	return a.Min.X < b.Min.X
})

func TestSubtractRect(t *testing.T) {
	g := region.Rect(f32.Rect(0, 0, 100, 100))
	got := g.SubtractRect(f32.Rect(25, 25, 75, 75))
	want := []f32.Rectangle{
		f32.Rect(0, 0, 100, 25),
		f32.Rect(0, 75, 100, 100),
		f32.Rect(0, 25, 25, 75),
		f32.Rect(75, 25, 100, 75),
	}
	if diff := cmp.Diff(want, got.Rects(), sortRects); diff != "" {
		t.Errorf("subtract (-want +got):\n%s", diff)
	}
	if a := got.Area(); a != 100*100-50*50 {
		t.Errorf("area = %v, want %v", a, 100*100-50*50)
	}
	if got.Contains(f32.Pt(50, 50)) {
		t.Error("hole still contains its center")
	}
	if !got.Contains(f32.Pt(10, 50)) {
		t.Error("left band lost")
	}
}

func TestSubtractDisjoint(t *testing.T) {
	g := region.Rect(f32.Rect(0, 0, 10, 10))
	if got := g.SubtractRect(f32.Rect(10, 0, 20, 10)); !got.Equal(g) {
		t.Errorf("subtracting an adjacent rectangle changed the region: %v", got)
	}
	if got := g.SubtractRect(f32.Rect(-5, -5, 50, 50)); !got.Empty() {
		t.Errorf("subtracting a covering rectangle left %v", got)
	}
}

func TestUnionDisjointRects(t *testing.T) {
	a := region.Rect(f32.Rect(0, 0, 60, 60))
	b := region.Rect(f32.Rect(40, 40, 100, 100))
	u := a.Union(b)
	if got, want := u.Area(), float32(60*60*2-20*20); got != want {
		t.Errorf("area = %v, want %v", got, want)
	}
	rects := u.Rects()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Overlaps(rects[j]) {
				t.Errorf("rectangles %v and %v overlap", rects[i], rects[j])
			}
		}
	}
	if diff := cmp.Diff(f32.Rect(0, 0, 100, 100), u.Bounds()); diff != "" {
		t.Errorf("bounds (-want +got):\n%s", diff)
	}
}

func TestIntersect(t *testing.T) {
	a := region.Rect(f32.Rect(0, 0, 100, 100)).SubtractRect(f32.Rect(40, 0, 60, 100))
	b := region.Rect(f32.Rect(20, 20, 80, 80))
	got := a.Intersect(b)
	want := region.Rect(f32.Rect(20, 20, 40, 80)).UnionRect(f32.Rect(60, 20, 80, 80))
	if !got.Equal(want) {
		t.Errorf("intersect = %v, want %v", got, want)
	}
	if !a.IntersectRect(f32.Invalid).Empty() {
		t.Error("intersection with invalid rectangle is not empty")
	}
}

func TestContainsRect(t *testing.T) {
	g := region.Rect(f32.Rect(0, 0, 50, 100)).UnionRect(f32.Rect(50, 0, 100, 100))
	if !g.ContainsRect(f32.Rect(25, 25, 75, 75)) {
		t.Error("rectangle spanning two pieces not contained")
	}
	if g.ContainsRect(f32.Rect(90, 90, 110, 110)) {
		t.Error("rectangle leaving the region reported contained")
	}
	if !g.ContainsRect(f32.Rect(5, 5, 5, 5)) {
		t.Error("empty rectangle not contained")
	}
}

func TestTranslate(t *testing.T) {
	g := region.Rect(f32.Rect(0, 0, 10, 10))
	moved := g.Translate(f32.Pt(5, -5))
	if diff := cmp.Diff(f32.Rect(5, -5, 15, 5), moved.Bounds()); diff != "" {
		t.Errorf("translate (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(f32.Rect(0, 0, 10, 10), g.Bounds()); diff != "" {
		t.Errorf("translate modified its receiver (-want +got):\n%s", diff)
	}
}

func TestEmptyRegion(t *testing.T) {
	var g region.Region
	if !g.Empty() || g.Bounds().Valid() || g.Contains(f32.Pt(0, 0)) {
		t.Error("zero region is not empty")
	}
	if !region.Rect(f32.Rect(3, 3, 3, 10)).Empty() {
		t.Error("zero-area rectangle produced a non-empty region")
	}
}
