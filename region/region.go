// SPDX-License-Identifier: Unlicense OR MIT

/*
Package region implements sets of rectangles.

A Region is a value: operations return new regions and never modify
their operands. The rectangles of a region are pairwise disjoint and
non-empty, but otherwise in no particular order; two regions covering
the same area may enumerate different rectangles. Use Equal to compare
regions by area.
*/
package region

import (
	"strings"

	"github.com/retainui/retain/f32"
)

// Region is a set of points described by disjoint rectangles. The
// zero Region is empty.
type Region struct {
	rects []f32.Rectangle
}

// Rect returns the region covering r.
func Rect(r f32.Rectangle) Region {
	if r.Empty() {
		return Region{}
	}
	return Region{rects: []f32.Rectangle{r}}
}

// Empty reports whether g contains no points.
func (g Region) Empty() bool {
	return len(g.rects) == 0
}

// Rects returns the disjoint rectangles of g. The caller must not
// modify the returned slice.
func (g Region) Rects() []f32.Rectangle {
	return g.rects
}

// Bounds returns the smallest rectangle containing g, or f32.Invalid
// if g is empty.
func (g Region) Bounds() f32.Rectangle {
	b := f32.Invalid
	for _, r := range g.rects {
		b = b.Union(r)
	}
	return b
}

// Area returns the total area of g.
func (g Region) Area() float32 {
	var a float32
	for _, r := range g.rects {
		a += r.Dx() * r.Dy()
	}
	return a
}

// Translate returns g offset by p.
func (g Region) Translate(p f32.Point) Region {
	if g.Empty() || p == (f32.Point{}) {
		return g
	}
	rects := make([]f32.Rectangle, len(g.rects))
	for i, r := range g.rects {
		rects[i] = r.Add(p)
	}
	return Region{rects: rects}
}

// IntersectRect returns the points of g inside r.
func (g Region) IntersectRect(r f32.Rectangle) Region {
	if r.Empty() {
		return Region{}
	}
	var rects []f32.Rectangle
	for _, gr := range g.rects {
		if i := gr.Intersect(r); !i.Empty() {
			rects = append(rects, i)
		}
	}
	return Region{rects: rects}
}

// Intersect returns the points in both g and o.
func (g Region) Intersect(o Region) Region {
	var rects []f32.Rectangle
	for _, a := range g.rects {
		for _, b := range o.rects {
			if i := a.Intersect(b); !i.Empty() {
				rects = append(rects, i)
			}
		}
	}
	return Region{rects: rects}
}

// SubtractRect returns the points of g outside r.
func (g Region) SubtractRect(r f32.Rectangle) Region {
	if r.Empty() || g.Empty() {
		return g
	}
	var rects []f32.Rectangle
	for _, a := range g.rects {
		rects = appendDiff(rects, a, r)
	}
	return Region{rects: rects}
}

// Subtract returns the points of g not in o.
func (g Region) Subtract(o Region) Region {
	for _, r := range o.rects {
		if g.Empty() {
			break
		}
		g = g.SubtractRect(r)
	}
	return g
}

// UnionRect returns the points in g or r.
func (g Region) UnionRect(r f32.Rectangle) Region {
	return g.Union(Rect(r))
}

// Union returns the points in g or o.
func (g Region) Union(o Region) Region {
	if o.Empty() {
		return g
	}
	if g.Empty() {
		return o
	}
	rects := make([]f32.Rectangle, len(g.rects), len(g.rects)+len(o.rects))
	copy(rects, g.rects)
	for _, b := range o.rects {
		// Add the parts of b not already covered.
		pieces := []f32.Rectangle{b}
		for _, a := range g.rects {
			var next []f32.Rectangle
			for _, p := range pieces {
				next = appendDiff(next, p, a)
			}
			pieces = next
			if len(pieces) == 0 {
				break
			}
		}
		rects = append(rects, pieces...)
	}
	return Region{rects: rects}
}

// Contains reports whether p is in g.
func (g Region) Contains(p f32.Point) bool {
	for _, r := range g.rects {
		if p.In(r) {
			return true
		}
	}
	return false
}

// ContainsRect reports whether every point of r is in g.
func (g Region) ContainsRect(r f32.Rectangle) bool {
	if r.Empty() {
		return true
	}
	return Rect(r).Subtract(g).Empty()
}

// Overlaps reports whether g and r share any point.
func (g Region) Overlaps(r f32.Rectangle) bool {
	for _, gr := range g.rects {
		if gr.Overlaps(r) {
			return true
		}
	}
	return false
}

// Equal reports whether g and o cover the same points.
func (g Region) Equal(o Region) bool {
	return g.Subtract(o).Empty() && o.Subtract(g).Empty()
}

func (g Region) String() string {
	if g.Empty() {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range g.rects {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte('}')
	return b.String()
}

// appendDiff appends the parts of a outside r as up to four disjoint
// bands: above, below, left and right of the overlap.
func appendDiff(rects []f32.Rectangle, a, r f32.Rectangle) []f32.Rectangle {
	if !a.Overlaps(r) {
		return append(rects, a)
	}
	if r.Min.Y > a.Min.Y {
		rects = append(rects, f32.Rect(a.Min.X, a.Min.Y, a.Max.X, r.Min.Y))
		a.Min.Y = r.Min.Y
	}
	if r.Max.Y < a.Max.Y {
		rects = append(rects, f32.Rect(a.Min.X, r.Max.Y, a.Max.X, a.Max.Y))
		a.Max.Y = r.Max.Y
	}
	if r.Min.X > a.Min.X {
		rects = append(rects, f32.Rect(a.Min.X, a.Min.Y, r.Min.X, a.Max.Y))
	}
	if r.Max.X < a.Max.X {
		rects = append(rects, f32.Rect(r.Max.X, a.Min.Y, a.Max.X, a.Max.Y))
	}
	return rects
}
