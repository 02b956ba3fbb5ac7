// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle.

The coordinate space has the origin in the top left
corner with the axes extending right and down.

Unlike image.Rectangle, a Rectangle can be invalid: a rectangle
whose Min lies below or to the right of its Max. Invalid is the
canonical invalid rectangle and acts as the identity for Union and
as the absorbing element for Intersect. Valid rectangles may have
zero area.
*/
package f32

import (
	"fmt"
	"image"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Invalid is the canonical invalid rectangle.
var Invalid = Rectangle{Min: Point{X: 0, Y: 0}, Max: Point{X: -1, Y: -1}}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rect is shorthand for Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
// Unlike image.Rect, the result is not canonicalized.
func Rect(x0, y0, x1, y1 float32) Rectangle {
	return Rectangle{Min: Point{X: x0, Y: y0}, Max: Point{X: x1, Y: y1}}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// In reports whether p is in r.
func (p Point) In(r Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

func (r Rectangle) String() string {
	if !r.Valid() {
		return "invalid"
	}
	return r.Min.String() + "-" + r.Max.String()
}

// Valid reports whether r is a valid, possibly empty, rectangle.
func (r Rectangle) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Size returns r's width and height.
func (r Rectangle) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Intersect returns the intersection of r and s. The intersection
// of disjoint rectangles, or with an invalid rectangle, is Invalid.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if !r.Valid() || !s.Valid() {
		return Invalid
	}
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if !r.Valid() {
		return Invalid
	}
	return r
}

// Union returns the smallest rectangle that contains both r and s.
// An invalid operand is ignored.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if !s.Valid() {
		return r
	}
	if !r.Valid() {
		return s
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Overlaps reports whether r and s share a non-empty area.
func (r Rectangle) Overlaps(s Rectangle) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// In reports whether every point in r is in s. An empty r is in
// every valid s.
func (r Rectangle) In(s Rectangle) bool {
	if !s.Valid() || !r.Valid() {
		return false
	}
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area. Invalid
// rectangles are empty.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	if !r.Valid() {
		return r
	}
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return r.Add(Point{X: -p.X, Y: -p.Y})
}

// Inset returns r shrunk by n on every side. A negative n grows r.
func (r Rectangle) Inset(n float32) Rectangle {
	if !r.Valid() {
		return r
	}
	r.Min.X += n
	r.Min.Y += n
	r.Max.X -= n
	r.Max.Y -= n
	if !r.Valid() {
		return Invalid
	}
	return r
}

// Snap returns the smallest rectangle containing r whose edges lie on
// multiples of unit.
func (r Rectangle) Snap(unit float32) Rectangle {
	if !r.Valid() || unit <= 0 {
		return r
	}
	return Rectangle{
		Min: Point{
			X: float32(math.Floor(float64(r.Min.X/unit))) * unit,
			Y: float32(math.Floor(float64(r.Min.Y/unit))) * unit,
		},
		Max: Point{
			X: float32(math.Ceil(float64(r.Max.X/unit))) * unit,
			Y: float32(math.Ceil(float64(r.Max.Y/unit))) * unit,
		},
	}
}

// Round returns r as an integer rectangle, rounding each edge to the
// nearest integer. An invalid r converts to the zero rectangle.
func (r Rectangle) Round() image.Rectangle {
	if !r.Valid() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Round(float64(r.Min.X))),
		int(math.Round(float64(r.Min.Y))),
		int(math.Round(float64(r.Max.X))),
		int(math.Round(float64(r.Max.Y))),
	)
}

// FRect converts an integer rectangle to a Rectangle.
func FRect(r image.Rectangle) Rectangle {
	return Rect(float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y))
}
