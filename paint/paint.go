// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/region"
)

// Context is a drawing surface.
type Context interface {
	// SetOrigin sets the buffer position of the local origin.
	SetOrigin(p f32.Point)
	Origin() f32.Point
	// SetClip restricts drawing to g, in buffer coordinates.
	SetClip(g region.Region)
	Clip() region.Region
	// Fill paints r with c.
	Fill(r f32.Rectangle, c color.NRGBA)
	// Stroke paints the outline of r, width units wide, inside r.
	Stroke(r f32.Rectangle, width float32, c color.NRGBA)
	// Copy copies the pixels of src to dst. Only the position of dst
	// is used.
	Copy(src, dst f32.Rectangle)
}

// Screen presents buffer content.
type Screen interface {
	// Present shows the pixels of src inside r.
	Present(src *image.RGBA, r image.Rectangle) error
}

// Buffer is a Context drawing into an RGBA image.
type Buffer struct {
	img    *image.RGBA
	origin f32.Point
	clip   region.Region
}

// NewBuffer returns a transparent buffer of the given size in pixels.
func NewBuffer(size image.Point) *Buffer {
	b := &Buffer{img: image.NewRGBA(image.Rectangle{Max: size})}
	b.ResetClip()
	return b
}

// Image returns the backing image.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Size returns the size of the backing image.
func (b *Buffer) Size() image.Point {
	return b.img.Bounds().Size()
}

// Resize changes the size of the backing image, keeping the content
// of the area common to both sizes. The clip and origin are reset.
func (b *Buffer) Resize(size image.Point) {
	if size == b.Size() {
		b.ResetClip()
		return
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Copy(img, image.Point{}, b.img, b.img.Bounds(), draw.Src, nil)
	b.img = img
	b.ResetClip()
}

// ResetClip clears the origin and makes the whole buffer drawable.
func (b *Buffer) ResetClip() {
	b.origin = f32.Point{}
	b.clip = region.Rect(f32.FRect(b.img.Bounds()))
}

// SetOrigin sets the offset added to the coordinates of drawing
// operations.
func (b *Buffer) SetOrigin(p f32.Point) {
	b.origin = p
}

// Origin returns the current drawing offset.
func (b *Buffer) Origin() f32.Point {
	return b.origin
}

// SetClip limits drawing to g, in buffer coordinates.
func (b *Buffer) SetClip(g region.Region) {
	b.clip = g.IntersectRect(f32.FRect(b.img.Bounds()))
}

// Clip returns the drawable region.
func (b *Buffer) Clip() region.Region {
	return b.clip
}

// Clear replaces the pixels of r inside the clip with c, without
// blending.
func (b *Buffer) Clear(r f32.Rectangle, c color.NRGBA) {
	src := image.NewUniform(c)
	for _, pr := range b.pixels(r) {
		draw.Draw(b.img, pr, src, image.Point{}, draw.Src)
	}
}

// Fill paints r with c, blending translucent colors over the
// existing pixels.
func (b *Buffer) Fill(r f32.Rectangle, c color.NRGBA) {
	src := image.NewUniform(c)
	op := draw.Over
	if c.A == 0xff {
		op = draw.Src
	}
	for _, pr := range b.pixels(r) {
		draw.Draw(b.img, pr, src, image.Point{}, op)
	}
}

// Stroke paints a border of the given width inside r.
func (b *Buffer) Stroke(r f32.Rectangle, width float32, c color.NRGBA) {
	if r.Empty() || width <= 0 {
		return
	}
	if 2*width >= r.Dx() || 2*width >= r.Dy() {
		b.Fill(r, c)
		return
	}
	b.Fill(f32.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	b.Fill(f32.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	b.Fill(f32.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), c)
	b.Fill(f32.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), c)
}

// Copy moves the pixels of src to dst.Min. Source and destination
// may overlap.
func (b *Buffer) Copy(src, dst f32.Rectangle) {
	sr := src.Add(b.origin).Round().Intersect(b.img.Bounds())
	if sr.Empty() {
		return
	}
	dst = f32.Rectangle{Min: dst.Min, Max: dst.Min.Add(src.Size())}
	off := dst.Min.Sub(src.Min)
	// Snapshot the source; it may overlap the destination.
	tmp := image.NewRGBA(sr)
	draw.Copy(tmp, sr.Min, b.img, sr, draw.Src, nil)
	d := image.Pt(int(math.Round(float64(off.X))), int(math.Round(float64(off.Y))))
	for _, pr := range b.pixels(dst) {
		from := pr.Sub(d).Intersect(sr)
		if from.Empty() {
			continue
		}
		draw.Copy(b.img, from.Min.Add(d), tmp, from, draw.Src, nil)
	}
}

// pixels returns the pixel rectangles of r, in local coordinates,
// that lie inside the clip.
func (b *Buffer) pixels(r f32.Rectangle) []image.Rectangle {
	r = r.Add(b.origin)
	var rects []image.Rectangle
	for _, cr := range b.clip.Rects() {
		pr := r.Intersect(cr).Round()
		if !pr.Empty() {
			rects = append(rects, pr)
		}
	}
	return rects
}

// ImageScreen is a Screen presenting into an image. It records the
// rectangles presented.
type ImageScreen struct {
	mu       sync.Mutex
	img      *image.RGBA
	presents []image.Rectangle
}

// NewImageScreen returns an ImageScreen with an empty image.
func NewImageScreen() *ImageScreen {
	return &ImageScreen{img: image.NewRGBA(image.Rectangle{})}
}

// Present copies r of src into the image, growing it as needed.
func (s *ImageScreen) Present(src *image.RGBA, r image.Rectangle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !src.Bounds().In(s.img.Bounds()) {
		img := image.NewRGBA(src.Bounds().Union(s.img.Bounds()))
		draw.Copy(img, s.img.Bounds().Min, s.img, s.img.Bounds(), draw.Src, nil)
		s.img = img
	}
	r = r.Intersect(src.Bounds())
	draw.Copy(s.img, r.Min, src, r, draw.Src, nil)
	s.presents = append(s.presents, r)
	return nil
}

// Image returns a copy of the presented content.
func (s *ImageScreen) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	img := image.NewRGBA(s.img.Bounds())
	draw.Copy(img, img.Bounds().Min, s.img, s.img.Bounds(), draw.Src, nil)
	return img
}

// Presents returns the rectangles presented so far.
func (s *ImageScreen) Presents() []image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]image.Rectangle(nil), s.presents...)
}
