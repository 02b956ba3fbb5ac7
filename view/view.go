// SPDX-License-Identifier: Unlicense OR MIT

/*
Package view binds widgets to the layout tree.

A View owns a layout.Item and keeps the item's visible region,
converted to window coordinates, as its clip. During an expose pass
the window asks every View whose clip meets the exposed area to draw
through its Widget, with drawing restricted to the clip.
*/
package view

import (
	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/layout"
	"github.com/retainui/retain/paint"
	"github.com/retainui/retain/region"
)

// Widget draws the content of a View. r is the dirty rectangle in
// the local coordinates of the View; gc is clipped to it.
type Widget interface {
	Draw(gc paint.Context, r f32.Rectangle)
}

// PreferredSizer is implemented by widgets with a natural size.
type PreferredSizer interface {
	PreferredSize() (width, height float32)
}

// FrameMover is implemented by widgets that track their position.
type FrameMover interface {
	FrameMoved(p f32.Point)
}

// FrameResizer is implemented by widgets that track their size.
type FrameResizer interface {
	FrameResized(width, height float32)
}

// Flags modify how a View is drawn.
type Flags uint8

const (
	// UnionDraw draws the View once per expose, with the bounding
	// rectangle of its dirty area, instead of once per dirty
	// rectangle.
	UnionDraw Flags = 1 << iota
)

// View is a drawable node of a window.
type View struct {
	item   *layout.Item
	widget Widget
	flags  Flags

	// clip is the visible region in window coordinates.
	clip region.Region
	// offset is the window position of the local origin.
	offset f32.Point
}

// New returns a detached View. A nil Widget gives a View that draws
// nothing but may hold children.
func New(w Widget, frame f32.Rectangle, mode layout.ResizingMode, flags Flags) *View {
	v := &View{
		widget: w,
		flags:  flags,
		item:   layout.NewItem(frame, mode),
	}
	v.item.SetHandler(v)
	return v
}

// FromItem returns the View bound to it, or nil.
func FromItem(it *layout.Item) *View {
	if it == nil {
		return nil
	}
	v, _ := it.Handler().(*View)
	return v
}

// Item returns the layout item of v.
func (v *View) Item() *layout.Item {
	return v.item
}

// Widget returns the widget drawing v.
func (v *View) Widget() Widget {
	return v.widget
}

// Flags returns the drawing flags of v.
func (v *View) Flags() Flags {
	return v.flags
}

// Parent returns the View holding v, or nil.
func (v *View) Parent() *View {
	return FromItem(v.item.ParentItem())
}

// AddChild inserts c among the children of v at index, appending if
// index is out of range.
func (v *View) AddChild(c *View, index int) {
	v.item.AddItem(c.item, index)
}

// RemoveChild detaches c and reports whether it was a child of v.
func (v *View) RemoveChild(c *View) bool {
	return v.item.RemoveItem(c.item)
}

// Children returns the child views of v, bottom first.
func (v *View) Children() []*View {
	var children []*View
	for _, it := range v.item.Items() {
		if c := FromItem(it); c != nil {
			children = append(children, c)
		}
	}
	return children
}

// Frame returns the rectangle of v in its parent's coordinates.
func (v *View) Frame() f32.Rectangle {
	return v.item.Frame()
}

// Bounds returns the frame of v in its own coordinates.
func (v *View) Bounds() f32.Rectangle {
	return v.item.Bounds()
}

// MoveTo moves the top left corner of v to p.
func (v *View) MoveTo(p f32.Point) {
	v.item.MoveTo(p)
}

// MoveBy moves v by d.
func (v *View) MoveBy(d f32.Point) {
	v.item.MoveBy(d)
}

// ResizeTo resizes v and lays out its children.
func (v *View) ResizeTo(width, height float32) {
	v.item.ResizeTo(width, height)
}

// ResizeBy grows v by d.
func (v *View) ResizeBy(d f32.Point) {
	v.item.ResizeBy(d)
}

// ScrollTo sets the local coordinate of the top left corner of v.
func (v *View) ScrollTo(p f32.Point) {
	v.item.ScrollTo(p)
}

// Show makes v visible again.
func (v *View) Show() {
	v.item.Show()
}

// Hide hides v and its children.
func (v *View) Hide() {
	v.item.Hide()
}

// IsHidden reports whether v was hidden with Hide.
func (v *View) IsHidden() bool {
	return v.item.IsHidden()
}

// SendBehind restacks v directly below its sibling o.
func (v *View) SendBehind(o *View) {
	v.item.SendBehind(o.item)
}

// GetPreferredSize returns the preferred size of the widget, or the
// current frame size if the widget has none.
func (v *View) GetPreferredSize() (width, height float32) {
	if p, ok := v.widget.(PreferredSizer); ok {
		return p.PreferredSize()
	}
	f := v.item.Frame()
	return f.Dx(), f.Dy()
}

// ResizeToPreferred resizes v to its preferred size.
func (v *View) ResizeToPreferred() {
	v.ResizeTo(v.GetPreferredSize())
}

// Invalidate marks r, in local coordinates, for repainting.
func (v *View) Invalidate(r f32.Rectangle) {
	v.item.Invalidate(r, true)
}

// InvalidateAll marks the whole View for repainting.
func (v *View) InvalidateAll() {
	v.item.Invalidate(v.item.Bounds(), true)
}

// Clip returns the visible region of v in window coordinates.
func (v *View) Clip() region.Region {
	return v.clip
}

// ConvertToWindow converts a local point to window coordinates.
func (v *View) ConvertToWindow(p f32.Point) f32.Point {
	return v.item.ConvertToWindow(p)
}

// ConvertFromWindow converts a window point to local coordinates.
func (v *View) ConvertFromWindow(p f32.Point) f32.Point {
	return v.item.ConvertFromWindow(p)
}

// RegionChanged updates the cached window clip of v.
func (v *View) RegionChanged(it *layout.Item) {
	v.offset = it.ConvertToWindow(f32.Point{})
	v.clip = it.VisibleRegion().Translate(v.offset)
}

// FrameMoved forwards the new position to the widget.
func (v *View) FrameMoved(it *layout.Item) {
	if m, ok := v.widget.(FrameMover); ok {
		m.FrameMoved(it.Frame().Min)
	}
}

// FrameResized forwards the new size to the widget.
func (v *View) FrameResized(it *layout.Item) {
	if m, ok := v.widget.(FrameResizer); ok {
		f := it.Frame()
		m.FrameResized(f.Dx(), f.Dy())
	}
}

// draw paints the part of v inside r, in window coordinates.
func (v *View) draw(gc paint.Context, r f32.Rectangle) {
	if v.widget == nil {
		return
	}
	dirty := v.clip.IntersectRect(r)
	if dirty.Empty() {
		return
	}
	gc.SetOrigin(v.offset)
	if v.flags&UnionDraw != 0 {
		gc.SetClip(dirty)
		v.widget.Draw(gc, dirty.Bounds().Sub(v.offset))
		return
	}
	for _, dr := range dirty.Rects() {
		gc.SetClip(region.Rect(dr))
		v.widget.Draw(gc, dr.Sub(v.offset))
	}
}
