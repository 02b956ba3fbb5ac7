// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/region"
)

// Handler is notified of changes to an Item. FrameMoved and
// FrameResized are called after the change is committed and all
// affected regions are recomputed.
type Handler interface {
	RegionChanged(it *Item)
	FrameMoved(it *Item)
	FrameResized(it *Item)
}

// Item is a node of the layout tree.
type Item struct {
	Container

	container *Container
	index     int
	frame     f32.Rectangle
	scroll    f32.Point
	mode      ResizingMode
	hidden    bool
	region    region.Region
	handler   Handler
}

// NewItem returns a detached Item.
func NewItem(frame f32.Rectangle, mode ResizingMode) *Item {
	it := &Item{
		index: -1,
		frame: frame,
		mode:  mode,
	}
	it.Container.unitsPerPixel = 1
	it.Container.self = it
	return it
}

// SetHandler sets the Handler notified of changes to it.
func (it *Item) SetHandler(h Handler) {
	it.handler = h
}

// Handler returns the Handler of it.
func (it *Item) Handler() Handler {
	return it.handler
}

// Frame returns the frame of it in parent coordinates.
func (it *Item) Frame() f32.Rectangle {
	return it.frame
}

// Bounds returns the frame of it in local coordinates.
func (it *Item) Bounds() f32.Rectangle {
	if !it.frame.Valid() {
		return f32.Invalid
	}
	return it.frame.Sub(it.frame.Min).Add(it.scroll)
}

// ScrollOrigin returns the local coordinate of the frame's top left
// corner.
func (it *Item) ScrollOrigin() f32.Point {
	return it.scroll
}

// ResizingMode returns how the frame of it follows its parent's size.
func (it *Item) ResizingMode() ResizingMode {
	return it.mode
}

// SetResizingMode sets the mode applied at the next resize of the
// parent.
func (it *Item) SetResizingMode(m ResizingMode) {
	it.mode = m
}

// Parent returns the Container of it, or nil.
func (it *Item) Parent() *Container {
	return it.container
}

// ParentItem returns the Item whose Container holds it, or nil if it
// is detached or held by a root Container.
func (it *Item) ParentItem() *Item {
	if it.container == nil {
		return nil
	}
	return it.container.self
}

// Index returns the stacking index of it, or -1 if detached.
func (it *Item) Index() int {
	return it.index
}

// IsHidden reports whether Hide was called on it.
func (it *Item) IsHidden() bool {
	return it.hidden
}

// IsVisible reports whether it and its ancestors are shown and
// attached to a root Container.
func (it *Item) IsVisible() bool {
	for it != nil {
		if it.hidden || it.container == nil {
			return false
		}
		if it.container.self == nil {
			return true
		}
		it = it.container.self
	}
	return false
}

// VisibleRegion returns the area of it that may receive paint
// output, in local coordinates.
func (it *Item) VisibleRegion() region.Region {
	return it.region
}

// ConvertToParent converts a point from local to parent coordinates.
func (it *Item) ConvertToParent(p f32.Point) f32.Point {
	return p.Sub(it.scroll).Add(it.frame.Min)
}

// ConvertFromParent converts a point from parent to local coordinates.
func (it *Item) ConvertFromParent(p f32.Point) f32.Point {
	return p.Sub(it.frame.Min).Add(it.scroll)
}

// ConvertToWindow converts a point from local coordinates to the
// coordinates of the root Container.
func (it *Item) ConvertToWindow(p f32.Point) f32.Point {
	for ; it != nil; it = it.ParentItem() {
		p = it.ConvertToParent(p)
	}
	return p
}

// ConvertFromWindow is the inverse of ConvertToWindow.
func (it *Item) ConvertFromWindow(p f32.Point) f32.Point {
	return p.Sub(it.ConvertToWindow(f32.Point{}))
}

// ConvertRectToWindow converts a rectangle from local coordinates to
// the coordinates of the root Container.
func (it *Item) ConvertRectToWindow(r f32.Rectangle) f32.Rectangle {
	return r.Add(it.ConvertToWindow(f32.Point{}))
}

// ConvertRectFromWindow is the inverse of ConvertRectToWindow.
func (it *Item) ConvertRectFromWindow(r f32.Rectangle) f32.Rectangle {
	return r.Sub(it.ConvertToWindow(f32.Point{}))
}

// MoveTo moves the top left corner of the frame to p.
func (it *Item) MoveTo(p f32.Point) {
	if p == it.frame.Min {
		return
	}
	size := it.frame.Size()
	it.commit(f32.Rectangle{Min: p, Max: p.Add(size)})
}

// MoveBy moves the frame by d.
func (it *Item) MoveBy(d f32.Point) {
	it.MoveTo(it.frame.Min.Add(d))
}

// ResizeTo resizes the frame, keeping its top left corner, and lays
// out the children of it according to their resizing modes.
func (it *Item) ResizeTo(width, height float32) {
	if width == it.frame.Dx() && height == it.frame.Dy() {
		return
	}
	o := it.frame.Min
	it.commit(f32.Rectangle{Min: o, Max: o.Add(f32.Pt(width, height))})
}

// ResizeBy grows the frame by d.
func (it *Item) ResizeBy(d f32.Point) {
	it.ResizeTo(it.frame.Dx()+d.X, it.frame.Dy()+d.Y)
}

// commit changes the frame of it to nf, recomputes the affected
// regions once, reports the damage and notifies handlers.
func (it *Item) commit(nf f32.Rectangle) {
	old := it.frame
	var changes []change
	it.reshape(nf, &changes)
	if c := it.container; c != nil && !it.hidden {
		c.updateRange(0, it.index)
		c.invalidate(damageUnion(old, it.frame), true)
	}
	notify(changes)
}

// reshape sets the frame and lays out the descendants without
// touching any region.
func (it *Item) reshape(nf f32.Rectangle, changes *[]change) {
	old := it.frame
	if nf == old {
		return
	}
	it.frame = nf
	*changes = append(*changes, change{it: it, old: old})
	if nf.Size() != old.Size() {
		it.Container.relayout(old.Size(), nf.Size(), changes)
	}
}

// ScrollTo sets the scroll origin, clamped to non-negative
// coordinates.
func (it *Item) ScrollTo(p f32.Point) {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p == it.scroll {
		return
	}
	it.scroll = p
	it.UpdateVisibleRegion()
	if c := it.container; c != nil && !it.hidden {
		c.invalidate(it.frame, true)
	}
}

// ScrollBy scrolls by d.
func (it *Item) ScrollBy(d f32.Point) {
	it.ScrollTo(it.scroll.Add(d))
}

// Show makes it and its descendants visible again.
func (it *Item) Show() {
	it.setHidden(false)
}

// Hide removes it and its descendants from paint and occlusion.
func (it *Item) Hide() {
	it.setHidden(true)
}

func (it *Item) setHidden(hidden bool) {
	if it.hidden == hidden {
		return
	}
	it.hidden = hidden
	c := it.container
	if c == nil || !it.frame.Valid() {
		return
	}
	c.updateRange(0, it.index)
	c.invalidate(it.frame, true)
}

// SendBehind restacks it directly below sibling. It panics if sibling
// is not in the same Container.
func (it *Item) SendBehind(sibling *Item) {
	c := it.container
	if c == nil || sibling.container != c {
		panic("layout: SendBehind of items in different containers")
	}
	if sibling == it {
		return
	}
	from, to := it.index, sibling.index
	if from < to {
		to--
	}
	if from == to {
		return
	}
	c.items = slices.Delete(c.items, from, from+1)
	c.items = slices.Insert(c.items, to, it)
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	c.renumber(lo)
	c.updateRange(lo, hi)
	if !it.hidden {
		c.invalidate(damageUnion(it.frame, sibling.frame), true)
	}
}

// UpdateVisibleRegion recomputes the visible region of it and its
// descendants.
func (it *Item) UpdateVisibleRegion() {
	var g region.Region
	if c := it.container; c != nil && !it.hidden && it.frame.Valid() {
		if p := c.self; p != nil {
			g = p.region.IntersectRect(it.frame)
		} else {
			g = region.Rect(it.frame)
		}
		for _, o := range c.items[it.index+1:] {
			if g.Empty() {
				break
			}
			if o.hidden || !o.frame.Valid() {
				continue
			}
			// Snap occluders to the pixel grid to avoid seams
			// between fractional frames.
			g = g.SubtractRect(o.frame.Snap(c.unitsPerPixel))
		}
		g = g.Translate(it.scroll.Sub(it.frame.Min))
	}
	it.region = g
	if it.handler != nil {
		it.handler.RegionChanged(it)
	}
	for _, child := range it.items {
		child.UpdateVisibleRegion()
	}
}

// Invalidate reports r, in local coordinates, as damaged. If redraw
// is set the content of r must be painted again, otherwise it only
// needs to be presented.
func (it *Item) Invalidate(r f32.Rectangle, redraw bool) {
	c := it.container
	if c == nil || it.hidden {
		return
	}
	r = r.Add(it.frame.Min.Sub(it.scroll)).Intersect(it.frame)
	c.invalidate(r, redraw)
}
