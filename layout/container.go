// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/retainui/retain/f32"
)

// Invalidator receives the damage reported by a root Container, in
// the coordinate space of the Container.
type Invalidator interface {
	Invalidate(r f32.Rectangle, redraw bool)
}

// Container is an ordered list of Items. The order is the stacking
// order: later items are painted above, and occlude, earlier items.
//
// A Container does not own its items beyond holding references to
// them; removing an item from its Container is enough to release it.
type Container struct {
	items         []*Item
	unitsPerPixel float32
	// self is the Item embedding the Container, or nil for a root.
	self *Item
	inv  Invalidator
}

// change records the frame an Item had before a geometry change.
type change struct {
	it  *Item
	old f32.Rectangle
}

// NewContainer returns a root Container reporting damage to inv.
func NewContainer(inv Invalidator) *Container {
	return &Container{unitsPerPixel: 1, inv: inv}
}

// Items returns the items of c, bottom first. The caller must not
// modify the returned slice.
func (c *Container) Items() []*Item {
	return c.items
}

// CountItems returns the number of items in c.
func (c *Container) CountItems() int {
	return len(c.items)
}

// ItemAt returns the item at index i, or nil if i is out of range.
func (c *Container) ItemAt(i int) *Item {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

// IndexOf returns the index of it in c, or -1.
func (c *Container) IndexOf(it *Item) int {
	if it == nil || it.container != c {
		return -1
	}
	return it.index
}

// UnitsPerPixel returns the layout units covered by one device pixel.
func (c *Container) UnitsPerPixel() float32 {
	return c.unitsPerPixel
}

// AddItem inserts it at index, or appends it if index is out of
// range. AddItem panics if it already belongs to a Container or if
// it would become its own ancestor.
func (c *Container) AddItem(it *Item, index int) {
	if it.container != nil {
		panic("layout: item already has a container")
	}
	for p := c.self; p != nil; p = p.ParentItem() {
		if p == it {
			panic("layout: item added to its own subtree")
		}
	}
	if index < 0 || index > len(c.items) {
		index = len(c.items)
	}
	c.items = slices.Insert(c.items, index, it)
	it.container = c
	c.renumber(index)
	if it.hidden || !it.frame.Valid() {
		return
	}
	c.updateRange(0, index)
	c.invalidate(it.frame, true)
}

// RemoveItem detaches it from c and reports whether it was an item
// of c. The visible regions of it and its descendants become empty.
func (c *Container) RemoveItem(it *Item) bool {
	if it == nil || it.container != c {
		return false
	}
	index := it.index
	c.items = slices.Delete(c.items, index, index+1)
	it.container = nil
	it.index = -1
	it.UpdateVisibleRegion()
	c.renumber(index)
	if it.hidden || !it.frame.Valid() {
		return true
	}
	c.updateRange(0, index-1)
	c.invalidate(it.frame, true)
	return true
}

// SetUnitsPerPixel sets the scale of c, and of every Container below
// it if deep is set. It panics if v is not positive.
func (c *Container) SetUnitsPerPixel(v float32, deep bool) {
	if !(v > 0) {
		panic(fmt.Sprintf("layout: invalid units per pixel %v", v))
	}
	c.unitsPerPixel = v
	if deep {
		work := slices.Clone(c.items)
		for len(work) > 0 {
			it := work[len(work)-1]
			work = work[:len(work)-1]
			it.Container.unitsPerPixel = v
			work = append(work, it.items...)
		}
	}
	dmg := f32.Invalid
	for _, it := range c.items {
		it.UpdateVisibleRegion()
		if !it.hidden {
			dmg = damageUnion(dmg, it.frame)
		}
	}
	c.invalidate(dmg, true)
}

// Relayout repositions the items of c after its area changed size
// from oldSize to newSize, according to their resizing modes. Regions
// are recomputed once for the whole tree.
func (c *Container) Relayout(oldSize, newSize f32.Point) {
	var changes []change
	c.relayout(oldSize, newSize, &changes)
	if len(changes) == 0 {
		return
	}
	dmg := f32.Invalid
	for _, ch := range changes {
		if ch.it.container == c && !ch.it.hidden {
			dmg = damageUnion(dmg, ch.old, ch.it.frame)
		}
	}
	c.updateRange(0, len(c.items)-1)
	c.invalidate(dmg, true)
	notify(changes)
}

func (c *Container) relayout(oldSize, newSize f32.Point, changes *[]change) {
	d := newSize.Sub(oldSize)
	if d == (f32.Point{}) {
		return
	}
	for _, it := range c.items {
		it.reshape(it.mode.apply(it.frame, d), changes)
	}
}

// updateRange recomputes the visible regions of the items with
// indices lo through hi. Raising an item changes the regions of the
// items below it only, so callers pass the range from the lowest
// affected index.
func (c *Container) updateRange(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	if hi >= len(c.items) {
		hi = len(c.items) - 1
	}
	for i := lo; i <= hi; i++ {
		c.items[i].UpdateVisibleRegion()
	}
}

func (c *Container) renumber(from int) {
	for i := from; i < len(c.items); i++ {
		c.items[i].index = i
	}
}

// invalidate reports damage in the coordinate space of c.
func (c *Container) invalidate(r f32.Rectangle, redraw bool) {
	if r.Empty() {
		return
	}
	if it := c.self; it != nil {
		it.Invalidate(r, redraw)
		return
	}
	if c.inv != nil {
		c.inv.Invalidate(r, redraw)
	}
}

// damageUnion returns the bounds of the non-empty rectangles of rs.
// A zero-area frame covers nothing, wherever it lies.
func damageUnion(rs ...f32.Rectangle) f32.Rectangle {
	u := f32.Invalid
	for _, r := range rs {
		if !r.Empty() {
			u = u.Union(r)
		}
	}
	return u
}

func notify(changes []change) {
	for _, ch := range changes {
		h := ch.it.handler
		if h == nil {
			continue
		}
		if ch.old.Min != ch.it.frame.Min {
			h.FrameMoved(ch.it)
		}
		if ch.old.Size() != ch.it.frame.Size() {
			h.FrameResized(ch.it)
		}
	}
}
