// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/layout"
	"github.com/retainui/retain/paint"
)

// Expose draws the views of the tree rooted at c that meet r, in
// window coordinates. Parents draw before their children and lower
// siblings before higher ones.
//
// interrupt, if not nil, is polled after each drawn view. When it
// returns true, Expose stops and reports false; the caller must
// expose r again.
func Expose(c *layout.Container, gc paint.Context, r f32.Rectangle, interrupt func() bool) bool {
	for _, it := range c.Items() {
		if !expose(it, gc, r, interrupt) {
			return false
		}
	}
	return true
}

func expose(it *layout.Item, gc paint.Context, r f32.Rectangle, interrupt func() bool) bool {
	if it.IsHidden() || it.VisibleRegion().Empty() {
		// Descendants are clipped to it.
		return true
	}
	if v := FromItem(it); v != nil && v.clip.Overlaps(r) {
		v.draw(gc, r)
		if interrupt != nil && interrupt() {
			return false
		}
	}
	for _, child := range it.Items() {
		if !expose(child, gc, r, interrupt) {
			return false
		}
	}
	return true
}
