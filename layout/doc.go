// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the retained layout and clipping tree.

An Item is a rectangle, its frame, in the coordinate space of its
parent Container. Items embed a Container and may hold children of
their own; the root of a tree is a plain Container owned by a window.

Every attached Item caches its visible region: the part of its
local area that may receive paint output. The visible region is the
parent's visible region intersected with the item's frame, minus the
frames of the siblings stacked above it. Siblings are stacked in
slice order, so the last item of a Container is topmost.

Mutations such as MoveTo, ResizeTo, Show or AddItem recompute only
the regions they can affect and report the changed area to the
Invalidator of the root Container. All methods must be called from
the goroutine owning the tree.
*/
package layout
