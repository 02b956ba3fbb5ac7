// SPDX-License-Identifier: Unlicense OR MIT

// Package damage implements the repaint bookkeeping of a window.
//
// A Damage accumulates two rectangles: the expose rectangle, whose
// content must be painted again, and the update rectangle, whose
// content is painted and only needs to be presented. It tracks
// whether a flush is queued or running and the depth of the current
// update suspension. Damage does not post messages; its methods
// report when the caller must.
package damage

import (
	"fmt"

	"github.com/retainui/retain/f32"
)

// State is the phase of the flush cycle.
type State uint8

const (
	Idle State = iota
	PendingFlush
	InExpose
	InBlit
	Suspended
)

// Damage is the repaint state of a window. Use New to create one.
type Damage struct {
	bounds f32.Rectangle
	update f32.Rectangle
	expose f32.Rectangle

	pending  bool
	exposing bool
	blitting bool
	// broke records that the last expose pass was interrupted.
	broke bool

	retries    int
	maxRetries int

	depth int
	owner uint64
}

// New returns an idle Damage for a window covering bounds. At most
// maxRetries consecutive flushes may be deferred or interrupted
// before a flush is forced to complete.
func New(bounds f32.Rectangle, maxRetries int) Damage {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return Damage{
		bounds:     bounds,
		update:     f32.Invalid,
		expose:     f32.Invalid,
		maxRetries: maxRetries,
	}
}

func (d *Damage) Bounds() f32.Rectangle {
	return d.bounds
}

// SetBounds changes the window bounds, clamping pending damage.
func (d *Damage) SetBounds(b f32.Rectangle) {
	d.bounds = b
	d.update = d.update.Intersect(b)
	d.expose = d.expose.Intersect(b)
}

// Invalidate adds r to the expose rectangle if redraw is set, and to
// the update rectangle otherwise. It reports whether the caller must
// queue a flush; at most one flush is reported until BeginFlush.
func (d *Damage) Invalidate(r f32.Rectangle, redraw bool) (post bool) {
	r = r.Intersect(d.bounds)
	if r.Empty() {
		return false
	}
	if redraw {
		d.expose = d.expose.Union(r)
	} else {
		d.update = d.update.Union(r)
	}
	if d.exposing || d.pending {
		return false
	}
	d.pending = true
	return true
}

// ExposeRect returns the pending expose rectangle.
func (d *Damage) ExposeRect() f32.Rectangle {
	return d.expose.Intersect(d.bounds)
}

// UpdateRect returns the pending update rectangle.
func (d *Damage) UpdateRect() f32.Rectangle {
	return d.update.Intersect(d.bounds)
}

// Pending reports whether a flush is queued.
func (d *Damage) Pending() bool {
	return d.pending
}

// BeginFlush marks the queued flush as running.
func (d *Damage) BeginFlush() {
	d.pending = false
}

// CanRetry reports whether a flush may still be deferred.
func (d *Damage) CanRetry() bool {
	return d.retries < d.maxRetries
}

// Retry defers the running flush. It reports false when the retry
// budget is exhausted, in which case the flush must complete;
// otherwise the caller must queue the flush again.
func (d *Damage) Retry() bool {
	if !d.CanRetry() {
		return false
	}
	d.retries++
	d.pending = true
	return true
}

// BeginExpose takes the expose rectangle for painting and resets it.
// Damage reported while exposing is collected for the next flush.
func (d *Damage) BeginExpose() (f32.Rectangle, bool) {
	if d.exposing {
		panic("damage: recursive expose")
	}
	r := d.expose.Intersect(d.bounds)
	d.expose = f32.Invalid
	if r.Empty() {
		return f32.Invalid, false
	}
	d.exposing = true
	return r, true
}

// EndExpose ends the expose pass over r. If the pass did not
// complete, r is exposed again by the next flush. Otherwise r joins
// the update rectangle. EndExpose reports whether the caller must
// queue a flush.
func (d *Damage) EndExpose(r f32.Rectangle, complete bool) (post bool) {
	d.exposing = false
	d.broke = !complete
	if complete {
		d.update = d.update.Union(r)
	} else {
		d.retries++
		d.expose = d.expose.Union(r)
	}
	if d.ExposeRect().Empty() || d.pending {
		return false
	}
	d.pending = true
	return true
}

// Broke reports whether the last expose pass was interrupted.
func (d *Damage) Broke() bool {
	return d.broke
}

// ExposePending reports whether content remains to be painted.
func (d *Damage) ExposePending() bool {
	return !d.ExposeRect().Empty()
}

// Blit takes the update rectangle for presenting and resets it. It
// reports false while updates are suspended or nothing needs to be
// presented. A successful Blit must be followed by EndBlit.
func (d *Damage) Blit() (f32.Rectangle, bool) {
	if d.depth > 0 {
		return f32.Invalid, false
	}
	r := d.update.Intersect(d.bounds)
	d.update = f32.Invalid
	d.retries = 0
	if r.Empty() {
		return f32.Invalid, false
	}
	d.blitting = true
	return r, true
}

func (d *Damage) EndBlit() {
	d.blitting = false
}

// Suspend defers blits until the matching Resume. Suspensions nest,
// but only the owner that opened the outermost one may nest or
// resume; any other owner panics. Suspend returns the new depth.
func (d *Damage) Suspend(owner uint64) int {
	if d.depth > 0 && owner != d.owner {
		panic(fmt.Sprintf("damage: updates suspended by thread %d, not %d", d.owner, owner))
	}
	d.depth++
	d.owner = owner
	return d.depth
}

// Resume ends the innermost suspension. It reports whether the
// suspension is over and a blit is due. No blit is due while content
// awaits painting; the pending flush presents it with the rest.
func (d *Damage) Resume(owner uint64) (blit bool) {
	if d.depth == 0 {
		panic("damage: updates resumed without being suspended")
	}
	if owner != d.owner {
		panic(fmt.Sprintf("damage: updates suspended by thread %d resumed by %d", d.owner, owner))
	}
	d.depth--
	return d.depth == 0 && !d.UpdateRect().Empty() && !d.ExposePending()
}

// Depth returns the suspension depth.
func (d *Damage) Depth() int {
	return d.depth
}

func (d *Damage) State() State {
	switch {
	case d.blitting:
		return InBlit
	case d.exposing:
		return InExpose
	case d.depth > 0:
		return Suspended
	case d.pending:
		return PendingFlush
	default:
		return Idle
	}
}

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case PendingFlush:
		return "PendingFlush"
	case InExpose:
		return "InExpose"
	case InBlit:
		return "InBlit"
	case Suspended:
		return "Suspended"
	default:
		panic("unknown state")
	}
}
