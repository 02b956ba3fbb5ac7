// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"runtime"
	"time"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/internal/damage"
	"github.com/retainui/retain/internal/mailbox"
	"github.com/retainui/retain/internal/thread"
	"github.com/retainui/retain/layout"
	"github.com/retainui/retain/paint"
	"github.com/retainui/retain/view"
)

// Window is a top-level container of views, painted into a back
// buffer and presented to a Screen.
type Window struct {
	cnf    Config
	log    *log.Logger
	screen paint.Screen
	queue  *mailbox.Mailbox[message]
	damage damage.Damage
	root   *layout.Container
	buf    *paint.Buffer

	size f32.Point
	pos  f32.Point

	stats Stats
	err   error
	// dead is closed when Loop returns.
	dead chan struct{}
}

// Stats counts the work done by a window.
type Stats struct {
	// Flushes is the number of flush messages processed.
	Flushes int
	// Exposes is the number of expose passes, complete or not.
	Exposes int
	// Blits is the number of presents to the screen.
	Blits int
	// Requeues is the number of flushes deferred or interrupted by a
	// queued resize.
	Requeues int
	// Coalesced is the number of resize and move messages absorbed
	// by a newer one.
	Coalesced int
}

// UpdateHold suspends presenting until released.
type UpdateHold struct {
	w        *Window
	depth    int
	released bool
}

type msgKind uint8

const (
	flushMsg msgKind = iota
	resizeMsg
	moveMsg
	funcMsg
	closeMsg
)

type message struct {
	kind msgKind
	when time.Time
	// size for resizeMsg, position for moveMsg.
	pt f32.Point
	f  func()
}

func (k msgKind) String() string {
	switch k {
	case flushMsg:
		return "flush"
	case resizeMsg:
		return "resize"
	case moveMsg:
		return "move"
	case funcMsg:
		return "func"
	case closeMsg:
		return "close"
	default:
		panic("unknown message kind")
	}
}

// NewWindow creates a window presenting to screen. Its views are
// painted once Loop runs.
func NewWindow(screen paint.Screen, opts ...Option) *Window {
	cnf := defaultConfig()
	for _, o := range opts {
		o(&cnf)
	}
	if cnf.Logger == nil {
		cnf.Logger = log.New(io.Discard, "", 0)
	}
	w := &Window{
		cnf:    cnf,
		log:    cnf.Logger,
		screen: screen,
		queue:  mailbox.New[message](),
		size:   cnf.Size,
		dead:   make(chan struct{}),
	}
	w.damage = damage.New(w.Bounds(), cnf.MaxExposeRetries)
	w.root = layout.NewContainer(w)
	w.root.SetUnitsPerPixel(cnf.UnitsPerPixel, false)
	w.buf = paint.NewBuffer(pixels(cnf.Size))
	w.Invalidate(w.Bounds(), true)
	return w
}

func pixels(sz f32.Point) image.Point {
	return image.Pt(int(math.Ceil(float64(sz.X))), int(math.Ceil(float64(sz.Y))))
}

// Loop processes the messages of w until ctx is done or Close is
// called. It returns ctx.Err() or the error of a failed present.
// Loop must be called exactly once.
func (w *Window) Loop(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.dead)
	w.log.Printf("window %q: loop on thread %d", w.cnf.Title, thread.ID())
	for {
		m, err := w.queue.Next(ctx)
		if errors.Is(err, mailbox.ErrClosed) {
			return w.err
		}
		if err != nil {
			return err
		}
		w.dispatch(m)
		if w.err != nil {
			w.queue.Close()
			return w.err
		}
	}
}

func (w *Window) dispatch(m message) {
	switch m.kind {
	case flushMsg:
		w.flush()
	case resizeMsg, moveMsg:
		w.reshape(m)
	case funcMsg:
		m.f()
	case closeMsg:
		w.log.Printf("window %q: closed", w.cnf.Title)
		w.queue.Close()
	}
}

func (w *Window) post(kind msgKind) {
	w.queue.Post(message{kind: kind, when: time.Now()})
}

// Run runs f on the window's goroutine and waits for it to return.
// Run returns without running f if the window is dead.
func (w *Window) Run(f func()) {
	done := make(chan struct{})
	w.Post(func() {
		defer close(done)
		f()
	})
	select {
	case <-done:
	case <-w.dead:
	}
}

// Post runs f on the window's goroutine without waiting for it.
func (w *Window) Post(f func()) {
	w.queue.Post(message{kind: funcMsg, when: time.Now(), f: f})
}

// Resize requests a new window size. Resizes queued before the window
// gets to them are coalesced.
func (w *Window) Resize(width, height float32) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("app: negative window size %gx%g", width, height))
	}
	w.queue.Post(message{kind: resizeMsg, when: time.Now(), pt: f32.Pt(width, height)})
}

// Move records a new window position.
func (w *Window) Move(x, y float32) {
	w.queue.Post(message{kind: moveMsg, when: time.Now(), pt: f32.Pt(x, y)})
}

// Close stops Loop after the messages queued before it.
func (w *Window) Close() {
	w.post(closeMsg)
}

// Title returns the window title.
func (w *Window) Title() string {
	return w.cnf.Title
}

// Bounds returns the window rectangle in window coordinates.
func (w *Window) Bounds() f32.Rectangle {
	return f32.Rectangle{Max: w.size}
}

// Position returns the last position passed to Move.
func (w *Window) Position() f32.Point {
	return w.pos
}

// Stats returns the counters of w.
func (w *Window) Stats() Stats {
	return w.stats
}

// Root returns the container of the top-level views.
func (w *Window) Root() *layout.Container {
	return w.root
}

// AddView adds v as a top-level view at z-order index; index out of
// range adds it on top.
func (w *Window) AddView(v *view.View, index int) {
	w.root.AddItem(v.Item(), index)
}

// RemoveView removes the top-level view v. It reports whether v was
// one.
func (w *Window) RemoveView(v *view.View) bool {
	return w.root.RemoveItem(v.Item())
}

// Views returns the top-level views, bottom first.
func (w *Window) Views() []*view.View {
	var views []*view.View
	for _, it := range w.root.Items() {
		if v := view.FromItem(it); v != nil {
			views = append(views, v)
		}
	}
	return views
}

// Invalidate marks r, in window coordinates, as damaged. If redraw is
// set the views meeting r draw again; otherwise r is only presented
// again.
func (w *Window) Invalidate(r f32.Rectangle, redraw bool) {
	if w.damage.Invalidate(r, redraw) {
		w.post(flushMsg)
	}
}

// resizeQueued reports whether a resize waits in the queue.
func (w *Window) resizeQueued() bool {
	return w.queue.Scan(func(m message) bool {
		return m.kind == resizeMsg
	})
}

func (w *Window) flush() {
	w.damage.BeginFlush()
	w.stats.Flushes++
	if w.resizeQueued() && w.damage.Retry() {
		w.stats.Requeues++
		w.log.Printf("window %q: flush deferred behind resize (%v)", w.cnf.Title, w.damage.State())
		w.post(flushMsg)
		return
	}
	if r, ok := w.damage.BeginExpose(); ok {
		w.stats.Exposes++
		w.buf.ResetClip()
		w.buf.Clear(r, w.cnf.Background)
		done := view.Expose(w.root, w.buf, r, w.interrupted)
		if w.damage.EndExpose(r, done) {
			w.post(flushMsg)
		}
		if w.damage.Broke() {
			w.stats.Requeues++
			w.log.Printf("window %q: expose of %v interrupted by resize (%v)", w.cnf.Title, r, w.damage.State())
		}
	}
	if w.damage.ExposePending() {
		return
	}
	w.blit()
}

func (w *Window) interrupted() bool {
	return w.damage.CanRetry() && w.resizeQueued()
}

func (w *Window) blit() {
	r, ok := w.damage.Blit()
	if !ok {
		return
	}
	defer w.damage.EndBlit()
	pr := r.Round().Intersect(w.buf.Image().Bounds())
	if pr.Empty() {
		return
	}
	w.stats.Blits++
	if err := w.screen.Present(w.buf.Image(), pr); err != nil {
		w.err = fmt.Errorf("app: present: %w", err)
		w.log.Printf("window %q: %v", w.cnf.Title, w.err)
		return
	}
	w.log.Printf("window %q: blit %v (%v)", w.cnf.Title, pr, w.damage.State())
}

// reshape applies a resize or move together with the resizes and
// moves queued after it, keeping the newest geometry.
func (w *Window) reshape(m message) {
	later := w.queue.Remove(func(q message) bool {
		return (q.kind == resizeMsg || q.kind == moveMsg) && !q.when.Before(m.when)
	})
	size, pos := w.size, w.pos
	for _, q := range append([]message{m}, later...) {
		switch q.kind {
		case resizeMsg:
			size = q.pt
		case moveMsg:
			pos = q.pt
		}
	}
	if n := len(later); n > 0 {
		w.stats.Coalesced += n
		w.log.Printf("window %q: coalesced %d geometry messages", w.cnf.Title, n)
	}
	moved := pos != w.pos
	w.pos = pos
	if size != w.size {
		old := w.size
		w.size = size
		w.log.Printf("window %q: resize %v to %v", w.cnf.Title, old, size)
		w.buf.Resize(pixels(size))
		w.damage.SetBounds(w.Bounds())
		w.root.Relayout(old, size)
		w.Invalidate(w.Bounds(), true)
		return
	}
	if moved {
		w.Invalidate(w.Bounds(), false)
	}
}

// DisableUpdates suspends presenting until the returned hold is
// released. Holds must be released in reverse order, on the thread
// that took them.
func (w *Window) DisableUpdates() *UpdateHold {
	d := w.damage.Suspend(thread.ID())
	return &UpdateHold{w: w, depth: d}
}

// EnableUpdates ends the innermost suspension started by
// DisableUpdates. Prefer UpdateHold.Release, which checks nesting.
func (w *Window) EnableUpdates() {
	if w.damage.Resume(thread.ID()) && !w.resizeQueued() {
		w.blit()
	}
}

// Release ends the suspension of h, presenting the damage collected
// during it if no other hold remains.
func (h *UpdateHold) Release() {
	if h.released {
		panic("app: update hold released twice")
	}
	if d := h.w.damage.Depth(); d != h.depth {
		panic(fmt.Sprintf("app: update hold of depth %d released at depth %d", h.depth, d))
	}
	h.released = true
	h.w.EnableUpdates()
}
