// SPDX-License-Identifier: Unlicense OR MIT

// Package mailbox implements the message queue of a window.
package mailbox

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Next after Close once the queue is empty.
var ErrClosed = errors.New("mailbox: closed")

// Mailbox is an unbounded FIFO queue safe for concurrent use. Unlike a
// channel, pending messages can be inspected and removed, which lets
// the receiver coalesce them.
type Mailbox[T any] struct {
	mu     sync.Mutex
	queue  []T
	closed bool
	// wakeup has a buffer of one; a pending wakeup covers any number
	// of posts.
	wakeup chan struct{}
}

func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{wakeup: make(chan struct{}, 1)}
}

// Post appends m to the queue. Posting to a closed Mailbox drops m and
// reports false.
func (b *Mailbox[T]) Post(m T) bool {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return false
	}
	b.queue = append(b.queue, m)
	b.mu.Unlock()
	b.notify()
	return true
}

func (b *Mailbox[T]) notify() {
	select {
	case b.wakeup <- struct{}{}:
	default:
	}
}

// TryNext removes and returns the oldest message, if any.
func (b *Mailbox[T]) TryNext() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var zero T
	if len(b.queue) == 0 {
		return zero, false
	}
	m := b.queue[0]
	b.queue[0] = zero
	b.queue = b.queue[1:]
	return m, true
}

// Next waits for and removes the oldest message.
func (b *Mailbox[T]) Next(ctx context.Context) (T, error) {
	for {
		if m, ok := b.TryNext(); ok {
			return m, nil
		}
		b.mu.Lock()
		closed := b.closed
		b.mu.Unlock()
		if closed {
			var zero T
			return zero, ErrClosed
		}
		select {
		case <-b.wakeup:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Scan calls f for each queued message, oldest first, until f returns
// true. It reports whether f returned true. f must not call methods
// of b.
func (b *Mailbox[T]) Scan(f func(m T) bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, m := range b.queue {
		if f(m) {
			return true
		}
	}
	return false
}

// Remove removes the queued messages for which f returns true and
// returns them, oldest first. f must not call methods of b.
func (b *Mailbox[T]) Remove(f func(m T) bool) []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	var removed []T
	kept := b.queue[:0]
	for _, m := range b.queue {
		if f(m) {
			removed = append(removed, m)
		} else {
			kept = append(kept, m)
		}
	}
	var zero T
	for i := len(kept); i < len(b.queue); i++ {
		b.queue[i] = zero
	}
	b.queue = kept
	return removed
}

// Len returns the number of queued messages.
func (b *Mailbox[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Close stops accepting messages. Queued messages can still be
// received.
func (b *Mailbox[T]) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.notify()
}
