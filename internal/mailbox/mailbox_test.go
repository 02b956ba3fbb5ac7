// SPDX-License-Identifier: Unlicense OR MIT

package mailbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFIFO(t *testing.T) {
	b := New[int]()
	for i := 1; i <= 3; i++ {
		b.Post(i)
	}
	var got []int
	for {
		m, ok := b.TryNext()
		if !ok {
			break
		}
		got = append(got, m)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestScanAndRemove(t *testing.T) {
	b := New[int]()
	for i := 1; i <= 6; i++ {
		b.Post(i)
	}
	if !b.Scan(func(m int) bool { return m == 4 }) {
		t.Error("scan missed a queued message")
	}
	removed := b.Remove(func(m int) bool { return m%2 == 0 })
	if diff := cmp.Diff([]int{2, 4, 6}, removed); diff != "" {
		t.Errorf("removed (-want +got):\n%s", diff)
	}
	if b.Scan(func(m int) bool { return m%2 == 0 }) {
		t.Error("removed message still queued")
	}
	if b.Len() != 3 {
		t.Errorf("len = %d, want 3", b.Len())
	}
}

func TestNextWaits(t *testing.T) {
	b := New[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		b.Post("hello")
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	m, err := b.Next(ctx)
	if err != nil || m != "hello" {
		t.Fatalf("Next = %q, %v", m, err)
	}
}

func TestNextCancel(t *testing.T) {
	b := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Next on cancelled context = %v", err)
	}
}

func TestClose(t *testing.T) {
	b := New[int]()
	b.Post(1)
	b.Close()
	if b.Post(2) {
		t.Error("post after close accepted")
	}
	ctx := context.Background()
	if m, err := b.Next(ctx); err != nil || m != 1 {
		t.Errorf("Next = %d, %v; want queued message", m, err)
	}
	if _, err := b.Next(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Next on drained mailbox = %v, want ErrClosed", err)
	}
}
