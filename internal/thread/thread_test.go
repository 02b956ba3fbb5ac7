// SPDX-License-Identifier: Unlicense OR MIT

package thread

import (
	"runtime"
	"testing"
)

func TestLockedThreadStable(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	first := ID()
	for i := 0; i < 10; i++ {
		runtime.Gosched()
		if id := ID(); id != first {
			t.Fatalf("locked goroutine changed thread: %d != %d", id, first)
		}
	}
}

func TestThreadsDiffer(t *testing.T) {
	if ID() == 0 {
		t.Skip("no thread identifiers on " + runtime.GOOS)
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	mine := ID()
	other := make(chan uint64)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		other <- ID()
	}()
	if id := <-other; id == mine {
		t.Errorf("two locked goroutines share thread %d", id)
	}
}
