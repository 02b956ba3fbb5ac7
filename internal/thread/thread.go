// SPDX-License-Identifier: Unlicense OR MIT

// Package thread identifies operating system threads.
//
// Goroutines migrate between threads; an identity returned by ID is
// stable only for a goroutine locked to its thread with
// runtime.LockOSThread.
package thread

// ID returns an identifier of the calling thread. It returns 0 on
// platforms without thread identifiers, making every thread look the
// same.
func ID() uint64 {
	return id()
}
