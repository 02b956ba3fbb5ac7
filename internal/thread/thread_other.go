// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !windows
// +build !linux,!windows

package thread

func id() uint64 {
	return 0
}
