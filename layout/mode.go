// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strings"

	"github.com/retainui/retain/f32"
)

// ResizingMode describes which edges of the parent an Item follows
// when the parent is resized.
type ResizingMode uint8

const (
	FollowLeft ResizingMode = 1 << iota
	FollowRight
	FollowTop
	FollowBottom
	FollowHCenter
	FollowVCenter

	// FollowNone keeps the frame fixed in parent space, the same as
	// FollowLeft|FollowTop.
	FollowNone ResizingMode = 0
	// FollowAll stretches the item along with its parent.
	FollowAll = FollowLeft | FollowRight | FollowTop | FollowBottom
)

// apply returns r laid out for a parent that grew by d.
func (m ResizingMode) apply(r f32.Rectangle, d f32.Point) f32.Rectangle {
	r.Min.X, r.Max.X = follow(r.Min.X, r.Max.X, d.X, m&FollowLeft != 0, m&FollowRight != 0, m&FollowHCenter != 0)
	r.Min.Y, r.Max.Y = follow(r.Min.Y, r.Max.Y, d.Y, m&FollowTop != 0, m&FollowBottom != 0, m&FollowVCenter != 0)
	return r
}

// follow moves the edges lo and hi along one axis. Following both
// edges takes precedence over centering.
func follow(lo, hi, d float32, first, last, center bool) (float32, float32) {
	switch {
	case first && last:
		return lo, hi + d
	case center && first:
		return lo, hi + d/2
	case center && last:
		return lo + d/2, hi + d
	case center:
		return lo + d/2, hi + d/2
	case last:
		return lo + d, hi + d
	default:
		return lo, hi
	}
}

// String returns the bits of m joined by "|", as accepted by
// ParseResizingMode.
func (m ResizingMode) String() string {
	if m == FollowNone {
		return "FollowNone"
	}
	names := []string{"FollowLeft", "FollowRight", "FollowTop", "FollowBottom", "FollowHCenter", "FollowVCenter"}
	var parts []string
	for i, n := range names {
		if m&(1<<i) != 0 {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "|")
}

// ParseResizingMode parses a mode in the format of String.
func ParseResizingMode(s string) (ResizingMode, bool) {
	var m ResizingMode
	for _, part := range strings.Split(s, "|") {
		switch strings.TrimSpace(part) {
		case "FollowNone", "":
		case "FollowLeft":
			m |= FollowLeft
		case "FollowRight":
			m |= FollowRight
		case "FollowTop":
			m |= FollowTop
		case "FollowBottom":
			m |= FollowBottom
		case "FollowHCenter":
			m |= FollowHCenter
		case "FollowVCenter":
			m |= FollowVCenter
		case "FollowAll":
			m |= FollowAll
		default:
			return 0, false
		}
	}
	return m, true
}
