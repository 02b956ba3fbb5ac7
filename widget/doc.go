// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements simple widgets for views.
package widget
