// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image/color"
	"io"
	"log"

	"golang.org/x/image/colornames"

	"github.com/retainui/retain/f32"
)

// Config describes a Window configuration.
type Config struct {
	// Title is the window title.
	Title string
	// Size is the initial size of the window.
	Size f32.Point
	// Background clears exposed areas before views draw.
	Background color.NRGBA
	// UnitsPerPixel is the scale of the top-level container.
	UnitsPerPixel float32
	// MaxExposeRetries bounds the number of consecutive flushes
	// deferred in favor of a queued resize.
	MaxExposeRetries int
	Logger           *log.Logger
}

// Option configures a window.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Title:            "retain",
		Size:             f32.Pt(80, 24),
		Background:       color.NRGBAModel.Convert(colornames.Black).(color.NRGBA),
		UnitsPerPixel:    1,
		MaxExposeRetries: 8,
		Logger:           log.New(io.Discard, "", 0),
	}
}

// Title sets the title of the window.
func Title(t string) Option {
	return func(cnf *Config) {
		cnf.Title = t
	}
}

// Size sets the initial size of the window.
func Size(w, h float32) Option {
	if w <= 0 {
		panic("app: width must be larger than 0")
	}
	if h <= 0 {
		panic("app: height must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.Size = f32.Pt(w, h)
	}
}

// Background sets the color exposed areas are cleared to.
func Background(c color.NRGBA) Option {
	return func(cnf *Config) {
		cnf.Background = c
	}
}

// UnitsPerPixel sets the scale of the window's top-level views.
func UnitsPerPixel(v float32) Option {
	if v <= 0 {
		panic("app: units per pixel must be larger than 0")
	}
	return func(cnf *Config) {
		cnf.UnitsPerPixel = v
	}
}

// MaxExposeRetries sets how many consecutive flushes may be deferred
// by queued resizes before one is forced through.
func MaxExposeRetries(n int) Option {
	if n < 0 {
		panic("app: negative expose retries")
	}
	return func(cnf *Config) {
		cnf.MaxExposeRetries = n
	}
}

// Logger directs the window's debug output to l.
func Logger(l *log.Logger) Option {
	return func(cnf *Config) {
		cnf.Logger = l
	}
}
