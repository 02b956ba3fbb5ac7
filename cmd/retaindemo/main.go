// SPDX-License-Identifier: Unlicense OR MIT

// Command retaindemo shows a scene of nested views in the terminal,
// one character cell per pixel.
//
// Keys: h hides or shows the topmost view, the arrow keys move it, l
// lowers it to the bottom and q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/retainui/retain/app"
	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/paint/term"
)

var (
	scenePath = flag.String("scene", "", "YAML scene `file`; the built-in scene if empty")
	debugPath = flag.String("debug", "", "write the window's debug log to `file`")
)

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "retaindemo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	sc, err := loadScene(*scenePath)
	if err != nil {
		return err
	}
	bg, err := sc.background()
	if err != nil {
		return err
	}
	views, err := sc.build()
	if err != nil {
		return err
	}
	logger := log.New(io.Discard, "", 0)
	if *debugPath != "" {
		f, err := os.Create(*debugPath)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.New(f, "retaindemo: ", log.Lmicroseconds)
	}
	scr, err := term.New()
	if err != nil {
		return err
	}
	defer scr.Close()
	sz := scr.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		sz.X, sz.Y = 80, 24
	}
	w := app.NewWindow(scr,
		app.Title(sc.Title),
		app.Size(float32(sz.X), float32(sz.Y)),
		app.Background(bg),
		app.Logger(logger),
	)
	for _, v := range views {
		w.AddView(v, -1)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		err := w.Loop(ctx)
		// Wake the input loop.
		scr.Tcell().PostEvent(tcell.NewEventInterrupt(nil))
		return err
	})
	g.Go(func() error {
		defer w.Close()
		return input(ctx, scr.Tcell(), w)
	})
	err = g.Wait()
	logger.Printf("stats: %+v", w.Stats())
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

// input forwards terminal events to w until the user quits or ctx is
// done.
func input(ctx context.Context, scr tcell.Screen, w *app.Window) error {
	for {
		ev := scr.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			cw, ch := ev.Size()
			w.Resize(float32(cw), float32(ch))
		case *tcell.EventKey:
			a := keyAction(ev.Key(), ev.Rune())
			if a == quit {
				return nil
			}
			if a != none {
				w.Post(func() { apply(w, a) })
			}
		}
	}
}

type action uint8

const (
	none action = iota
	quit
	toggle
	lower
	left
	right
	up
	down
)

func keyAction(k tcell.Key, r rune) action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return quit
	case tcell.KeyLeft:
		return left
	case tcell.KeyRight:
		return right
	case tcell.KeyUp:
		return up
	case tcell.KeyDown:
		return down
	case tcell.KeyRune:
		switch r {
		case 'q':
			return quit
		case 'h':
			return toggle
		case 'l':
			return lower
		}
	}
	return none
}

// apply performs a on the topmost view of w. It must run on the
// window's goroutine.
func apply(w *app.Window, a action) {
	views := w.Views()
	if len(views) == 0 {
		return
	}
	top := views[len(views)-1]
	switch a {
	case toggle:
		if top.IsHidden() {
			top.Show()
		} else {
			top.Hide()
		}
	case lower:
		top.SendBehind(views[0])
	case left:
		top.MoveBy(f32.Pt(-1, 0))
	case right:
		top.MoveBy(f32.Pt(1, 0))
	case up:
		top.MoveBy(f32.Pt(0, -1))
	case down:
		top.MoveBy(f32.Pt(0, 1))
	}
}
