// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs windows: the owner loop that keeps a tree of views
painted and presented.

A Window is created with NewWindow and driven by Loop, which must run
for as long as the window lives. Loop locks its goroutine to an OS
thread; the view tree, damage and update holds belong to that
goroutine. Other goroutines talk to the window by posting messages:

	w := app.NewWindow(screen, app.Size(80, 24))
	go func() {
		w.Run(func() {
			w.AddView(v, -1)
		})
	}()
	if err := w.Loop(ctx); err != nil {
		log.Fatal(err)
	}

# Damage

Views report damage through Invalidate. Damage that needs repainting
is exposed: the window clears it to the background color and asks
every view meeting it to draw. Damage that is already painted is only
presented. Any number of Invalidate calls before the window gets
around to it results in a single flush covering their union.

A resize queued behind a flush takes precedence: the flush is
deferred, or its expose pass interrupted, until the window has the
new size. After MaxExposeRetries consecutive deferrals a flush runs
to completion regardless.

# Update holds

DisableUpdates suspends presenting until the returned hold is
released. Holds nest and are bound to the OS thread that took the
first one.
*/
package app
