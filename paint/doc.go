// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides the drawing surface of a window.

A Context draws into the back buffer of a window. Drawing is
restricted to the clip region, and coordinates are offset by the
origin, so that a view paints in its own local coordinates and
cannot touch pixels outside its visible region.

A Screen presents rectangles of the back buffer to the user.
*/
package paint
