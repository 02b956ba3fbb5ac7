// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/layout"
)

func ExampleContainer_Relayout() {
	root := layout.NewContainer(nil)
	left := layout.NewItem(f32.Rect(0, 0, 100, 100), layout.FollowLeft)
	right := layout.NewItem(f32.Rect(100, 0, 200, 100), layout.FollowRight)
	root.AddItem(left, -1)
	root.AddItem(right, -1)

	root.Relayout(f32.Pt(200, 100), f32.Pt(300, 100))
	fmt.Println(left.Frame())
	fmt.Println(right.Frame())

	// Output:
	// (0,0)-(100,100)
	// (200,0)-(300,100)
}

func ExampleItem_VisibleRegion() {
	root := layout.NewContainer(nil)
	below := layout.NewItem(f32.Rect(0, 0, 10, 10), layout.FollowNone)
	above := layout.NewItem(f32.Rect(5, 0, 10, 10), layout.FollowNone)
	root.AddItem(below, -1)
	root.AddItem(above, -1)

	fmt.Println(below.VisibleRegion().Bounds())
	above.Hide()
	fmt.Println(below.VisibleRegion().Bounds())

	// Output:
	// (0,0)-(5,10)
	// (0,0)-(10,10)
}
