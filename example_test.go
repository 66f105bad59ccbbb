package segclip_test

import (
	"fmt"

	"github.com/gogpu/segclip"
)

func ExampleClip() {
	w := segclip.NewClipWindow(0, 0, 100, 100)

	c, ok := segclip.Clip(segclip.Seg(-50, 50, 150, 50), w)
	fmt.Println(c, ok)

	_, ok = segclip.Clip(segclip.Seg(-50, -50, -10, 80), w)
	fmt.Println(ok)
	// Output:
	// (0, 50) -> (100, 50) true
	// false
}

func ExampleParse() {
	in := segclip.Parse(`2
-25 75 75 -25
200 200 300 300
50 50 0 0`)

	w, ok := in.ClipWindow()
	fmt.Println("window:", w, ok)
	for _, s := range in.Segments {
		if c, visible := segclip.Clip(s, w); visible {
			fmt.Println(s, "=>", c)
		} else {
			fmt.Println(s, "=> invisible")
		}
	}
	// Output:
	// window: [0, 0]-[50, 50] true
	// (-25, 75) -> (75, -25) => (0, 50) -> (50, 0)
	// (200, 200) -> (300, 300) => invisible
}

func ExampleDecode() {
	_, err := segclip.Decode("2\nabc def 1 2\n0 0 50 50")
	fmt.Println(err)
	// Output:
	// line 2: "abc": segclip: malformed number
}
