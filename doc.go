// Package segclip clips 2D line segments against an axis-aligned window.
//
// # Overview
//
// segclip is a small Pure Go library built from two independent parts:
//
//   - Clip, a Liang-Barsky parametric line clipper
//   - Parse, an interpreter that turns loosely structured coordinate text
//     into segments and a clip window
//
// Both are pure functions over immutable value types and are safe for
// concurrent use.
//
// # Quick Start
//
//	import "github.com/gogpu/segclip"
//
//	in := segclip.Parse("1\n-50 10 20 60\n0 0 50 50")
//	w, ok := in.ClipWindow()
//	if !ok {
//		// input rejected
//	}
//	for _, s := range in.Segments {
//		if c, visible := segclip.Clip(s, w); visible {
//			fmt.Println(c)
//		}
//	}
//
// # Clipping
//
// A segment is treated as P(t) = P1 + t*(P2-P1) for t in [0, 1]. Each of the
// four window boundaries narrows that interval; the surviving interval
// [t0, t1] becomes the clipped segment P(t0) -> P(t1), so the result keeps
// the direction of the input. The window is closed: a segment that only
// touches a boundary is visible. Comparisons are exact IEEE 754 comparisons
// without tolerance, so nearly tangent segments may be classified either
// way.
//
// # Input Format
//
//	[N]                  optional positive segment count
//	X1 Y1 X2 Y2          one segment per line
//	...
//	Xmin Ymin Xmax Ymax  two opposite window corners, any order
//
// Without a count, the last line is the window. See Parse for the handling
// of short and malformed lines.
//
// # Logging
//
// segclip is silent by default. Call SetLogger to receive debug diagnostics
// about how an input was interpreted.
package segclip
