package segclip

import (
	"fmt"
	"math"
)

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Segment is a directed line segment from P1 to P2.
//
// The direction defines the parametrization P(t) = P1 + t*(P2-P1) used by
// Clip, and clipped results keep it. P1 and P2 may coincide.
type Segment struct {
	P1, P2 Point
}

// Seg creates a Segment from endpoint coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: Pt(x1, y1), P2: Pt(x2, y2)}
}

// At returns the point at parameter t along the segment.
func (s Segment) At(t float64) Point {
	return s.P1.Lerp(s.P2, t)
}

// Sub returns the part of s between parameters t0 and t1. An end at
// parameter 0 or 1 is the original endpoint itself, since P1 + 1*(P2-P1)
// need not round to P2.
func (s Segment) Sub(t0, t1 float64) Segment {
	out := s
	if t0 != 0 {
		out.P1 = s.At(t0)
	}
	if t1 != 1 {
		out.P2 = s.At(t1)
	}
	return out
}

// Degenerate reports whether both endpoints coincide.
func (s Segment) Degenerate() bool {
	return s.P1 == s.P2
}

// Reversed returns the segment with its direction flipped.
func (s Segment) Reversed() Segment {
	return Segment{P1: s.P2, P2: s.P1}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.P2.X-s.P1.X, s.P2.Y-s.P1.Y)
}

func (s Segment) String() string {
	return s.P1.String() + " -> " + s.P2.String()
}

// ClipWindow is an axis-aligned rectangle with closed bounds.
//
// Windows built with NewClipWindow always satisfy XMin <= XMax and
// YMin <= YMax.
type ClipWindow struct {
	XMin, YMin float64
	XMax, YMax float64
}

// NewClipWindow creates a window from two opposite corners (x0, y0) and
// (x1, y1) given in any order.
func NewClipWindow(x0, y0, x1, y1 float64) ClipWindow {
	return ClipWindow{
		XMin: math.Min(x0, x1),
		YMin: math.Min(y0, y1),
		XMax: math.Max(x0, x1),
		YMax: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent of the window.
func (w ClipWindow) Width() float64 {
	return w.XMax - w.XMin
}

// Height returns the vertical extent of the window.
func (w ClipWindow) Height() float64 {
	return w.YMax - w.YMin
}

// Contains returns true if p lies inside the window or on its boundary.
func (w ClipWindow) Contains(p Point) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// ContainsSegment returns true if both endpoints lie inside the window.
func (w ClipWindow) ContainsSegment(s Segment) bool {
	return w.Contains(s.P1) && w.Contains(s.P2)
}

func (w ClipWindow) String() string {
	return fmt.Sprintf("[%g, %g]-[%g, %g]", w.XMin, w.YMin, w.XMax, w.YMax)
}
