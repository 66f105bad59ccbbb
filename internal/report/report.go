// Package report computes per-segment clipping results and formats them
// for people.
package report

import (
	"math"

	"github.com/gogpu/segclip"
)

// Row is the clipping outcome of one input segment.
type Row struct {
	Index    int // 1-based position in the input
	Original segclip.Segment
	Clipped  segclip.Segment // meaningful only when Visible
	Visible  bool

	// Fraction is the share of the parameter range [0, 1] that survived.
	Fraction float64
}

// Report holds the clipping outcome of a whole input.
type Report struct {
	Rows      []Row
	Window    segclip.ClipWindow
	HasWindow bool
	Visible   int
}

// Build clips every segment of in against its window. Without a window no
// segment is visible.
func Build(in segclip.Input) Report {
	rep := Report{
		Rows:      make([]Row, 0, len(in.Segments)),
		Window:    in.Window,
		HasWindow: in.HasWindow,
	}
	for i, s := range in.Segments {
		row := Row{Index: i + 1, Original: s}
		if in.HasWindow {
			if t0, t1, ok := segclip.ClipParams(s, in.Window); ok {
				row.Clipped = s.Sub(t0, t1)
				row.Visible = true
				row.Fraction = t1 - t0
				rep.Visible++
			}
		}
		rep.Rows = append(rep.Rows, row)
	}
	return rep
}

// View returns the area covering every segment and the window, grown by
// margin on each side. It reports false when in has no window.
func View(in segclip.Input, margin float64) (segclip.ClipWindow, bool) {
	if !in.HasWindow {
		return segclip.ClipWindow{}, false
	}
	v := in.Window
	for _, s := range in.Segments {
		for _, p := range [2]segclip.Point{s.P1, s.P2} {
			v.XMin = math.Min(v.XMin, p.X)
			v.XMax = math.Max(v.XMax, p.X)
			v.YMin = math.Min(v.YMin, p.Y)
			v.YMax = math.Max(v.YMax, p.Y)
		}
	}
	return segclip.ClipWindow{
		XMin: v.XMin - margin,
		YMin: v.YMin - margin,
		XMax: v.XMax + margin,
		YMax: v.YMax + margin,
	}, true
}
