// Package plot renders clipping results as an image: the window, the
// original segments and their visible parts.
package plot

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/gogpu/segclip"
	"github.com/gogpu/segclip/internal/report"
)

var (
	// ErrNoWindow is returned when the input has no clip window.
	ErrNoWindow = errors.New("plot: input has no clip window")

	// ErrInvalidSize is returned for a non-positive image size.
	ErrInvalidSize = errors.New("plot: invalid image size")

	// ErrUnboundedView is returned when coordinates are not finite.
	ErrUnboundedView = errors.New("plot: coordinates are not finite")
)

// Colors follow the usual plot conventions: blue window, gray dashed
// originals, red visible parts.
var (
	colorBackground = color.White
	colorGrid       = color.NRGBA{R: 0, G: 0, B: 0, A: 40}
	colorAxis       = color.Black
	colorWindow     = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	colorWindowFill = color.NRGBA{R: 0, G: 0, B: 255, A: 13}
	colorOriginal   = color.NRGBA{R: 128, G: 128, B: 128, A: 128}
	colorVisible    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	colorText       = color.Black
)

// transform maps input coordinates to pixels with equal scale on both axes
// and the y axis pointing up.
type transform struct {
	view   segclip.ClipWindow
	scale  float64
	ox, oy float64
}

func (t transform) pt(p segclip.Point) (float64, float64) {
	return t.ox + (p.X-t.view.XMin)*t.scale, t.oy + (t.view.YMax-p.Y)*t.scale
}

// Render draws in and the clipping result of each of its segments.
func Render(in segclip.Input, opts ...Option) (image.Image, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, ErrInvalidSize
	}

	view, ok := report.View(in, o.margin)
	if !ok {
		return nil, ErrNoWindow
	}
	if !finite(view.XMin, view.YMin, view.XMax, view.YMax, view.Width(), view.Height()) {
		return nil, ErrUnboundedView
	}
	rep := report.Build(in)

	s := float64(o.supersample)
	w, h := o.width*o.supersample, o.height*o.supersample
	c := newCanvas(w, h, colorBackground)

	pad := 24 * s
	top := pad
	var titleFace font.Face
	if o.title != "" {
		face, err := newFace(16 * s)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = face.Close()
		}()
		titleFace = face
		top += 28 * s
	}
	t := fit(view, pad, top, float64(w)-pad, float64(h)-pad)

	c.grid(t, s)
	c.axes(t, s)

	wx0, wy0 := t.pt(segclip.Pt(rep.Window.XMin, rep.Window.YMin))
	wx1, wy1 := t.pt(segclip.Pt(rep.Window.XMax, rep.Window.YMax))
	c.fillRect(wx0, wy0, wx1, wy1, colorWindowFill)
	c.strokeRect(wx0, wy0, wx1, wy1, 2*s, colorWindow)

	for _, r := range rep.Rows {
		x0, y0 := t.pt(r.Original.P1)
		x1, y1 := t.pt(r.Original.P2)
		c.dashed(x0, y0, x1, y1, 1.5*s, 6*s, 4*s, colorOriginal)
	}
	for _, r := range rep.Rows {
		if !r.Visible {
			continue
		}
		x0, y0 := t.pt(r.Clipped.P1)
		x1, y1 := t.pt(r.Clipped.P2)
		c.line(x0, y0, x1, y1, 2*s, colorVisible)
		c.dot(x0, y0, 3*s, colorVisible)
		c.dot(x1, y1, 3*s, colorVisible)
	}

	if titleFace != nil {
		x := (float64(w) - textWidth(titleFace, o.title)) / 2
		c.drawText(titleFace, o.title, x, pad+16*s, colorText)
	}
	if err := c.legend(o.legend, float64(w)-pad, top, s); err != nil {
		return nil, err
	}

	segclip.Logger().Debug("plot: rendered",
		"segments", len(rep.Rows), "visible", rep.Visible,
		"width", o.width, "height", o.height, "supersample", o.supersample)

	if o.supersample == 1 {
		return c.img, nil
	}
	return imaging.Resize(c.img, o.width, o.height, imaging.Lanczos), nil
}

// fit returns the transform placing view centered in the pixel area
// [left, right] x [top, bottom].
func fit(view segclip.ClipWindow, left, top, right, bottom float64) transform {
	vw, vh := view.Width(), view.Height()
	if vw <= 0 {
		view.XMin, view.XMax, vw = view.XMin-0.5, view.XMax+0.5, 1
	}
	if vh <= 0 {
		view.YMin, view.YMax, vh = view.YMin-0.5, view.YMax+0.5, 1
	}
	aw, ah := right-left, bottom-top
	scale := math.Min(aw/vw, ah/vh)
	return transform{
		view:  view,
		scale: scale,
		ox:    left + (aw-vw*scale)/2,
		oy:    top + (ah-vh*scale)/2,
	}
}

// maxGridLines bounds the grid lines drawn per axis. More lines than that
// only happen when step is below the precision of the view's coordinates.
const maxGridLines = 200

// grid draws dotted lines at round coordinates.
func (c *canvas) grid(t transform, s float64) {
	v := t.view
	step := niceStep(math.Max(v.Width(), v.Height()) / 10)
	for _, x := range gridLines(v.XMin, v.XMax, step) {
		x0, y0 := t.pt(segclip.Pt(x, v.YMin))
		x1, y1 := t.pt(segclip.Pt(x, v.YMax))
		c.dashed(x0, y0, x1, y1, s, s, 2*s, colorGrid)
	}
	for _, y := range gridLines(v.YMin, v.YMax, step) {
		x0, y0 := t.pt(segclip.Pt(v.XMin, y))
		x1, y1 := t.pt(segclip.Pt(v.XMax, y))
		c.dashed(x0, y0, x1, y1, s, s, 2*s, colorGrid)
	}
}

// gridLines returns the multiples of step in [lo, hi], or nil when there
// would be more than maxGridLines of them.
func gridLines(lo, hi, step float64) []float64 {
	first := math.Ceil(lo/step) * step
	n := math.Floor((hi-first)/step) + 1
	if !finite(first, n) || n > maxGridLines {
		return nil
	}
	var out []float64
	for i := 0; i < int(n); i++ {
		x := first + float64(i)*step
		if x > hi {
			break
		}
		out = append(out, x)
	}
	return out
}

// axes draws the coordinate axes when they are in view.
func (c *canvas) axes(t transform, s float64) {
	v := t.view
	if v.XMin <= 0 && v.XMax >= 0 {
		x0, y0 := t.pt(segclip.Pt(0, v.YMin))
		x1, y1 := t.pt(segclip.Pt(0, v.YMax))
		c.line(x0, y0, x1, y1, s, colorAxis)
	}
	if v.YMin <= 0 && v.YMax >= 0 {
		x0, y0 := t.pt(segclip.Pt(v.XMin, 0))
		x1, y1 := t.pt(segclip.Pt(v.XMax, 0))
		c.line(x0, y0, x1, y1, s, colorAxis)
	}
}

// legend draws the non-empty labels of l in a box whose top right corner
// is (right, top).
func (c *canvas) legend(l Legend, right, top, s float64) error {
	type entry struct {
		label string
		draw  func(x0, y, x1 float64)
	}
	var entries []entry
	if l.Window != "" {
		entries = append(entries, entry{l.Window, func(x0, y, x1 float64) {
			c.line(x0, y, x1, y, 2*s, colorWindow)
		}})
	}
	if l.Original != "" {
		entries = append(entries, entry{l.Original, func(x0, y, x1 float64) {
			c.dashed(x0, y, x1, y, 1.5*s, 6*s, 4*s, colorOriginal)
		}})
	}
	if l.Visible != "" {
		entries = append(entries, entry{l.Visible, func(x0, y, x1 float64) {
			c.line(x0, y, x1, y, 2*s, colorVisible)
			c.dot((x0+x1)/2, y, 3*s, colorVisible)
		}})
	}
	if len(entries) == 0 {
		return nil
	}

	face, err := newFace(12 * s)
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	sample := 28 * s
	gap := 6 * s
	rowH := 18 * s
	textW := 0.0
	for _, e := range entries {
		textW = math.Max(textW, textWidth(face, e.label))
	}
	boxW := gap + sample + gap + textW + gap
	boxH := gap + rowH*float64(len(entries)) + gap
	x0, y0 := right-boxW-gap, top+gap

	c.fillRect(x0, y0, x0+boxW, y0+boxH, color.NRGBA{R: 255, G: 255, B: 255, A: 220})
	c.strokeRect(x0, y0, x0+boxW, y0+boxH, s, colorGrid)
	for i, e := range entries {
		y := y0 + gap + rowH*float64(i) + rowH/2
		e.draw(x0+gap, y, x0+gap+sample)
		c.drawText(face, e.label, x0+gap+sample+gap, y+4*s, colorText)
	}
	return nil
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || !finite(raw) {
		return 1
	}
	p := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / p; {
	case f <= 1:
		return p
	case f <= 2:
		return 2 * p
	case f <= 5:
		return 5 * p
	default:
		return 10 * p
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// Save writes img to a file; the format follows the file extension.
func Save(path string, img image.Image) error {
	return imaging.Save(img, path)
}
