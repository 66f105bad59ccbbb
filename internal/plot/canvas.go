package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// canvas draws antialiased primitives onto an RGBA image in pixel space.
type canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newCanvas(w, h int, bg color.Color) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &canvas{img: img, z: vector.NewRasterizer(w, h)}
}

// fill composites the current path with c and resets the rasterizer.
func (c *canvas) fill(col color.Color) {
	b := c.img.Bounds()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
	c.z.Reset(b.Dx(), b.Dy())
}

// line strokes a straight line of the given width with butt caps.
// A zero-length line is drawn as a square dot.
func (c *canvas) line(x0, y0, x1, y1, width float64, col color.Color) {
	c.quad(x0, y0, x1, y1, width, 0)
	c.fill(col)
}

// quad adds the outline of a stroked line to the path, extended by ext at
// both ends. All quads share one orientation so overlaps never cancel.
func (c *canvas) quad(x0, y0, x1, y1, width, ext float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	hw := width / 2
	if l == 0 {
		dx, dy, l = 1, 0, 1
		ext = max(ext, hw)
	}
	ux, uy := dx/l, dy/l
	x0, y0 = x0-ux*ext, y0-uy*ext
	x1, y1 = x1+ux*ext, y1+uy*ext
	nx, ny := -uy*hw, ux*hw
	c.z.MoveTo(float32(x0+nx), float32(y0+ny))
	c.z.LineTo(float32(x1+nx), float32(y1+ny))
	c.z.LineTo(float32(x1-nx), float32(y1-ny))
	c.z.LineTo(float32(x0-nx), float32(y0-ny))
	c.z.ClosePath()
}

// dashed strokes a line as alternating dashes of length on and gaps of
// length off, starting with a dash at (x0, y0).
func (c *canvas) dashed(x0, y0, x1, y1, width, on, off float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || on <= 0 {
		c.line(x0, y0, x1, y1, width, col)
		return
	}
	ux, uy := dx/l, dy/l
	for d := 0.0; d < l; d += on + off {
		e := math.Min(d+on, l)
		c.quad(x0+ux*d, y0+uy*d, x0+ux*e, y0+uy*e, width, 0)
	}
	c.fill(col)
}

func (c *canvas) rect(x0, y0, x1, y1 float64) {
	c.z.MoveTo(float32(x0), float32(y0))
	c.z.LineTo(float32(x1), float32(y0))
	c.z.LineTo(float32(x1), float32(y1))
	c.z.LineTo(float32(x0), float32(y1))
	c.z.ClosePath()
}

// fillRect fills an axis-aligned rectangle given by two corners.
func (c *canvas) fillRect(x0, y0, x1, y1 float64, col color.Color) {
	c.rect(x0, y0, x1, y1)
	c.fill(col)
}

// strokeRect outlines an axis-aligned rectangle.
func (c *canvas) strokeRect(x0, y0, x1, y1, width float64, col color.Color) {
	hw := width / 2
	c.quad(x0, y0, x1, y0, width, hw)
	c.quad(x1, y0, x1, y1, width, hw)
	c.quad(x1, y1, x0, y1, width, hw)
	c.quad(x0, y1, x0, y0, width, hw)
	c.fill(col)
}

// dot fills a circle approximated by a regular polygon.
func (c *canvas) dot(x, y, r float64, col color.Color) {
	const sides = 24
	c.z.MoveTo(float32(x+r), float32(y))
	for i := 1; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		c.z.LineTo(float32(x+r*math.Cos(a)), float32(y+r*math.Sin(a)))
	}
	c.z.ClosePath()
	c.fill(col)
}
