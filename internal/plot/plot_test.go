package plot

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
	"time"

	"github.com/gogpu/segclip"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRender_Pixels(t *testing.T) {
	in := segclip.Parse("1\n-50 25 100 25\n0 0 50 50")

	img, err := Render(in, WithSize(800, 600), WithSupersample(1))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 800, 600) {
		t.Fatalf("bounds = %v, want 800x600", got)
	}

	// World (25, 25) lies on the visible part of the segment.
	if c := nrgbaAt(img, 400, 300); c.R < 200 || c.G > 100 || c.B > 100 {
		t.Errorf("pixel on visible part = %v, want red", c)
	}
	// World (35, 35) is inside the window, away from grid lines.
	if c := nrgbaAt(img, 444, 255); c.B < 250 || c.R > 250 || c.R < 200 {
		t.Errorf("pixel inside window = %v, want light blue", c)
	}
	// Padding stays background.
	if c := nrgbaAt(img, 5, 5); c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel in padding = %v, want white", c)
	}
}

func TestRender_TitleAndLegend(t *testing.T) {
	in := segclip.Parse("1\n-50 25 100 25\n0 0 50 50")

	img, err := Render(in,
		WithSize(400, 300),
		WithTitle("Result: 1 visible of 1"),
		WithLegend(Legend{Window: "Window", Original: "Original", Visible: "Visible"}),
	)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 400, 300) {
		t.Fatalf("bounds = %v, want 400x300", got)
	}

	dark := false
	for y := 0; y < 30 && !dark; y++ {
		for x := 0; x < 400; x++ {
			if c := nrgbaAt(img, x, y); c.R < 100 && c.G < 100 && c.B < 100 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("title band has no dark pixels")
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   segclip.Input
		opts []Option
		want error
	}{
		{"no window", segclip.Parse("1\n0 0 1 1"), nil, ErrNoWindow},
		{"rejected input", segclip.Parse("x"), nil, ErrNoWindow},
		{"zero size", segclip.Parse("1\n0 0 1 1\n0 0 5 5"), []Option{WithSize(0, 100)}, ErrInvalidSize},
		{"infinite", segclip.Parse("1\n0 0 1e400 1\n0 0 5 5"), nil, ErrUnboundedView},
		{"width overflows", segclip.Parse("1\n-1e308 0 1e308 0\n0 0 50 50"), nil, ErrUnboundedView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(tt.in, tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRender_Terminates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"coordinates beyond integer precision", "1\n1e17 0 1e17 1\n1e17 0 1e17 1", nil},
		{"width overflows", "1\n-1e308 0 1e308 0\n0 0 50 50", ErrUnboundedView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				_, err := Render(segclip.Parse(tt.text), WithSize(100, 100), WithSupersample(1))
				done <- err
			}()
			select {
			case err := <-done:
				if !errors.Is(err, tt.want) {
					t.Errorf("Render() error = %v, want %v", err, tt.want)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("Render did not return within 5s")
			}
		})
	}
}

func TestGridLines(t *testing.T) {
	tests := []struct {
		name         string
		lo, hi, step float64
		want         []float64
	}{
		{"round bounds", 0, 100, 20, []float64{0, 20, 40, 60, 80, 100}},
		{"offset bounds", -15, 25, 10, []float64{-10, 0, 10, 20}},
		{"single line", 0, 0.5, 1, []float64{0}},
		{"no multiple in range", 0.1, 0.9, 1, nil},
		{"step below precision", 1e17 - 16, 1e17 + 16, 1e-3, nil},
		{"too many lines", 0, 1000, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gridLines(tt.lo, tt.hi, tt.step)
			if len(got) != len(tt.want) {
				t.Fatalf("gridLines(%v, %v, %v) = %v, want %v", tt.lo, tt.hi, tt.step, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRender_DegenerateView(t *testing.T) {
	in := segclip.Parse("1\n3 3 3 3\n3 3 3 3")
	img, err := Render(in, WithSize(100, 100), WithMargin(0), WithSupersample(1))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("width = %d, want 100", img.Bounds().Dx())
	}
}

func TestEncode(t *testing.T) {
	in := segclip.Parse("1\n-50 10 20 60\n0 0 50 50")
	img, err := Render(in, WithSize(64, 48))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds().Size() != image.Pt(64, 48) {
		t.Errorf("decoded size = %v, want 64x48", decoded.Bounds().Size())
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{17, 20},
		{1, 1},
		{0.3, 0.5},
		{4.5, 5},
		{7, 10},
		{120, 200},
		{0, 1},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		if got := niceStep(tt.raw); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("niceStep(%v) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	view := segclip.NewClipWindow(0, 0, 100, 50)
	tr := fit(view, 0, 0, 200, 200)

	if tr.scale != 2 {
		t.Fatalf("scale = %v, want 2", tr.scale)
	}
	if x, y := tr.pt(segclip.Pt(0, 50)); x != 0 || y != 50 {
		t.Errorf("top left maps to (%v, %v), want (0, 50)", x, y)
	}
	if x, y := tr.pt(segclip.Pt(100, 0)); x != 200 || y != 150 {
		t.Errorf("bottom right maps to (%v, %v), want (200, 150)", x, y)
	}
}
