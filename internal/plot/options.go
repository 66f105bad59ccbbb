package plot

// Option configures Render.
//
// Example:
//
//	img, err := plot.Render(in,
//		plot.WithSize(1024, 768),
//		plot.WithTitle("Result: 3 visible of 3"))
type Option func(*options)

// Legend holds the labels of the legend entries. Empty labels are not drawn.
type Legend struct {
	Window   string
	Original string
	Visible  string
}

type options struct {
	width, height int
	margin        float64
	supersample   int
	title         string
	legend        Legend
}

func defaultOptions() options {
	return options{
		width:       800,
		height:      600,
		margin:      10,
		supersample: 2,
	}
}

// WithSize sets the size of the output image in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithMargin sets the space, in input units, kept around the segments and
// the window.
func WithMargin(m float64) Option {
	return func(o *options) {
		o.margin = m
	}
}

// WithSupersample renders at n times the output size and downsamples the
// result. Values below 1 are treated as 1.
func WithSupersample(n int) Option {
	return func(o *options) {
		o.supersample = max(n, 1)
	}
}

// WithTitle sets the text drawn above the plot.
func WithTitle(s string) Option {
	return func(o *options) {
		o.title = s
	}
}

// WithLegend sets the legend labels.
func WithLegend(l Legend) Option {
	return func(o *options) {
		o.legend = l
	}
}
