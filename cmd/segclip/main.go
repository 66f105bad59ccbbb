// Command segclip clips line segments against a rectangular window and
// reports the visible parts, optionally rendering them to an image.
//
// Usage:
//
//	segclip [flags] < input.txt
//	segclip -in input.txt -png result.png -lang ru
//
// Input format:
//
//	N                    optional segment count
//	X1 Y1 X2 Y2          one segment per line
//	Xmin Ymin Xmax Ymax  clip window
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/segclip"
	"github.com/gogpu/segclip/internal/plot"
	"github.com/gogpu/segclip/internal/report"
)

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitNoWindow = 2
)

// sampleInput is used when stdin is an interactive terminal and no file is
// given.
const sampleInput = `3
-50 10 20 60
10 -20 80 40
-30 80 60 -10
0 0 50 50`

// ANSI colors for status lines.
const (
	defaultColor = "\x1b[0m"
	successColor = "\x1b[32m"
	warningColor = "\x1b[33m"
	errorColor   = "\x1b[31m"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	source string
	png    string
	lang   string
	width  int
	height int
	debug  bool
	color  string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("segclip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.source, "in", pipeName, "input file, or - for stdin")
	fs.StringVar(&cfg.png, "png", "", "write a rendering of the result to this image file")
	fs.StringVar(&cfg.lang, "lang", "", "report language (en, ru); defaults to $LANG")
	fs.IntVar(&cfg.width, "width", 800, "image width")
	fs.IntVar(&cfg.height, "height", 600, "image height")
	fs.BoolVar(&cfg.debug, "debug", false, "log parse diagnostics to stderr")
	fs.StringVar(&cfg.color, "color", "auto", "colored status output: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	switch cfg.color {
	case "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("invalid -color value %q", cfg.color)
	}
	if cfg.lang == "" {
		cfg.lang = localeTag(os.Getenv("LANG"))
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	if cfg.debug {
		segclip.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer segclip.SetLogger(nil)
	}
	log := segclip.Logger()

	text, err := readInput(cfg.source, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "segclip: %v\n", err)
		return exitFailure
	}

	colored := cfg.color == "always" || (cfg.color == "auto" && isTerminal(stdout))
	pr := report.NewPrinter(cfg.lang)

	in := segclip.Parse(text)
	msg, level := pr.Summary(in)
	fmt.Fprintln(stdout, decorate(msg, level, colored))
	if level == report.LevelError {
		return exitNoWindow
	}
	if level == report.LevelWarning {
		return exitOK
	}

	rep := report.Build(in)
	fmt.Fprintln(stdout, pr.Title(rep))
	fmt.Fprintln(stdout)
	if err := pr.WriteTable(stdout, rep); err != nil {
		fmt.Fprintf(stderr, "segclip: %v\n", err)
		return exitFailure
	}

	if cfg.png == "" {
		return exitOK
	}
	window, original, visible := pr.LegendLabels()
	img, err := plot.Render(in,
		plot.WithSize(cfg.width, cfg.height),
		plot.WithTitle(pr.Title(rep)),
		plot.WithLegend(plot.Legend{Window: window, Original: original, Visible: visible}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "segclip: %v\n", err)
		return exitFailure
	}
	if err := plot.Save(cfg.png, img); err != nil {
		log.Warn("segclip: image not written", "path", cfg.png, "err", err)
		fmt.Fprintf(stderr, "segclip: %v\n", err)
		return exitFailure
	}
	log.Debug("segclip: image written", "path", cfg.png)
	return exitOK
}

// readInput reads the whole source. An interactive stdin falls back to the
// built-in sample.
func readInput(source string, stdin io.Reader) (string, error) {
	if source != pipeName {
		b, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("unable to read input: %w", err)
		}
		return string(b), nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return sampleInput, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("unable to read stdin: %w", err)
	}
	return string(b), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// decorate colors a status line by level.
func decorate(s string, level report.Level, colored bool) string {
	if !colored {
		return s
	}
	switch level {
	case report.LevelOK:
		return successColor + s + defaultColor
	case report.LevelWarning:
		return warningColor + s + defaultColor
	default:
		return errorColor + s + defaultColor
	}
}

// localeTag turns a POSIX locale such as "ru_RU.UTF-8" into a BCP 47 tag.
func localeTag(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
