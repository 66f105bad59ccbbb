package segclip

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Input is the result of interpreting coordinate text: the segments in
// input order and the clip window, if one was found.
type Input struct {
	Segments []Segment

	// Window is meaningful only when HasWindow is true.
	Window    ClipWindow
	HasWindow bool
}

// ClipWindow returns the window and whether one is present.
func (in Input) ClipWindow() (ClipWindow, bool) {
	return in.Window, in.HasWindow
}

// Parse interprets text of the form
//
//	[N]
//	X1 Y1 X2 Y2
//	...
//	Xmin Ymin Xmax Ymax
//
// Blank lines are ignored. When the first line is a positive integer it is
// the number of segment lines that follow, and the next line holds the
// window. Otherwise every line but the last is a segment and the last line
// is the window. Window corners may be given in any order.
//
// Lines with fewer than four numbers are skipped; numbers past the fourth
// are ignored. Numbers are decimal and may use underscores between digits.
// Any token that is not a number rejects the whole input.
//
// Parse never fails: a rejected input yields an Input with no segments and
// no window, and callers treat a missing window as the failure signal. Use
// Decode to learn why an input was rejected.
func Parse(text string) Input {
	in, err := Decode(text)
	if err != nil {
		Logger().Debug("segclip: input rejected", "err", err)
		return Input{}
	}
	return in
}

// Decode interprets text like Parse, but reports why an input is rejected.
// The returned error wraps ErrEmptyInput, ErrTooFewLines or
// ErrMalformedNumber; on error the Input is empty.
func Decode(text string) (Input, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Input{}, ErrEmptyInput
	}

	l := detectLayout(lines)
	segLines, winLine, err := l.split(lines)
	if err != nil {
		return Input{}, err
	}
	Logger().Debug("segclip: layout detected",
		"layout", l.kind, "segment_lines", len(segLines), "window_line", winLine != nil)

	var in Input
	for _, line := range segLines {
		s, err := parseSegment(line)
		if errors.Is(err, errTooFewValues) {
			Logger().Debug("segclip: segment line skipped", "line", line.num)
			continue
		}
		if err != nil {
			return Input{}, err
		}
		in.Segments = append(in.Segments, s)
	}

	if winLine != nil {
		w, err := parseWindow(*winLine)
		switch {
		case err == nil:
			in.Window, in.HasWindow = w, true
		case errors.Is(err, errTooFewValues):
			Logger().Debug("segclip: window line ignored", "line", winLine.num)
		default:
			return Input{}, err
		}
	}
	return in, nil
}

// splitLines returns the non-blank lines of text, trimmed. Lines end at
// "\r\n" or at any single line-break character: "\n", "\r", "\v", "\f",
// the separators U+001C to U+001E, NEL, U+2028 and U+2029.
func splitLines(text string) []dataLine {
	var lines []dataLine
	num, start := 1, 0
	add := func(raw string) {
		if s := strings.TrimFunc(raw, isSpace); s != "" {
			lines = append(lines, dataLine{num: num, text: s})
		}
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		add(text[start:i])
		if r == '\r' && strings.HasPrefix(text[i+size:], "\n") {
			size++
		}
		i += size
		start = i
		num++
	}
	add(text[start:])
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// isSpace separates tokens. Besides Unicode white space it includes the
// information separators U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= '\x1c' && r <= '\x1f'
}

// parseQuad reads every number on the line and returns the first four.
// A non-numeric token is fatal; fewer than four numbers is not.
func parseQuad(line dataLine) ([4]float64, error) {
	var v [4]float64
	n := 0
	for _, tok := range strings.FieldsFunc(line.text, isSpace) {
		f, ok := parseNumber(tok)
		if !ok {
			return v, fmt.Errorf("line %d: %q: %w", line.num, tok, ErrMalformedNumber)
		}
		if n < len(v) {
			v[n] = f
		}
		n++
	}
	if n < len(v) {
		return v, errTooFewValues
	}
	return v, nil
}

// parseNumber reads a decimal floating-point token. Single underscores
// between digits are allowed ("1_000"); hexadecimal floats are not.
// Magnitudes beyond float64 become ±Inf.
func parseNumber(tok string) (float64, bool) {
	if hasHexPrefix(tok) {
		return 0, false
	}
	tok, ok := stripDigitSeparators(tok)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func hasHexPrefix(tok string) bool {
	if tok != "" && (tok[0] == '+' || tok[0] == '-') {
		tok = tok[1:]
	}
	return len(tok) >= 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X')
}

// stripDigitSeparators removes underscores that sit between two digits.
// Any other underscore makes the token invalid.
func stripDigitSeparators(tok string) (string, bool) {
	if !strings.Contains(tok, "_") {
		return tok, true
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != '_' {
			continue
		}
		if i == 0 || i == len(tok)-1 || !isDigit(tok[i-1]) || !isDigit(tok[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(tok, "_", ""), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func parseSegment(line dataLine) (Segment, error) {
	v, err := parseQuad(line)
	if err != nil {
		return Segment{}, err
	}
	return Seg(v[0], v[1], v[2], v[3]), nil
}

func parseWindow(line dataLine) (ClipWindow, error) {
	v, err := parseQuad(line)
	if err != nil {
		return ClipWindow{}, err
	}
	return NewClipWindow(v[0], v[1], v[2], v[3]), nil
}
