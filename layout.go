package segclip

import (
	"errors"
	"strconv"
)

// layoutKind tells how the lines of an input are assigned to segments and
// the window.
type layoutKind int

const (
	// layoutExplicitCount: the first line is a positive segment count n,
	// followed by n segment lines and the window line.
	layoutExplicitCount layoutKind = iota

	// layoutLastLineWindow: no count; every line but the last is a segment
	// line and the last one is the window line.
	layoutLastLineWindow
)

func (k layoutKind) String() string {
	switch k {
	case layoutExplicitCount:
		return "explicit-count"
	case layoutLastLineWindow:
		return "last-line-window"
	default:
		return "unknown"
	}
}

// layout is the structural decision taken once per input.
type layout struct {
	kind  layoutKind
	count int // segment lines announced by the first line; explicit only
}

// dataLine is a non-blank, trimmed input line with its 1-based position in
// the original text.
type dataLine struct {
	num  int
	text string
}

// detectLayout inspects the first line. The count is a decimal integer
// that may use underscores between digits. A count too large for int is
// clamped and still counts as explicit.
func detectLayout(lines []dataLine) layout {
	if len(lines) == 0 {
		return layout{kind: layoutLastLineWindow}
	}
	first, ok := stripDigitSeparators(lines[0].text)
	if !ok {
		return layout{kind: layoutLastLineWindow}
	}
	n, err := strconv.ParseInt(first, 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return layout{kind: layoutLastLineWindow}
	}
	if n <= 0 {
		return layout{kind: layoutLastLineWindow}
	}
	return layout{kind: layoutExplicitCount, count: int(n)}
}

// split assigns lines to segments and the window. The window line is nil
// when none is left for it.
func (l layout) split(lines []dataLine) (segments []dataLine, window *dataLine, err error) {
	switch l.kind {
	case layoutExplicitCount:
		data := lines[1:]
		if l.count >= len(data) {
			return data, nil, nil
		}
		return data[:l.count], &data[l.count], nil
	default:
		if len(lines) < 2 {
			return nil, nil, ErrTooFewLines
		}
		last := len(lines) - 1
		return lines[:last], &lines[last], nil
	}
}
