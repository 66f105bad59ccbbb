package segclip

import "errors"

// Errors reported by Decode.
var (
	// ErrEmptyInput is returned when the input has no non-blank lines.
	ErrEmptyInput = errors.New("segclip: empty input")

	// ErrTooFewLines is returned when the input has no segment count and
	// fewer than two lines, so it cannot hold both a segment and a window.
	ErrTooFewLines = errors.New("segclip: too few lines without a segment count")

	// ErrMalformedNumber is returned when a data line holds a token that is
	// not a number. A single such token rejects the whole input.
	ErrMalformedNumber = errors.New("segclip: malformed number")
)

// errTooFewValues marks a data line with fewer than four numbers.
// Such lines are skipped; it never escapes Decode.
var errTooFewValues = errors.New("segclip: fewer than four values")
