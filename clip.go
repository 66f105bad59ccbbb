package segclip

// boundary identifies one of the four half-plane constraints of a window.
type boundary int

// Constraints are evaluated in this order.
const (
	boundaryLeft boundary = iota
	boundaryRight
	boundaryBottom
	boundaryTop
)

// constraint returns the Liang-Barsky coefficients (p, q) of the boundary
// for a segment starting at (x1, y1) with direction (dx, dy). A point at
// parameter t is on the inner side when t*p <= q.
func (b boundary) constraint(x1, y1, dx, dy float64, w ClipWindow) (p, q float64) {
	switch b {
	case boundaryLeft:
		return -dx, x1 - w.XMin
	case boundaryRight:
		return dx, w.XMax - x1
	case boundaryBottom:
		return -dy, y1 - w.YMin
	default:
		return dy, w.YMax - y1
	}
}

// ClipParams narrows the parameter interval [0, 1] of s to the part that
// lies inside the closed window w using the Liang-Barsky algorithm.
//
// It returns the surviving interval [t0, t1] and true, or false if the
// segment misses the window. Comparisons are exact; a segment touching a
// boundary in a single point is visible.
func ClipParams(s Segment, w ClipWindow) (t0, t1 float64, ok bool) {
	x1, y1 := s.P1.X, s.P1.Y
	dx := s.P2.X - x1
	dy := s.P2.Y - y1

	t0, t1 = 0, 1
	for b := boundaryLeft; b <= boundaryTop; b++ {
		p, q := b.constraint(x1, y1, dx, dy, w)

		if p == 0 {
			// Parallel to this boundary: entirely outside or irrelevant.
			if q < 0 {
				return 0, 0, false
			}
			continue
		}

		t := q / p
		if p < 0 {
			// Entering.
			if t > t1 {
				return 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			// Leaving.
			if t < t0 {
				return 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	if t0 > t1 {
		return 0, 0, false
	}
	return t0, t1, true
}

// Clip returns the part of s inside the closed window w.
//
// The result keeps the direction of s, and its endpoints are affine
// combinations of the original endpoints. The boolean is false when the
// segment does not intersect the window. A degenerate segment clips to
// itself when its point lies in the window.
//
// Comparisons are exact and intersection points are rounded, so a clipped
// endpoint may land a few ulps outside w, and clipping the result again
// may move it by the same amount. A segment inside w, and any result whose
// intersection points are exactly representable, comes back unchanged.
func Clip(s Segment, w ClipWindow) (Segment, bool) {
	t0, t1, ok := ClipParams(s, w)
	if !ok {
		return Segment{}, false
	}
	return s.Sub(t0, t1), true
}
