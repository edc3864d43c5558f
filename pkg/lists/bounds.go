package lists

// ToEnd as a Stop value means "through the end of the list".
const ToEnd = -1

// Boundaries scopes a search or transform to the half-open index range
// [Start, Stop). The zero value is the empty range at the head; use
// Everything for the whole list.
type Boundaries struct {
	Start, Stop int
}

// Everything covers the full list regardless of its length.
func Everything() Boundaries { return Boundaries{Start: 0, Stop: ToEnd} }

// Range builds explicit boundaries over [start, stop).
func Range(start, stop int) Boundaries { return Boundaries{Start: start, Stop: stop} }

// resolve checks b against a list of length n and returns the concrete
// range to walk. Stops beyond the end clamp to n; a Start beyond the
// resolved Stop is ErrInvalidRange.
func (b Boundaries) resolve(n int) (int, int, error) {
	start, stop := b.Start, b.Stop
	if stop == ToEnd {
		stop = n
	}
	if start < 0 || stop < 0 || start > stop {
		return 0, 0, ErrInvalidRange
	}
	if stop > n {
		stop = n
	}
	if start > stop {
		return 0, 0, ErrInvalidRange
	}
	return start, stop, nil
}
