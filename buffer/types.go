package buffer

// Pos points into the logical document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Span is a half-open range of rune offsets: [Start, End).
// Start <= End.
type Span struct {
	Start int
	End   int
}

func (s Span) IsEmpty() bool { return s.Start >= s.End }

func (s Span) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether the rune offset off falls inside the span.
func (s Span) Contains(off int) bool {
	return off >= s.Start && off < s.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
