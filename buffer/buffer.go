package buffer

import (
	"sort"
	"unicode/utf8"
)

// Buffer is the pure document state: text plus a line index.
//
// Newlines count as a single rune ('\n'); a '\r' before '\n' is preserved in
// the text and belongs to the line it appears on.
type Buffer struct {
	runes []rune

	// lineStarts[row] is the rune offset of the first rune of row.
	// lineStarts[0] is always 0, even for the empty document.
	lineStarts []int
}

func New(text string) *Buffer {
	runes := []rune(text)
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Buffer{runes: runes, lineStarts: starts}
}

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.runes) }

// At returns the rune at offset off, or (0, false) when off is out of bounds.
func (b *Buffer) At(off int) (rune, bool) {
	if off < 0 || off >= len(b.runes) {
		return 0, false
	}
	return b.runes[off], true
}

// Slice returns the text covered by [start, end), clamped to the document.
func (b *Buffer) Slice(start, end int) string {
	start = clampInt(start, 0, len(b.runes))
	end = clampInt(end, start, len(b.runes))
	return string(b.runes[start:end])
}

func (b *Buffer) Text() string { return string(b.runes) }

// HasPrefix reports whether the runes starting at off spell prefix.
func (b *Buffer) HasPrefix(off int, prefix string) bool {
	for _, want := range prefix {
		got, ok := b.At(off)
		if !ok || got != want {
			return false
		}
		off++
	}
	return true
}

func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// LineStart returns the rune offset where row begins. Rows are clamped.
func (b *Buffer) LineStart(row int) int {
	row = clampInt(row, 0, len(b.lineStarts)-1)
	return b.lineStarts[row]
}

// LineEnd returns the rune offset one past the last content rune of row,
// excluding the trailing '\n'.
func (b *Buffer) LineEnd(row int) int {
	row = clampInt(row, 0, len(b.lineStarts)-1)
	if row+1 < len(b.lineStarts) {
		return b.lineStarts[row+1] - 1
	}
	return len(b.runes)
}

// Line returns the text of row without its trailing newline.
func (b *Buffer) Line(row int) string {
	return b.Slice(b.LineStart(row), b.LineEnd(row))
}

// PosFromOffset converts a rune offset to (row, col). Offsets are clamped
// into the document.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = clampInt(off, 0, len(b.runes))
	row := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > off
	}) - 1
	return Pos{Row: row, Col: off - b.lineStarts[row]}
}

// OffsetFromPos converts (row, col) to a rune offset. Both coordinates are
// clamped into the document.
func (b *Buffer) OffsetFromPos(p Pos) int {
	row := clampInt(p.Row, 0, len(b.lineStarts)-1)
	start := b.lineStarts[row]
	return start + clampInt(p.Col, 0, b.LineEnd(row)-start)
}

// RuneOffsetFromByte converts a byte offset in Text() to a rune offset,
// clamping into the document. Offsets inside a multi-byte rune round down.
func (b *Buffer) RuneOffsetFromByte(byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	bytes := 0
	for i, r := range b.runes {
		next := bytes + utf8.RuneLen(r)
		if byteOff < next {
			return i
		}
		bytes = next
	}
	return len(b.runes)
}

// ByteOffsetFromRune converts a rune offset to a byte offset in Text().
func (b *Buffer) ByteOffsetFromRune(runeOff int) int {
	runeOff = clampInt(runeOff, 0, len(b.runes))
	bytes := 0
	for i := 0; i < runeOff; i++ {
		bytes += utf8.RuneLen(b.runes[i])
	}
	return bytes
}

// IndexRune returns the offset of the first occurrence of r at or after
// from, or -1 when r does not occur before the document end.
func (b *Buffer) IndexRune(r rune, from int) int {
	from = clampInt(from, 0, len(b.runes))
	for i := from; i < len(b.runes); i++ {
		if b.runes[i] == r {
			return i
		}
	}
	return -1
}
