package jstext

import (
	"unicode"

	"github.com/qtwr/typewright/buffer"
)

// SlashKind classifies a single '/' rune.
type SlashKind uint8

const (
	// Division means the slash is an operator (division, /=) or otherwise
	// does not open a regex literal.
	Division SlashKind = iota
	// RegexLiteral means the slash opens a regular-expression literal.
	RegexLiteral
)

// Classification is the result of ClassifySlash.
//
// For RegexLiteral, Start is the offset of the opening slash and End points
// one past the closing slash. When no closing slash exists within the scan
// bound, End is clamped to the bound and Terminated is false; the caller is
// expected to re-classify once more text is in range.
type Classification struct {
	Kind       SlashKind
	Start, End int
	Terminated bool
}

// regexOpeners are the single-rune tokens after which a '/' starts a regex
// literal rather than a division.
var regexOpeners = map[rune]bool{
	'=': true, '(': true, '[': true, '{': true,
	',': true, ':': true, ';': true,
	'|': true, '&': true, '!': true,
}

// ClassifySlash decides whether the '/' at slashPos opens a regex literal,
// and if so where the literal ends.
//
// The preceding significant token is found by walking backward over
// whitespace and comments (a leading "#!" line counts as a comment).
// scanLimit bounds the forward scan for the closing slash; values outside
// (slashPos, buffer length] are clamped. The call never fails and never
// mutates the buffer: an offset that does not hold '/' classifies as
// Division.
func ClassifySlash(b *buffer.Buffer, slashPos, scanLimit int) Classification {
	if r, ok := b.At(slashPos); !ok || r != '/' {
		return Classification{Kind: Division}
	}
	if scanLimit < 0 || scanLimit > b.Len() {
		scanLimit = b.Len()
	}
	if scanLimit <= slashPos {
		scanLimit = slashPos + 1
	}

	// A slash on the shebang line is comment text, never a regex or an
	// operator worth marking; report Division so callers leave it alone.
	if insideShebang(b, slashPos) {
		return Classification{Kind: Division}
	}

	if !regexPosition(b, slashPos) {
		return Classification{Kind: Division}
	}

	end, terminated := scanRegexEnd(b, slashPos+1, scanLimit)
	return Classification{
		Kind:       RegexLiteral,
		Start:      slashPos,
		End:        end,
		Terminated: terminated,
	}
}

// regexPosition reports whether a '/' at pos sits where a regex literal can
// begin: after one of the opener tokens, after the keyword "return", or with
// no significant token before it at all.
func regexPosition(b *buffer.Buffer, pos int) bool {
	prev := prevSignificant(b, pos)
	if prev < 0 {
		return true
	}
	r, _ := b.At(prev)
	if regexOpeners[r] {
		return true
	}
	return keywordEndingAt(b, prev) == "return"
}

// prevSignificant returns the offset of the last significant rune before
// pos: whitespace, line comments, block comments, and a leading shebang line
// are skipped. Returns -1 when nothing significant precedes pos.
//
// Comment detection here is an approximation: string literals on the same
// line are honored when looking for "//", but pathological nestings (say, a
// "*/" inside a regex literal) can fool the backward walk. See the package
// documentation for the scope of the guarantee.
func prevSignificant(b *buffer.Buffer, pos int) int {
	j := pos - 1
	for j >= 0 {
		r, _ := b.At(j)
		if unicode.IsSpace(r) {
			j--
			continue
		}

		row := b.PosFromOffset(j).Row
		ls := b.LineStart(row)

		// The whole shebang line is a comment.
		if row == 0 && b.HasPrefix(0, "#!") {
			return -1
		}

		// Inside a line comment: resume before its "//".
		if cs, ok := lineCommentStart(b, ls, j); ok && cs <= j {
			j = cs - 1
			continue
		}

		// At the closer of a block comment: resume before its "/*".
		if r == '/' && j >= 1 {
			if prev, _ := b.At(j - 1); prev == '*' {
				open := blockCommentOpen(b, j-1)
				if open < 0 {
					return -1 // unterminated backward; treat as file start
				}
				j = open - 1
				continue
			}
		}

		return j
	}
	return -1
}

// blockCommentOpen scans backward from before the "*/" ending at (pos, pos+1)
// for the matching "/*". Returns -1 when there is none.
func blockCommentOpen(b *buffer.Buffer, pos int) int {
	for k := pos - 2; k >= 0; k-- {
		r, _ := b.At(k)
		if r != '/' {
			continue
		}
		if next, _ := b.At(k + 1); next == '*' {
			return k
		}
	}
	return -1
}

// lineCommentStart finds the offset where a line comment begins on the line
// starting at ls, scanning no further than max. String literals are honored
// so a "//" inside quotes does not count.
func lineCommentStart(b *buffer.Buffer, ls, max int) (int, bool) {
	var quote rune
	for i := ls; i <= max; i++ {
		r, ok := b.At(i)
		if !ok {
			break
		}
		switch {
		case quote != 0:
			if r == '\\' {
				i++
			} else if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '/':
			if next, _ := b.At(i + 1); next == '/' {
				return i, true
			}
		}
	}
	return 0, false
}

// keywordEndingAt returns the identifier whose last rune is at end, or ""
// when the rune at end cannot end an identifier.
func keywordEndingAt(b *buffer.Buffer, end int) string {
	r, ok := b.At(end)
	if !ok || !identRune(r) {
		return ""
	}
	start := end
	for start > 0 {
		prev, _ := b.At(start - 1)
		if !identRune(prev) {
			break
		}
		start--
	}
	return b.Slice(start, end+1)
}

func identRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// insideShebang reports whether pos falls on a leading "#!" line.
func insideShebang(b *buffer.Buffer, pos int) bool {
	if !b.HasPrefix(0, "#!") {
		return false
	}
	return b.PosFromOffset(pos).Row == 0
}

// scanRegexEnd scans the regex body starting just after the opening slash.
// It honors backslash escapes and character classes: inside [...], '/' does
// not terminate the literal, and ']' does not close the class when it is the
// first member (or first after a leading '^').
func scanRegexEnd(b *buffer.Buffer, from, limit int) (end int, terminated bool) {
	inClass := false
	classStart := -1
	for i := from; i < limit; i++ {
		r, _ := b.At(i)
		switch {
		case r == '\\':
			i++ // escape applies inside and outside classes
		case inClass:
			if r == ']' && !classLeader(b, classStart, i) {
				inClass = false
			}
		case r == '[':
			inClass = true
			classStart = i
		case r == '/':
			return i + 1, true
		}
	}
	return limit, false
}

// classLeader reports whether a ']' at pos is in leading position of the
// class opened at classStart, where it is a literal member rather than the
// class terminator.
func classLeader(b *buffer.Buffer, classStart, pos int) bool {
	if pos == classStart+1 {
		return true
	}
	if pos == classStart+2 {
		r, _ := b.At(classStart + 1)
		return r == '^'
	}
	return false
}
