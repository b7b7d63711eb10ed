package jstext

import (
	"errors"

	"github.com/qtwr/typewright/buffer"
)

// ErrUnbalanced is returned when no matching opener exists for the closer a
// scan starts from. Callers treat it as "no extractable value here", not as
// a fatal condition.
var ErrUnbalanced = errors.New("unbalanced expression")

// EnclosingValue locates the balanced object or array literal that ends just
// before end: the rune at end-1 (ignoring trailing whitespace) must be a
// closing '}' or ']'.
//
// The scan tokenizes [0, end) and walks the token sequence backward with a
// stack, so strings, comments, regex literals, and nested brackets of every
// kind are skipped as atomic units. On success, the returned span covers
// the opener through end, and its text is a syntactically balanced
// expression suitable for a JSON parser.
func EnclosingValue(b *buffer.Buffer, end int) (buffer.Span, error) {
	if end > b.Len() || end < 0 {
		end = b.Len()
	}

	toks := Tokenize(b, 0, end)
	if len(toks) == 0 {
		return buffer.Span{}, ErrUnbalanced
	}

	last := toks[len(toks)-1]
	if last.Kind != KindBraceClose && last.Kind != KindBracketClose {
		return buffer.Span{}, ErrUnbalanced
	}

	// Reverse stack walk: every closer pushes the opener kind it needs;
	// an opener must match the top of the stack. The opener that empties
	// the stack is the match for the closer we started from.
	var need []TokenKind
	for i := len(toks) - 1; i >= 0; i-- {
		t := toks[i]
		switch {
		case t.IsClose():
			need = append(need, openerFor(t.Kind))
		case t.IsOpen():
			if len(need) == 0 || need[len(need)-1] != t.Kind {
				return buffer.Span{}, ErrUnbalanced
			}
			need = need[:len(need)-1]
			if len(need) == 0 {
				return buffer.Span{Start: t.Start, End: last.End}, nil
			}
		}
	}
	return buffer.Span{}, ErrUnbalanced
}
