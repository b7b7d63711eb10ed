package jstext

import (
	"unicode"

	"github.com/qtwr/typewright/buffer"
)

// TokenKind identifies an atomic syntactic unit produced by Tokenize.
type TokenKind uint8

const (
	KindOther TokenKind = iota
	KindWord
	KindNumber
	KindString
	KindLineComment
	KindBlockComment
	KindShebang
	KindRegex
	KindBraceOpen
	KindBraceClose
	KindBracketOpen
	KindBracketClose
	KindParenOpen
	KindParenClose
)

func (k TokenKind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindLineComment:
		return "line-comment"
	case KindBlockComment:
		return "block-comment"
	case KindShebang:
		return "shebang"
	case KindRegex:
		return "regex"
	case KindBraceOpen:
		return "brace-open"
	case KindBraceClose:
		return "brace-close"
	case KindBracketOpen:
		return "bracket-open"
	case KindBracketClose:
		return "bracket-close"
	case KindParenOpen:
		return "paren-open"
	case KindParenClose:
		return "paren-close"
	default:
		return "other"
	}
}

// Token is a half-open span [Start, End) of rune offsets with a kind.
// Strings, comments, and regex literals are single atomic tokens; brackets
// inside them never surface as bracket tokens.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// IsOpen reports whether the token opens a bracketed group.
func (t Token) IsOpen() bool {
	return t.Kind == KindBraceOpen || t.Kind == KindBracketOpen || t.Kind == KindParenOpen
}

// IsClose reports whether the token closes a bracketed group.
func (t Token) IsClose() bool {
	return t.Kind == KindBraceClose || t.Kind == KindBracketClose || t.Kind == KindParenClose
}

// openerFor maps a closing token kind to its required opener.
func openerFor(k TokenKind) TokenKind {
	switch k {
	case KindBraceClose:
		return KindBraceOpen
	case KindBracketClose:
		return KindBracketOpen
	case KindParenClose:
		return KindParenOpen
	default:
		return KindOther
	}
}

// Tokenize scans [from, to) into a flat token sequence. Whitespace separates
// tokens and is not represented. Regex literals are recognized with
// ClassifySlash, so the token stream and the classifier always agree on
// which slashes open regexes.
func Tokenize(b *buffer.Buffer, from, to int) []Token {
	from = max(from, 0)
	if to > b.Len() || to < 0 {
		to = b.Len()
	}

	var toks []Token
	i := from
	for i < to {
		r, _ := b.At(i)

		switch {
		case unicode.IsSpace(r):
			i++

		case i == 0 && b.HasPrefix(0, "#!"):
			end := b.IndexRune('\n', 0)
			if end < 0 || end > to {
				end = to
			}
			toks = append(toks, Token{Kind: KindShebang, Start: 0, End: end})
			i = end

		case r == '/' && b.HasPrefix(i, "//"):
			end := b.IndexRune('\n', i)
			if end < 0 || end > to {
				end = to
			}
			toks = append(toks, Token{Kind: KindLineComment, Start: i, End: end})
			i = end

		case r == '/' && b.HasPrefix(i, "/*"):
			end := scanBlockComment(b, i+2, to)
			toks = append(toks, Token{Kind: KindBlockComment, Start: i, End: end})
			i = end

		case r == '/':
			c := ClassifySlash(b, i, to)
			if c.Kind == RegexLiteral {
				toks = append(toks, Token{Kind: KindRegex, Start: c.Start, End: c.End})
				i = c.End
				break
			}
			toks = append(toks, Token{Kind: KindOther, Start: i, End: i + 1})
			i++

		case r == '\'' || r == '"' || r == '`':
			end := scanString(b, i, to, r)
			toks = append(toks, Token{Kind: KindString, Start: i, End: end})
			i = end

		case r == '{':
			toks = append(toks, Token{Kind: KindBraceOpen, Start: i, End: i + 1})
			i++
		case r == '}':
			toks = append(toks, Token{Kind: KindBraceClose, Start: i, End: i + 1})
			i++
		case r == '[':
			toks = append(toks, Token{Kind: KindBracketOpen, Start: i, End: i + 1})
			i++
		case r == ']':
			toks = append(toks, Token{Kind: KindBracketClose, Start: i, End: i + 1})
			i++
		case r == '(':
			toks = append(toks, Token{Kind: KindParenOpen, Start: i, End: i + 1})
			i++
		case r == ')':
			toks = append(toks, Token{Kind: KindParenClose, Start: i, End: i + 1})
			i++

		case unicode.IsDigit(r):
			end := i + 1
			for end < to {
				nr, _ := b.At(end)
				if !identRune(nr) && nr != '.' {
					break
				}
				end++
			}
			toks = append(toks, Token{Kind: KindNumber, Start: i, End: end})
			i = end

		case identRune(r):
			end := i + 1
			for end < to {
				nr, _ := b.At(end)
				if !identRune(nr) {
					break
				}
				end++
			}
			toks = append(toks, Token{Kind: KindWord, Start: i, End: end})
			i = end

		default:
			toks = append(toks, Token{Kind: KindOther, Start: i, End: i + 1})
			i++
		}
	}
	return toks
}

// scanString returns the offset one past the closing quote, or the scan
// bound when the string is unterminated. An unescaped newline also ends a
// single- or double-quoted string (template literals span lines).
func scanString(b *buffer.Buffer, open, to int, quote rune) int {
	for i := open + 1; i < to; i++ {
		r, _ := b.At(i)
		switch {
		case r == '\\':
			i++
		case r == quote:
			return i + 1
		case r == '\n' && quote != '`':
			return i
		}
	}
	return to
}

// scanBlockComment returns the offset one past the closing "*/", or the
// scan bound when the comment is unterminated.
func scanBlockComment(b *buffer.Buffer, from, to int) int {
	for i := from; i < to; i++ {
		if r, _ := b.At(i); r != '*' {
			continue
		}
		if next, _ := b.At(i + 1); next == '/' && i+1 < to {
			return i + 2
		}
	}
	return to
}
