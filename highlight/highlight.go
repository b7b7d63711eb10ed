// Package highlight turns jstext token streams into styled terminal output
// for the result viewer. Spans are per-line, in rune columns, half-open
// [StartCol, EndCol).
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/qtwr/typewright/buffer"
	"github.com/qtwr/typewright/jstext"
)

// Span styles the rune columns [StartCol, EndCol) of a single line.
type Span struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

// Style controls token rendering.
type Style struct {
	Text    lipgloss.Style
	Comment lipgloss.Style
	String  lipgloss.Style
	Regex   lipgloss.Style
	Keyword lipgloss.Style
	Number  lipgloss.Style
	Punct   lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:    lipgloss.NewStyle(),
		Comment: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		String:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Regex:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
		Keyword: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Number:  lipgloss.NewStyle().Foreground(lipgloss.Color("173")),
		Punct:   lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}
}

// keywords covers the languages quicktype usually emits for terminal review
// (TypeScript/JavaScript plus the Go/Rust-ish basics).
var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "default": true, "delete": true, "else": true,
	"enum": true, "export": true, "extends": true, "false": true, "for": true,
	"from": true, "func": true, "function": true, "if": true,
	"implements": true, "import": true, "in": true, "interface": true,
	"let": true, "map": true, "new": true, "null": true, "of": true,
	"package": true, "private": true, "public": true, "readonly": true,
	"return": true, "static": true, "string": true, "struct": true,
	"switch": true, "this": true, "true": true, "type": true, "typeof": true,
	"undefined": true, "var": true, "void": true, "while": true,
}

// Highlighter computes highlight spans for JavaScript/TypeScript-like text.
type Highlighter struct {
	style Style
}

func New(style Style) *Highlighter {
	return &Highlighter{style: style}
}

// Lines tokenizes the whole text and returns one span slice per line.
// Unstyled gaps carry no span; tokens spanning multiple lines (template
// strings, block comments) produce one span per covered line.
func (h *Highlighter) Lines(text string) [][]Span {
	b := buffer.New(text)
	out := make([][]Span, b.LineCount())

	for _, tok := range jstext.Tokenize(b, 0, b.Len()) {
		style, ok := h.tokenStyle(b, tok)
		if !ok {
			continue
		}

		start := b.PosFromOffset(tok.Start)
		end := b.PosFromOffset(tok.End)
		for row := start.Row; row <= end.Row && row < len(out); row++ {
			sc := 0
			if row == start.Row {
				sc = start.Col
			}
			ec := b.LineEnd(row) - b.LineStart(row)
			if row == end.Row {
				ec = end.Col
			}
			if sc >= ec {
				continue
			}
			out[row] = append(out[row], Span{StartCol: sc, EndCol: ec, Style: style})
		}
	}
	return out
}

func (h *Highlighter) tokenStyle(b *buffer.Buffer, tok jstext.Token) (lipgloss.Style, bool) {
	switch tok.Kind {
	case jstext.KindLineComment, jstext.KindBlockComment, jstext.KindShebang:
		return h.style.Comment, true
	case jstext.KindString:
		return h.style.String, true
	case jstext.KindRegex:
		// Regex bodies render string-like so stray slashes and brackets
		// inside them read as one opaque token.
		return h.style.Regex, true
	case jstext.KindNumber:
		return h.style.Number, true
	case jstext.KindWord:
		if keywords[b.Slice(tok.Start, tok.End)] {
			return h.style.Keyword, true
		}
		return lipgloss.Style{}, false
	case jstext.KindBraceOpen, jstext.KindBraceClose,
		jstext.KindBracketOpen, jstext.KindBracketClose,
		jstext.KindParenOpen, jstext.KindParenClose:
		return h.style.Punct, true
	default:
		return lipgloss.Style{}, false
	}
}

// Render returns text with every span styled, line by line. Gaps between
// spans render with the base Text style.
func (h *Highlighter) Render(text string) string {
	lines := strings.Split(text, "\n")
	spans := h.Lines(text)

	var sb strings.Builder
	for row, line := range lines {
		if row > 0 {
			sb.WriteByte('\n')
		}
		var rowSpans []Span
		if row < len(spans) {
			rowSpans = spans[row]
		}
		sb.WriteString(h.renderLine(line, rowSpans))
	}
	return sb.String()
}

func (h *Highlighter) renderLine(line string, spans []Span) string {
	if len(spans) == 0 {
		return h.style.Text.Render(line)
	}

	runes := []rune(line)
	var sb strings.Builder
	col := 0
	for _, s := range spans {
		sc := clampInt(s.StartCol, 0, len(runes))
		ec := clampInt(s.EndCol, sc, len(runes))
		if sc > col {
			sb.WriteString(h.style.Text.Render(string(runes[col:sc])))
		}
		if ec > sc {
			sb.WriteString(s.Style.Render(string(runes[sc:ec])))
		}
		if ec > col {
			col = ec
		}
	}
	if col < len(runes) {
		sb.WriteString(h.style.Text.Render(string(runes[col:])))
	}
	return sb.String()
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
