// Package grapheme wraps uniseg for the cell-width math the menu and result
// popup need when sizing and truncating rendered lines.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the monospace cell width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate cuts text to at most width cells on grapheme boundaries,
// appending an ellipsis when anything was removed. Width budgets below the
// ellipsis width return the bare ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(text) <= width {
		return text
	}

	const ellipsis = "…"
	budget := width - uniseg.StringWidth(ellipsis)
	if budget <= 0 {
		return ellipsis
	}

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if used+w > budget {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String() + ellipsis
}

// Pad right-pads text with spaces to exactly width cells, truncating first
// when it is too long.
func Pad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = Truncate(text, width)
	if gap := width - uniseg.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
