package highlight

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// testStyle gives every class a distinct renderable so span boundaries are
// observable without depending on terminal color output.
func plainStyle() Style {
	return Style{
		Text:    lipgloss.NewStyle(),
		Comment: lipgloss.NewStyle(),
		String:  lipgloss.NewStyle(),
		Regex:   lipgloss.NewStyle(),
		Keyword: lipgloss.NewStyle(),
		Number:  lipgloss.NewStyle(),
		Punct:   lipgloss.NewStyle(),
	}
}

func TestLines_SpansPerLine(t *testing.T) {
	h := New(plainStyle())
	text := "const x = 1\n// note\ns = \"hi\""

	spans := h.Lines(text)
	if len(spans) != 3 {
		t.Fatalf("line count = %d, want 3", len(spans))
	}

	// Line 0: "const" keyword at [0,5), "1" number at [10,11).
	if len(spans[0]) != 2 {
		t.Fatalf("line 0 spans = %v, want 2 spans", spans[0])
	}
	if spans[0][0].StartCol != 0 || spans[0][0].EndCol != 5 {
		t.Fatalf("keyword span = %+v, want [0,5)", spans[0][0])
	}
	if spans[0][1].StartCol != 10 || spans[0][1].EndCol != 11 {
		t.Fatalf("number span = %+v, want [10,11)", spans[0][1])
	}

	// Line 1: comment covers the whole line.
	if len(spans[1]) != 1 || spans[1][0].StartCol != 0 || spans[1][0].EndCol != 7 {
		t.Fatalf("comment spans = %v, want one [0,7)", spans[1])
	}

	// Line 2: string at [4,8).
	if len(spans[2]) != 1 || spans[2][0].StartCol != 4 || spans[2][0].EndCol != 8 {
		t.Fatalf("string spans = %v, want one [4,8)", spans[2])
	}
}

func TestLines_MultiLineTokenSplits(t *testing.T) {
	h := New(plainStyle())
	text := "/* a\nb */ x"

	spans := h.Lines(text)
	if len(spans) != 2 {
		t.Fatalf("line count = %d, want 2", len(spans))
	}
	if len(spans[0]) != 1 || spans[0][0].StartCol != 0 || spans[0][0].EndCol != 4 {
		t.Fatalf("line 0 comment spans = %v", spans[0])
	}
	if len(spans[1]) != 1 || spans[1][0].StartCol != 0 || spans[1][0].EndCol != 4 {
		t.Fatalf("line 1 comment spans = %v", spans[1])
	}
}

func TestLines_RegexStyledStringLike(t *testing.T) {
	h := New(plainStyle())
	spans := h.Lines("x = /a[}/]b/;")

	if len(spans) != 1 {
		t.Fatalf("line count = %d", len(spans))
	}
	var found bool
	for _, s := range spans[0] {
		if s.StartCol == 4 && s.EndCol == 12 {
			found = true
		}
	}
	if !found {
		t.Fatalf("no regex span covering [4,12) in %v", spans[0])
	}
}

func TestRender_PreservesText(t *testing.T) {
	// With style-free spans, Render must reproduce the input verbatim.
	h := New(plainStyle())
	text := "const x = /ab/; // done\n{\"k\": [1, 2]}"

	got := h.Render(text)
	if got != text {
		t.Fatalf("Render changed text:\n got %q\nwant %q", got, text)
	}
	if lines := strings.Count(got, "\n"); lines != 1 {
		t.Fatalf("newline count = %d, want 1", lines)
	}
}
