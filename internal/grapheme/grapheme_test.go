package grapheme

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "日本", want: 4}, // wide runes are two cells
	}
	for _, tc := range cases {
		if got := Width(tc.text); got != tc.want {
			t.Fatalf("Width(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{text: "hello", width: 10, want: "hello"},
		{text: "hello", width: 5, want: "hello"},
		{text: "hello", width: 4, want: "hel…"},
		{text: "hello", width: 1, want: "…"},
		{text: "hello", width: 0, want: ""},
		{text: "日本語", width: 4, want: "日…"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.text, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 4); got != "ab  " {
		t.Fatalf("Pad = %q", got)
	}
	if got := Pad("abcdef", 4); got != "abc…" {
		t.Fatalf("Pad truncates = %q", got)
	}
	if got := Width(Pad("日本語", 5)); got != 5 {
		t.Fatalf("padded width = %d, want 5", got)
	}
}
