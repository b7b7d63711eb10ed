package jstext

import (
	"testing"

	"github.com/qtwr/typewright/buffer"
)

func classifyAll(t *testing.T, text string, pos int) Classification {
	t.Helper()
	b := buffer.New(text)
	return ClassifySlash(b, pos, b.Len())
}

func TestClassifySlash_BasicRegexAndDivision(t *testing.T) {
	cases := []struct {
		name string
		text string
		pos  int
		want Classification
	}{
		{
			name: "regex after assignment",
			text: "x = /abc/;",
			pos:  4,
			want: Classification{Kind: RegexLiteral, Start: 4, End: 9, Terminated: true},
		},
		{
			name: "division after identifier",
			text: "x = a/b;",
			pos:  5,
			want: Classification{Kind: Division},
		},
		{
			name: "escaped slash does not terminate",
			text: `x = /a\/b/;`,
			pos:  4,
			want: Classification{Kind: RegexLiteral, Start: 4, End: 10, Terminated: true},
		},
		{
			name: "regex at start of buffer",
			text: "/abc/.test(s)",
			pos:  0,
			want: Classification{Kind: RegexLiteral, Start: 0, End: 5, Terminated: true},
		},
		{
			name: "division after closing paren",
			text: "(a + b)/2",
			pos:  7,
			want: Classification{Kind: Division},
		},
		{
			name: "division after number",
			text: "x = 10/5;",
			pos:  6,
			want: Classification{Kind: Division},
		},
		{
			name: "not a slash",
			text: "abc",
			pos:  1,
			want: Classification{Kind: Division},
		},
		{
			name: "offset out of range",
			text: "a/b",
			pos:  99,
			want: Classification{Kind: Division},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyAll(t, tc.text, tc.pos); got != tc.want {
				t.Fatalf("ClassifySlash(%q, %d) = %+v, want %+v", tc.text, tc.pos, got, tc.want)
			}
		})
	}
}

func TestClassifySlash_OpenerTokens(t *testing.T) {
	// Every opener token must put the following slash in regex position.
	for _, opener := range []string{"=", "(", "[", "{", ",", ":", ";", "|", "&", "!"} {
		text := "a " + opener + " /x/"
		pos := len([]rune(text)) - 3
		got := classifyAll(t, text, pos)
		if got.Kind != RegexLiteral {
			t.Fatalf("after %q: got %+v, want RegexLiteral", opener, got)
		}
		if got.End != pos+3 {
			t.Fatalf("after %q: End = %d, want %d", opener, got.End, pos+3)
		}
	}
}

func TestClassifySlash_ReturnKeyword(t *testing.T) {
	got := classifyAll(t, "return /ab/;", 7)
	want := Classification{Kind: RegexLiteral, Start: 7, End: 11, Terminated: true}
	if got != want {
		t.Fatalf("after return: got %+v, want %+v", got, want)
	}

	// Identifiers merely ending in "return" do not count.
	if got := classifyAll(t, "preturn /ab/;", 8); got.Kind != Division {
		t.Fatalf("after preturn: got %+v, want Division", got)
	}
}

func TestClassifySlash_SkipsComments(t *testing.T) {
	cases := []struct {
		name string
		text string
		pos  int
		kind SlashKind
	}{
		{
			name: "block comment between opener and slash",
			text: "x = /* note */ /ab/;",
			pos:  15,
			kind: RegexLiteral,
		},
		{
			name: "block comment between identifier and slash",
			text: "a /* note */ /b",
			pos:  13,
			kind: Division,
		},
		{
			name: "line comment on previous line after opener",
			text: "x = // trailing note\n/ab/;",
			pos:  21,
			kind: RegexLiteral,
		},
		{
			name: "line comment on previous line after identifier",
			text: "a // trailing note\n/b",
			pos:  19,
			kind: Division,
		},
		{
			name: "double-slash inside string is not a comment",
			text: "a = \"//\"; b/c",
			pos:  11,
			kind: Division,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyAll(t, tc.text, tc.pos)
			if got.Kind != tc.kind {
				t.Fatalf("ClassifySlash(%q, %d) = %+v, want kind %v", tc.text, tc.pos, got, tc.kind)
			}
		})
	}
}

func TestClassifySlash_Shebang(t *testing.T) {
	text := "#!/usr/bin/env node\nconst re = /ab/;"

	// Slashes inside the shebang line are comment text.
	if got := classifyAll(t, text, 2); got.Kind != Division {
		t.Fatalf("shebang slash: got %+v, want Division", got)
	}

	// A regex below classifies from its own context, not the shebang.
	b := buffer.New(text)
	pos := b.IndexRune('/', 20)
	got := ClassifySlash(b, pos, b.Len())
	if got.Kind != RegexLiteral || !got.Terminated {
		t.Fatalf("regex after shebang: got %+v", got)
	}
}

func TestClassifySlash_CharacterClass(t *testing.T) {
	cases := []struct {
		name string
		text string
		pos  int
		end  int
	}{
		{
			// Slash inside a class does not terminate the literal.
			name: "slash inside class",
			text: "x = /[/]/;",
			pos:  4,
			end:  9,
		},
		{
			// ']' first in class is a literal member.
			name: "leading close bracket",
			text: "x = /[]]/;",
			pos:  4,
			end:  9,
		},
		{
			// ']' after '[^' is a literal member.
			name: "leading close bracket after negation",
			text: "x = /[^]]/;",
			pos:  4,
			end:  10,
		},
		{
			name: "escaped close bracket inside class",
			text: `x = /[a\]/]/;`,
			pos:  4,
			end:  12,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyAll(t, tc.text, tc.pos)
			want := Classification{Kind: RegexLiteral, Start: tc.pos, End: tc.end, Terminated: true}
			if got != want {
				t.Fatalf("ClassifySlash(%q, %d) = %+v, want %+v", tc.text, tc.pos, got, want)
			}
		})
	}
}

func TestClassifySlash_UnterminatedClampsToScanLimit(t *testing.T) {
	b := buffer.New("x = /abc")
	got := ClassifySlash(b, 4, b.Len())
	want := Classification{Kind: RegexLiteral, Start: 4, End: b.Len(), Terminated: false}
	if got != want {
		t.Fatalf("unterminated: got %+v, want %+v", got, want)
	}

	// An explicit scan limit clamps the reported end, even when the real
	// terminator lies beyond it.
	b = buffer.New("x = /abcdef/;")
	got = ClassifySlash(b, 4, 8)
	want = Classification{Kind: RegexLiteral, Start: 4, End: 8, Terminated: false}
	if got != want {
		t.Fatalf("limited scan: got %+v, want %+v", got, want)
	}
}

func TestClassifySlash_Idempotent(t *testing.T) {
	b := buffer.New("x = /a[/]b/; y = c/d;")
	first := ClassifySlash(b, 4, b.Len())
	second := ClassifySlash(b, 4, b.Len())
	if first != second {
		t.Fatalf("not idempotent: %+v then %+v", first, second)
	}
}
