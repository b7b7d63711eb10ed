package jstext

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/qtwr/typewright/buffer"
)

func TestEnclosingValue_WholeObject(t *testing.T) {
	text := `{"a": [1,2]}`
	b := buffer.New(text)

	span, err := EnclosingValue(b, b.Len())
	if err != nil {
		t.Fatalf("EnclosingValue: %v", err)
	}
	if span != (buffer.Span{Start: 0, End: 12}) {
		t.Fatalf("span = %+v, want {0 12}", span)
	}
	if !json.Valid([]byte(b.Slice(span.Start, span.End))) {
		t.Fatalf("carved text is not valid JSON: %q", b.Slice(span.Start, span.End))
	}
}

func TestEnclosingValue_NestedAndTrailing(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		end   int
		start int
	}{
		{
			// Inner array ending before the cursor.
			name:  "inner array",
			text:  `{"a": [1,2]}`,
			end:   11,
			start: 6,
		},
		{
			// Value embedded in surrounding code.
			name:  "object in assignment",
			text:  `const x = {"k": "v"};`,
			end:   20,
			start: 10,
		},
		{
			// Brackets inside strings and comments are atomic.
			name:  "brackets hidden in atoms",
			text:  `{"s": "}]", /* ] */ "n": 1}`,
			end:   27,
			start: 0,
		},
		{
			// Parens are skipped as balanced units during the walk.
			name:  "parens between values",
			text:  `f(a, [1, (2), 3])`,
			end:   16,
			start: 5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buffer.New(tc.text)
			span, err := EnclosingValue(b, tc.end)
			if err != nil {
				t.Fatalf("EnclosingValue(%q, %d): %v", tc.text, tc.end, err)
			}
			if span.Start != tc.start || span.End != tc.end {
				t.Fatalf("span = %+v, want {%d %d}", span, tc.start, tc.end)
			}
		})
	}
}

func TestEnclosingValue_Unbalanced(t *testing.T) {
	cases := []struct {
		name string
		text string
		end  int
	}{
		{name: "closer without opener", text: "]abc", end: 1},
		{name: "mismatched kinds", text: "(a]", end: 3},
		{name: "cursor not after closer", text: "{a} b", end: 5},
		{name: "empty buffer", text: "", end: 0},
		{name: "closers without openers", text: "}}", end: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := buffer.New(tc.text)
			_, err := EnclosingValue(b, tc.end)
			if !errors.Is(err, ErrUnbalanced) {
				t.Fatalf("EnclosingValue(%q, %d) err = %v, want ErrUnbalanced", tc.text, tc.end, err)
			}
		})
	}
}

func TestEnclosingValue_EndBeyondBufferClamps(t *testing.T) {
	b := buffer.New(`[1, 2]`)
	span, err := EnclosingValue(b, 999)
	if err != nil {
		t.Fatalf("EnclosingValue: %v", err)
	}
	if span != (buffer.Span{Start: 0, End: 6}) {
		t.Fatalf("span = %+v, want {0 6}", span)
	}
}
