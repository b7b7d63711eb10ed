package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCarve(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object unchanged",
			text: `{"a": [1,2]}`,
			want: `{"a": [1,2]}`,
		},
		{
			name: "surrounding assignment stripped",
			text: `const data = {"a": 1};`,
			want: `{"a": 1}`,
		},
		{
			name: "trailing prose after array",
			text: `[1, 2, 3] // sample`,
			want: `[1, 2, 3]`,
		},
		{
			name: "no brackets at all",
			text: "plain words",
			want: "plain words",
		},
		{
			name: "unbalanced closer falls through",
			text: "]abc",
			want: "]abc",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Carve(tc.text); got != tc.want {
				t.Fatalf("Carve(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestLoad_Text(t *testing.T) {
	p, err := Load(context.Background(), Input{Kind: KindText, Value: `x = {"a": 1};`}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := string(p.Data); got != `{"a": 1}` {
		t.Fatalf("Data = %q", got)
	}
	if len(p.Paths) != 0 {
		t.Fatalf("Paths = %v, want none", p.Paths)
	}

	if _, err := Load(context.Background(), Input{Kind: KindText, Value: "  \n "}, nil); err == nil {
		t.Fatal("blank text must fail")
	}
}

func TestLoad_FileAndDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.json")
	if err := os.WriteFile(file, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(context.Background(), Input{Kind: KindFile, Value: file}, nil)
	if err != nil {
		t.Fatalf("Load file: %v", err)
	}
	if len(p.Paths) != 1 || p.Paths[0] != file {
		t.Fatalf("Paths = %v", p.Paths)
	}

	p, err = Load(context.Background(), Input{Kind: KindDir, Value: dir}, nil)
	if err != nil {
		t.Fatalf("Load dir: %v", err)
	}
	if len(p.Paths) != 1 || p.Paths[0] != dir {
		t.Fatalf("Paths = %v", p.Paths)
	}

	// Kind mismatches are user errors with specific messages.
	if _, err := Load(context.Background(), Input{Kind: KindFile, Value: dir}, nil); err == nil {
		t.Fatal("directory as file must fail")
	}
	if _, err := Load(context.Background(), Input{Kind: KindDir, Value: file}, nil); err == nil {
		t.Fatal("file as directory must fail")
	}
	if _, err := Load(context.Background(), Input{Kind: KindFile, Value: filepath.Join(dir, "missing.json")}, nil); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestLoad_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	p, err := Load(context.Background(), Input{Kind: KindURL, Value: srv.URL}, nil)
	if err != nil {
		t.Fatalf("Load url: %v", err)
	}
	if got := string(p.Data); got != `{"ok": true}` {
		t.Fatalf("Data = %q", got)
	}

	srv404 := httptest.NewServer(http.NotFoundHandler())
	defer srv404.Close()
	if _, err := Load(context.Background(), Input{Kind: KindURL, Value: srv404.URL}, nil); err == nil {
		t.Fatal("404 must fail")
	}
}

func TestLoad_Stdin(t *testing.T) {
	p, err := Load(context.Background(), Input{Kind: KindStdin}, strings.NewReader(`{"a":1}`))
	if err != nil {
		t.Fatalf("Load stdin: %v", err)
	}
	if got := string(p.Data); got != `{"a":1}` {
		t.Fatalf("Data = %q", got)
	}

	if _, err := Load(context.Background(), Input{Kind: KindStdin}, strings.NewReader("")); err == nil {
		t.Fatal("empty stdin must fail")
	}
	if _, err := Load(context.Background(), Input{Kind: KindStdin}, nil); err == nil {
		t.Fatal("nil stdin must fail")
	}
}
