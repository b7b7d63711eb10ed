// Package source acquires generation input: pasted text, files,
// directories, URLs, or stdin. Pasted text additionally gets the balanced
// JSON value carved out of surrounding noise with jstext.EnclosingValue.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/qtwr/typewright/buffer"
	"github.com/qtwr/typewright/jstext"
)

// Kind selects where input comes from.
type Kind uint8

const (
	KindText Kind = iota
	KindFile
	KindDir
	KindURL
	KindStdin
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindURL:
		return "url"
	case KindStdin:
		return "stdin"
	default:
		return "text"
	}
}

// Input names one source. Value is the text itself for KindText, a path for
// KindFile/KindDir, the address for KindURL, and unused for KindStdin.
type Input struct {
	Kind  Kind
	Value string
}

// Payload is what the runner consumes: either inline Data for the child's
// stdin, or Paths passed through as --src arguments. Exactly one is set.
type Payload struct {
	Data  []byte
	Paths []string
}

const (
	fetchTimeout  = 30 * time.Second
	maxFetchBytes = 32 << 20 // a schema body larger than 32 MiB is a mistake
)

// Load resolves an Input to a Payload. stdin is read from r so callers (and
// tests) control the stream.
func Load(ctx context.Context, in Input, r io.Reader) (Payload, error) {
	switch in.Kind {
	case KindText:
		if strings.TrimSpace(in.Value) == "" {
			return Payload{}, fmt.Errorf("no input text")
		}
		return Payload{Data: []byte(Carve(in.Value))}, nil

	case KindFile:
		info, err := os.Stat(in.Value)
		if err != nil {
			return Payload{}, fmt.Errorf("input file: %s", err)
		}
		if info.IsDir() {
			return Payload{}, fmt.Errorf("%s is a directory; use the directory source kind", in.Value)
		}
		return Payload{Paths: []string{in.Value}}, nil

	case KindDir:
		info, err := os.Stat(in.Value)
		if err != nil {
			return Payload{}, fmt.Errorf("input directory: %s", err)
		}
		if !info.IsDir() {
			return Payload{}, fmt.Errorf("%s is not a directory", in.Value)
		}
		return Payload{Paths: []string{in.Value}}, nil

	case KindURL:
		data, err := fetch(ctx, in.Value)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Data: data}, nil

	case KindStdin:
		if r == nil {
			return Payload{}, fmt.Errorf("no stdin available")
		}
		data, err := io.ReadAll(io.LimitReader(r, maxFetchBytes))
		if err != nil {
			return Payload{}, fmt.Errorf("read stdin: %s", err)
		}
		if len(data) == 0 {
			return Payload{}, fmt.Errorf("stdin was empty")
		}
		return Payload{Data: data}, nil

	default:
		return Payload{}, fmt.Errorf("unknown source kind %d", in.Kind)
	}
}

// Carve trims text down to the balanced object or array value that ends at
// its last closing bracket, so a paste like "result: {...};" still yields
// JSON. When no balanced value is found the text is returned unchanged —
// extraction failure means "no JSON here", never a hard error.
func Carve(text string) string {
	b := buffer.New(text)

	// Walk back over trailing noise to the last '}' or ']'.
	end := b.Len()
	for end > 0 {
		r, _ := b.At(end - 1)
		if r == '}' || r == ']' {
			break
		}
		end--
	}
	if end == 0 {
		return text
	}

	span, err := jstext.EnclosingValue(b, end)
	if err != nil {
		return text
	}
	return b.Slice(span.Start, span.End)
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %s", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %s", url, err)
	}
	return data, nil
}
