// Package runner assembles quicktype command lines, verifies the external
// tool is installed, and runs it as a one-shot child process with captured
// output.
package runner

import (
	"fmt"
	"sort"
	"time"
)

// DefaultTool is the command used when the config and flags name none.
const DefaultTool = "quicktype"

// Flag is one extra quicktype option. A Flag with an empty Value renders as
// a bare switch ("--just-types"); otherwise the value follows as its own
// argv entry ("--acronym-style", "original").
type Flag struct {
	Name  string
	Value string
}

// Options describes one generation request.
type Options struct {
	// Tool is the quicktype command, possibly with leading arguments
	// ("npx quicktype"). Empty means DefaultTool.
	Tool string

	SrcLang  string // --src-lang; empty lets quicktype infer from input
	Lang     string // --lang; required
	TopLevel string // --top-level type name; empty keeps quicktype's default

	Flags []Flag

	// Timeout bounds the child process. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout matches one-shot interactive use: long enough for npx cold
// starts, short enough to surface a hung server.
const DefaultTimeout = 60 * time.Second

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// Validate checks the request before any process is spawned.
func (o Options) Validate() error {
	if o.Lang == "" {
		return fmt.Errorf("target language is required")
	}
	for _, f := range o.Flags {
		if f.Name == "" {
			return fmt.Errorf("flag with empty name")
		}
	}
	return nil
}

// Args marshals the request into quicktype argv entries, excluding the tool
// command itself. srcPaths are file or directory inputs appended at the end;
// with none, quicktype reads stdin. Flags render in sorted name order so the
// same Options always produce the same argv.
func (o Options) Args(srcPaths []string) []string {
	var args []string
	if o.SrcLang != "" {
		args = append(args, "--src-lang", o.SrcLang)
	}
	args = append(args, "--lang", o.Lang)
	if o.TopLevel != "" {
		args = append(args, "--top-level", o.TopLevel)
	}

	flags := make([]Flag, len(o.Flags))
	copy(flags, o.Flags)
	sort.Slice(flags, func(i, j int) bool { return flags[i].Name < flags[j].Name })
	for _, f := range flags {
		args = append(args, "--"+f.Name)
		if f.Value != "" {
			args = append(args, f.Value)
		}
	}

	for _, p := range srcPaths {
		args = append(args, "--src", p)
	}
	return args
}
