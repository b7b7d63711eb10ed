package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Result carries the captured combined output and exit status of one
// quicktype run. Output is populated even when the run fails, so callers can
// show the tool's own diagnostics.
type Result struct {
	Output   string
	ExitCode int
	Args     []string // argv passed to the tool, for display and logging
}

// Run spawns the tool once and waits: no retries, no streaming. input, when
// non-nil, is fed to the child's stdin (pasted or fetched text); srcPaths
// are passed through as --src arguments instead.
func Run(ctx context.Context, opts Options, input []byte, srcPaths []string) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	tool := opts.Tool
	if tool == "" {
		tool = DefaultTool
	}
	parts, err := shellquote.Split(tool)
	if err != nil {
		return Result{}, fmt.Errorf("invalid tool command %q: %s", tool, err)
	}
	if len(parts) == 0 {
		return Result{}, fmt.Errorf("tool command is empty")
	}

	args := append(parts[1:], opts.Args(srcPaths)...)

	ctx, cancel := context.WithTimeout(ctx, opts.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], args...)
	if input != nil {
		cmd.Stdin = bytes.NewReader(input)
	}

	out, err := cmd.CombinedOutput()
	res := Result{Output: string(out), Args: args}
	if err == nil {
		return res, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return res, fmt.Errorf("%s timed out after %s", parts[0], opts.timeout())
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		res.ExitCode = exitErr.ExitCode()
		return res, fmt.Errorf("%s failed (exit code %d)", parts[0], res.ExitCode)
	}
	return res, fmt.Errorf("run %s: %s", parts[0], err)
}
