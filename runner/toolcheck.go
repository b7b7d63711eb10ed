package runner

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"
)

var versionRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Check verifies that the quicktype command is runnable and returns its
// reported version string. The error message tells the user how to install
// the tool, since a missing binary is the most common first-run failure.
func Check(tool string) (string, error) {
	if tool == "" {
		tool = DefaultTool
	}
	parts, err := shellquote.Split(tool)
	if err != nil || len(parts) == 0 {
		return "", fmt.Errorf("invalid tool command %q", tool)
	}

	out, err := exec.Command(parts[0], append(parts[1:], "--version")...).Output()
	if err != nil {
		return "", fmt.Errorf("%s not found. Install with: npm install -g quicktype", parts[0])
	}

	version := strings.TrimSpace(string(out))
	if m := versionRe.FindString(version); m != "" {
		return m, nil
	}
	return version, nil // can't parse, report verbatim
}
