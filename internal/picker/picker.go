// Package picker drives an external fuzzy-selection tool. The tool is a
// black box: it receives line-oriented text on stdin and prints the
// selected subset of lines on stdout.
package picker

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Picker runs a configured fuzzy-finder command, e.g. "fzf" or
// "fzf --multi".
type Picker struct {
	command string
	args    []string
}

// New creates a picker from a command line string.
func New(command string) (*Picker, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("picker command is required")
	}
	return &Picker{command: fields[0], args: fields[1:]}, nil
}

// Pick feeds lines to the tool and returns the lines it selected. A
// non-zero exit (typically the user cancelling) selects nothing.
func (p *Picker) Pick(lines []string) ([]string, error) {
	cmd := exec.Command(p.command, p.args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil, nil
		}
		return nil, fmt.Errorf("run %s: %w", p.command, err)
	}

	return SplitLines(string(out)), nil
}

// SplitLines splits tool output into non-empty lines.
func SplitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// PathField extracts the leading path field from a selection line of the
// form "<path> <tag> <tag> ...".
func PathField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
