package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shimeoki/wallpapers/internal/models"
)

var (
	hashStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// terminalPrompt asks the user for tags, sources and confirmations on the
// controlling terminal. It is the interactive implementation of
// collection.Prompter.
type terminalPrompt struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPrompt() *terminalPrompt {
	return &terminalPrompt{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
	}
}

func (p *terminalPrompt) show(entry models.Entry) {
	fmt.Fprintln(p.out, hashStyle.Render(entry.Hash))
	if len(entry.Tags) > 0 {
		fmt.Fprintln(p.out, tagStyle.Render(strings.Join(entry.Tags, " ")))
	}
	if entry.Source != "" {
		fmt.Fprintln(p.out, faintStyle.Render(entry.Source))
	}
}

// Tags shows the entry and reads additional space-separated tags.
func (p *terminalPrompt) Tags(entry models.Entry) ([]string, error) {
	p.show(entry)
	fmt.Fprint(p.out, "tags: ")
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return strings.Fields(line), nil
}

// Source reads a source string; empty input leaves the source alone.
func (p *terminalPrompt) Source(entry models.Entry) (string, bool, error) {
	fmt.Fprint(p.out, "source: ")
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

// Confirm shows the entry and reads a y/n answer; anything but "y" skips.
func (p *terminalPrompt) Confirm(entry models.Entry) (bool, error) {
	p.show(entry)
	fmt.Fprint(p.out, "remove? [y/N] ")
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
