// Package vcs records collection mutations as git commits. The commits are
// advisory: the mutation is already durable by the time they run, so every
// failure here is logged and swallowed.
package vcs

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/shimeoki/wallpapers/internal/models"
)

// Git commits store mutations inside the worktree containing the store
// directory and the metadata file.
type Git struct {
	dir string
}

// New creates a committer running git inside dir.
func New(dir string) *Git {
	return &Git{dir: dir}
}

// Commit stages paths and commits them with a message naming the operation
// and a short form of the affected hash. Never returns an error.
func (g *Git) Commit(op, hash string, paths ...string) {
	if len(paths) == 0 {
		return
	}

	args := append([]string{"-C", g.dir, "add", "--"}, paths...)
	if out, err := exec.Command("git", args...).CombinedOutput(); err != nil {
		slog.Debug("git add failed", "error", err, "output", strings.TrimSpace(string(out)))
		return
	}

	message := Message(op, hash)
	args = append([]string{"-C", g.dir, "commit", "-m", message, "--"}, paths...)
	if out, err := exec.Command("git", args...).CombinedOutput(); err != nil {
		slog.Debug("git commit failed", "error", err, "output", strings.TrimSpace(string(out)))
	}
}

// Message builds the commit message for an operation. Full hashes are
// shortened to their usual eight-character prefix.
func Message(op, hash string) string {
	if models.IsValidHash(hash) {
		hash = hash[:8]
	}
	return fmt.Sprintf("walls: %s %s", op, hash)
}
