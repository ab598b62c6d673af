package vcs

import (
	"strings"
	"testing"
)

func TestMessage(t *testing.T) {
	hash := strings.Repeat("ab12", 16)
	got := Message("add", hash)
	if got != "walls: add ab12ab12" {
		t.Fatalf("unexpected message %q", got)
	}

	got = Message("tag rename", "old new")
	if got != "walls: tag rename old new" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestCommitOutsideRepoIsSilent(t *testing.T) {
	// best-effort: committing outside any repository must not panic or error
	g := New(t.TempDir())
	g.Commit("add", strings.Repeat("ab12", 16), "nonexistent.png")
	g.Commit("add", strings.Repeat("ab12", 16))
}
