package picker

import (
	"os/exec"
	"reflect"
	"testing"
)

func TestNewRejectsEmptyCommand(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatal("expected error for empty command")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a.png sunset\r\n\nb.jpg beach\n")
	want := []string{"a.png sunset", "b.jpg beach"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := SplitLines(""); len(got) != 0 {
		t.Fatalf("expected no lines, got %v", got)
	}
}

func TestPathField(t *testing.T) {
	if got := PathField("/store/abc.png sunset beach"); got != "/store/abc.png" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := PathField("   "); got != "" {
		t.Fatalf("expected empty path, got %q", got)
	}
}

func TestPickWithCat(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	p, err := New("cat")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	lines := []string{"a.png sunset", "b.jpg beach"}
	got, err := p.Pick(lines)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Fatalf("expected %v, got %v", lines, got)
	}
}

func TestPickToolFailureSelectsNothing(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	p, err := New("false")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got, err := p.Pick([]string{"a.png sunset"})
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}
