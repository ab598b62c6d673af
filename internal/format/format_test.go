package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestForName(t *testing.T) {
	if _, err := ForName("json"); err != nil {
		t.Fatalf("json: %v", err)
	}
	if _, err := ForName("yaml"); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if _, err := ForName("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWrite(t *testing.T) {
	payload := map[string]any{"tags": []string{"sunset"}}

	var buf bytes.Buffer
	if err := (JSONFormatter{}).Write(&buf, payload); err != nil {
		t.Fatalf("json write: %v", err)
	}
	if !strings.Contains(buf.String(), `"sunset"`) {
		t.Fatalf("unexpected json output %q", buf.String())
	}

	buf.Reset()
	if err := (YAMLFormatter{}).Write(&buf, payload); err != nil {
		t.Fatalf("yaml write: %v", err)
	}
	if !strings.Contains(buf.String(), "sunset") {
		t.Fatalf("unexpected yaml output %q", buf.String())
	}
}
