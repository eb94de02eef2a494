package app

import (
	"bytes"
	"testing"

	"github.com/atomicstack/fuzzy-pick/internal/picker"
)

func TestWriteOutcomeSelected(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutcome(&buf, picker.Selected("apple", "apply")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "apple\napply\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWriteOutcomeCancelled(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutcome(&buf, picker.Cancelled()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
