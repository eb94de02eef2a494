package app

import (
	"reflect"
	"testing"

	"github.com/atomicstack/fuzzy-pick/internal/picker"
	"github.com/atomicstack/fuzzy-pick/internal/testutil"
	"github.com/atomicstack/fuzzy-pick/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func testConfig() Config {
	return Config{Algorithm: picker.AlgorithmJaroWinkler, Threshold: picker.DefaultThreshold}
}

func TestNewSessionRejectsUnknownAlgorithm(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = "soundex"
	if _, err := NewSession(cfg, []string{"a"}); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestNewSessionAppliesFilterSettings(t *testing.T) {
	cfg := testConfig()
	cfg.Multi = true
	cfg.Limit = 1
	s, err := NewSession(cfg, []string{"apple", "apply", "banana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.MultiSelect() {
		t.Fatal("expected multi-select session")
	}
	s.SetQuery("appl")
	if len(s.Visible()) != 1 {
		t.Fatalf("expected limit to cap results, got %v", s.Visible())
	}
}

func TestModelDrivesSessionToSelection(t *testing.T) {
	s, err := NewSession(testConfig(), []string{"apple", "apply", "banana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := ui.NewHarness(NewModel(testConfig(), s))
	for _, msg := range testutil.Runes("appl") {
		h.Send(msg)
	}
	h.Send(testutil.Key(tea.KeyDown))
	h.Send(testutil.Key(tea.KeyEnter))
	out, done := h.Model().Outcome()
	if !done {
		t.Fatal("expected the session to finish")
	}
	want := []string{s.Visible()[1]}
	if out.Kind != picker.OutcomeSelected || !reflect.DeepEqual(out.Items, want) {
		t.Fatalf("expected %v, got %#v", want, out)
	}
}

func TestModelDrivesSessionToCancel(t *testing.T) {
	s, err := NewSession(testConfig(), []string{"apple", "banana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := ui.NewHarness(NewModel(testConfig(), s))
	for _, msg := range testutil.Runes("ban") {
		h.Send(msg)
	}
	h.Send(testutil.Key(tea.KeyEsc))
	if s.Query() != "" {
		t.Fatalf("expected session query cleared, got %q", s.Query())
	}
	h.Send(testutil.Key(tea.KeyEsc))
	out, done := h.Model().Outcome()
	if !done || !out.IsCancelled() {
		t.Fatalf("expected cancelled outcome, got %#v", out)
	}
}

func TestRunWithNoCandidates(t *testing.T) {
	out, err := Run(testConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsCancelled() || len(out.Items) != 0 {
		t.Fatalf("expected empty outcome, got %#v", out)
	}
}
