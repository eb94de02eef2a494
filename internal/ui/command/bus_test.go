package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ label string }

func TestExecuteRunsHandler(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "copy", Label: "apple", Handler: func() tea.Msg {
		return doneMsg{label: "apple"}
	}})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.label != "apple" {
		t.Fatalf("expected doneMsg from handler, got %#v", msg)
	}
}

func TestExecuteWithoutHandler(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
