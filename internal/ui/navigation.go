package ui

import (
	"fmt"

	"github.com/atomicstack/fuzzy-pick/internal/logging"
	"github.com/atomicstack/fuzzy-pick/internal/logging/events"
	"github.com/atomicstack/fuzzy-pick/internal/ui/command"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type actionResultMsg struct {
	info string
	err  error
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.clearInfo()
	if key.Matches(keyMsg, m.keys.Copy) {
		return m.copyHighlighted()
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	if k, ok := m.keys.pickerKey(keyMsg); ok {
		m.fire(k)
	}
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		events.Action.Error(result.err)
		logging.Error(result.err)
		m.errMsg = result.err.Error()
		return nil
	}
	events.Action.Success(result.info)
	m.errMsg = ""
	if result.info != "" {
		m.setInfo(result.info)
	}
	return nil
}

// copyHighlighted puts the highlighted entry on the system clipboard without
// ending the session.
func (m *Model) copyHighlighted() tea.Cmd {
	if m.highlight < 0 || m.highlight >= len(m.items) {
		return nil
	}
	text := m.items[m.highlight]
	return m.bus.Execute(command.Request{
		ID:    "clipboard",
		Label: "copy highlighted entry",
		Handler: func() tea.Msg {
			if err := writeClipboard(text); err != nil {
				return actionResultMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
			}
			return actionResultMsg{info: fmt.Sprintf("Copied %q", text)}
		},
	})
}

func (m *Model) syncViewport() {
	m.viewport.Follow(m.highlight, len(m.items), m.maxVisibleItems())
}
