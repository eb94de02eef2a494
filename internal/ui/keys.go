package ui

import (
	"strings"

	"github.com/atomicstack/fuzzy-pick/internal/picker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Home    key.Binding
	End     key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Toggle  key.Binding
	Copy    key.Binding
	Abort   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		Home:    key.NewBinding(key.WithKeys("home")),
		End:     key.NewBinding(key.WithKeys("end")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear/cancel")),
		Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mark")),
		Copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Abort:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// pickerKey maps a key press onto the session key it stands for.
func (k keyMap) pickerKey(msg tea.KeyMsg) (picker.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return picker.KeyUp, true
	case key.Matches(msg, k.Down):
		return picker.KeyDown, true
	case key.Matches(msg, k.Left):
		return picker.KeyLeft, true
	case key.Matches(msg, k.Right):
		return picker.KeyRight, true
	case key.Matches(msg, k.Home):
		return picker.KeyHome, true
	case key.Matches(msg, k.End):
		return picker.KeyEnd, true
	case key.Matches(msg, k.Confirm):
		return picker.KeyConfirm, true
	case key.Matches(msg, k.Cancel):
		return picker.KeyCancel, true
	case key.Matches(msg, k.Toggle):
		return picker.KeyToggle, true
	case key.Matches(msg, k.Abort):
		return picker.KeyAbort, true
	}
	return 0, false
}

func (k keyMap) footer(multi bool) string {
	bindings := []key.Binding{k.Up, k.Confirm}
	if multi {
		bindings = append(bindings, k.Toggle)
	}
	bindings = append(bindings, k.Cancel, k.Copy, k.Abort)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
