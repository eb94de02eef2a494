package ui

import (
	"unicode"

	"github.com/atomicstack/fuzzy-pick/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const promptPlaceholder = "(type to search)"

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.prompt.CaretPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput applies prompt editing keys. It reports whether msg was
// consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	before := m.prompt.CaretPos()
	switch msg.String() {
	case "ctrl+u":
		if !m.prompt.Clear() {
			return false
		}
		events.Filter.Cleared()
		m.queryEdited(before)
		return true
	case "ctrl+w":
		if !m.prompt.DeleteWordBackward() {
			return false
		}
		m.queryEdited(before)
		return true
	case "ctrl+d":
		if !m.prompt.DeleteRuneForward() {
			return false
		}
		m.queryEdited(before)
		return true
	case "ctrl+a":
		return m.caretMoved(before, m.prompt.MoveStart())
	case "ctrl+e":
		return m.caretMoved(before, m.prompt.MoveEnd())
	case "ctrl+b":
		return m.caretMoved(before, m.prompt.MoveRuneBackward())
	case "ctrl+f":
		return m.caretMoved(before, m.prompt.MoveRuneForward())
	case "alt+b":
		return m.caretMoved(before, m.prompt.MoveWordBackward())
	case "alt+f":
		return m.caretMoved(before, m.prompt.MoveWordForward())
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.prompt.DeleteRuneBackward() {
			return false
		}
		m.queryEdited(before)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		m.prompt.Insert(string(msg.Runes))
		m.queryEdited(before)
		return true
	case tea.KeySpace:
		m.prompt.Insert(" ")
		m.queryEdited(before)
		return true
	}
	return false
}

func (m *Model) caretMoved(before int, moved bool) bool {
	if !moved {
		return false
	}
	m.noteFilterCursorChange(before)
	events.Filter.Caret(m.prompt.CaretPos())
	return true
}

// queryEdited reports the new query text to the bound session, which answers
// with a fresh visible list through SetItems.
func (m *Model) queryEdited(before int) {
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	if m.onQuery != nil {
		m.onQuery(m.prompt.Text)
	}
	events.Filter.Query(m.prompt.Text, len(m.items))
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	label := m.promptLabel
	if styles.FilterPrompt != nil {
		label = styles.FilterPrompt.Render(label)
	}
	text := m.prompt.Text
	if text == "" {
		runes := []rune(promptPlaceholder)
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return label + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.prompt.CaretPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return label + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}
	return base.Reverse(true).Render(char)
}
