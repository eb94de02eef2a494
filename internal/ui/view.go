package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	itemIndicator = "▌"
	ellipsis      = "…"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	lines := make([]string, 0, 16)
	if m.header != "" {
		lines = append(lines, renderStyled(styles.Header, truncateText(m.header, m.width)))
	}
	if len(m.items) == 0 {
		msg := "(no entries)"
		if m.prompt.Text != "" {
			msg = fmt.Sprintf("No matches for %q", m.prompt.Text)
		}
		lines = append(lines, renderStyled(styles.Info, truncateText(msg, m.width)))
	} else {
		m.syncViewport()
		start, end := m.viewport.Window(len(m.items), m.maxVisibleItems())
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.itemLine(idx))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, "", renderStyled(styles.Info, truncateText(info, m.width)))
	}
	if m.showFooter {
		lines = append(lines, "", renderStyled(styles.Footer, truncateText(m.keys.footer(m.multi), m.width)))
	}
	lines = append(lines, m.statusLine(), m.filterPrompt())
	return strings.Join(lines, "\n")
}

// itemLine renders the visible entry at idx: indicator, optional mark box and
// the entry text with the runes matching the query emphasised.
func (m *Model) itemLine(idx int) string {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.highlight {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	prefix := itemIndicator + " "
	mark := ""
	if m.multi {
		mark = "[ ] "
		if m.isMarked(idx) {
			mark = "[✓] "
		}
	}
	label := m.items[idx]
	if m.width > 0 {
		room := m.width - ansi.StringWidth(prefix) - ansi.StringWidth(mark)
		if room < 1 {
			room = 1
		}
		label = ansi.Truncate(label, room, ellipsis)
		if pad := room - ansi.StringWidth(label); pad > 0 && idx == m.highlight {
			label += strings.Repeat(" ", pad)
		}
	}

	var b strings.Builder
	b.WriteString(renderStyled(indicatorStyle, prefix))
	if mark != "" {
		markStyle := lineStyle
		if m.isMarked(idx) && styles.Mark != nil {
			markStyle = ptrStyle(styles.Mark.Copy().Inherit(base(lineStyle)))
		}
		b.WriteString(renderStyled(markStyle, mark))
	}
	b.WriteString(m.highlightLabel(label, lineStyle))
	return b.String()
}

func (m *Model) highlightLabel(label string, lineStyle *lipgloss.Style) string {
	plain := base(lineStyle)
	indexes := matchedRunes(strings.TrimSpace(m.prompt.Text), label)
	if len(indexes) == 0 || styles.Match == nil {
		return plain.Render(label)
	}
	indexes = limitIndexes(indexes, runeCount(label))
	matched := styles.Match.Copy().Inherit(plain)
	return lipgloss.StyleRunes(label, indexes, matched, plain)
}

func (m *Model) statusLine() string {
	if m.errMsg != "" {
		return renderStyled(styles.Error, truncateText(fmt.Sprintf("Error: %s", m.errMsg), m.width))
	}
	counter := fmt.Sprintf("%d/%d", len(m.items), m.total)
	if m.multi && len(m.marked) > 0 {
		counter += fmt.Sprintf(" (%d marked)", len(m.marked))
	}
	if m.verbose && len(m.items) > 0 {
		counter += fmt.Sprintf("  #%d", m.highlight+1)
	}
	return renderStyled(styles.Counter, truncateText(counter, m.width))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // status line + filter prompt
	if m.header != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.forceClearInfo()
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func base(style *lipgloss.Style) lipgloss.Style {
	if style == nil {
		return lipgloss.NewStyle()
	}
	return style.Copy().Inline(true)
}

func ptrStyle(style lipgloss.Style) *lipgloss.Style {
	return &style
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, ellipsis)
}
