package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/fuzzy-pick/internal/logging/events"
	"github.com/atomicstack/fuzzy-pick/internal/picker"
	"github.com/atomicstack/fuzzy-pick/internal/theme"
	"github.com/atomicstack/fuzzy-pick/internal/ui/command"
	uistate "github.com/atomicstack/fuzzy-pick/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPrompt = "» "

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Prompt     string
	Header     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Multi      bool
	Total      int
}

// Model implements the Bubble Tea model for the picker. It is also the
// picker.Display the selection session is bound to: key presses and query
// edits are forwarded to the registered callbacks, and the session pushes
// the visible list and highlight back through the setters.
type Model struct {
	prompt      uistate.Prompt
	viewport    uistate.Viewport
	promptLabel string
	header      string

	items     []string
	highlight int
	marked    map[int]struct{}
	total     int
	multi     bool

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	filterCursor      cursor.Model
	filterCursorDirty bool

	keys     keyMap
	bus      *command.Bus
	handlers map[reflect.Type]msgHandler

	onQuery func(string)
	onKey   map[picker.Key]func()

	outcome picker.Outcome
	done    bool
}

var _ picker.Display = (*Model)(nil)

// NewModel initialises the UI state from opts.
func NewModel(opts Options) *Model {
	m := &Model{
		promptLabel: opts.Prompt,
		header:      opts.Header,
		marked:      make(map[int]struct{}),
		total:       opts.Total,
		multi:       opts.Multi,
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
		keys:        defaultKeyMap(),
		bus:         command.New(),
		onKey:       make(map[picker.Key]func()),
	}
	if m.promptLabel == "" {
		m.promptLabel = defaultPrompt
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.done {
		return m, tea.Quit
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// OnQueryChange implements picker.Display.
func (m *Model) OnQueryChange(fn func(query string)) {
	m.onQuery = fn
}

// OnKey implements picker.Display.
func (m *Model) OnKey(key picker.Key, fn func()) {
	m.onKey[key] = fn
}

// SetQuery implements picker.Display. The caret moves to the end of query.
func (m *Model) SetQuery(query string) {
	before := m.prompt.CaretPos()
	m.prompt.Set(query, len([]rune(query)))
	m.noteFilterCursorChange(before)
}

// SetItems implements picker.Display. items is kept by reference.
func (m *Model) SetItems(items []string) {
	m.items = items
	m.viewport = uistate.Viewport{}
	if m.highlight >= len(items) {
		m.highlight = 0
	}
	m.syncViewport()
}

// SetHighlight implements picker.Display.
func (m *Model) SetHighlight(index int) {
	m.highlight = index
	events.Cursor.Move(index)
	m.syncViewport()
}

// Highlight implements picker.Display.
func (m *Model) Highlight() int {
	return m.highlight
}

// SetMarked implements picker.Display.
func (m *Model) SetMarked(indices []int) {
	m.marked = make(map[int]struct{}, len(indices))
	for _, i := range indices {
		m.marked[i] = struct{}{}
	}
	if len(indices) > 0 {
		events.Selection.Marked(indices)
	}
}

// Finish records how the session ended; the next Update returns tea.Quit.
func (m *Model) Finish(out picker.Outcome) {
	m.outcome = out
	m.done = true
	if out.IsCancelled() {
		events.Selection.Cancel()
		return
	}
	events.Selection.Commit(out.Items)
}

// Outcome returns the session result once Finish has been called.
func (m *Model) Outcome() (picker.Outcome, bool) {
	return m.outcome, m.done
}

// Done reports whether the session has ended.
func (m *Model) Done() bool {
	return m.done
}

// Query returns the text currently in the prompt.
func (m *Model) Query() string {
	return m.prompt.Text
}

// Items returns the displayed list.
func (m *Model) Items() []string {
	return m.items
}

func (m *Model) isMarked(i int) bool {
	_, ok := m.marked[i]
	return ok
}

func (m *Model) fire(key picker.Key) bool {
	fn, ok := m.onKey[key]
	if !ok || fn == nil {
		return false
	}
	events.Cursor.Key(key.String())
	fn()
	return true
}
