package events

import "github.com/atomicstack/fuzzy-pick/internal/logging"

type FilterTracer struct{}

type CursorTracer struct{}

type SelectionTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Filter    = FilterTracer{}
	Cursor    = CursorTracer{}
	Selection = SelectionTracer{}
	Action    = ActionTracer{}
	Command   = CommandTracer{}
)

func (FilterTracer) Query(query string, visible int) {
	logging.Trace("filter.query", map[string]interface{}{"query": query, "visible": visible})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Caret(pos int) {
	logging.Trace("filter.caret", map[string]interface{}{"caret": pos})
}

func (CursorTracer) Key(key string) {
	logging.Trace("cursor.key", map[string]interface{}{"key": key})
}

func (CursorTracer) Move(index int) {
	logging.Trace("cursor.move", map[string]interface{}{"index": index})
}

func (SelectionTracer) Marked(indices []int) {
	logging.Trace("selection.marked", map[string]interface{}{"indices": indices})
}

func (SelectionTracer) Commit(items []string) {
	logging.Trace("selection.commit", map[string]interface{}{"items": items})
}

func (SelectionTracer) Cancel() {
	logging.Trace("selection.cancel", nil)
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
