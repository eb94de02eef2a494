package events

import "github.com/atomicstack/fuzzy-pick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Input(source string, candidates int) {
	logging.Trace("app.input", map[string]interface{}{"source": source, "candidates": candidates})
}

func (AppTracer) Exit(outcome string, items int) {
	logging.Trace("app.exit", map[string]interface{}{"outcome": outcome, "items": items})
}
