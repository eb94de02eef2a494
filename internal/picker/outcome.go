package picker

// OutcomeKind distinguishes how a session ended.
type OutcomeKind int

const (
	OutcomeCancelled OutcomeKind = iota
	OutcomeSelected
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSelected:
		return "selected"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Outcome is the result of an interactive session. Items is only populated
// for OutcomeSelected.
type Outcome struct {
	Kind  OutcomeKind
	Items []string
}

// Selected returns an outcome carrying the chosen items.
func Selected(items ...string) Outcome {
	return Outcome{Kind: OutcomeSelected, Items: append([]string(nil), items...)}
}

// Cancelled returns the no-selection outcome.
func Cancelled() Outcome {
	return Outcome{Kind: OutcomeCancelled}
}

// IsCancelled reports whether the session ended without a selection.
func (o Outcome) IsCancelled() bool {
	return o.Kind == OutcomeCancelled
}
