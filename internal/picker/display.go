package picker

// Key identifies a control action a Display reports to the session.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyConfirm
	KeyCancel
	KeyToggle
	KeyAbort
)

var keyNames = map[Key]string{
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyHome:    "home",
	KeyEnd:     "end",
	KeyConfirm: "confirm",
	KeyCancel:  "cancel",
	KeyToggle:  "toggle",
	KeyAbort:   "abort",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Display is the presentation surface a session is bound to. Implementations
// own rendering and input; the session only sees this contract.
type Display interface {
	// OnQueryChange registers the callback run after every edit of the
	// query text.
	OnQueryChange(fn func(query string))
	// OnKey registers the callback run when key is pressed.
	OnKey(key Key, fn func())
	// SetQuery replaces the query text shown to the user without firing
	// the query callback.
	SetQuery(query string)
	// SetItems replaces the displayed list.
	SetItems(items []string)
	// SetHighlight moves the highlighted row.
	SetHighlight(index int)
	// Highlight returns the highlighted row.
	Highlight() int
	// SetMarked replaces the set of rows shown as marked.
	SetMarked(indices []int)
}

// Bind wires s to d. done is called once with the outcome when the user
// commits or cancels; after that the bound callbacks do nothing.
func Bind(s *Session, d Display, done func(Outcome)) {
	finished := false
	finish := func(out Outcome) {
		if finished {
			return
		}
		finished = true
		if done != nil {
			done(out)
		}
	}
	sync := func() {
		d.SetItems(s.Visible())
		d.SetHighlight(s.Cursor())
		d.SetMarked(s.Marked())
	}
	// the display may move its highlight on its own, e.g. on a mouse click
	adopt := func() {
		if h := d.Highlight(); h != s.Cursor() {
			s.MoveTo(h)
		}
	}
	move := func(step func() (int, bool)) func() {
		return func() {
			if finished {
				return
			}
			adopt()
			if idx, moved := step(); moved {
				d.SetHighlight(idx)
			}
		}
	}

	d.OnQueryChange(func(query string) {
		if finished {
			return
		}
		s.SetQuery(query)
		sync()
	})
	d.OnKey(KeyUp, move(s.Prev))
	d.OnKey(KeyLeft, move(s.Prev))
	d.OnKey(KeyDown, move(s.Next))
	d.OnKey(KeyRight, move(s.Next))
	d.OnKey(KeyHome, move(s.First))
	d.OnKey(KeyEnd, move(s.Last))
	d.OnKey(KeyToggle, func() {
		if finished {
			return
		}
		adopt()
		if s.ToggleMark() {
			d.SetMarked(s.Marked())
			if idx, moved := s.Next(); moved {
				d.SetHighlight(idx)
			}
		}
	})
	d.OnKey(KeyConfirm, func() {
		if finished {
			return
		}
		adopt()
		if out, ok := s.Commit(); ok {
			finish(out)
		}
	})
	d.OnKey(KeyCancel, func() {
		if finished {
			return
		}
		if out, ended := s.ClearOrCancel(); ended {
			finish(out)
			return
		}
		d.SetQuery(s.Query())
		sync()
	})
	d.OnKey(KeyAbort, func() {
		finish(s.Abort())
	})

	d.SetQuery(s.Query())
	sync()
}
