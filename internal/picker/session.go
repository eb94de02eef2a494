package picker

import (
	"fmt"
	"sort"
)

// Session holds the state of one interactive pick: the fixed candidate set,
// the live query, the visible list derived from it, the cursor into that list
// and, in multi-select mode, the marked candidates.
//
// A Session is not safe for concurrent use; callers drive it from a single
// event loop.
type Session struct {
	candidates []string
	filter     *Filter
	multi      bool

	query   string
	matches []Match
	visible []string
	cursor  *CircularRange
	marks   map[int]struct{}
}

// Option customises a Session.
type Option func(*Session)

// WithFilter sets the filter used for every query change.
func WithFilter(f *Filter) Option {
	return func(s *Session) {
		if f != nil {
			s.filter = f
		}
	}
}

// WithMultiSelect enables marking several candidates before committing.
func WithMultiSelect(enabled bool) Option {
	return func(s *Session) {
		s.multi = enabled
	}
}

// NewSession starts a session over a private copy of candidates with an empty
// query, so every candidate is visible and the cursor is on the first one.
func NewSession(candidates []string, opts ...Option) *Session {
	s := &Session{
		candidates: append([]string(nil), candidates...),
		filter:     defaultFilter,
		marks:      make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cursor = NewCircularRange(ConstBound(0), LenBound(&s.visible))
	s.refilter()
	return s
}

// Total returns the size of the candidate set.
func (s *Session) Total() int {
	return len(s.candidates)
}

// MultiSelect reports whether marking is enabled.
func (s *Session) MultiSelect() bool {
	return s.multi
}

// Query returns the current query.
func (s *Session) Query() string {
	return s.query
}

// Visible returns the visible list. The slice is shared with the session and
// replaced, never modified in place, when the query changes; callers must
// treat it as read-only.
func (s *Session) Visible() []string {
	return s.visible
}

// Matches returns the visible list with scores and candidate indices.
func (s *Session) Matches() []Match {
	return s.matches
}

// Cursor returns the index of the highlighted entry in the visible list.
func (s *Session) Cursor() int {
	return s.cursor.Current()
}

// Current returns the highlighted entry.
func (s *Session) Current() (string, bool) {
	if s.cursor.Empty() {
		return "", false
	}
	return s.visible[s.cursor.Current()], true
}

// SetQuery replaces the query, recomputes the visible list from scratch and
// moves the cursor to the top of it.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.refilter()
}

func (s *Session) refilter() {
	s.matches = s.filter.Rank(s.query, s.candidates)
	s.visible = Texts(s.matches)
	s.cursor.Reset()
}

// Next advances the cursor with wraparound. It reports false when the
// visible list is empty.
func (s *Session) Next() (int, bool) {
	if s.cursor.Empty() {
		s.cursor.Reset()
		return s.cursor.Current(), false
	}
	return s.cursor.Advance(), true
}

// Prev moves the cursor back with wraparound. It reports false when the
// visible list is empty.
func (s *Session) Prev() (int, bool) {
	if s.cursor.Empty() {
		s.cursor.Reset()
		return s.cursor.Current(), false
	}
	return s.cursor.Retreat(), true
}

// First moves the cursor to the top of the visible list.
func (s *Session) First() (int, bool) {
	if s.cursor.Empty() {
		return s.cursor.Current(), false
	}
	s.cursor.Reset()
	return s.cursor.Current(), true
}

// Last moves the cursor to the bottom of the visible list.
func (s *Session) Last() (int, bool) {
	if s.cursor.Empty() {
		return s.cursor.Current(), false
	}
	if err := s.cursor.Set(s.cursor.Upper() - 1); err != nil {
		return s.cursor.Current(), false
	}
	return s.cursor.Current(), true
}

// MoveTo puts the cursor on the visible entry at i. It reports false when i
// is not a visible index.
func (s *Session) MoveTo(i int) bool {
	return s.cursor.Set(i) == nil
}

// ClearOrCancel clears a non-empty query and reports false. With an empty
// query it ends the session with a cancelled outcome and reports true.
func (s *Session) ClearOrCancel() (Outcome, bool) {
	if s.query != "" {
		s.SetQuery("")
		return Outcome{}, false
	}
	return Cancelled(), true
}

// Abort ends the session without a selection regardless of the query.
func (s *Session) Abort() Outcome {
	return Cancelled()
}

// ToggleMark flips the mark on the highlighted entry. It reports false when
// multi-select is off or nothing is highlighted.
func (s *Session) ToggleMark() bool {
	if !s.multi || s.cursor.Empty() {
		return false
	}
	idx := s.matches[s.cursor.Current()].Index
	if _, ok := s.marks[idx]; ok {
		delete(s.marks, idx)
	} else {
		s.marks[idx] = struct{}{}
	}
	return true
}

// IsMarked reports whether the visible entry at i is marked.
func (s *Session) IsMarked(i int) bool {
	if i < 0 || i >= len(s.matches) {
		return false
	}
	_, ok := s.marks[s.matches[i].Index]
	return ok
}

// Marked returns the visible indices of marked entries in ascending order.
// Marks on candidates hidden by the current query are not included.
func (s *Session) Marked() []int {
	if len(s.marks) == 0 {
		return nil
	}
	out := make([]int, 0, len(s.marks))
	for i, m := range s.matches {
		if _, ok := s.marks[m.Index]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Commit ends the session with the highlighted entry, or with the visible
// marked entries when multi-select is on and anything is marked. It reports
// false, leaving the session running, when the visible list is empty.
func (s *Session) Commit() (Outcome, bool) {
	if s.cursor.Empty() {
		return Outcome{}, false
	}
	indices := []int{s.cursor.Current()}
	if s.multi {
		if marked := s.Marked(); len(marked) > 0 {
			indices = marked
		}
	}
	out, err := s.CommitIndices(indices)
	if err != nil {
		return Outcome{}, false
	}
	return out, true
}

// CommitIndices selects the visible entries at indices, emitted once each in
// ascending index order. Any index outside the visible list is an error.
func (s *Session) CommitIndices(indices []int) (Outcome, error) {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	items := make([]string, 0, len(sorted))
	for i, idx := range sorted {
		if err := s.cursor.Validate(idx); err != nil {
			return Outcome{}, fmt.Errorf("commit selection: %w", err)
		}
		if i > 0 && sorted[i-1] == idx {
			continue
		}
		items = append(items, s.visible[idx])
	}
	return Selected(items...), nil
}
