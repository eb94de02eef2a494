package picker

import (
	"reflect"
	"testing"
)

type fakeDisplay struct {
	query     string
	items     []string
	highlight int
	marked    []int
	onQuery   func(string)
	keys      map[Key]func()
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{keys: make(map[Key]func())}
}

func (f *fakeDisplay) OnQueryChange(fn func(string)) { f.onQuery = fn }
func (f *fakeDisplay) OnKey(k Key, fn func())        { f.keys[k] = fn }
func (f *fakeDisplay) SetQuery(q string)             { f.query = q }
func (f *fakeDisplay) SetItems(items []string)       { f.items = items }
func (f *fakeDisplay) SetHighlight(i int)            { f.highlight = i }
func (f *fakeDisplay) Highlight() int                { return f.highlight }
func (f *fakeDisplay) SetMarked(indices []int)       { f.marked = indices }

func (f *fakeDisplay) typeText(text string) {
	f.query += text
	f.onQuery(f.query)
}

func (f *fakeDisplay) press(k Key) {
	if fn, ok := f.keys[k]; ok {
		fn()
	}
}

func bindFake(t *testing.T, candidates []string, opts ...Option) (*Session, *fakeDisplay, *[]Outcome) {
	t.Helper()
	s := NewSession(candidates, opts...)
	d := newFakeDisplay()
	var outcomes []Outcome
	Bind(s, d, func(out Outcome) { outcomes = append(outcomes, out) })
	return s, d, &outcomes
}

func TestBindPopulatesDisplay(t *testing.T) {
	_, d, _ := bindFake(t, []string{"x", "y"})
	if !reflect.DeepEqual(d.items, []string{"x", "y"}) {
		t.Fatalf("expected initial items, got %v", d.items)
	}
	if d.highlight != 0 {
		t.Fatalf("expected highlight 0, got %d", d.highlight)
	}
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyConfirm, KeyCancel} {
		if _, ok := d.keys[k]; !ok {
			t.Fatalf("expected handler for %s", k)
		}
	}
}

func TestBindSharesVisibleList(t *testing.T) {
	s, d, _ := bindFake(t, []string{"apple", "apply", "banana"})
	d.typeText("appl")
	if len(d.items) == 0 || &d.items[0] != &s.Visible()[0] {
		t.Fatal("expected display to reference the session's visible list")
	}
}

func TestBindNavigationDirections(t *testing.T) {
	_, d, _ := bindFake(t, []string{"a", "b", "c"})
	d.press(KeyDown)
	d.press(KeyRight)
	if d.highlight != 2 {
		t.Fatalf("expected highlight 2, got %d", d.highlight)
	}
	d.press(KeyDown)
	if d.highlight != 0 {
		t.Fatalf("expected wrap to 0, got %d", d.highlight)
	}
	d.press(KeyUp)
	if d.highlight != 2 {
		t.Fatalf("expected wrap to 2, got %d", d.highlight)
	}
	d.press(KeyLeft)
	if d.highlight != 1 {
		t.Fatalf("expected 1, got %d", d.highlight)
	}
	d.press(KeyHome)
	if d.highlight != 0 {
		t.Fatalf("expected home 0, got %d", d.highlight)
	}
	d.press(KeyEnd)
	if d.highlight != 2 {
		t.Fatalf("expected end 2, got %d", d.highlight)
	}
}

func TestBindQueryChangeResetsHighlight(t *testing.T) {
	_, d, _ := bindFake(t, []string{"apple", "apply", "banana"})
	d.press(KeyDown)
	d.press(KeyDown)
	d.typeText("appl")
	if d.highlight != 0 {
		t.Fatalf("expected highlight reset, got %d", d.highlight)
	}
	if len(d.items) != 2 {
		t.Fatalf("expected two matches, got %v", d.items)
	}
}

func TestBindConfirmSelectsHighlighted(t *testing.T) {
	_, d, outcomes := bindFake(t, []string{"a", "b", "c"})
	d.press(KeyDown)
	d.press(KeyConfirm)
	if len(*outcomes) != 1 {
		t.Fatalf("expected one outcome, got %d", len(*outcomes))
	}
	out := (*outcomes)[0]
	if out.Kind != OutcomeSelected || !reflect.DeepEqual(out.Items, []string{"b"}) {
		t.Fatalf("unexpected outcome %#v", out)
	}
	d.press(KeyConfirm)
	d.press(KeyCancel)
	if len(*outcomes) != 1 {
		t.Fatalf("expected callbacks to stop after the session ended, got %d outcomes", len(*outcomes))
	}
}

func TestBindConfirmAdoptsDisplayHighlight(t *testing.T) {
	_, d, outcomes := bindFake(t, []string{"a", "b", "c"})
	d.highlight = 2
	d.press(KeyConfirm)
	if len(*outcomes) != 1 || (*outcomes)[0].Items[0] != "c" {
		t.Fatalf("expected display highlight to be committed, got %#v", *outcomes)
	}
}

func TestBindConfirmIgnoredWhenNothingVisible(t *testing.T) {
	_, d, outcomes := bindFake(t, []string{"apple"})
	d.typeText("zzzzzz")
	d.press(KeyDown)
	d.press(KeyConfirm)
	if len(*outcomes) != 0 {
		t.Fatalf("expected no outcome, got %#v", *outcomes)
	}
	if d.highlight != 0 {
		t.Fatalf("expected highlight to stay at 0, got %d", d.highlight)
	}
}

func TestBindCancelTwice(t *testing.T) {
	s, d, outcomes := bindFake(t, []string{"apple", "apply", "banana"})
	d.typeText("appl")
	d.press(KeyCancel)
	if len(*outcomes) != 0 {
		t.Fatalf("expected first cancel to only clear, got %#v", *outcomes)
	}
	if d.query != "" || s.Query() != "" {
		t.Fatalf("expected cleared query, got display %q session %q", d.query, s.Query())
	}
	if len(d.items) != 3 {
		t.Fatalf("expected full list after clearing, got %v", d.items)
	}
	d.press(KeyCancel)
	if len(*outcomes) != 1 || !(*outcomes)[0].IsCancelled() || len((*outcomes)[0].Items) != 0 {
		t.Fatalf("expected empty cancelled outcome, got %#v", *outcomes)
	}
}

func TestBindToggleMarksAndAdvances(t *testing.T) {
	_, d, outcomes := bindFake(t, []string{"a", "b", "c"}, WithMultiSelect(true))
	d.press(KeyToggle)
	if !reflect.DeepEqual(d.marked, []int{0}) {
		t.Fatalf("expected mark on 0, got %v", d.marked)
	}
	if d.highlight != 1 {
		t.Fatalf("expected highlight to advance to 1, got %d", d.highlight)
	}
	d.press(KeyDown)
	d.press(KeyToggle)
	d.press(KeyConfirm)
	if len(*outcomes) != 1 || !reflect.DeepEqual((*outcomes)[0].Items, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %#v", *outcomes)
	}
}

func TestBindAbort(t *testing.T) {
	_, d, outcomes := bindFake(t, []string{"a"})
	d.typeText("a")
	d.press(KeyAbort)
	if len(*outcomes) != 1 || !(*outcomes)[0].IsCancelled() {
		t.Fatalf("expected cancelled outcome, got %#v", *outcomes)
	}
}
