package picker

import (
	"errors"
	"testing"
)

func TestCircularRangeStartsAtLowerBound(t *testing.T) {
	r := NewCircularRange(ConstBound(0), ConstBound(3))
	if r.Current() != 0 {
		t.Fatalf("expected current 0, got %d", r.Current())
	}
}

func TestCircularRangeAtRejectsOutOfRange(t *testing.T) {
	_, err := NewCircularRangeAt(ConstBound(0), ConstBound(3), 3)
	if err == nil {
		t.Fatal("expected error for init == upper bound")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected *RangeError, got %T", err)
	}
	if rangeErr.Value != 3 || rangeErr.Lower != 0 || rangeErr.Upper != 3 {
		t.Fatalf("unexpected range error fields %#v", rangeErr)
	}
	if _, err := NewCircularRangeAt(ConstBound(0), ConstBound(3), -1); err == nil {
		t.Fatal("expected error for negative init")
	}
	r, err := NewCircularRangeAt(ConstBound(0), ConstBound(3), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Current() != 2 {
		t.Fatalf("expected current 2, got %d", r.Current())
	}
}

func TestCircularRangeAdvanceWraps(t *testing.T) {
	r, err := NewCircularRangeAt(ConstBound(0), ConstBound(3), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Advance(); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := r.Advance(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestCircularRangeRetreatWraps(t *testing.T) {
	r := NewCircularRange(ConstBound(0), ConstBound(4))
	if got := r.Retreat(); got != 3 {
		t.Fatalf("expected wrap to 3, got %d", got)
	}
	if got := r.Retreat(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestCircularRangeStaysInBounds(t *testing.T) {
	for n := 1; n <= 7; n++ {
		r := NewCircularRange(ConstBound(0), ConstBound(n))
		// deterministic mix of steps
		for i := 0; i < 50; i++ {
			var got int
			if (i*7+n)%3 == 0 {
				got = r.Retreat()
			} else {
				got = r.Advance()
			}
			if got < 0 || got >= n {
				t.Fatalf("n=%d step=%d: current %d escaped [0,%d)", n, i, got, n)
			}
		}
	}
}

func TestCircularRangeTracksLiveBounds(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	r := NewCircularRange(ConstBound(0), LenBound(&items))
	r.Advance()
	r.Advance()
	r.Advance()
	if r.Current() != 3 {
		t.Fatalf("expected 3, got %d", r.Current())
	}
	items = items[:2]
	if got := r.Advance(); got != 0 {
		t.Fatalf("expected wrap against shrunken bound, got %d", got)
	}
	if got := r.Retreat(); got != 1 {
		t.Fatalf("expected retreat to new last index 1, got %d", got)
	}
}

func TestCircularRangeEmptyIsNoOp(t *testing.T) {
	var items []string
	r := NewCircularRange(ConstBound(0), LenBound(&items))
	if !r.Empty() {
		t.Fatal("expected empty range")
	}
	if got := r.Advance(); got != 0 {
		t.Fatalf("expected advance to stay at 0, got %d", got)
	}
	if got := r.Retreat(); got != 0 {
		t.Fatalf("expected retreat to stay at 0, got %d", got)
	}
	if err := r.Validate(0); err == nil {
		t.Fatal("expected 0 to be invalid in an empty range")
	}
}

func TestCircularRangeContains(t *testing.T) {
	r := NewCircularRange(ConstBound(1), ConstBound(4))
	cases := map[int]bool{0: false, 1: true, 3: true, 4: false}
	for v, want := range cases {
		if got := r.Contains(v); got != want {
			t.Fatalf("Contains(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestCircularRangeContainsValue(t *testing.T) {
	r := NewCircularRange(ConstBound(0), ConstBound(3))
	ok, err := r.ContainsValue(int64(2))
	if err != nil || !ok {
		t.Fatalf("expected int64(2) inside, got %v/%v", ok, err)
	}
	ok, err = r.ContainsValue(uint8(5))
	if err != nil || ok {
		t.Fatalf("expected uint8(5) outside, got %v/%v", ok, err)
	}
	if _, err := r.ContainsValue("1"); !errors.Is(err, ErrNotInteger) {
		t.Fatalf("expected ErrNotInteger for string, got %v", err)
	}
	if _, err := r.ContainsValue(1.0); !errors.Is(err, ErrNotInteger) {
		t.Fatalf("expected ErrNotInteger for float, got %v", err)
	}
}

func TestCircularRangeSetAndReset(t *testing.T) {
	r := NewCircularRange(ConstBound(0), ConstBound(5))
	if err := r.Set(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Set(5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if r.Current() != 4 {
		t.Fatalf("expected failed Set to keep 4, got %d", r.Current())
	}
	r.Reset()
	if r.Current() != 0 {
		t.Fatalf("expected reset to 0, got %d", r.Current())
	}
}
