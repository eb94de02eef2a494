package app

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCandidatesTrimsLines(t *testing.T) {
	got, err := ReadCandidates(strings.NewReader("  apple \n\tbanana\n\ncherry"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"apple", "banana", "", "cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReadCandidatesEmpty(t *testing.T) {
	got, err := ReadCandidates(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %q", got)
	}
}

func TestReadCandidatesHandlesCRLF(t *testing.T) {
	got, err := ReadCandidates(strings.NewReader("a\r\nb\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %q", got)
	}
}

func TestLoadCandidatesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	got, source, err := LoadCandidates(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != path {
		t.Fatalf("expected source %q, got %q", path, source)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Fatalf("expected [one two], got %q", got)
	}
}

func TestOpenInputStdin(t *testing.T) {
	rc, source, err := OpenInput(StdinSource)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()
	if source != "stdin" {
		t.Fatalf("expected stdin source, got %q", source)
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	if _, _, err := OpenInput(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
