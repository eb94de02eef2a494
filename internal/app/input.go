package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// StdinSource names standard input in OpenInput.
const StdinSource = "-"

// ReadCandidates reads one candidate per line, trimming surrounding
// whitespace from each.
func ReadCandidates(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	return lines, nil
}

// OpenInput opens path for reading; an empty path or "-" selects stdin.
func OpenInput(path string) (io.ReadCloser, string, error) {
	if strings.TrimSpace(path) == "" || path == StdinSource {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("open input: %w", err)
	}
	return f, path, nil
}

// LoadCandidates opens path and reads every candidate from it.
func LoadCandidates(path string) ([]string, string, error) {
	rc, source, err := OpenInput(path)
	if err != nil {
		return nil, source, err
	}
	defer rc.Close()
	lines, err := ReadCandidates(rc)
	return lines, source, err
}
