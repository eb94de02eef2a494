package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/atomicstack/fuzzy-pick/internal/picker"
)

// WriteOutcome prints each selected item on its own line. Cancelled
// outcomes print nothing.
func WriteOutcome(w io.Writer, out picker.Outcome) error {
	if out.IsCancelled() {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, item := range out.Items {
		if _, err := fmt.Fprintln(bw, item); err != nil {
			return fmt.Errorf("write selection: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}
