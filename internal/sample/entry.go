package sample

import (
	"fmt"
	"io"
)

// Entry carries the literals used by the script entry sequence.
type Entry struct {
	A    int
	B    int
	Held int
}

// DefaultEntry returns the fixture literals: 10 + 20, and a holder of 42.
func DefaultEntry() Entry {
	return Entry{A: 10, B: 20, Held: 42}
}

// RunEntry writes the sum of e.A and e.B, then the value held by a Holder
// built from e.Held. Exactly two lines are written on success; nothing is
// written when the sum overflows.
func RunEntry(w io.Writer, e Entry) error {
	sum, err := AddInts(e.A, e.B)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, sum); err != nil {
		return fmt.Errorf("failed to write sum: %w", err)
	}

	obj := NewHolder(e.Held)
	if _, err := fmt.Fprintln(w, obj.Value()); err != nil {
		return fmt.Errorf("failed to write held value: %w", err)
	}
	return nil
}
