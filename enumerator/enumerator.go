package enumerator

import "github.com/kbukum/enumkit/errors"

// Enumerator is a stateful, single-pass cursor over a sequence.
type Enumerator[T any] interface {
	// HasCurrent reports whether Current and Advance may be called.
	HasCurrent() bool
	// Current returns the element under the cursor.
	Current() T
	// Advance moves the cursor to the next element.
	Advance()
}

// Operation names reported in ENUMERATOR_EXHAUSTED panics.
const (
	opCurrent = "Current"
	opAdvance = "Advance"
)

func exhausted(op string) {
	panic(errors.Exhausted(op))
}
