package enumerator

import "iter"

// Sink receives the elements written by WriteTo.
type Sink[T any] interface {
	Put(v T) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc[T any] func(v T) error

// Put calls f(v).
func (f SinkFunc[T]) Put(v T) error { return f(v) }

// SliceSink appends every element it receives to Items.
type SliceSink[T any] struct {
	Items []T
}

// Put appends v.
func (s *SliceSink[T]) Put(v T) error {
	s.Items = append(s.Items, v)
	return nil
}

// --- Terminals ---

// ToSlice drains e and returns its elements in encounter order. The result is
// never nil.
func ToSlice[T any](e Enumerator[T]) []T {
	res := []T{}
	for e.HasCurrent() {
		res = append(res, e.Current())
		e.Advance()
	}
	return res
}

// CopyTo writes the elements of e into dst in lockstep and returns how many
// were written. It stops when e is exhausted or dst is full, whichever comes
// first; in the latter case e is left positioned on the first element that
// did not fit.
func CopyTo[T any](e Enumerator[T], dst []T) int {
	n := 0
	for n < len(dst) && e.HasCurrent() {
		dst[n] = e.Current()
		e.Advance()
		n++
	}
	return n
}

// WriteTo drains e into sink and returns the number of elements accepted.
// It stops at the first error returned by sink; the rejected element is not
// counted and e is not advanced past it.
func WriteTo[T any](e Enumerator[T], sink Sink[T]) (int, error) {
	n := 0
	for e.HasCurrent() {
		if err := sink.Put(e.Current()); err != nil {
			return n, err
		}
		e.Advance()
		n++
	}
	return n, nil
}

// Each calls fn for every element of e.
func Each[T any](e Enumerator[T], fn func(T)) {
	for e.HasCurrent() {
		fn(e.Current())
		e.Advance()
	}
}

// Count drains e and returns the number of elements it produced.
func Count[T any](e Enumerator[T]) int {
	n := 0
	for e.HasCurrent() {
		e.Advance()
		n++
	}
	return n
}

// All adapts e to a range-over-func sequence. Breaking out of the loop leaves
// e positioned on the element that was last yielded.
func All[T any](e Enumerator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e.HasCurrent() {
			if !yield(e.Current()) {
				return
			}
			e.Advance()
		}
	}
}
