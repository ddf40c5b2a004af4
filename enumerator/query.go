package enumerator

import "iter"

// Query is a fluent handle on an enumerator chain. Each chaining method wraps
// the current chain in one more combinator and returns the new Query by value.
//
// Copying a Query copies the handle, not the iteration state: all copies
// drive the same underlying cursors, so only the last Query built from a chain
// should be used.
//
// Query implements Enumerator, so it can be passed to Select, UntilEq and
// WhereNeq, which cannot be methods because they change or constrain the
// element type.
type Query[T any] struct {
	e Enumerator[T]
}

// From wraps e in a Query.
func From[T any](e Enumerator[T]) Query[T] {
	if q, ok := e.(Query[T]); ok {
		return q
	}
	return Query[T]{e: e}
}

// Of creates a Query over the elements of xs.
func Of[T any](xs ...T) Query[T] {
	return From[T](FromSlice(xs))
}

// Enumerator returns the chain built so far.
func (q Query[T]) Enumerator() Enumerator[T] { return q.e }

func (q Query[T]) HasCurrent() bool { return q.e.HasCurrent() }

func (q Query[T]) Current() T { return q.e.Current() }

func (q Query[T]) Advance() { q.e.Advance() }

// --- Combinators ---

func (q Query[T]) Drop(n int) Query[T] { return Query[T]{e: Drop(q.e, n)} }

func (q Query[T]) Take(n int) Query[T] { return Query[T]{e: Take(q.e, n)} }

func (q Query[T]) Until(stop func(T) bool) Query[T] { return Query[T]{e: Until(q.e, stop)} }

func (q Query[T]) Where(keep func(T) bool) Query[T] { return Query[T]{e: Where(q.e, keep)} }

func (q Query[T]) Tap(fn func(T)) Query[T] { return Query[T]{e: Tap(q.e, fn)} }

// --- Terminals ---

func (q Query[T]) ToSlice() []T { return ToSlice(q.e) }

func (q Query[T]) CopyTo(dst []T) int { return CopyTo(q.e, dst) }

func (q Query[T]) WriteTo(sink Sink[T]) (int, error) { return WriteTo(q.e, sink) }

func (q Query[T]) Each(fn func(T)) { Each(q.e, fn) }

func (q Query[T]) Count() int { return Count(q.e) }

func (q Query[T]) All() iter.Seq[T] { return All(q.e) }
