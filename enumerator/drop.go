package enumerator

// dropIter skips the first n elements of its parent. The skip is performed
// lazily by the first query, not at construction.
type dropIter[T any] struct {
	parent    Enumerator[T]
	remaining int
}

// Drop returns an enumerator over parent without its first n elements.
// When n is at least the parent's length the result is empty; n <= 0 drops
// nothing.
func Drop[T any](parent Enumerator[T], n int) Enumerator[T] {
	return &dropIter[T]{parent: parent, remaining: n}
}

// normalize consumes whatever part of the skip is still owed and possible.
// Once the skip is paid it is a no-op.
func (it *dropIter[T]) normalize() {
	for it.remaining > 0 && it.parent.HasCurrent() {
		it.parent.Advance()
		it.remaining--
	}
}

func (it *dropIter[T]) HasCurrent() bool {
	it.normalize()
	return it.parent.HasCurrent()
}

func (it *dropIter[T]) Current() T {
	it.normalize()
	return it.parent.Current()
}

func (it *dropIter[T]) Advance() {
	it.normalize()
	it.parent.Advance()
}
