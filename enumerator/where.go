package enumerator

// whereIter yields only the parent elements that satisfy keep.
type whereIter[T any] struct {
	parent Enumerator[T]
	keep   func(T) bool
}

// Where returns an enumerator over the elements of parent for which keep
// returns true, in their original order.
func Where[T any](parent Enumerator[T], keep func(T) bool) Enumerator[T] {
	return &whereIter[T]{parent: parent, keep: keep}
}

// WhereNeq returns an enumerator over the elements of parent not equal to v.
func WhereNeq[T comparable](parent Enumerator[T], v T) Enumerator[T] {
	return Where(parent, func(x T) bool { return x != v })
}

// normalize advances the parent past rejected elements. After it returns the
// parent is either exhausted or positioned on an element keep accepts, so a
// repeated call does no work.
func (it *whereIter[T]) normalize() {
	for it.parent.HasCurrent() && !it.keep(it.parent.Current()) {
		it.parent.Advance()
	}
}

func (it *whereIter[T]) HasCurrent() bool {
	it.normalize()
	return it.parent.HasCurrent()
}

func (it *whereIter[T]) Current() T {
	it.normalize()
	return it.parent.Current()
}

func (it *whereIter[T]) Advance() {
	it.normalize()
	it.parent.Advance()
}
