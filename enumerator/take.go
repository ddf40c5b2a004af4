package enumerator

// takeIter exposes at most n elements of its parent.
type takeIter[T any] struct {
	parent    Enumerator[T]
	remaining int
}

// Take returns an enumerator over the first n elements of parent. It ends
// early if parent is exhausted first; n <= 0 yields nothing.
func Take[T any](parent Enumerator[T], n int) Enumerator[T] {
	return &takeIter[T]{parent: parent, remaining: n}
}

func (it *takeIter[T]) HasCurrent() bool {
	return it.remaining > 0 && it.parent.HasCurrent()
}

func (it *takeIter[T]) Current() T {
	if it.remaining <= 0 {
		exhausted(opCurrent)
	}
	return it.parent.Current()
}

func (it *takeIter[T]) Advance() {
	if it.remaining <= 0 {
		exhausted(opAdvance)
	}
	it.remaining--
	it.parent.Advance()
}
