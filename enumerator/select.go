package enumerator

// selectIter maps each parent element through fn.
//
// The mapped value is recomputed on every Current call and kept in a single
// slot that is overwritten by the next call; it is never cached across calls.
// fn must therefore return the same result for the same parent element.
type selectIter[T, U any] struct {
	parent Enumerator[T]
	fn     func(T) U
	value  U
}

// Select returns an enumerator yielding fn(x) for every element x of parent.
// The result type is inferred from fn.
func Select[T, U any](parent Enumerator[T], fn func(T) U) Enumerator[U] {
	return &selectIter[T, U]{parent: parent, fn: fn}
}

func (it *selectIter[T, U]) HasCurrent() bool { return it.parent.HasCurrent() }

func (it *selectIter[T, U]) Current() U {
	it.value = it.fn(it.parent.Current())
	return it.value
}

func (it *selectIter[T, U]) Advance() { it.parent.Advance() }
