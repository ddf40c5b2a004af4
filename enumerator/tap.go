package enumerator

// tapIter calls fn with each element as it is advanced past, then passes the
// sequence through unchanged. Use for logging, metrics, or assertions.
type tapIter[T any] struct {
	parent Enumerator[T]
	fn     func(T)
}

// Tap returns an enumerator that reports every element it steps over to fn.
// fn sees each element exactly once, at Advance time, regardless of how many
// times Current is called.
func Tap[T any](parent Enumerator[T], fn func(T)) Enumerator[T] {
	return &tapIter[T]{parent: parent, fn: fn}
}

func (it *tapIter[T]) HasCurrent() bool { return it.parent.HasCurrent() }

func (it *tapIter[T]) Current() T { return it.parent.Current() }

func (it *tapIter[T]) Advance() {
	it.fn(it.parent.Current())
	it.parent.Advance()
}
