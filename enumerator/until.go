package enumerator

// untilIter yields parent elements up to, but excluding, the first element
// that satisfies stop. Elements after that point are unreachable.
type untilIter[T any] struct {
	parent Enumerator[T]
	stop   func(T) bool
}

// Until returns an enumerator that ends at the first element of parent for
// which stop returns true.
func Until[T any](parent Enumerator[T], stop func(T) bool) Enumerator[T] {
	return &untilIter[T]{parent: parent, stop: stop}
}

// UntilEq returns an enumerator that ends at the first element equal to v.
func UntilEq[T comparable](parent Enumerator[T], v T) Enumerator[T] {
	return Until(parent, func(x T) bool { return x == v })
}

func (it *untilIter[T]) HasCurrent() bool {
	return it.parent.HasCurrent() && !it.stop(it.parent.Current())
}

func (it *untilIter[T]) Current() T {
	if !it.HasCurrent() {
		exhausted(opCurrent)
	}
	return it.parent.Current()
}

func (it *untilIter[T]) Advance() {
	if !it.HasCurrent() {
		exhausted(opAdvance)
	}
	it.parent.Advance()
}
