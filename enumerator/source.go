package enumerator

// Position is a forward-traversable location in a sequence. Two positions
// compare equal when they denote the same location.
type Position[P any, T any] interface {
	comparable
	// Deref returns the element at this position.
	Deref() T
	// Next returns the position following this one.
	Next() P
}

// Range is the source enumerator: it walks from begin until it reaches end.
// It borrows the underlying elements and never copies the sequence.
type Range[T any, P Position[P, T]] struct {
	begin P
	end   P
}

// NewRange creates an enumerator over the half-open interval [begin, end).
func NewRange[T any, P Position[P, T]](begin, end P) *Range[T, P] {
	return &Range[T, P]{begin: begin, end: end}
}

func (r *Range[T, P]) HasCurrent() bool { return r.begin != r.end }

func (r *Range[T, P]) Current() T {
	if r.begin == r.end {
		exhausted(opCurrent)
	}
	return r.begin.Deref()
}

func (r *Range[T, P]) Advance() {
	if r.begin == r.end {
		exhausted(opAdvance)
	}
	r.begin = r.begin.Next()
}

// --- Slice positions ---

// SlicePosition is a Position into a slice that yields element values.
type SlicePosition[T any] struct {
	items *[]T
	index int
}

func (p SlicePosition[T]) Deref() T { return (*p.items)[p.index] }

func (p SlicePosition[T]) Next() SlicePosition[T] {
	p.index++
	return p
}

// SliceBounds returns the begin and end positions of xs.
func SliceBounds[T any](xs []T) (begin, end SlicePosition[T]) {
	items := &xs
	return SlicePosition[T]{items: items}, SlicePosition[T]{items: items, index: len(xs)}
}

// FromSlice creates a source enumerator over the elements of xs.
func FromSlice[T any](xs []T) *Range[T, SlicePosition[T]] {
	begin, end := SliceBounds(xs)
	return NewRange[T, SlicePosition[T]](begin, end)
}

// PointerPosition is a Position into a slice that yields pointers to the
// elements, so large values are borrowed rather than copied.
type PointerPosition[T any] struct {
	items *[]T
	index int
}

func (p PointerPosition[T]) Deref() *T { return &(*p.items)[p.index] }

func (p PointerPosition[T]) Next() PointerPosition[T] {
	p.index++
	return p
}

// FromSlicePtr creates a source enumerator yielding a pointer to each element
// of xs. Writes through the pointers are visible in xs.
func FromSlicePtr[T any](xs []T) *Range[*T, PointerPosition[T]] {
	items := &xs
	return NewRange[*T, PointerPosition[T]](PointerPosition[T]{items: items}, PointerPosition[T]{items: items, index: len(xs)})
}
