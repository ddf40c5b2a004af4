// Package enumerator provides lazy, composable, single-pass cursors over
// in-memory sequences.
//
// An Enumerator exposes three operations: HasCurrent reports whether a
// current element exists, Current returns it, and Advance moves past it.
// Combinators wrap exactly one parent enumerator and adapt those three calls,
// so no work happens until a materializer (ToSlice, CopyTo, WriteTo, Each)
// pulls elements through the chain.
//
// # Combinators
//
//   - Drop: skip a prefix of n elements, lazily on first query
//   - Take: expose at most n elements
//   - Select: transform each element; recomputed on every Current call
//   - Until: stop before the first element matching a predicate
//   - Where: keep only elements matching a predicate
//   - Tap: report each element as it is advanced past; an element the
//     consumer stops on without advancing is never reported
//
// UntilEq and WhereNeq are the equality-based shorthands of Until and Where.
//
// # Usage
//
//	xs := []int{1, 6, 2, 1, 1, 5, 1}
//	got := enumerator.From(enumerator.FromSlice(xs)).
//	    Drop(1).
//	    Where(func(x int) bool { return x != 1 }).
//	    ToSlice() // [6 2 5]
//
// Type-changing and comparable-only steps are free functions:
//
//	wide := enumerator.Select[int](enumerator.FromSlice(xs), func(x int) int64 { return int64(x) })
//	head := enumerator.UntilEq[int64](wide, 5)
//
// # Contract
//
// Calling Current or Advance while HasCurrent is false panics with an
// *errors.AppError carrying code ENUMERATOR_EXHAUSTED. Wrapping an enumerator
// transfers it to the wrapper: the parent must not be driven directly
// afterwards. Enumerators are not safe for concurrent use.
package enumerator
