// Package predicate composes boolean tests incrementally.
//
// A nil Predicate means "no criteria yet" and matches everything. And and Or
// treat a nil previous predicate as their identity, so a filter can be built
// by folding criteria one at a time without seeding it.
package predicate

// Predicate is a boolean test over T. nil is the absent predicate.
type Predicate[T any] func(T) bool

// And returns next if previous is nil, otherwise a predicate that is true
// when both are. next is not evaluated when previous is false.
func And[T any](previous, next Predicate[T]) Predicate[T] {
	if previous == nil {
		return next
	}
	return func(v T) bool {
		return previous(v) && next(v)
	}
}

// Or returns next if previous is nil, otherwise a predicate that is true
// when either is. next is not evaluated when previous is true.
func Or[T any](previous, next Predicate[T]) Predicate[T] {
	if previous == nil {
		return next
	}
	return func(v T) bool {
		return previous(v) || next(v)
	}
}

// Apply returns items unchanged when p is nil. Otherwise it returns a new
// slice holding the items for which p is true, in their original order.
func Apply[T any](p Predicate[T], items []T) []T {
	if p == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if p(item) {
			out = append(out, item)
		}
	}
	return out
}
