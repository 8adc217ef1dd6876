// Package set provides generic finite sets of comparable elements.
//
// Two implementations are offered: HashSet, an unordered set with
// undefined iteration order, and OrderedSet, which preserves insertion
// order. Element types are constrained to comparable, so an element
// type without a total equality relation is rejected at compile time.
// Sets are not safe for concurrent use.
package set

import "context"

type nothing struct{}

type (
	// Predicate reports whether an item should be kept.
	Predicate[T comparable] func(item T) bool

	// PredicateContext is a Predicate that may be cancelled or fail.
	PredicateContext[T comparable] func(ctx context.Context, item T) (keep bool, err error)
)

type Set[T comparable] interface {
	// Insert adds item, reporting whether the set changed.
	Insert(item T) (modified bool)
	// Remove deletes item if present, reporting whether the set changed.
	// Removing an absent item is a silent no-op.
	Remove(item T) (modified bool)
	Clear()
	Has(item T) bool
	Len() int
	Items() []T
	InsertSet(sourceSet Set[T]) (modified bool)
	InsertSlice(sourceSlice []T) (modified bool)
}
