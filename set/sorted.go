package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortedItems returns the items of s in ascending order.
func SortedItems[T constraints.Ordered](s Set[T]) []T {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i] < items[j]
	})
	return items
}
