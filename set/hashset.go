package set

import (
	"context"

	"github.com/denismitr/finiteset/utils"
)

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m map[T]nothing
}

var _ Set[int] = (*HashSet[int])(nil)

func New[T comparable]() *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]nothing),
	}
}

// FromSlice builds a set of the distinct values in items.
// Duplicates collapse to a single member.
func FromSlice[T comparable](items []T) *HashSet[T] {
	s := &HashSet[T]{
		m: make(map[T]nothing, len(items)),
	}
	s.InsertSlice(items)
	return s
}

// FromMapKeys builds a set of the keys of m.
func FromMapKeys[K comparable, V any](m map[K]V) *HashSet[K] {
	s := &HashSet[K]{
		m: make(map[K]nothing, len(m)),
	}
	for k := range m {
		s.m[k] = nothing{}
	}
	return s
}

// Filtered builds, in a single pass, a set of the distinct values
// in items for which keep returns true.
func Filtered[T comparable](items []T, keep Predicate[T]) *HashSet[T] {
	s := New[T]()
	for _, item := range items {
		if keep(item) {
			s.m[item] = nothing{}
		}
	}
	return s
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = nothing{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Remove(item T) (modified bool) {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]nothing)
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

func (s *HashSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Clone() *HashSet[T] {
	clone := &HashSet[T]{
		m: make(map[T]nothing, len(s.m)),
	}
	for item := range s.m {
		clone.m[item] = nothing{}
	}
	return clone
}

// Pop removes and returns an arbitrary item.
// The second return value is false when the set is empty.
func (s *HashSet[T]) Pop() (T, bool) {
	for item := range s.m {
		delete(s.m, item)
		return item, true
	}
	return utils.GetZero[T](), false
}

// Filter returns a new set of the items for which keep returns true.
func (s *HashSet[T]) Filter(keep Predicate[T]) *HashSet[T] {
	result := New[T]()
	for item := range s.m {
		if keep(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

// Union returns a new set of the items present in either operand.
func (s *HashSet[T]) Union(other Set[T]) *HashSet[T] {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

// Intersection returns a new set of the items present in both operands.
func (s *HashSet[T]) Intersection(other Set[T]) *HashSet[T] {
	result := New[T]()
	for item := range s.m {
		if other.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

// Difference returns a new set of the items present in s but not in other.
func (s *HashSet[T]) Difference(other Set[T]) *HashSet[T] {
	result := New[T]()
	for item := range s.m {
		if !other.Has(item) {
			result.m[item] = nothing{}
		}
	}
	return result
}

// SymmetricDifference returns a new set of the items present
// in exactly one of the two operands.
func (s *HashSet[T]) SymmetricDifference(other Set[T]) *HashSet[T] {
	result := New[T]()
	for item := range s.m {
		if !other.Has(item) {
			result.m[item] = nothing{}
		}
	}
	for _, item := range other.Items() {
		if _, found := s.m[item]; !found {
			result.m[item] = nothing{}
		}
	}
	return result
}

// Equal reports whether both operands contain exactly the same items.
func (s *HashSet[T]) Equal(other Set[T]) bool {
	if len(s.m) != other.Len() {
		return false
	}
	for item := range s.m {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every item of s is in other.
func (s *HashSet[T]) SubsetOf(other Set[T]) bool {
	if len(s.m) > other.Len() {
		return false
	}
	for item := range s.m {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Disjoint reports whether the operands share no items.
func (s *HashSet[T]) Disjoint(other Set[T]) bool {
	for item := range s.m {
		if other.Has(item) {
			return false
		}
	}
	return true
}

// Values sends the items to the returned channel in undefined order
// until exhaustion or context cancellation.
func (s *HashSet[T]) Values(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		for item := range s.m {
			select {
			case resultCh <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}
