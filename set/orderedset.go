package set

import (
	"context"

	"github.com/denismitr/dll"
)

// OrderedSet - is a set that preserves insertion order.
// Duplicates keep the position of the first occurrence.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

// OrderedFromSlice builds an ordered set of the distinct values in items.
func OrderedFromSlice[T comparable](items []T) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	s.InsertSlice(items)
	return s
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Remove(item T) (modified bool) {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]*dll.Element[T])
	s.list = nil
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

func (s *OrderedSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for _, item := range sourceSet.Items() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	clone := NewOrderedSet[T]()
	clone.InsertSlice(s.Items())
	return clone
}

// Filter returns a new set of the items for which keep returns true,
// in the order of s.
func (s *OrderedSet[T]) Filter(keep Predicate[T]) *OrderedSet[T] {
	result := NewOrderedSet[T]()
	curr := s.list.Head()
	for curr != nil {
		if item := curr.Value(); keep(item) {
			result.Insert(item)
		}
		curr = curr.Next()
	}
	return result
}

// Union returns a new set of the items present in either operand:
// the items of s in order, then the items only in other.
func (s *OrderedSet[T]) Union(other Set[T]) *OrderedSet[T] {
	result := s.Clone()
	result.InsertSet(other)
	return result
}

// Intersection returns a new set of the items present in both
// operands, in the order of s.
func (s *OrderedSet[T]) Intersection(other Set[T]) *OrderedSet[T] {
	return s.Filter(other.Has)
}

// Difference returns a new set of the items present in s but
// not in other, in the order of s.
func (s *OrderedSet[T]) Difference(other Set[T]) *OrderedSet[T] {
	return s.Filter(func(item T) bool {
		return !other.Has(item)
	})
}

// SymmetricDifference returns a new set of the items present in
// exactly one of the two operands: those only in s, in the order
// of s, then those only in other.
func (s *OrderedSet[T]) SymmetricDifference(other Set[T]) *OrderedSet[T] {
	result := s.Difference(other)
	for _, item := range other.Items() {
		if _, found := s.m[item]; !found {
			result.Insert(item)
		}
	}
	return result
}

// Equal reports whether both operands contain exactly the same
// items, regardless of order.
func (s *OrderedSet[T]) Equal(other Set[T]) bool {
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

// Values sends the items to the returned channel in insertion order
// until exhaustion or context cancellation.
func (s *OrderedSet[T]) Values(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		curr := s.list.Head()
		for curr != nil {
			select {
			case resultCh <- curr.Value():
				curr = curr.Next()
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}
