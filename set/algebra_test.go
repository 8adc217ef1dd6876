package set_test

import (
	"sort"
	"testing"

	"github.com/denismitr/finiteset/set"
	"github.com/stretchr/testify/assert"
)

func TestHashSet_Algebra(t *testing.T) {
	a := set.FromSlice([]rune("abracadabra"))
	b := set.FromSlice([]rune("alacazam"))

	t.Run("construction keeps distinct letters only", func(t *testing.T) {
		assert.Equal(t, []rune("abcdr"), set.SortedItems[rune](a))
		assert.Equal(t, []rune("aclmz"), set.SortedItems[rune](b))
	})

	t.Run("difference keeps letters in a but not in b", func(t *testing.T) {
		assert.Equal(t, []rune("bdr"), set.SortedItems[rune](a.Difference(b)))
	})

	t.Run("union keeps letters in either", func(t *testing.T) {
		assert.Equal(t, []rune("abcdlmrz"), set.SortedItems[rune](a.Union(b)))
	})

	t.Run("intersection keeps letters in both", func(t *testing.T) {
		assert.Equal(t, []rune("ac"), set.SortedItems[rune](a.Intersection(b)))
	})

	t.Run("symmetric difference keeps letters in exactly one", func(t *testing.T) {
		assert.Equal(t, []rune("bdlmrz"), set.SortedItems[rune](a.SymmetricDifference(b)))
	})

	t.Run("operands are never mutated", func(t *testing.T) {
		assert.Equal(t, []rune("abcdr"), set.SortedItems[rune](a))
		assert.Equal(t, []rune("aclmz"), set.SortedItems[rune](b))
	})
}

func TestHashSet_AlgebraLaws(t *testing.T) {
	a := set.FromSlice([]string{"Jake", "John", "Eric"})
	b := set.FromSlice([]string{"John", "Jill"})

	t.Run("union and intersection are commutative", func(t *testing.T) {
		assert.True(t, a.Union(b).Equal(b.Union(a)))
		assert.True(t, a.Intersection(b).Equal(b.Intersection(a)))

		inter := a.Intersection(b).Items()
		assert.Equal(t, []string{"John"}, inter)

		union := a.Union(b).Items()
		sort.Strings(union)
		assert.Equal(t, []string{"Eric", "Jake", "Jill", "John"}, union)
	})

	t.Run("symmetric difference is commutative", func(t *testing.T) {
		assert.True(t, a.SymmetricDifference(b).Equal(b.SymmetricDifference(a)))

		items := a.SymmetricDifference(b).Items()
		sort.Strings(items)
		assert.Equal(t, []string{"Eric", "Jake", "Jill"}, items)
	})

	t.Run("difference is not commutative", func(t *testing.T) {
		assert.False(t, a.Difference(b).Equal(b.Difference(a)))
	})

	t.Run("union and intersection are associative", func(t *testing.T) {
		c := set.FromSlice([]string{"Jill", "Mary", "Eric"})

		assert.True(t, a.Union(b).Union(c).Equal(a.Union(b.Union(c))))
		assert.True(t, a.Intersection(b).Intersection(c).Equal(a.Intersection(b.Intersection(c))))
	})

	t.Run("absorption: intersecting a with union of a and b gives a", func(t *testing.T) {
		assert.True(t, a.Intersection(a.Union(b)).Equal(a))
	})

	t.Run("difference and intersection partition the first operand", func(t *testing.T) {
		diff := a.Difference(b)
		inter := a.Intersection(b)

		assert.True(t, diff.Disjoint(inter))
		assert.True(t, diff.Union(inter).Equal(a))
	})

	t.Run("idempotence against itself", func(t *testing.T) {
		assert.True(t, a.Union(a).Equal(a))
		assert.True(t, a.Intersection(a).Equal(a))
		assert.True(t, a.Difference(a).IsEmpty())
		assert.True(t, a.SymmetricDifference(a).IsEmpty())
	})

	t.Run("round trip through items", func(t *testing.T) {
		assert.True(t, set.FromSlice(a.Items()).Equal(a))
	})
}

func TestHashSet_Predicates(t *testing.T) {
	a := set.FromSlice([]int{1, 2, 3})
	b := set.FromSlice([]int{1, 2, 3, 4})
	c := set.FromSlice([]int{5, 6})

	t.Run("subset", func(t *testing.T) {
		assert.True(t, a.SubsetOf(b))
		assert.False(t, b.SubsetOf(a))
		assert.True(t, a.SubsetOf(a))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.True(t, a.Disjoint(c))
		assert.False(t, a.Disjoint(b))
		assert.True(t, set.New[int]().Disjoint(a))
	})

	t.Run("equal across implementations", func(t *testing.T) {
		ordered := set.OrderedFromSlice([]int{3, 2, 1})
		assert.True(t, a.Equal(ordered))
		assert.True(t, ordered.Equal(a))
	})

	t.Run("filter keeps matching items", func(t *testing.T) {
		even := b.Filter(func(item int) bool { return item%2 == 0 })
		assert.Equal(t, []int{2, 4}, set.SortedItems[int](even))
	})
}
