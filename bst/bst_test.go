package bst

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
	"github.com/stretchr/testify/require"
)

func TestTreeRandomized(t *testing.T) {
	for _, size := range []int{1, 2, 10, 100, 1000} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			tr := New[int](abstract.Compare[int])
			perm := rand.Perm(size)
			for _, v := range perm {
				require.True(t, tr.Insert(v))
			}
			for _, v := range perm {
				require.False(t, tr.Insert(v), "duplicate %d", v)
			}
			require.Equal(t, size, tr.Len())

			var got []int
			tr.Ascend(func(k int) bool { got = append(got, k); return true })
			require.Len(t, got, size)
			require.True(t, sort.IntsAreSorted(got))

			for _, v := range perm {
				n, ok := tr.Search(v)
				require.True(t, ok)
				require.Equal(t, v, n.Value)
			}
			_, ok := tr.Search(size)
			require.False(t, ok)

			del := perm[:size/2]
			for _, v := range del {
				require.True(t, tr.Delete(v))
				require.False(t, tr.Delete(v))
			}
			require.Equal(t, size-len(del), tr.Len())
			got = got[:0]
			tr.Ascend(func(k int) bool { got = append(got, k); return true })
			require.Len(t, got, size-len(del))
			require.True(t, sort.IntsAreSorted(got))
			tr.Steps()
		})
	}
}

func TestDeleteRoot(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tr.Insert(v)
	}
	// The root has two children; its in-order successor moves up.
	require.True(t, tr.Delete(50))
	var got []int
	tr.Ascend(func(k int) bool { got = append(got, k); return true })
	require.Equal(t, []int{20, 30, 40, 60, 70, 80}, got)
	n, ok := tr.Search(60)
	require.True(t, ok)
	require.Nil(t, n.Parent)
}

func TestBalance(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	for v := 1; v <= 7; v++ {
		tr.Insert(v)
	}
	require.Equal(t, 7, tr.Height())
	require.True(t, tr.Balance())
	require.Equal(t, 3, tr.Height())
	require.Equal(t, "((1)2(3))4((5)6(7))", tr.String())

	var got []int
	tr.Ascend(func(k int) bool { got = append(got, k); return true })
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)
}

func TestBalanceSmallTree(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	require.False(t, tr.Balance())
	tr.Insert(2)
	tr.Insert(1)
	require.False(t, tr.Balance())
	require.Equal(t, 2, tr.Height())
}

func TestBalanceMinimalHeight(t *testing.T) {
	for _, size := range []int{3, 10, 63, 64, 500} {
		tr := New[int](abstract.Compare[int])
		for v := 0; v < size; v++ {
			tr.Insert(v)
		}
		require.True(t, tr.Balance())
		want := 0
		for n := size; n > 0; n >>= 1 {
			want++
		}
		require.Equal(t, want, tr.Height(), "size %d", size)
	}
}

func stepStrings(ss []steps.Step) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	return out
}

func TestInsertSteps(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	tr.Insert(10)
	tr.Insert(5)
	require.Equal(t, []string{
		"insert 10: rooted 10",
		"compare 10: 5 vs 10",
		"insert 5: attached under 10",
	}, stepStrings(tr.Steps()))
	// Drained steps do not reappear.
	require.Empty(t, tr.Steps())
}

func TestStructureContract(t *testing.T) {
	bus := abstract.NewBus()
	var inserted, deleted, searched, reset []string
	bus.Subscribe(abstract.EventInserted, func(m abstract.Mutation) { inserted = append(inserted, m.Value) })
	bus.Subscribe(abstract.EventDeleted, func(m abstract.Mutation) { deleted = append(deleted, m.Value) })
	bus.Subscribe(abstract.EventSearched, func(m abstract.Mutation) { searched = append(searched, m.Value) })
	bus.Subscribe(abstract.EventReset, func(m abstract.Mutation) { reset = append(reset, m.Value) })

	s := NewStructure(bus)
	require.Equal(t, "Binary Search Tree", s.Name())
	require.Equal(t, abstract.BST, s.Kind())
	require.True(t, s.Caps().Has(abstract.CapBalance))
	require.True(t, s.Empty())
	require.Nil(t, s.Root())

	require.NoError(t, s.Insert("42"))
	require.NoError(t, s.Insert("42")) // duplicate: no error, no event
	require.NoError(t, s.Insert("7"))
	require.Equal(t, []string{"42", "7"}, inserted)

	err := s.Insert("x")
	require.True(t, errors.Is(err, abstract.ErrInvalidValue))
	require.Equal(t, 2, s.Len())

	n, err := s.Search("7")
	require.NoError(t, err)
	require.Equal(t, "7", n.Label())
	_, err = s.Search("8")
	require.True(t, errors.Is(err, abstract.ErrNotFound))
	require.Equal(t, []string{"7", "8"}, searched)

	ok, err := s.Delete("8")
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = s.Delete("7")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"7"}, deleted)

	var labels []string
	s.InOrder(func(n abstract.Node) bool { labels = append(labels, n.Label()); return true })
	require.Equal(t, []string{"42"}, labels)

	s.Clear()
	require.True(t, s.Empty())
	require.Zero(t, s.Height())
	require.Nil(t, s.Root())
	require.Len(t, reset, 1)
}
