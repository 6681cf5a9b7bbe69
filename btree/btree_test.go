package btree

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies node occupancy, uniform leaf depth, and the
// stored size.
func checkInvariants(t *testing.T, tr *Tree[int]) {
	t.Helper()
	if tr.root == nil {
		require.Zero(t, tr.Len())
		return
	}
	leafDepth := -1
	count := 0
	var walk func(n *abstract.MultiNode[int], depth int)
	walk = func(n *abstract.MultiNode[int], depth int) {
		if n != tr.root {
			require.GreaterOrEqual(t, len(n.Keys), tr.minKeys())
		}
		require.LessOrEqual(t, len(n.Keys), tr.maxKeys())
		require.True(t, sort.IntsAreSorted(n.Keys))
		count += len(n.Keys)
		if n.Leaf {
			require.Empty(t, n.Children)
			if leafDepth == -1 {
				leafDepth = depth
			}
			require.Equal(t, leafDepth, depth, "ragged leaf depth")
			return
		}
		require.Len(t, n.Children, len(n.Keys)+1)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	walk(tr.root, 0)
	require.Equal(t, tr.Len(), count)
}

func ascending(tr *Tree[int]) []int {
	var got []int
	tr.Ascend(func(k int) bool { got = append(got, k); return true })
	return got
}

func TestAscendingInsert(t *testing.T) {
	tr := New[int](2, abstract.Compare[int])
	for v := 1; v <= 5; v++ {
		require.True(t, tr.Insert(v))
	}
	require.Equal(t, "(1)2(3,4,5)", tr.String())
	require.Equal(t, 2, tr.Height())
	require.Equal(t, 5, tr.Len())
	require.Equal(t, []int{2}, tr.root.Keys)
	checkInvariants(t, tr)
}

func TestDuplicateInsertOnFullRoot(t *testing.T) {
	tr := New[int](2, abstract.Compare[int])
	for v := 1; v <= 3; v++ {
		tr.Insert(v)
	}
	// The preemptive root split happens before the duplicate is noticed;
	// the key set must still be unchanged.
	require.False(t, tr.Insert(2))
	require.Equal(t, 3, tr.Len())
	require.Equal(t, "(1)2(3)", tr.String())
	checkInvariants(t, tr)
}

func TestBadDegreePanics(t *testing.T) {
	require.Panics(t, func() { New[int](1, abstract.Compare[int]) })
}

func TestDeleteToEmpty(t *testing.T) {
	tr := New[int](2, abstract.Compare[int])
	for v := 1; v <= 9; v++ {
		tr.Insert(v)
	}
	for v := 9; v >= 1; v-- {
		require.True(t, tr.Delete(v))
		require.False(t, tr.Delete(v))
		checkInvariants(t, tr)
	}
	require.Zero(t, tr.Len())
	require.Nil(t, tr.Root())
	require.Zero(t, tr.Height())
	require.Equal(t, ";", tr.String())
}

func TestRandomized(t *testing.T) {
	for _, degree := range []int{2, 3, 5} {
		for _, size := range []int{10, 100, 1000} {
			t.Run(fmt.Sprintf("degree=%d/size=%d", degree, size), func(t *testing.T) {
				tr := New[int](degree, abstract.Compare[int])
				perm := rand.Perm(size)
				for _, v := range perm {
					require.True(t, tr.Insert(v))
					require.False(t, tr.Insert(v))
				}
				checkInvariants(t, tr)

				got := ascending(tr)
				require.Len(t, got, size)
				require.True(t, sort.IntsAreSorted(got))

				for _, v := range perm {
					n, ok := tr.Search(v)
					require.True(t, ok)
					require.Contains(t, n.Keys, v)
				}
				_, ok := tr.Search(size)
				require.False(t, ok)

				for i, v := range perm[:size/2] {
					require.True(t, tr.Delete(v), "delete %d", v)
					if i%16 == 0 {
						checkInvariants(t, tr)
					}
				}
				checkInvariants(t, tr)
				got = ascending(tr)
				require.Len(t, got, size-size/2)
				require.True(t, sort.IntsAreSorted(got))
				tr.Steps()
			})
		}
	}
}

func TestAscendingInsertHeightBound(t *testing.T) {
	tr := New[int](3, abstract.Compare[int])
	last := 0
	for v := 0; v < 500; v++ {
		tr.Insert(v)
		h := tr.Height()
		require.GreaterOrEqual(t, h, last, "height only grows under inserts")
		last = h
	}
	// Every node except the root holds at least t-1 keys, which caps the
	// height at 1+log_t((n+1)/2) levels.
	require.LessOrEqual(t, tr.Height(), 6)
	checkInvariants(t, tr)
}
