package avl

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

// checkInvariants walks the whole tree verifying stored heights, balance
// factors, and parent links.
func checkInvariants(t *testing.T, tr *Tree[int]) {
	t.Helper()
	var walk func(n *abstract.BinaryNode[int]) int
	walk = func(n *abstract.BinaryNode[int]) int {
		if n == nil {
			return 0
		}
		lh, rh := walk(n.Left), walk(n.Right)
		bf := lh - rh
		require.True(t, bf >= -1 && bf <= 1, "node %d out of balance: %d", n.Value, bf)
		want := lh
		if rh > lh {
			want = rh
		}
		require.Equal(t, want+1, n.Height, "node %d stored height", n.Value)
		if n.Left != nil {
			require.Same(t, n, n.Left.Parent)
		}
		if n.Right != nil {
			require.Same(t, n, n.Right.Parent)
		}
		return n.Height
	}
	if tr.root != nil {
		require.Nil(t, tr.root.Parent)
	}
	walk(tr.root)
}

func rotations(ss []steps.Step) int {
	n := 0
	for _, s := range ss {
		if s.Action == steps.ActionRotateLeft || s.Action == steps.ActionRotateRight {
			n++
		}
	}
	return n
}

func TestInsertRotations(t *testing.T) {
	// All four imbalance cases converge on the same three-node shape.
	cases := map[string][]int{
		"left-left":   {30, 20, 10},
		"right-right": {10, 20, 30},
		"left-right":  {30, 10, 20},
		"right-left":  {10, 30, 20},
	}
	for name, inserts := range cases {
		t.Run(name, func(t *testing.T) {
			tr := New[int](abstract.Compare[int])
			for _, v := range inserts {
				require.True(t, tr.Insert(v))
			}
			require.Equal(t, "(10)20(30)", tr.String())
			require.Equal(t, 2, tr.Height())
			checkInvariants(t, tr)
		})
	}
}

func TestInsertNoRotationNeeded(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	for _, v := range []int{30, 20, 40, 10, 25, 35, 50} {
		require.True(t, tr.Insert(v))
	}
	require.Zero(t, rotations(tr.Steps()))
	require.Equal(t, 3, tr.Height())
	require.Equal(t, "((10)20(25))30((35)40(50))", tr.String())
	checkInvariants(t, tr)
}

func TestDeleteRebalances(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(v)
	}
	tr.Steps()
	for _, v := range []int{5, 7, 6} {
		require.True(t, tr.Delete(v))
		checkInvariants(t, tr)
	}
	require.Equal(t, "(1)2((3)4)", tr.String())
	require.Equal(t, 1, rotations(tr.Steps()))

	var got []int
	tr.Ascend(func(k int) bool { got = append(got, k); return true })
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestDeleteSuccessorCase(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(v)
	}
	// Deleting an inner node with two children moves its successor up.
	require.True(t, tr.Delete(4))
	checkInvariants(t, tr)
	var got []int
	tr.Ascend(func(k int) bool { got = append(got, k); return true })
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, got)
	require.Equal(t, 5, tr.root.Value)
}

func TestRandomized(t *testing.T) {
	for _, size := range []int{1, 2, 16, 128, 1024} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			tr := New[int](abstract.Compare[int])
			perm := rand.Perm(size)
			for i, v := range perm {
				require.True(t, tr.Insert(v))
				require.False(t, tr.Insert(v))
				require.Equal(t, i+1, tr.Len())
			}
			checkInvariants(t, tr)

			var got []int
			tr.Ascend(func(k int) bool { got = append(got, k); return true })
			require.Len(t, got, size)
			require.True(t, sort.IntsAreSorted(got))

			for _, v := range perm[:size/2] {
				require.True(t, tr.Delete(v))
				require.False(t, tr.Delete(v))
			}
			checkInvariants(t, tr)
			require.Equal(t, size-size/2, tr.Len())
			for _, v := range perm[size/2:] {
				_, ok := tr.Search(v)
				require.True(t, ok)
			}
			tr.Steps()
		})
	}
}

func TestAscendingInsertStaysShallow(t *testing.T) {
	tr := New[int](abstract.Compare[int])
	for v := 1; v <= 1024; v++ {
		tr.Insert(v)
	}
	// 1.44 * log2(1024) rounds up to 15; a plain BST would be 1024 deep.
	require.LessOrEqual(t, tr.Height(), 15)
	checkInvariants(t, tr)
}

func TestStructureContract(t *testing.T) {
	bus := abstract.NewBus()
	var events []string
	for _, topic := range []string{
		abstract.EventInserted, abstract.EventDeleted, abstract.EventSearched, abstract.EventReset,
	} {
		topic := topic
		bus.Subscribe(topic, func(m abstract.Mutation) { events = append(events, topic+":"+m.Value) })
	}

	s := NewStructure(bus)
	require.Equal(t, "AVL Tree", s.Name())
	require.Equal(t, abstract.AVL, s.Kind())
	require.False(t, s.Caps().Has(abstract.CapBalance))

	require.NoError(t, s.Insert("10"))
	require.NoError(t, s.Insert("20"))
	require.NoError(t, s.Insert("30"))
	require.NoError(t, s.Insert("30"))
	require.Error(t, s.Insert("ten"))

	_, err := s.Search("20")
	require.NoError(t, err)
	_, err = s.Search("99")
	require.True(t, errors.Is(err, abstract.ErrNotFound))

	ok, err := s.Delete("10")
	require.NoError(t, err)
	require.True(t, ok)

	s.Clear()
	require.Nil(t, s.Root())
	require.Equal(t, []string{
		"inserted:10", "inserted:20", "inserted:30",
		"searched:20", "searched:99",
		"deleted:10",
		"reset:",
	}, events)
}
