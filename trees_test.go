package trees_test

import (
	"testing"

	trees "github.com/omercnkc/trees-data-structure"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for id, want := range map[string]trees.Kind{
		"bst":                 trees.BST,
		"binary-search-tree":  trees.BST,
		"AVL":                 trees.AVL,
		"avl-tree":            trees.AVL,
		"red-black":           trees.RedBlack,
		"rbt":                 trees.RedBlack,
		"min-heap":            trees.MinHeap,
		"heap":                trees.MinHeap,
		" trie ":              trees.Trie,
		"prefix-tree":         trees.Trie,
		"btree":               trees.BTree,
		"B-Tree":              trees.BTree,
		"b+tree":              trees.BPlusTree,
		"bplus":               trees.BPlusTree,
		"segment-tree":        trees.SegmentTree,
		"segtree":             trees.SegmentTree,
		"fenwick":             trees.FenwickTree,
		"binary-indexed-tree": trees.FenwickTree,
	} {
		kind, ok := trees.ParseKind(id)
		require.True(t, ok, "id %q", id)
		require.Equal(t, want, kind, "id %q", id)
	}

	// Canonical ids round-trip.
	for _, kind := range trees.Kinds() {
		got, ok := trees.ParseKind(kind.String())
		require.True(t, ok)
		require.Equal(t, kind, got)
	}
}

func TestCreateFallsBackToBST(t *testing.T) {
	_, ok := trees.ParseKind("wat")
	require.False(t, ok)

	s := trees.Create("wat")
	require.Equal(t, trees.BST, s.Kind())
	require.NoError(t, s.Insert("1"))
	require.Equal(t, 1, s.Len())
}

func TestNewHonorsOptions(t *testing.T) {
	bus := trees.NewBus()
	var inserted int
	bus.Subscribe(trees.EventInserted, func(trees.Mutation) { inserted++ })

	s := trees.New(trees.BTree, trees.WithDegree(2), trees.WithBus(bus))
	for _, v := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, s.Insert(v))
	}

	// Degree 2 caps a node at three keys, so five inserts force a split.
	require.Equal(t, "(1)2(3,4,5)", s.String())
	require.Equal(t, 5, inserted)
}

func TestEveryKindSatisfiesContract(t *testing.T) {
	for _, kind := range trees.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			bus := trees.NewBus()
			counts := make(map[string]int)
			trees.LogEvents(bus, func(topic string, _ trees.Mutation) { counts[topic]++ })

			s := trees.New(kind, trees.WithBus(bus))
			require.Equal(t, kind, s.Kind())
			require.NotEqual(t, "unknown", s.Kind().String())
			require.NotEmpty(t, s.Name())
			require.True(t, s.Caps().Has(trees.CapInsert|trees.CapSearch))

			require.True(t, s.Empty())
			require.Equal(t, 0, s.Len())
			require.Equal(t, 0, s.Height())

			for _, v := range []string{"5", "3", "8"} {
				require.NoError(t, s.Insert(v))
			}
			require.Equal(t, 3, s.Len())
			require.False(t, s.Empty())
			require.GreaterOrEqual(t, s.Height(), 1)
			require.NotNil(t, s.Root())
			require.Equal(t, 3, counts[trees.EventInserted])

			n, err := s.Search("5")
			require.NoError(t, err)
			require.NotNil(t, n)
			_, err = s.Search("999")
			require.ErrorIs(t, err, trees.ErrNotFound)
			require.Equal(t, 2, counts[trees.EventSearched])

			// A multiway root can hold all three values in one node.
			var visited int
			s.LevelOrder(func(trees.Node) bool { visited++; return true })
			require.GreaterOrEqual(t, visited, 1)

			if s.Caps().Has(trees.CapDelete) {
				ok, err := s.Delete("8")
				require.NoError(t, err)
				require.True(t, ok)
				require.Equal(t, 2, s.Len())
				require.Equal(t, 1, counts[trees.EventDeleted])
			} else {
				_, err := s.Delete("8")
				require.ErrorIs(t, err, trees.ErrUnsupported)
				require.Equal(t, 3, s.Len())
			}

			require.NotEmpty(t, s.Steps())
			require.Empty(t, s.Steps(), "second drain must come back empty")

			s.Clear()
			require.True(t, s.Empty())
			require.Equal(t, 0, s.Len())
			require.Equal(t, 0, s.Height())
			require.Equal(t, 1, counts[trees.EventReset])
			if kind == trees.Trie {
				require.NotNil(t, s.Root())
			} else {
				require.Nil(t, s.Root())
			}
		})
	}
}

func TestExtensionCapsMatchInterfaces(t *testing.T) {
	for _, kind := range trees.Kinds() {
		s := trees.New(kind)
		caps := s.Caps()

		_, ok := s.(trees.Balancer)
		require.Equal(t, caps.Has(trees.CapBalance), ok, "%s Balancer", kind)
		_, ok = s.(trees.Updater)
		require.Equal(t, caps.Has(trees.CapUpdate), ok, "%s Updater", kind)
		_, ok = s.(trees.PrefixSummer)
		require.Equal(t, caps.Has(trees.CapPrefixSum), ok, "%s PrefixSummer", kind)
		_, ok = s.(trees.RangeSummer)
		require.Equal(t, caps.Has(trees.CapRangeSum), ok, "%s RangeSummer", kind)
		_, ok = s.(trees.WordSet)
		require.Equal(t, caps.Has(trees.CapWords), ok, "%s WordSet", kind)
	}
}

func TestLogEvents(t *testing.T) {
	type event struct {
		topic, value string
	}

	bus := trees.NewBus()
	var s trees.Structure
	var got []event
	tokens := trees.LogEvents(bus, func(topic string, m trees.Mutation) {
		require.Equal(t, s, m.Source)
		got = append(got, event{topic, m.Value})
	})
	require.Len(t, tokens, 4)

	s = trees.New(trees.BST, trees.WithBus(bus))
	require.NoError(t, s.Insert("10"))
	require.NoError(t, s.Insert("5"))
	ok, err := s.Delete("5")
	require.NoError(t, err)
	require.True(t, ok)
	_, err = s.Search("10")
	require.NoError(t, err)
	s.Clear()

	require.Equal(t, []event{
		{"inserted", "10"},
		{"inserted", "5"},
		{"deleted", "5"},
		{"searched", "10"},
		{"reset", ""},
	}, got)

	for topic, token := range tokens {
		require.True(t, bus.Unsubscribe(topic, token))
	}
	require.NoError(t, s.Insert("7"))
	require.Len(t, got, 5, "unsubscribed handlers must not fire")
}
