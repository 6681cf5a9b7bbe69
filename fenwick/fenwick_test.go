package fenwick

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/stretchr/testify/require"
)

func TestBitLayout(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{3, 1, 4, 1, 5} {
		tr.Append(v)
	}
	require.Equal(t, []int{3, 1, 4, 1, 5}, tr.Values())
	require.Equal(t, []int{3, 4, 4, 9, 5}, tr.Bits())
	require.Equal(t, "data=[3 1 4 1 5] bit=[3 4 4 9 5]", tr.String())
}

func TestPrefixSums(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{3, 1, 4, 1, 5} {
		tr.Append(v)
	}
	for i, want := range []int{3, 4, 8, 9, 14} {
		got, err := tr.PrefixSum(i)
		require.NoError(t, err)
		require.Equal(t, want, got, "prefix through slot %d", i)
	}
	_, err := tr.PrefixSum(-1)
	require.True(t, errors.Is(err, abstract.ErrBadIndex))
	_, err = tr.PrefixSum(5)
	require.True(t, errors.Is(err, abstract.ErrBadIndex))
}

func TestRangeSum(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{3, 1, 4, 1, 5} {
		tr.Append(v)
	}
	cases := []struct {
		lo, hi, want int
	}{
		{0, 4, 14},
		{1, 3, 6},
		{0, 0, 3},
		{2, 2, 4},
		{3, 4, 6},
	}
	for _, c := range cases {
		got, err := tr.RangeSum(c.lo, c.hi)
		require.NoError(t, err)
		require.Equal(t, c.want, got, "sum over %d..%d", c.lo, c.hi)
	}
	for _, bad := range [][2]int{{3, 1}, {0, 5}, {-1, 0}} {
		_, err := tr.RangeSum(bad[0], bad[1])
		require.True(t, errors.Is(err, abstract.ErrBadIndex))
	}
}

func TestUpdate(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{3, 1, 4, 1, 5} {
		tr.Append(v)
	}
	require.NoError(t, tr.Update(2, 10))
	require.Equal(t, []int{3, 1, 10, 1, 5}, tr.Values())
	require.Equal(t, []int{3, 4, 10, 15, 5}, tr.Bits())
	got, err := tr.PrefixSum(4)
	require.NoError(t, err)
	require.Equal(t, 20, got)

	// Setting a slot to its current value moves nothing.
	require.NoError(t, tr.Update(2, 10))
	require.Equal(t, []int{3, 4, 10, 15, 5}, tr.Bits())

	require.True(t, errors.Is(tr.Update(-1, 0), abstract.ErrBadIndex))
	require.True(t, errors.Is(tr.Update(5, 0), abstract.ErrBadIndex))
}

func TestForestShape(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{3, 1, 4, 1, 5} {
		tr.Append(v)
	}
	root := tr.root
	require.Equal(t, 0, root.Index)
	require.Equal(t, "*", root.Label())
	require.Nil(t, root.Parent)

	indexes := func(n *abstract.ForestNode[int]) []int {
		var got []int
		for _, c := range n.Children {
			got = append(got, c.Index)
		}
		return got
	}
	require.Equal(t, []int{4, 5}, indexes(root))
	require.Equal(t, []int{2, 3}, indexes(tr.nodes[4]))
	require.Equal(t, []int{1}, indexes(tr.nodes[2]))
	require.Empty(t, indexes(tr.nodes[1]))

	for j := 1; j <= 5; j++ {
		p := j + lowbit(j)
		if p > 5 {
			p = 0
		}
		require.Same(t, tr.nodes[p], tr.nodes[j].Parent, "parent of position %d", j)
	}

	require.Equal(t, "9", tr.nodes[4].Label())
	require.Equal(t, [][2]string{{"index", "4"}}, tr.nodes[4].Props())
	require.Equal(t, 4, tr.Height())
}

func TestRandomizedAgainstNaive(t *testing.T) {
	tr := New[int]()
	var data []int
	naive := func(lo, hi int) int {
		sum := 0
		for _, v := range data[lo : hi+1] {
			sum += v
		}
		return sum
	}
	for i := 0; i < 128; i++ {
		v := rand.Intn(1000)
		data = append(data, v)
		tr.Append(v)
		got, err := tr.PrefixSum(i)
		require.NoError(t, err)
		require.Equal(t, naive(0, i), got)
	}
	for trial := 0; trial < 300; trial++ {
		i := rand.Intn(len(data))
		data[i] = rand.Intn(1000)
		require.NoError(t, tr.Update(i, data[i]))

		lo := rand.Intn(len(data))
		hi := lo + rand.Intn(len(data)-lo)
		got, err := tr.RangeSum(lo, hi)
		require.NoError(t, err)
		require.Equal(t, naive(lo, hi), got)
	}
	tr.Steps()
}

func TestSearch(t *testing.T) {
	tr := New[int]()
	for _, v := range []int{3, 1, 4, 1, 5} {
		tr.Append(v)
	}
	n, ok := tr.Search(1)
	require.True(t, ok)
	require.Equal(t, 2, n.Index) // first 1 sits at slot 1, position 2

	_, ok = tr.Search(9)
	require.False(t, ok)

	tr.Clear()
	_, ok = tr.Search(3)
	require.False(t, ok)
}

func TestSteps(t *testing.T) {
	tr := New[int]()
	tr.Append(3)
	tr.Append(1)
	_, err := tr.PrefixSum(1)
	require.NoError(t, err)
	require.NoError(t, tr.Update(0, 5))
	_, ok := tr.Search(1)
	require.True(t, ok)

	var got []string
	for _, st := range tr.Steps() {
		got = append(got, st.String())
	}
	require.Equal(t, []string{
		"insert 3: 3 at slot 0",
		"insert 4: 1 at slot 1",
		"visit 4: covers slots 0..1",
		"update 5: slot 0 set to 5",
		"update 6: carries the delta",
		"compare 5: slot 0: 5 vs 1",
		"compare 6: slot 1: 1 vs 1",
		"found 6: slot 1 holds 1",
	}, got)
	require.Empty(t, tr.Steps())
}

func TestStructureContract(t *testing.T) {
	bus := abstract.NewBus()
	var inserted, searched, reset []string
	bus.Subscribe(abstract.EventInserted, func(m abstract.Mutation) { inserted = append(inserted, m.Value) })
	bus.Subscribe(abstract.EventSearched, func(m abstract.Mutation) { searched = append(searched, m.Value) })
	bus.Subscribe(abstract.EventReset, func(m abstract.Mutation) { reset = append(reset, m.Value) })

	s := NewStructure(bus)
	require.Equal(t, "Fenwick Tree", s.Name())
	require.Equal(t, abstract.FenwickTree, s.Kind())
	require.Equal(t, "fenwick-tree", s.Kind().String())
	require.True(t, s.Caps().Has(abstract.CapInsert|abstract.CapUpdate|abstract.CapPrefixSum|abstract.CapRangeSum))
	require.False(t, s.Caps().Has(abstract.CapDelete))

	for _, v := range []string{"3", "1", "4", "1", "5"} {
		require.NoError(t, s.Insert(v))
	}
	require.Equal(t, []string{"3", "1", "4", "1", "5"}, inserted)
	require.True(t, errors.Is(s.Insert("x"), abstract.ErrInvalidValue))
	require.Equal(t, 5, s.Len())

	ok, err := s.Delete("3")
	require.False(t, ok)
	require.True(t, errors.Is(err, abstract.ErrUnsupported))
	require.Equal(t, 5, s.Len())

	var st abstract.Structure = s
	ps, isPrefix := st.(abstract.PrefixSummer)
	require.True(t, isPrefix)
	got, err := ps.PrefixSum(3)
	require.NoError(t, err)
	require.Equal(t, int64(9), got)

	rs, isSummer := st.(abstract.RangeSummer)
	require.True(t, isSummer)
	got, err = rs.RangeSum(1, 3)
	require.NoError(t, err)
	require.Equal(t, int64(6), got)

	up, isUpdater := st.(abstract.Updater)
	require.True(t, isUpdater)
	require.NoError(t, up.Update(2, "10"))
	require.Equal(t, "data=[3 1 10 1 5] bit=[3 4 10 15 5]", s.String())

	n, err := s.Search("10")
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"index", "3"}}, n.Props())
	_, err = s.Search("9")
	require.True(t, errors.Is(err, abstract.ErrNotFound))
	require.Equal(t, []string{"10", "9"}, searched)

	var labels []string
	s.LevelOrder(func(n abstract.Node) bool { labels = append(labels, n.Label()); return true })
	require.Equal(t, []string{"*", "15", "5", "4", "10", "3"}, labels)

	s.Clear()
	require.True(t, s.Empty())
	require.Zero(t, s.Height())
	require.Nil(t, s.Root())
	require.Equal(t, "data=[] bit=[]", s.String())
	require.Len(t, reset, 1)
}
