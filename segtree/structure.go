package segtree

import (
	"github.com/cockroachdb/errors"
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Structure adapts Tree to the shared contract: int64 slots parsed from
// text, mutations announced on the bus. Insert appends; values are a
// sequence, so duplicates are welcome and deletion is not offered.
type Structure struct {
	tree *Tree[int64]
	bus  *abstract.Bus
}

var (
	_ abstract.Structure   = (*Structure)(nil)
	_ abstract.Updater     = (*Structure)(nil)
	_ abstract.RangeSummer = (*Structure)(nil)
)

// NewStructure returns an empty segment tree announcing on bus. A nil bus
// is fine; announcements are dropped.
func NewStructure(bus *abstract.Bus) *Structure {
	return &Structure{tree: New[int64](), bus: bus}
}

func (s *Structure) Name() string        { return "Segment Tree" }
func (s *Structure) Kind() abstract.Kind { return abstract.SegmentTree }

func (s *Structure) Caps() abstract.Caps {
	return abstract.CapInsert | abstract.CapSearch | abstract.CapUpdate | abstract.CapRangeSum
}

func (s *Structure) Insert(value string) error {
	v, err := abstract.ParseValue(value)
	if err != nil {
		return err
	}
	s.tree.Append(v)
	abstract.Announce(s.bus, abstract.EventInserted, s, abstract.FormatValue(v))
	return nil
}

func (s *Structure) Delete(string) (bool, error) {
	return false, errors.Wrap(abstract.ErrUnsupported, "segment tree slots cannot be deleted")
}

func (s *Structure) Search(value string) (abstract.Node, error) {
	v, err := abstract.ParseValue(value)
	if err != nil {
		return nil, err
	}
	n, ok := s.tree.Search(v)
	abstract.Announce(s.bus, abstract.EventSearched, s, abstract.FormatValue(v))
	if !ok {
		return nil, abstract.ErrNotFound
	}
	return n, nil
}

// Update sets the slot at index to value and refreshes the sums above it.
func (s *Structure) Update(index int, value string) error {
	v, err := abstract.ParseValue(value)
	if err != nil {
		return err
	}
	return s.tree.Update(index, v)
}

// RangeSum returns the sum over the inclusive slot range [lo, hi].
func (s *Structure) RangeSum(lo, hi int) (int64, error) {
	return s.tree.RangeSum(lo, hi)
}

func (s *Structure) Clear() {
	s.tree.Clear()
	abstract.Announce(s.bus, abstract.EventReset, s, "")
}

func (s *Structure) Empty() bool { return s.tree.Len() == 0 }
func (s *Structure) Len() int    { return s.tree.Len() }
func (s *Structure) Height() int { return s.tree.Height() }

func (s *Structure) InOrder(v abstract.Visitor)    { abstract.Walk(s.tree.Root(), abstract.InOrder, v) }
func (s *Structure) PreOrder(v abstract.Visitor)   { abstract.Walk(s.tree.Root(), abstract.PreOrder, v) }
func (s *Structure) PostOrder(v abstract.Visitor)  { abstract.Walk(s.tree.Root(), abstract.PostOrder, v) }
func (s *Structure) LevelOrder(v abstract.Visitor) { abstract.Walk(s.tree.Root(), abstract.LevelOrder, v) }

func (s *Structure) Steps() []steps.Step { return s.tree.Steps() }
func (s *Structure) Root() abstract.Node { return s.tree.Root() }
func (s *Structure) String() string      { return s.tree.String() }
