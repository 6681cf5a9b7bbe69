package btree

import (
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Structure adapts Tree to the shared contract: int64 keys parsed from
// text, mutations announced on the bus.
type Structure struct {
	tree *Tree[int64]
	bus  *abstract.Bus
}

var _ abstract.Structure = (*Structure)(nil)

// NewStructure returns an empty B-tree of DefaultDegree announcing on bus.
// A nil bus is fine; announcements are dropped.
func NewStructure(bus *abstract.Bus) *Structure {
	return NewStructureDegree(bus, DefaultDegree)
}

// NewStructureDegree is NewStructure with a caller-chosen minimum degree.
func NewStructureDegree(bus *abstract.Bus, degree int) *Structure {
	return &Structure{tree: New[int64](degree, abstract.Compare[int64]), bus: bus}
}

func (s *Structure) Name() string        { return "B-Tree" }
func (s *Structure) Kind() abstract.Kind { return abstract.BTree }

func (s *Structure) Caps() abstract.Caps {
	return abstract.CapInsert | abstract.CapDelete | abstract.CapSearch
}

func (s *Structure) Insert(value string) error {
	v, err := abstract.ParseValue(value)
	if err != nil {
		return err
	}
	if s.tree.Insert(v) {
		abstract.Announce(s.bus, abstract.EventInserted, s, abstract.FormatValue(v))
	}
	return nil
}

func (s *Structure) Delete(value string) (bool, error) {
	v, err := abstract.ParseValue(value)
	if err != nil {
		return false, err
	}
	if !s.tree.Delete(v) {
		return false, nil
	}
	abstract.Announce(s.bus, abstract.EventDeleted, s, abstract.FormatValue(v))
	return true, nil
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
