package minheap

import (
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Structure adapts Heap to the shared contract: int64 keys parsed from
// text, mutations announced on the bus.
type Structure struct {
	heap *Heap[int64]
	bus  *abstract.Bus
}

var _ abstract.Structure = (*Structure)(nil)

// NewStructure returns an empty min-heap announcing on bus. A nil bus is
// fine; announcements are dropped.
func NewStructure(bus *abstract.Bus) *Structure {
	return &Structure{heap: New[int64](abstract.Compare[int64]), bus: bus}
}

func (s *Structure) Name() string        { return "Min-Heap" }
func (s *Structure) Kind() abstract.Kind { return abstract.MinHeap }

func (s *Structure) Caps() abstract.Caps {
	return abstract.CapInsert | abstract.CapDelete | abstract.CapSearch
}

func (s *Structure) Insert(value string) error {
	v, err := abstract.ParseValue(value)
	if err != nil {
		return err
	}
	s.heap.Insert(v)
	abstract.Announce(s.bus, abstract.EventInserted, s, abstract.FormatValue(v))
	return nil
}

// Delete removes the minimum; the argument is ignored. It reports false on
// an empty heap.
func (s *Structure) Delete(string) (bool, error) {
	min, ok := s.heap.PopMin()
	if !ok {
		return false, nil
	}
	abstract.Announce(s.bus, abstract.EventDeleted, s, abstract.FormatValue(min))
	return true, nil
}

func (s *Structure) Search(value string) (abstract.Node, error) {
	v, err := abstract.ParseValue(value)
	if err != nil {
		return nil, err
	}
	n, ok := s.heap.Search(v)
	abstract.Announce(s.bus, abstract.EventSearched, s, abstract.FormatValue(v))
	if !ok {
		return nil, abstract.ErrNotFound
	}
	return n, nil
}

func (s *Structure) Clear() {
	s.heap.Clear()
	abstract.Announce(s.bus, abstract.EventReset, s, "")
}

func (s *Structure) Empty() bool { return s.heap.Len() == 0 }
func (s *Structure) Len() int    { return s.heap.Len() }
func (s *Structure) Height() int { return s.heap.Height() }

func (s *Structure) InOrder(v abstract.Visitor)    { abstract.Walk(s.heap.Root(), abstract.InOrder, v) }
func (s *Structure) PreOrder(v abstract.Visitor)   { abstract.Walk(s.heap.Root(), abstract.PreOrder, v) }
func (s *Structure) PostOrder(v abstract.Visitor)  { abstract.Walk(s.heap.Root(), abstract.PostOrder, v) }
func (s *Structure) LevelOrder(v abstract.Visitor) { abstract.Walk(s.heap.Root(), abstract.LevelOrder, v) }

func (s *Structure) Steps() []steps.Step { return s.heap.Steps() }
func (s *Structure) Root() abstract.Node { return s.heap.Root() }
func (s *Structure) String() string      { return s.heap.String() }
