package trie

import (
	"github.com/cockroachdb/errors"
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Structure adapts Tree to the shared contract. Values are words, not
// numbers; normalization happens in the core.
type Structure struct {
	tree *Tree
	bus  *abstract.Bus
}

var (
	_ abstract.Structure = (*Structure)(nil)
	_ abstract.WordSet   = (*Structure)(nil)
)

// NewStructure returns an empty trie announcing on bus. A nil bus is fine;
// announcements are dropped.
func NewStructure(bus *abstract.Bus) *Structure {
	return &Structure{tree: New(), bus: bus}
}

func (s *Structure) Name() string        { return "Trie" }
func (s *Structure) Kind() abstract.Kind { return abstract.Trie }

func (s *Structure) Caps() abstract.Caps {
	return abstract.CapInsert | abstract.CapDelete | abstract.CapSearch | abstract.CapWords
}

func (s *Structure) Insert(value string) error {
	word := Normalize(value)
	if word == "" {
		return errors.Wrap(abstract.ErrInvalidValue, "empty word")
	}
	if s.tree.Insert(word) {
		abstract.Announce(s.bus, abstract.EventInserted, s, word)
	}
	return nil
}

func (s *Structure) Delete(value string) (bool, error) {
	word := Normalize(value)
	if word == "" {
		return false, errors.Wrap(abstract.ErrInvalidValue, "empty word")
	}
	if !s.tree.Delete(word) {
		return false, nil
	}
	abstract.Announce(s.bus, abstract.EventDeleted, s, word)
	return true, nil
}

func (s *Structure) Search(value string) (abstract.Node, error) {
	word := Normalize(value)
	if word == "" {
		return nil, errors.Wrap(abstract.ErrInvalidValue, "empty word")
	}
	n, ok := s.tree.Search(word)
	abstract.Announce(s.bus, abstract.EventSearched, s, word)
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

// Words lists the stored words in ascending order.
func (s *Structure) Words() []string { return s.tree.Words() }

// StartsWith reports whether any stored word begins with prefix.
func (s *Structure) StartsWith(prefix string) (bool, error) {
	p := Normalize(prefix)
	if p == "" {
		return false, errors.Wrap(abstract.ErrInvalidValue, "empty prefix")
	}
	return s.tree.StartsWith(p), nil
}

// Nodes counts character nodes.
func (s *Structure) Nodes() int { return s.tree.Nodes() }

func (s *Structure) Steps() []steps.Step { return s.tree.Steps() }
func (s *Structure) Root() abstract.Node { return s.tree.Root() }
func (s *Structure) String() string      { return s.tree.String() }
