// Package trees is the algorithm engine of an educational tree visualizer:
// nine classic structures behind one capability contract, an animation log
// of the steps each operation takes, and a notification bus the
// surrounding application subscribes to. The structures live in their own
// packages; this one names them, builds them, and re-exports the shared
// contract types so callers deal with a single import.
package trees

import (
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Aliases for the contract types.
type (
	Structure = abstract.Structure
	Node      = abstract.Node
	Visitor   = abstract.Visitor
	Kind      = abstract.Kind
	Caps      = abstract.Caps
	Mutation  = abstract.Mutation
	Bus       = abstract.Bus
	Step      = steps.Step
)

// Aliases for the extension interfaces behind the optional capabilities.
type (
	Balancer     = abstract.Balancer
	Updater      = abstract.Updater
	PrefixSummer = abstract.PrefixSummer
	RangeSummer  = abstract.RangeSummer
	WordSet      = abstract.WordSet
)

// The structure kinds, re-exported for factory callers.
const (
	BST         = abstract.BST
	AVL         = abstract.AVL
	RedBlack    = abstract.RedBlack
	MinHeap     = abstract.MinHeap
	Trie        = abstract.Trie
	BTree       = abstract.BTree
	BPlusTree   = abstract.BPlusTree
	SegmentTree = abstract.SegmentTree
	FenwickTree = abstract.FenwickTree
)

// The optional capabilities a structure may carry beyond the core
// contract.
const (
	CapInsert    = abstract.CapInsert
	CapDelete    = abstract.CapDelete
	CapSearch    = abstract.CapSearch
	CapBalance   = abstract.CapBalance
	CapUpdate    = abstract.CapUpdate
	CapPrefixSum = abstract.CapPrefixSum
	CapRangeSum  = abstract.CapRangeSum
	CapWords     = abstract.CapWords
)

// The bus topics mutations are announced on.
const (
	EventInserted = abstract.EventInserted
	EventDeleted  = abstract.EventDeleted
	EventSearched = abstract.EventSearched
	EventReset    = abstract.EventReset
)

// Sentinel errors, re-exported for callers matching with errors.Is.
var (
	ErrNotFound     = abstract.ErrNotFound
	ErrUnsupported  = abstract.ErrUnsupported
	ErrInvalidValue = abstract.ErrInvalidValue
	ErrBadIndex     = abstract.ErrBadIndex
)

// Kinds lists every structure kind in display order.
func Kinds() []Kind {
	return []Kind{BST, AVL, RedBlack, MinHeap, Trie, BTree, BPlusTree, SegmentTree, FenwickTree}
}

// NewBus returns a bus for structure notifications.
func NewBus() *Bus { return abstract.NewBus() }

// LogEvents subscribes fn to every mutation topic and returns the
// subscription tokens keyed by topic, so the caller can unsubscribe
// symmetrically.
func LogEvents(bus *Bus, fn func(topic string, m Mutation)) map[string]int {
	topics := []string{EventInserted, EventDeleted, EventSearched, EventReset}
	tokens := make(map[string]int, len(topics))
	for _, topic := range topics {
		topic := topic
		tokens[topic] = bus.Subscribe(topic, func(m Mutation) { fn(topic, m) })
	}
	return tokens
}
