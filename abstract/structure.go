package abstract

import (
	"strings"

	"github.com/omercnkc/trees-data-structure/events"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Kind identifies one of the nine structures.
type Kind uint8

const (
	BST Kind = iota
	AVL
	RedBlack
	MinHeap
	Trie
	BTree
	BPlusTree
	SegmentTree
	FenwickTree
)

// String returns the canonical identifier, the one the factory recognizes.
func (k Kind) String() string {
	switch k {
	case BST:
		return "bst"
	case AVL:
		return "avl"
	case RedBlack:
		return "red-black"
	case MinHeap:
		return "min-heap"
	case Trie:
		return "trie"
	case BTree:
		return "b-tree"
	case BPlusTree:
		return "b-plus-tree"
	case SegmentTree:
		return "segment-tree"
	case FenwickTree:
		return "fenwick-tree"
	default:
		return "unknown"
	}
}

// Caps is the set of optional operations a structure supports. Callers
// consult it instead of probing with type assertions; the extension
// interfaces (Balancer, Updater, ...) carry the methods themselves.
type Caps uint16

const (
	CapInsert Caps = 1 << iota
	CapDelete
	CapSearch
	CapBalance
	CapUpdate
	CapPrefixSum
	CapRangeSum
	CapWords
)

// Has reports whether every capability in want is present.
func (c Caps) Has(want Caps) bool { return c&want == want }

func (c Caps) String() string {
	names := []struct {
		cap  Caps
		name string
	}{
		{CapInsert, "insert"},
		{CapDelete, "delete"},
		{CapSearch, "search"},
		{CapBalance, "balance"},
		{CapUpdate, "update"},
		{CapPrefixSum, "prefix-sum"},
		{CapRangeSum, "range-sum"},
		{CapWords, "words"},
	}
	var parts []string
	for _, n := range names {
		if c.Has(n.cap) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ",")
}

// Structure is the capability contract every tree kind satisfies. Values
// cross it as text: each structure parses and validates its own input, so
// invalid input is rejected before any state changes. Mutations are
// all-or-nothing; unsupported operations fail with ErrUnsupported instead
// of panicking. Implementations are single-goroutine and non-reentrant.
type Structure interface {
	// Name is the human display name, e.g. "Red-Black Tree".
	Name() string
	Kind() Kind
	Caps() Caps

	// Insert adds value. Duplicates are ignored without error.
	Insert(value string) error
	// Delete removes value and reports whether anything was removed. The
	// min-heap ignores its argument and removes the minimum.
	Delete(value string) (bool, error)
	// Search locates value, returning ErrNotFound on a clean miss.
	Search(value string) (Node, error)
	Clear()
	Empty() bool
	// Len counts logically present elements: values, words, or keys.
	Len() int
	// Height is in nodes: 0 when empty, 1 for a lone root.
	Height() int

	InOrder(Visitor)
	PreOrder(Visitor)
	PostOrder(Visitor)
	LevelOrder(Visitor)

	// Steps drains the animation log recorded since the last drain.
	Steps() []steps.Step
	// Root exposes the display shape; nil when there is nothing to draw.
	// The trie keeps a root node to show even with no words stored.
	Root() Node
	// String is a compact single-line dump of the structure's contents.
	String() string
}

// Balancer is implemented by structures with CapBalance: an explicit
// height-minimizing rebuild.
type Balancer interface {
	// Balance reports whether a rebuild happened; trees of size <= 2 are
	// left alone.
	Balance() bool
}

// Updater is implemented by structures with CapUpdate: point assignment of
// the element at a 0-based slot index.
type Updater interface {
	Update(index int, value string) error
}

// PrefixSummer is implemented by structures with CapPrefixSum.
type PrefixSummer interface {
	// PrefixSum sums slots 0 through index inclusive.
	PrefixSum(index int) (int64, error)
}

// RangeSummer is implemented by structures with CapRangeSum.
type RangeSummer interface {
	// RangeSum sums elements lo through hi inclusive, 0-based.
	RangeSum(lo, hi int) (int64, error)
}

// WordSet is implemented by structures with CapWords.
type WordSet interface {
	// Words lists the stored words in ascending order.
	Words() []string
	StartsWith(prefix string) (bool, error)
	// Nodes counts character nodes, as opposed to whole words.
	Nodes() int
}

// Topics a structure announces on after completed operations.
const (
	EventInserted = "inserted"
	EventDeleted  = "deleted"
	EventSearched = "searched"
	EventReset    = "reset"
)

// Mutation is the payload delivered to subscribers: the value text involved
// and the structure that changed.
type Mutation struct {
	Value  string
	Source Structure
}

// Bus is the notification channel structures announce on.
type Bus = events.Bus[Mutation]

// NewBus returns an empty notification channel.
func NewBus() *Bus { return events.NewBus[Mutation]() }

// Announce publishes a mutation if a bus is attached; a nil bus drops it.
func Announce(b *Bus, topic string, src Structure, value string) {
	if b == nil {
		return
	}
	b.Publish(topic, Mutation{Value: value, Source: src})
}
