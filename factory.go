package trees

import (
	"github.com/omercnkc/trees-data-structure/avl"
	"github.com/omercnkc/trees-data-structure/bplus"
	"github.com/omercnkc/trees-data-structure/bst"
	"github.com/omercnkc/trees-data-structure/btree"
	"github.com/omercnkc/trees-data-structure/fenwick"
	"github.com/omercnkc/trees-data-structure/minheap"
	"github.com/omercnkc/trees-data-structure/redblack"
	"github.com/omercnkc/trees-data-structure/segtree"
	"github.com/omercnkc/trees-data-structure/trie"
)

type config struct {
	bus    *Bus
	degree int
}

// Option configures a structure built by New or Create.
type Option func(*config)

// WithBus wires mutation announcements to bus. Without it structures stay
// silent.
func WithBus(bus *Bus) Option {
	return func(c *config) { c.bus = bus }
}

// WithDegree sets the minimum degree of B-tree and B+ tree structures.
// Other kinds ignore it.
func WithDegree(degree int) Option {
	return func(c *config) { c.degree = degree }
}

// New builds an empty structure of the given kind.
func New(kind Kind, opts ...Option) Structure {
	cfg := config{degree: btree.DefaultDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch kind {
	case AVL:
		return avl.NewStructure(cfg.bus)
	case RedBlack:
		return redblack.NewStructure(cfg.bus)
	case MinHeap:
		return minheap.NewStructure(cfg.bus)
	case Trie:
		return trie.NewStructure(cfg.bus)
	case BTree:
		return btree.NewStructureDegree(cfg.bus, cfg.degree)
	case BPlusTree:
		return bplus.NewStructureDegree(cfg.bus, cfg.degree)
	case SegmentTree:
		return segtree.NewStructure(cfg.bus)
	case FenwickTree:
		return fenwick.NewStructure(cfg.bus)
	default:
		return bst.NewStructure(cfg.bus)
	}
}

// Create builds a structure from a user-facing id as accepted by ParseKind.
// Unknown ids yield a BST rather than an error: the caller is typically a
// UI dropdown or a config file, and a working default beats a dead end.
func Create(id string, opts ...Option) Structure {
	kind, _ := ParseKind(id)
	return New(kind, opts...)
}
