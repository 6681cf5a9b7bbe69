// Package abstract defines the contract shared by every tree structure in
// this module: the node views a renderer consumes, the Structure capability
// surface, the traversal orders, and the notification payloads. Structure
// packages depend on it; it depends only on the steps and events mechanisms.
package abstract

import (
	"fmt"
	"sort"
	"strings"
)

// NodeKind tags the shape of a node so traversal and rendering code can
// pattern-match exhaustively instead of probing for fields.
type NodeKind uint8

const (
	// KindBinary is a two-slot node: child 0 is left, child 1 is right,
	// either may be nil.
	KindBinary NodeKind = iota
	// KindMulti is an ordered multi-key node: k keys and, unless it is a
	// leaf, exactly k+1 children.
	KindMulti
	// KindChar is a character-map node keyed by rune, children ordered by
	// label.
	KindChar
	// KindForest is a forest node ordered by index, as derived from a
	// binary indexed tree.
	KindForest
)

func (k NodeKind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindMulti:
		return "multi-key"
	case KindChar:
		return "char-map"
	case KindForest:
		return "forest"
	default:
		return fmt.Sprintf("NodeKind(%d)", k)
	}
}

// Node is the read-only view of a structure node handed to traversals,
// renderers, and the animation log. Implementations are the live nodes
// themselves, shared by reference: identity is stable across steps within
// an operation. Rendering state never lives here; renderers keep their own
// annotation tables keyed by Node identity.
type Node interface {
	Kind() NodeKind
	// Label is the display text of the node: a value, a comma-joined key
	// list, a character, or a partial sum.
	Label() string
	// Props lists display details (height, color, range, index, word end)
	// as ordered key/value pairs. May be empty.
	Props() [][2]string
	// NumChildren is the number of child slots. Binary nodes always report
	// two; Child may still return nil for an empty slot.
	NumChildren() int
	Child(i int) Node
}

// Color of a binary node. Only the red-black tree assigns colors; nodes of
// other structures stay at NoColor.
type Color uint8

const (
	NoColor Color = iota
	Red
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// BinaryNode is the node model shared by the binary structures: search
// trees, the AVL and red-black variants, the heap display tree. Height is
// maintained by the AVL tree only (leaf = 1); Color by the red-black tree
// only. Parent is a non-owning back reference for upward fix-ups.
type BinaryNode[K any] struct {
	Value  K
	Left   *BinaryNode[K]
	Right  *BinaryNode[K]
	Parent *BinaryNode[K]
	Height int
	Color  Color
}

func (n *BinaryNode[K]) Kind() NodeKind { return KindBinary }

func (n *BinaryNode[K]) Label() string { return fmt.Sprint(n.Value) }

func (n *BinaryNode[K]) Props() [][2]string {
	var props [][2]string
	if n.Height > 0 {
		props = append(props, [2]string{"height", fmt.Sprint(n.Height)})
	}
	if n.Color != NoColor {
		props = append(props, [2]string{"color", n.Color.String()})
	}
	return props
}

func (n *BinaryNode[K]) NumChildren() int { return 2 }

func (n *BinaryNode[K]) Child(i int) Node {
	var c *BinaryNode[K]
	if i == 0 {
		c = n.Left
	} else {
		c = n.Right
	}
	if c == nil {
		return nil
	}
	return c
}

// MultiNode is the node model shared by the B-tree family: an ordered key
// slice and, on internal nodes, one more child than keys. The B-tree
// variants work top-down, so nodes carry no parent reference. Next threads
// B+ tree leaves left to right and stays nil everywhere else.
type MultiNode[K any] struct {
	Keys     []K
	Children []*MultiNode[K]
	Leaf     bool
	Next     *MultiNode[K]
}

func (n *MultiNode[K]) Kind() NodeKind { return KindMulti }

func (n *MultiNode[K]) Label() string {
	parts := make([]string, len(n.Keys))
	for i, k := range n.Keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, ",")
}

func (n *MultiNode[K]) Props() [][2]string {
	if n.Leaf && n.Next != nil {
		return [][2]string{{"next", n.Next.Label()}}
	}
	return nil
}

func (n *MultiNode[K]) NumChildren() int { return len(n.Children) }

func (n *MultiNode[K]) Child(i int) Node {
	if c := n.Children[i]; c != nil {
		return c
	}
	return nil
}

// TrieNode is a character node. The zero Char marks the root. Children are
// keyed by rune and presented in label order so traversals stay
// deterministic.
type TrieNode struct {
	Char     rune
	Children map[rune]*TrieNode
	Parent   *TrieNode
	End      bool
}

func (n *TrieNode) Kind() NodeKind { return KindChar }

func (n *TrieNode) Label() string {
	if n.Char == 0 {
		return "*"
	}
	return string(n.Char)
}

func (n *TrieNode) Props() [][2]string {
	if n.End {
		return [][2]string{{"end", "true"}}
	}
	return nil
}

// SortedChildren returns the child nodes in ascending label order.
func (n *TrieNode) SortedChildren() []*TrieNode {
	if len(n.Children) == 0 {
		return nil
	}
	labels := make([]rune, 0, len(n.Children))
	for r := range n.Children {
		labels = append(labels, r)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	kids := make([]*TrieNode, len(labels))
	for i, r := range labels {
		kids[i] = n.Children[r]
	}
	return kids
}

func (n *TrieNode) NumChildren() int { return len(n.Children) }

func (n *TrieNode) Child(i int) Node {
	if c := n.SortedChildren()[i]; c != nil {
		return c
	}
	return nil
}

// ForestNode is one node of the display forest derived from a binary
// indexed tree: Index is the 1-based position in the backing array, Value
// its partial sum. Index 0 is the synthetic root adopting every node whose
// natural parent falls outside the array.
type ForestNode[K any] struct {
	Index    int
	Value    K
	Parent   *ForestNode[K]
	Children []*ForestNode[K]
}

func (n *ForestNode[K]) Kind() NodeKind { return KindForest }

func (n *ForestNode[K]) Label() string {
	if n.Index == 0 {
		return "*"
	}
	return fmt.Sprint(n.Value)
}

func (n *ForestNode[K]) Props() [][2]string {
	if n.Index == 0 {
		return nil
	}
	return [][2]string{{"index", fmt.Sprint(n.Index)}}
}

func (n *ForestNode[K]) NumChildren() int { return len(n.Children) }

func (n *ForestNode[K]) Child(i int) Node {
	if c := n.Children[i]; c != nil {
		return c
	}
	return nil
}
