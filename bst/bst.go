// Package bst implements an unbalanced binary search tree. It is the
// baseline the self-balancing variants are measured against, and the
// fallback kind the factory hands out for unrecognized identifiers.
package bst

import (
	"fmt"
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Tree is a binary search tree over keys ordered by cmp. Duplicates are
// rejected; shape depends entirely on insertion order until Balance is
// called.
type Tree[K any] struct {
	root *abstract.BinaryNode[K]
	size int
	cmp  func(K, K) int
	rec  *steps.Recorder
}

// New constructs an empty tree ordered by cmp.
func New[K any](cmp func(K, K) int) *Tree[K] {
	return &Tree[K]{cmp: cmp, rec: steps.NewRecorder()}
}

// Insert adds k, reporting whether the tree changed. Duplicates are
// ignored.
func (t *Tree[K]) Insert(k K) bool {
	n := &abstract.BinaryNode[K]{Value: k}
	if t.root == nil {
		t.root = n
		t.size++
		t.rec.Recordf(steps.ActionInsert, n, "rooted %v", k)
		return true
	}
	cur := t.root
	for {
		c := t.cmp(k, cur.Value)
		t.rec.Recordf(steps.ActionCompare, cur, "%v vs %v", k, cur.Value)
		if c == 0 {
			return false
		}
		if c < 0 {
			if cur.Left == nil {
				cur.Left = n
				break
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = n
				break
			}
			cur = cur.Right
		}
	}
	n.Parent = cur
	t.size++
	t.rec.Recordf(steps.ActionInsert, n, "attached under %v", cur.Value)
	return true
}

// Search locates k, recording each comparison on the way down.
func (t *Tree[K]) Search(k K) (*abstract.BinaryNode[K], bool) {
	cur := t.root
	for cur != nil {
		c := t.cmp(k, cur.Value)
		t.rec.Recordf(steps.ActionCompare, cur, "%v vs %v", k, cur.Value)
		if c == 0 {
			t.rec.Recordf(steps.ActionFound, cur, "")
			return cur, true
		}
		if c < 0 {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return nil, false
}

// Delete removes k, reporting whether it was present.
func (t *Tree[K]) Delete(k K) bool {
	n, ok := t.Search(k)
	if !ok {
		return false
	}
	t.remove(n)
	t.size--
	return true
}

func (t *Tree[K]) remove(n *abstract.BinaryNode[K]) {
	if n.Left != nil && n.Right != nil {
		// Two children: the in-order successor holds the next key. Move
		// its value here and detach the successor instead; it has at most
		// a right child.
		s := n.Right
		for s.Left != nil {
			s = s.Left
		}
		t.rec.Recordf(steps.ActionSwap, n, "%v takes successor %v", n.Value, s.Value)
		n.Value = s.Value
		n = s
	}
	c := n.Left
	if c == nil {
		c = n.Right
	}
	t.replace(n, c)
	t.rec.Recordf(steps.ActionDelete, n, "detached %v", n.Value)
}

// replace splices c into n's place under n's parent.
func (t *Tree[K]) replace(n, c *abstract.BinaryNode[K]) {
	p := n.Parent
	if c != nil {
		c.Parent = p
	}
	switch {
	case p == nil:
		t.root = c
	case p.Left == n:
		p.Left = c
	default:
		p.Right = c
	}
}

// Balance relinks the existing nodes into a minimal-height tree around
// in-order midpoints. Trees of size <= 2 keep their shape. It reports
// whether a rebuild happened.
func (t *Tree[K]) Balance() bool {
	if t.size <= 2 {
		return false
	}
	nodes := make([]*abstract.BinaryNode[K], 0, t.size)
	var walk func(n *abstract.BinaryNode[K])
	walk = func(n *abstract.BinaryNode[K]) {
		if n == nil {
			return
		}
		walk(n.Left)
		nodes = append(nodes, n)
		walk(n.Right)
	}
	walk(t.root)
	t.root = relink(nodes, nil)
	t.rec.Recordf(steps.ActionBalance, t.root, "rebuilt around %v", t.root.Value)
	return true
}

func relink[K any](nodes []*abstract.BinaryNode[K], parent *abstract.BinaryNode[K]) *abstract.BinaryNode[K] {
	if len(nodes) == 0 {
		return nil
	}
	mid := (len(nodes) - 1) / 2
	n := nodes[mid]
	n.Parent = parent
	n.Left = relink(nodes[:mid], n)
	n.Right = relink(nodes[mid+1:], n)
	return n
}

// Len returns the number of stored keys.
func (t *Tree[K]) Len() int { return t.size }

// Height is in nodes: 0 when empty, 1 for a lone root.
func (t *Tree[K]) Height() int { return abstract.HeightOf(t.Root()) }

// Clear discards every node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Root returns the root node, nil when empty.
func (t *Tree[K]) Root() abstract.Node {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Steps drains the animation log recorded since the last drain.
func (t *Tree[K]) Steps() []steps.Step { return t.rec.Drain() }

// Ascend visits the keys in ascending order until visit returns false.
func (t *Tree[K]) Ascend(visit func(K) bool) {
	var walk func(n *abstract.BinaryNode[K]) bool
	walk = func(n *abstract.BinaryNode[K]) bool {
		if n == nil {
			return true
		}
		return walk(n.Left) && visit(n.Value) && walk(n.Right)
	}
	walk(t.root)
}

// String returns the tree in nested form: each non-empty child subtree
// parenthesized around its parent's value.
func (t *Tree[K]) String() string {
	if t.root == nil {
		return "()"
	}
	var sb strings.Builder
	sketch(t.root, &sb)
	return sb.String()
}

func sketch[K any](n *abstract.BinaryNode[K], sb *strings.Builder) {
	if n.Left != nil {
		sb.WriteByte('(')
		sketch(n.Left, sb)
		sb.WriteByte(')')
	} else if n.Right != nil {
		sb.WriteString("()")
	}
	fmt.Fprint(sb, n.Value)
	if n.Right != nil {
		sb.WriteByte('(')
		sketch(n.Right, sb)
		sb.WriteByte(')')
	}
}
