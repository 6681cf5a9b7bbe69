// Package redblack implements a red-black binary search tree in the
// left-leaning style: inserted nodes start red, and each node on the way
// back up the insertion path is repaired by a color flip when both
// children are red, a left rotation when only the right child is red, and
// a right rotation when two reds stack on the left. The root is forced
// black after every mutation.
//
// Deletion detaches nodes the way a plain binary search tree does and
// keeps the surviving colors; it restores no red-black shape beyond the
// black root. Lookups stay correct either way.
package redblack

import (
	"fmt"
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Tree is a red-black tree over keys ordered by cmp.
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

func isRed[K any](n *abstract.BinaryNode[K]) bool {
	return n != nil && n.Color == abstract.Red
}

// Insert adds k, reporting whether the tree changed. Duplicates are
// ignored.
func (t *Tree[K]) Insert(k K) bool {
	var added bool
	t.root = t.insert(t.root, nil, k, &added)
	t.root.Parent = nil
	t.root.Color = abstract.Black
	if added {
		t.size++
	}
	return added
}

func (t *Tree[K]) insert(n, parent *abstract.BinaryNode[K], k K, added *bool) *abstract.BinaryNode[K] {
	if n == nil {
		*added = true
		nn := &abstract.BinaryNode[K]{Value: k, Color: abstract.Red, Parent: parent}
		t.rec.Recordf(steps.ActionInsert, nn, "red leaf %v", k)
		return nn
	}
	c := t.cmp(k, n.Value)
	t.rec.Recordf(steps.ActionCompare, n, "%v vs %v", k, n.Value)
	switch {
	case c < 0:
		n.Left = t.insert(n.Left, n, k, added)
	case c > 0:
		n.Right = t.insert(n.Right, n, k, added)
	default:
		return n
	}
	return t.fixUp(n)
}

// fixUp repairs the node after an insertion below it: split a 4-node,
// straighten a right-leaning red, lift a left-left red pair.
func (t *Tree[K]) fixUp(n *abstract.BinaryNode[K]) *abstract.BinaryNode[K] {
	if isRed(n.Left) && isRed(n.Right) {
		t.colorFlip(n)
	}
	if isRed(n.Right) && !isRed(n.Left) {
		n = t.rotateLeft(n)
	}
	if isRed(n.Left) && isRed(n.Left.Left) {
		n = t.rotateRight(n)
	}
	return n
}

func (t *Tree[K]) colorFlip(n *abstract.BinaryNode[K]) {
	t.rec.Recordf(steps.ActionColorFlip, n, "%v reddens, children blacken", n.Value)
	n.Color = abstract.Red
	n.Left.Color = abstract.Black
	n.Right.Color = abstract.Black
}

// rotateLeft lifts the red right child over n; the child takes n's color
// and n turns red.
func (t *Tree[K]) rotateLeft(n *abstract.BinaryNode[K]) *abstract.BinaryNode[K] {
	r := n.Right
	t.rec.Recordf(steps.ActionRotateLeft, n, "%v pivots under %v", n.Value, r.Value)
	n.Right = r.Left
	if r.Left != nil {
		r.Left.Parent = n
	}
	r.Left = n
	r.Parent = n.Parent
	n.Parent = r
	r.Color = n.Color
	n.Color = abstract.Red
	return r
}

// rotateRight is the mirror of rotateLeft.
func (t *Tree[K]) rotateRight(n *abstract.BinaryNode[K]) *abstract.BinaryNode[K] {
	l := n.Left
	t.rec.Recordf(steps.ActionRotateRight, n, "%v pivots under %v", n.Value, l.Value)
	n.Left = l.Right
	if l.Right != nil {
		l.Right.Parent = n
	}
	l.Right = n
	l.Parent = n.Parent
	n.Parent = l
	l.Color = n.Color
	n.Color = abstract.Red
	return l
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
	if n.Left != nil && n.Right != nil {
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
	t.rec.Recordf(steps.ActionDelete, n, "detached %v", n.Value)
	if t.root != nil {
		t.root.Color = abstract.Black
	}
	t.size--
	return true
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

// String returns the tree in nested form with a color initial after each
// value, e.g. "(10R)20B(30R)".
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
	if n.Color == abstract.Red {
		sb.WriteByte('R')
	} else {
		sb.WriteByte('B')
	}
	if n.Right != nil {
		sb.WriteByte('(')
		sketch(n.Right, sb)
		sb.WriteByte(')')
	}
}
