// Package avl implements a height-balanced binary search tree. Every
// mutation restores the AVL invariant on its way back up the insertion or
// deletion path, so lookups stay logarithmic regardless of input order.
package avl

import (
	"fmt"
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Tree is an AVL tree over keys ordered by cmp. Node heights are stored on
// the nodes themselves (leaf = 1) and kept exact at all times.
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

func height[K any](n *abstract.BinaryNode[K]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func balance[K any](n *abstract.BinaryNode[K]) int {
	return height(n.Left) - height(n.Right)
}

func update[K any](n *abstract.BinaryNode[K]) {
	lh, rh := height(n.Left), height(n.Right)
	if lh > rh {
		n.Height = lh + 1
	} else {
		n.Height = rh + 1
	}
}

// Insert adds k, reporting whether the tree changed. Duplicates are
// ignored.
func (t *Tree[K]) Insert(k K) bool {
	var added bool
	t.root = t.insert(t.root, nil, k, &added)
	if added {
		t.size++
	}
	return added
}

func (t *Tree[K]) insert(n, parent *abstract.BinaryNode[K], k K, added *bool) *abstract.BinaryNode[K] {
	if n == nil {
		*added = true
		nn := &abstract.BinaryNode[K]{Value: k, Height: 1, Parent: parent}
		t.rec.Recordf(steps.ActionInsert, nn, "leaf %v", k)
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
	return t.rebalance(n)
}

// rebalance refreshes n's height and applies the rotation the balance
// factors call for. With a factor of exactly zero on the taller child a
// single rotation suffices; that case only arises on deletion.
func (t *Tree[K]) rebalance(n *abstract.BinaryNode[K]) *abstract.BinaryNode[K] {
	update(n)
	switch bf := balance(n); {
	case bf > 1 && balance(n.Left) >= 0:
		return t.rotateRight(n)
	case bf > 1:
		n.Left = t.rotateLeft(n.Left)
		return t.rotateRight(n)
	case bf < -1 && balance(n.Right) <= 0:
		return t.rotateLeft(n)
	case bf < -1:
		n.Right = t.rotateRight(n.Right)
		return t.rotateLeft(n)
	}
	return n
}

// rotateLeft lifts n's right child over n. The caller relinks the returned
// subtree root into n's old slot.
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
	update(n)
	update(r)
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
	update(n)
	update(l)
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

// Delete removes k, reporting whether it was present. The path back to the
// root is rebalanced node by node.
func (t *Tree[K]) Delete(k K) bool {
	var removed bool
	t.root = t.remove(t.root, k, &removed)
	if t.root != nil {
		t.root.Parent = nil
	}
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[K]) remove(n *abstract.BinaryNode[K], k K, removed *bool) *abstract.BinaryNode[K] {
	if n == nil {
		return nil
	}
	c := t.cmp(k, n.Value)
	t.rec.Recordf(steps.ActionCompare, n, "%v vs %v", k, n.Value)
	switch {
	case c < 0:
		n.Left = t.remove(n.Left, k, removed)
		if n.Left != nil {
			n.Left.Parent = n
		}
	case c > 0:
		n.Right = t.remove(n.Right, k, removed)
		if n.Right != nil {
			n.Right.Parent = n
		}
	default:
		*removed = true
		if n.Left != nil && n.Right != nil {
			s := n.Right
			for s.Left != nil {
				s = s.Left
			}
			t.rec.Recordf(steps.ActionSwap, n, "%v takes successor %v", n.Value, s.Value)
			n.Value = s.Value
			var rem bool
			n.Right = t.remove(n.Right, s.Value, &rem)
			if n.Right != nil {
				n.Right.Parent = n
			}
		} else {
			t.rec.Recordf(steps.ActionDelete, n, "detach %v", n.Value)
			c := n.Left
			if c == nil {
				c = n.Right
			}
			return c
		}
	}
	return t.rebalance(n)
}

// Len returns the number of stored keys.
func (t *Tree[K]) Len() int { return t.size }

// Height is read off the root's stored height: 0 when empty.
func (t *Tree[K]) Height() int { return height(t.root) }

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

// String returns the tree in nested form, mirroring the other binary
// structures.
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
