// Package bplus implements a B+ tree of runtime-configurable minimum
// degree. Every value lives in a leaf; internal nodes hold routing
// separators only, and the leaves form a singly linked chain for ordered
// scans. A separator may outlive the value it was copied from, so routing
// sends keys equal to a separator to its right, which keeps lookups
// correct whether or not the copy has gone stale.
package bplus

import (
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// DefaultDegree is used by callers that do not care to tune node width.
const DefaultDegree = 3

// Tree is a B+ tree over keys ordered by cmp.
type Tree[K any] struct {
	root   *abstract.MultiNode[K]
	degree int
	size   int
	cmp    func(K, K) int
	rec    *steps.Recorder
}

// New constructs an empty tree of the given minimum degree, ordered by
// cmp. Degrees below 2 cannot form a B+ tree and panic.
func New[K any](degree int, cmp func(K, K) int) *Tree[K] {
	if degree < 2 {
		panic("bplus: minimum degree must be at least 2")
	}
	return &Tree[K]{degree: degree, cmp: cmp, rec: steps.NewRecorder()}
}

func (t *Tree[K]) maxKeys() int { return 2*t.degree - 1 }
func (t *Tree[K]) minKeys() int { return t.degree - 1 }

// route picks the child of n to descend into. Keys equal to a separator
// live in the subtree to its right.
func (t *Tree[K]) route(n *abstract.MultiNode[K], k K) int {
	t.rec.Recordf(steps.ActionCompare, n, "%v vs [%s]", k, n.Label())
	idx := 0
	for idx < len(n.Keys) && t.cmp(k, n.Keys[idx]) >= 0 {
		idx++
	}
	return idx
}

// findInLeaf locates the first slot in the leaf n whose key is >= k.
func (t *Tree[K]) findInLeaf(n *abstract.MultiNode[K], k K) (idx int, found bool) {
	if len(n.Keys) > 0 {
		t.rec.Recordf(steps.ActionCompare, n, "%v vs [%s]", k, n.Label())
	}
	for i, key := range n.Keys {
		c := t.cmp(k, key)
		if c == 0 {
			return i, true
		}
		if c < 0 {
			return i, false
		}
	}
	return len(n.Keys), false
}

// Insert adds k, reporting whether the tree changed. Duplicates are
// detected at the leaf tier and ignored, though a full root may still
// split during the descent that discovers one.
func (t *Tree[K]) Insert(k K) bool {
	if t.root == nil {
		t.root = &abstract.MultiNode[K]{Leaf: true}
	}
	if len(t.root.Keys) == t.maxKeys() {
		old := t.root
		t.root = &abstract.MultiNode[K]{Children: []*abstract.MultiNode[K]{old}}
		t.splitChild(t.root, 0)
	}
	if !t.insertNonFull(t.root, k) {
		return false
	}
	t.size++
	return true
}

func (t *Tree[K]) insertNonFull(n *abstract.MultiNode[K], k K) bool {
	if n.Leaf {
		idx, found := t.findInLeaf(n, k)
		if found {
			return false
		}
		n.Keys = insertAt(n.Keys, idx, k)
		t.rec.Recordf(steps.ActionInsert, n, "%v into leaf", k)
		return true
	}
	idx := t.route(n, k)
	if len(n.Children[idx].Keys) == t.maxKeys() {
		t.splitChild(n, idx)
		if t.cmp(k, n.Keys[idx]) >= 0 {
			idx++
		}
	}
	return t.insertNonFull(n.Children[idx], k)
}

// splitChild splits the full child at index i of n. A leaf keeps a copy
// of the risen separator as the first key of its right half so no value
// leaves the leaf tier; an internal child hands the separator up for good.
func (t *Tree[K]) splitChild(n *abstract.MultiNode[K], i int) {
	child := n.Children[i]
	var up K
	var right *abstract.MultiNode[K]
	if child.Leaf {
		up, right = splitLeaf(child, t.degree-1)
	} else {
		up, right = splitInternal(child, t.degree-1)
	}
	n.Keys = insertAt(n.Keys, i, up)
	n.Children = insertAt(n.Children, i+1, right)
	t.rec.Recordf(steps.ActionSplit, n, "%v rises", up)
}

// Search locates the leaf holding k.
func (t *Tree[K]) Search(k K) (*abstract.MultiNode[K], bool) {
	n := t.root
	if n == nil {
		return nil, false
	}
	for !n.Leaf {
		n = n.Children[t.route(n, k)]
	}
	if _, found := t.findInLeaf(n, k); !found {
		return nil, false
	}
	t.rec.Recordf(steps.ActionFound, n, "holds %v", k)
	return n, true
}

// Delete removes k, reporting whether it was present. Descent refills
// minimal children before entering them, so no underflow ever travels
// upward; an emptied root hands its lone child the crown. Separators are
// never chased down for repair, stale copies route correctly as is.
func (t *Tree[K]) Delete(k K) bool {
	if t.root == nil {
		return false
	}
	if !t.remove(t.root, k) {
		return false
	}
	if len(t.root.Keys) == 0 {
		if t.root.Leaf {
			t.root = nil
		} else {
			t.root = t.root.Children[0]
		}
	}
	t.size--
	return true
}

func (t *Tree[K]) remove(n *abstract.MultiNode[K], k K) bool {
	if n.Leaf {
		idx, found := t.findInLeaf(n, k)
		if !found {
			return false
		}
		n.Keys = removeAt(n.Keys, idx)
		t.rec.Recordf(steps.ActionDelete, n, "%v out of leaf", k)
		return true
	}
	idx := t.route(n, k)
	if len(n.Children[idx].Keys) == t.minKeys() {
		idx = t.fill(n, idx)
	}
	return t.remove(n.Children[idx], k)
}

// fill grows the minimal child at idx by borrowing from a sibling or, when
// both siblings are minimal too, merging with one. It returns the index to
// descend into afterwards.
func (t *Tree[K]) fill(n *abstract.MultiNode[K], idx int) int {
	switch {
	case idx > 0 && len(n.Children[idx-1].Keys) > t.minKeys():
		t.borrowLeft(n, idx)
	case idx < len(n.Children)-1 && len(n.Children[idx+1].Keys) > t.minKeys():
		t.borrowRight(n, idx)
	default:
		if idx == len(n.Children)-1 {
			idx--
		}
		t.merge(n, idx)
	}
	return idx
}

// borrowLeft moves the left sibling's last key to the front of the child
// at idx. Between leaves the key moves directly and the separator is
// rewritten to the child's new first key; between internal nodes the key
// rotates through the separator, B-tree style.
func (t *Tree[K]) borrowLeft(n *abstract.MultiNode[K], idx int) {
	child, left := n.Children[idx], n.Children[idx-1]
	last := len(left.Keys) - 1
	if child.Leaf {
		child.Keys = insertAt(child.Keys, 0, left.Keys[last])
		n.Keys[idx-1] = child.Keys[0]
	} else {
		child.Keys = insertAt(child.Keys, 0, n.Keys[idx-1])
		n.Keys[idx-1] = left.Keys[last]
		lc := len(left.Children) - 1
		child.Children = insertAt(child.Children, 0, left.Children[lc])
		left.Children = removeAt(left.Children, lc)
	}
	left.Keys = removeAt(left.Keys, last)
	t.rec.Recordf(steps.ActionBorrow, child, "%v from the left", child.Keys[0])
}

// borrowRight is the mirror of borrowLeft.
func (t *Tree[K]) borrowRight(n *abstract.MultiNode[K], idx int) {
	child, right := n.Children[idx], n.Children[idx+1]
	if child.Leaf {
		child.Keys = append(child.Keys, right.Keys[0])
		right.Keys = removeAt(right.Keys, 0)
		n.Keys[idx] = right.Keys[0]
	} else {
		child.Keys = append(child.Keys, n.Keys[idx])
		n.Keys[idx] = right.Keys[0]
		right.Keys = removeAt(right.Keys, 0)
		child.Children = append(child.Children, right.Children[0])
		right.Children = removeAt(right.Children, 0)
	}
	t.rec.Recordf(steps.ActionBorrow, child, "%v from the right", child.Keys[len(child.Keys)-1])
}

// merge folds the right sibling into the child at idx. Between leaves the
// separator is a copy of a key that survives in the merged node, so it is
// simply dropped and the leaf chain is restitched; between internal nodes
// it comes down to divide the two halves.
func (t *Tree[K]) merge(n *abstract.MultiNode[K], idx int) {
	child, right := n.Children[idx], n.Children[idx+1]
	t.rec.Recordf(steps.ActionMerge, child, "separator %v retires", n.Keys[idx])
	if child.Leaf {
		child.Keys = append(child.Keys, right.Keys...)
		child.Next = right.Next
	} else {
		child.Keys = append(child.Keys, n.Keys[idx])
		child.Keys = append(child.Keys, right.Keys...)
		child.Children = append(child.Children, right.Children...)
	}
	n.Keys = removeAt(n.Keys, idx)
	n.Children = removeAt(n.Children, idx+1)
}

// Len returns the number of stored keys.
func (t *Tree[K]) Len() int { return t.size }

// Height walks the leftmost spine; every leaf sits at the same depth.
func (t *Tree[K]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 1
	for n := t.root; !n.Leaf; n = n.Children[0] {
		h++
	}
	return h
}

// Clear discards every node.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Degree returns the minimum degree the tree was built with.
func (t *Tree[K]) Degree() int { return t.degree }

// Root returns the root node, nil when empty.
func (t *Tree[K]) Root() abstract.Node {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Steps drains the animation log recorded since the last drain.
func (t *Tree[K]) Steps() []steps.Step { return t.rec.Drain() }

// Ascend visits the keys in ascending order by walking the leaf chain.
func (t *Tree[K]) Ascend(visit func(K) bool) {
	n := t.root
	if n == nil {
		return
	}
	for !n.Leaf {
		n = n.Children[0]
	}
	for ; n != nil; n = n.Next {
		for _, k := range n.Keys {
			if !visit(k) {
				return
			}
		}
	}
}

// Scan visits the keys >= from in ascending order, descending once and
// then following the leaf chain.
func (t *Tree[K]) Scan(from K, visit func(K) bool) {
	n := t.root
	if n == nil {
		return
	}
	for !n.Leaf {
		idx := 0
		for idx < len(n.Keys) && t.cmp(from, n.Keys[idx]) >= 0 {
			idx++
		}
		n = n.Children[idx]
	}
	for ; n != nil; n = n.Next {
		for _, k := range n.Keys {
			if t.cmp(k, from) < 0 {
				continue
			}
			if !visit(k) {
				return
			}
		}
	}
}

// String returns a string description of the tree. The format is similar
// to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[K]) String() string {
	if t.size == 0 {
		return ";"
	}
	var b strings.Builder
	writeString(t.root, &b)
	return b.String()
}
