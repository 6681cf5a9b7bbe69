// Package btree implements a B-tree of runtime-configurable minimum
// degree. A node holds at most 2t-1 keys; descent for insertion splits any
// full node preemptively, so a split never propagates back up, and descent
// for deletion refills any minimal child first, so removal never does
// either.
package btree

import (
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// DefaultDegree is used by callers that do not care to tune node width.
const DefaultDegree = 3

// Tree is a B-tree over keys ordered by cmp.
type Tree[K any] struct {
	root   *abstract.MultiNode[K]
	degree int
	size   int
	cmp    func(K, K) int
	rec    *steps.Recorder
}

// New constructs an empty tree of the given minimum degree, ordered by
// cmp. Degrees below 2 cannot form a B-tree and panic.
func New[K any](degree int, cmp func(K, K) int) *Tree[K] {
	if degree < 2 {
		panic("btree: minimum degree must be at least 2")
	}
	return &Tree[K]{degree: degree, cmp: cmp, rec: steps.NewRecorder()}
}

func (t *Tree[K]) maxKeys() int { return 2*t.degree - 1 }
func (t *Tree[K]) minKeys() int { return t.degree - 1 }

// findKey locates the first slot in n whose key is >= k. One comparison
// step is recorded per visited node, not per scanned key.
func (t *Tree[K]) findKey(n *abstract.MultiNode[K], k K) (idx int, found bool) {
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
// ignored, though a full root may still split during the descent that
// discovers one.
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
	idx, found := t.findKey(n, k)
	if found {
		return false
	}
	if n.Leaf {
		n.Keys = insertAt(n.Keys, idx, k)
		t.rec.Recordf(steps.ActionInsert, n, "%v into leaf", k)
		return true
	}
	if len(n.Children[idx].Keys) == t.maxKeys() {
		t.splitChild(n, idx)
		// The separator that rose may be k itself, or may push k's slot
		// one to the right.
		switch c := t.cmp(k, n.Keys[idx]); {
		case c == 0:
			return false
		case c > 0:
			idx++
		}
	}
	return t.insertNonFull(n.Children[idx], k)
}

// splitChild splits the full child at index i of n, lifting its middle key
// into n.
func (t *Tree[K]) splitChild(n *abstract.MultiNode[K], i int) {
	up, right := split(n.Children[i], t.degree-1)
	n.Keys = insertAt(n.Keys, i, up)
	n.Children = insertAt(n.Children, i+1, right)
	t.rec.Recordf(steps.ActionSplit, n, "%v rises", up)
}

// Search locates the node holding k.
func (t *Tree[K]) Search(k K) (*abstract.MultiNode[K], bool) {
	n := t.root
	for n != nil {
		idx, found := t.findKey(n, k)
		if found {
			t.rec.Recordf(steps.ActionFound, n, "holds %v", k)
			return n, true
		}
		if n.Leaf {
			break
		}
		n = n.Children[idx]
	}
	return nil, false
}

// Delete removes k, reporting whether it was present. Descent refills
// minimal children before entering them, so no underflow ever travels
// upward; an emptied root hands its lone child the crown.
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
	idx, found := t.findKey(n, k)
	switch {
	case found && n.Leaf:
		n.Keys = removeAt(n.Keys, idx)
		t.rec.Recordf(steps.ActionDelete, n, "%v out of leaf", k)
		return true
	case found:
		return t.removeFromInternal(n, idx)
	case n.Leaf:
		return false
	default:
		if len(n.Children[idx].Keys) == t.minKeys() {
			idx = t.fill(n, idx)
		}
		return t.remove(n.Children[idx], k)
	}
}

// removeFromInternal removes n.Keys[idx] by swapping in its predecessor or
// successor when a flanking child can spare a key, merging around it
// otherwise.
func (t *Tree[K]) removeFromInternal(n *abstract.MultiNode[K], idx int) bool {
	k := n.Keys[idx]
	left, right := n.Children[idx], n.Children[idx+1]
	switch {
	case len(left.Keys) > t.minKeys():
		pred := subtreeMax(left)
		n.Keys[idx] = pred
		t.rec.Recordf(steps.ActionSwap, n, "%v takes predecessor %v", k, pred)
		return t.remove(left, pred)
	case len(right.Keys) > t.minKeys():
		succ := subtreeMin(right)
		n.Keys[idx] = succ
		t.rec.Recordf(steps.ActionSwap, n, "%v takes successor %v", k, succ)
		return t.remove(right, succ)
	default:
		t.merge(n, idx)
		return t.remove(left, k)
	}
}

func subtreeMax[K any](n *abstract.MultiNode[K]) K {
	for !n.Leaf {
		n = n.Children[len(n.Children)-1]
	}
	return n.Keys[len(n.Keys)-1]
}

func subtreeMin[K any](n *abstract.MultiNode[K]) K {
	for !n.Leaf {
		n = n.Children[0]
	}
	return n.Keys[0]
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

// borrowLeft rotates the left sibling's last key through the separator
// into the front of the child at idx.
func (t *Tree[K]) borrowLeft(n *abstract.MultiNode[K], idx int) {
	child, left := n.Children[idx], n.Children[idx-1]
	child.Keys = insertAt(child.Keys, 0, n.Keys[idx-1])
	last := len(left.Keys) - 1
	n.Keys[idx-1] = left.Keys[last]
	left.Keys = removeAt(left.Keys, last)
	if !child.Leaf {
		lc := len(left.Children) - 1
		child.Children = insertAt(child.Children, 0, left.Children[lc])
		left.Children = removeAt(left.Children, lc)
	}
	t.rec.Recordf(steps.ActionBorrow, child, "%v from the left", child.Keys[0])
}

// borrowRight is the mirror of borrowLeft.
func (t *Tree[K]) borrowRight(n *abstract.MultiNode[K], idx int) {
	child, right := n.Children[idx], n.Children[idx+1]
	child.Keys = append(child.Keys, n.Keys[idx])
	n.Keys[idx] = right.Keys[0]
	right.Keys = removeAt(right.Keys, 0)
	if !child.Leaf {
		child.Children = append(child.Children, right.Children[0])
		right.Children = removeAt(right.Children, 0)
	}
	t.rec.Recordf(steps.ActionBorrow, child, "%v from the right", child.Keys[len(child.Keys)-1])
}

// merge folds the separator at idx and the right sibling into the child at
// idx.
func (t *Tree[K]) merge(n *abstract.MultiNode[K], idx int) {
	child, right := n.Children[idx], n.Children[idx+1]
	t.rec.Recordf(steps.ActionMerge, child, "separator %v comes down", n.Keys[idx])
	child.Keys = append(child.Keys, n.Keys[idx])
	child.Keys = append(child.Keys, right.Keys...)
	if !child.Leaf {
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

// Ascend visits the keys in ascending order until visit returns false.
func (t *Tree[K]) Ascend(visit func(K) bool) {
	var walk func(n *abstract.MultiNode[K]) bool
	walk = func(n *abstract.MultiNode[K]) bool {
		if n.Leaf {
			for _, k := range n.Keys {
				if !visit(k) {
					return false
				}
			}
			return true
		}
		for i, k := range n.Keys {
			if !walk(n.Children[i]) || !visit(k) {
				return false
			}
		}
		return walk(n.Children[len(n.Children)-1])
	}
	if t.root != nil {
		walk(t.root)
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
