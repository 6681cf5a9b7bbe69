// Package segtree implements a segment tree over an append-only slice of
// numbers. Every node covers an inclusive slot range and caches the sum
// over it, so point updates cost one root-to-leaf path and range queries
// touch at most two such paths. Appending rebuilds the whole tree; the
// structure is sized for visual stepping, not for amortized growth.
package segtree

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Node is one aggregation node: it covers the inclusive slot range
// [Start, End] of the backing slice and caches the sum over it. Leaves
// have Start == End and mirror a single slot.
type Node[K abstract.Numeric] struct {
	Start, End int
	Sum        K
	Left       *Node[K]
	Right      *Node[K]
	Parent     *Node[K]
}

func (n *Node[K]) Kind() abstract.NodeKind { return abstract.KindBinary }

func (n *Node[K]) Label() string { return fmt.Sprint(n.Sum) }

func (n *Node[K]) Props() [][2]string {
	if n.Start == n.End {
		return [][2]string{{"index", fmt.Sprint(n.Start)}}
	}
	return [][2]string{{"range", fmt.Sprintf("%d..%d", n.Start, n.End)}}
}

func (n *Node[K]) NumChildren() int { return 2 }

func (n *Node[K]) Child(i int) abstract.Node {
	var c *Node[K]
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

// Tree is a sum segment tree over an append-only slice.
type Tree[K abstract.Numeric] struct {
	data []K
	root *Node[K]
	rec  *steps.Recorder
}

// New constructs an empty tree.
func New[K abstract.Numeric]() *Tree[K] {
	return &Tree[K]{rec: steps.NewRecorder()}
}

// Append adds v as the next slot, rebuilds the tree around it, and
// returns the slot index.
func (t *Tree[K]) Append(v K) int {
	t.data = append(t.data, v)
	t.rebuild()
	i := len(t.data) - 1
	t.rec.Recordf(steps.ActionInsert, t.leaf(i), "%v at slot %d", v, i)
	return i
}

func (t *Tree[K]) rebuild() {
	if len(t.data) == 0 {
		t.root = nil
		return
	}
	t.root = t.build(0, len(t.data)-1, nil)
}

func (t *Tree[K]) build(lo, hi int, parent *Node[K]) *Node[K] {
	n := &Node[K]{Start: lo, End: hi, Parent: parent}
	if lo == hi {
		n.Sum = t.data[lo]
		return n
	}
	mid := (lo + hi) / 2
	n.Left = t.build(lo, mid, n)
	n.Right = t.build(mid+1, hi, n)
	n.Sum = n.Left.Sum + n.Right.Sum
	return n
}

// leaf descends to the leaf covering slot i.
func (t *Tree[K]) leaf(i int) *Node[K] {
	n := t.root
	for n.Start != n.End {
		if i <= (n.Start+n.End)/2 {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

// Update sets slot i to v and refreshes the cached sums on the path back
// to the root.
func (t *Tree[K]) Update(i int, v K) error {
	if i < 0 || i >= len(t.data) {
		return errors.Wrapf(abstract.ErrBadIndex, "slot %d of %d", i, len(t.data))
	}
	t.data[i] = v
	n := t.root
	for n.Start != n.End {
		t.rec.Recordf(steps.ActionCompare, n, "slot %d in %d..%d", i, n.Start, n.End)
		if i <= (n.Start+n.End)/2 {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	n.Sum = v
	t.rec.Recordf(steps.ActionUpdate, n, "slot %d set to %v", i, v)
	for p := n.Parent; p != nil; p = p.Parent {
		p.Sum = p.Left.Sum + p.Right.Sum
		t.rec.Recordf(steps.ActionUpdate, p, "sum refreshed")
	}
	return nil
}

// RangeSum returns the sum over the inclusive slot range [lo, hi].
func (t *Tree[K]) RangeSum(lo, hi int) (K, error) {
	var zero K
	if lo < 0 || hi >= len(t.data) || lo > hi {
		return zero, errors.Wrapf(abstract.ErrBadIndex, "range %d..%d of %d", lo, hi, len(t.data))
	}
	return t.rangeSum(t.root, lo, hi), nil
}

func (t *Tree[K]) rangeSum(n *Node[K], lo, hi int) K {
	if lo <= n.Start && n.End <= hi {
		t.rec.Recordf(steps.ActionVisit, n, "%d..%d covered", n.Start, n.End)
		return n.Sum
	}
	t.rec.Recordf(steps.ActionCompare, n, "%d..%d vs %d..%d", lo, hi, n.Start, n.End)
	mid := (n.Start + n.End) / 2
	var sum K
	if lo <= mid {
		sum += t.rangeSum(n.Left, lo, hi)
	}
	if hi > mid {
		sum += t.rangeSum(n.Right, lo, hi)
	}
	return sum
}

// Search locates the first slot holding v, scanning leaves left to right.
// Interior sums never match; only stored values do.
func (t *Tree[K]) Search(v K) (*Node[K], bool) {
	var found *Node[K]
	var dfs func(n *Node[K]) bool
	dfs = func(n *Node[K]) bool {
		if n == nil {
			return false
		}
		if n.Start == n.End {
			t.rec.Recordf(steps.ActionCompare, n, "slot %d: %v vs %v", n.Start, n.Sum, v)
			if n.Sum == v {
				found = n
				return true
			}
			return false
		}
		return dfs(n.Left) || dfs(n.Right)
	}
	if !dfs(t.root) {
		return nil, false
	}
	t.rec.Recordf(steps.ActionFound, found, "slot %d holds %v", found.Start, v)
	return found, true
}

// Len returns the number of slots.
func (t *Tree[K]) Len() int { return len(t.data) }

// Nodes returns the node count of the tree, 2n-1 for n slots.
func (t *Tree[K]) Nodes() int {
	if len(t.data) == 0 {
		return 0
	}
	return 2*len(t.data) - 1
}

// Values returns a copy of the backing slice.
func (t *Tree[K]) Values() []K {
	return append([]K(nil), t.data...)
}

// Height returns the node-height of the tree.
func (t *Tree[K]) Height() int { return abstract.HeightOf(t.Root()) }

// Clear discards the slots and the tree over them.
func (t *Tree[K]) Clear() {
	t.data = nil
	t.root = nil
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

// String renders the tree as a parenthesized sketch of sums, leaves bare.
func (t *Tree[K]) String() string {
	if t.root == nil {
		return "()"
	}
	var b strings.Builder
	writeSketch(t.root, &b)
	return b.String()
}

func writeSketch[K abstract.Numeric](n *Node[K], b *strings.Builder) {
	if n.Start == n.End {
		fmt.Fprintf(b, "%v", n.Sum)
		return
	}
	b.WriteString("(")
	writeSketch(n.Left, b)
	b.WriteString(")")
	fmt.Fprintf(b, "%v", n.Sum)
	b.WriteString("(")
	writeSketch(n.Right, b)
	b.WriteString(")")
}
