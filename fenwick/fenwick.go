// Package fenwick implements a binary indexed tree over an append-only
// slice of numbers. The flat bit array is the structure of record: slot j
// (1-based) caches the sum of the lowbit(j) values ending at j, so point
// updates and prefix sums both walk O(log n) slots. A display forest is
// derived from the array after every mutation, with a synthetic root
// adopting the positions whose natural parent falls past the end.
package fenwick

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Tree is a sum binary indexed tree over an append-only slice.
type Tree[K abstract.Numeric] struct {
	data  []K // stored values, 0-based
	bit   []K // partial sums, 1-based with slot 0 unused
	nodes []*abstract.ForestNode[K]
	root  *abstract.ForestNode[K]
	rec   *steps.Recorder
}

// New constructs an empty tree.
func New[K abstract.Numeric]() *Tree[K] {
	return &Tree[K]{bit: make([]K, 1), rec: steps.NewRecorder()}
}

func lowbit(i int) int { return i & (-i) }

// Append adds v as the next slot and returns the slot index. The new bit
// slot accumulates the sibling ranges it absorbs, so no existing slot is
// touched.
func (t *Tree[K]) Append(v K) int {
	t.data = append(t.data, v)
	n := len(t.data)
	t.bit = append(t.bit, v)
	for j := n - 1; j > n-lowbit(n); j -= lowbit(j) {
		t.bit[n] += t.bit[j]
	}
	t.refresh()
	t.rec.Recordf(steps.ActionInsert, t.nodes[n], "%v at slot %d", v, n-1)
	return n - 1
}

// Update sets slot i to v, pushing the delta through every bit slot
// responsible for it.
func (t *Tree[K]) Update(i int, v K) error {
	if i < 0 || i >= len(t.data) {
		return errors.Wrapf(abstract.ErrBadIndex, "slot %d of %d", i, len(t.data))
	}
	delta := v - t.data[i]
	t.data[i] = v
	n := len(t.data)
	var touched []int
	for j := i + 1; j <= n; j += j & (-j) {
		t.bit[j] += delta
		touched = append(touched, j)
	}
	t.refresh()
	t.rec.Recordf(steps.ActionUpdate, t.nodes[touched[0]], "slot %d set to %v", i, v)
	for _, j := range touched[1:] {
		t.rec.Recordf(steps.ActionUpdate, t.nodes[j], "carries the delta")
	}
	return nil
}

// PrefixSum returns the sum of slots 0..i inclusive.
func (t *Tree[K]) PrefixSum(i int) (K, error) {
	var zero K
	if i < 0 || i >= len(t.data) {
		return zero, errors.Wrapf(abstract.ErrBadIndex, "slot %d of %d", i, len(t.data))
	}
	return t.prefix(i), nil
}

func (t *Tree[K]) prefix(i int) K {
	var sum K
	for j := i + 1; j > 0; j -= lowbit(j) {
		sum += t.bit[j]
		t.rec.Recordf(steps.ActionVisit, t.nodes[j], "covers slots %d..%d", j-lowbit(j), j-1)
	}
	return sum
}

// RangeSum returns the sum over the inclusive slot range [lo, hi].
func (t *Tree[K]) RangeSum(lo, hi int) (K, error) {
	var zero K
	if lo < 0 || hi >= len(t.data) || lo > hi {
		return zero, errors.Wrapf(abstract.ErrBadIndex, "range %d..%d of %d", lo, hi, len(t.data))
	}
	sum := t.prefix(hi)
	if lo > 0 {
		sum -= t.prefix(lo - 1)
	}
	return sum, nil
}

// Search locates the first slot holding v. The returned node is the tree
// position responsible for that slot; its cached sum may span more slots
// than the one found.
func (t *Tree[K]) Search(v K) (*abstract.ForestNode[K], bool) {
	for i, d := range t.data {
		t.rec.Recordf(steps.ActionCompare, t.nodes[i+1], "slot %d: %v vs %v", i, d, v)
		if d == v {
			t.rec.Recordf(steps.ActionFound, t.nodes[i+1], "slot %d holds %v", i, v)
			return t.nodes[i+1], true
		}
	}
	return nil, false
}

// refresh rebuilds the display forest from the bit array. Position j hangs
// under j+lowbit(j); the synthetic root at index 0 adopts everything that
// overshoots.
func (t *Tree[K]) refresh() {
	n := len(t.data)
	if n == 0 {
		t.nodes = nil
		t.root = nil
		return
	}
	nodes := make([]*abstract.ForestNode[K], n+1)
	nodes[0] = &abstract.ForestNode[K]{Index: 0}
	for j := 1; j <= n; j++ {
		nodes[j] = &abstract.ForestNode[K]{Index: j, Value: t.bit[j]}
	}
	for j := 1; j <= n; j++ {
		p := j + lowbit(j)
		if p > n {
			p = 0
		}
		nodes[j].Parent = nodes[p]
		nodes[p].Children = append(nodes[p].Children, nodes[j])
	}
	t.nodes = nodes
	t.root = nodes[0]
}

// Len returns the number of slots.
func (t *Tree[K]) Len() int { return len(t.data) }

// Values returns a copy of the stored values.
func (t *Tree[K]) Values() []K {
	return append([]K(nil), t.data...)
}

// Bits returns a copy of the partial sums, indexed from position 1.
func (t *Tree[K]) Bits() []K {
	return append([]K(nil), t.bit[1:]...)
}

// Height is that of the display forest, whose synthetic root sits above
// every top-level range.
func (t *Tree[K]) Height() int { return abstract.HeightOf(t.Root()) }

// Clear discards the slots and the forest over them.
func (t *Tree[K]) Clear() {
	t.data = nil
	t.bit = make([]K, 1)
	t.nodes = nil
	t.root = nil
}

// Root returns the synthetic forest root, nil when empty.
func (t *Tree[K]) Root() abstract.Node {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Steps drains the animation log recorded since the last drain.
func (t *Tree[K]) Steps() []steps.Step { return t.rec.Drain() }

// String shows both arrays; the bit array is the structure of record.
func (t *Tree[K]) String() string {
	return fmt.Sprintf("data=%v bit=%v", t.data, t.bit[1:])
}
