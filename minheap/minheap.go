// Package minheap implements a binary min-heap on a slice, displayed as
// the complete binary tree the slice encodes. Slot i parents slots 2i+1
// and 2i+2; the display tree is rebuilt from the slice after every
// mutation.
package minheap

import (
	"fmt"
	"math/bits"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Heap is a min-heap over keys ordered by cmp. Duplicates are allowed.
type Heap[K any] struct {
	items []K
	nodes []*abstract.BinaryNode[K]
	root  *abstract.BinaryNode[K]
	cmp   func(K, K) int
	rec   *steps.Recorder
}

// New constructs an empty heap ordered by cmp.
func New[K any](cmp func(K, K) int) *Heap[K] {
	return &Heap[K]{cmp: cmp, rec: steps.NewRecorder()}
}

// Insert adds k and restores the heap property along the parent chain.
func (h *Heap[K]) Insert(k K) {
	h.items = append(h.items, k)
	h.rec.Recordf(steps.ActionInsert, nil, "%v at slot %d", k, len(h.items)-1)
	h.siftUp(len(h.items) - 1)
	h.refresh()
}

func (h *Heap[K]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		h.rec.Recordf(steps.ActionCompare, nil, "%v vs parent %v", h.items[i], h.items[p])
		if h.cmp(h.items[i], h.items[p]) >= 0 {
			return
		}
		h.rec.Recordf(steps.ActionSwap, nil, "%v and %v", h.items[i], h.items[p])
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

// Min returns the smallest key without removing it.
func (h *Heap[K]) Min() (K, bool) {
	if len(h.items) == 0 {
		var zero K
		return zero, false
	}
	return h.items[0], true
}

// PopMin removes and returns the smallest key: the last slot moves to the
// root and sifts down.
func (h *Heap[K]) PopMin() (K, bool) {
	if len(h.items) == 0 {
		var zero K
		return zero, false
	}
	min := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	h.rec.Recordf(steps.ActionDelete, nil, "min %v leaves", min)
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	h.refresh()
	return min, true
}

func (h *Heap[K]) siftDown(i int) {
	n := len(h.items)
	for {
		small := i
		if l := 2*i + 1; l < n {
			h.rec.Recordf(steps.ActionCompare, nil, "%v vs child %v", h.items[i], h.items[l])
			if h.cmp(h.items[l], h.items[small]) < 0 {
				small = l
			}
		}
		if r := 2*i + 2; r < n {
			h.rec.Recordf(steps.ActionCompare, nil, "%v vs child %v", h.items[i], h.items[r])
			if h.cmp(h.items[r], h.items[small]) < 0 {
				small = r
			}
		}
		if small == i {
			return
		}
		h.rec.Recordf(steps.ActionSwap, nil, "%v and %v", h.items[i], h.items[small])
		h.items[i], h.items[small] = h.items[small], h.items[i]
		i = small
	}
}

// Search scans the backing slice; a heap offers no ordering shortcut for
// arbitrary keys.
func (h *Heap[K]) Search(k K) (*abstract.BinaryNode[K], bool) {
	for i, v := range h.items {
		h.rec.Recordf(steps.ActionCompare, h.nodes[i], "%v vs %v", k, v)
		if h.cmp(k, v) == 0 {
			h.rec.Recordf(steps.ActionFound, h.nodes[i], "slot %d", i)
			return h.nodes[i], true
		}
	}
	return nil, false
}

// refresh rebuilds the display tree from the slice.
func (h *Heap[K]) refresh() {
	h.nodes = h.nodes[:0]
	if len(h.items) == 0 {
		h.root = nil
		return
	}
	for _, v := range h.items {
		h.nodes = append(h.nodes, &abstract.BinaryNode[K]{Value: v})
	}
	for i, n := range h.nodes {
		if l := 2*i + 1; l < len(h.nodes) {
			n.Left = h.nodes[l]
			h.nodes[l].Parent = n
		}
		if r := 2*i + 2; r < len(h.nodes) {
			n.Right = h.nodes[r]
			h.nodes[r].Parent = n
		}
	}
	h.root = h.nodes[0]
}

// Len returns the number of stored keys.
func (h *Heap[K]) Len() int { return len(h.items) }

// Height of a complete tree follows from its size alone.
func (h *Heap[K]) Height() int { return bits.Len(uint(len(h.items))) }

// Clear discards every slot.
func (h *Heap[K]) Clear() {
	h.items = nil
	h.nodes = nil
	h.root = nil
}

// Root returns the display root, nil when empty.
func (h *Heap[K]) Root() abstract.Node {
	if h.root == nil {
		return nil
	}
	return h.root
}

// Steps drains the animation log recorded since the last drain.
func (h *Heap[K]) Steps() []steps.Step { return h.rec.Drain() }

// Items returns the backing slice in heap order. Callers must not modify
// it.
func (h *Heap[K]) Items() []K { return h.items }

// String renders the backing slice, e.g. "[1 3 8 5]".
func (h *Heap[K]) String() string { return fmt.Sprintf("%v", h.items) }
