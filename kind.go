package trees

import "strings"

// ParseKind resolves a user-facing structure identifier. Matching is
// case-insensitive and tolerant of the usual spellings; ok reports whether
// the id was recognized. Unrecognized ids resolve to BST, the engine's
// default structure.
func ParseKind(id string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "bst", "binary-search-tree", "binarysearchtree":
		return BST, true
	case "avl", "avl-tree":
		return AVL, true
	case "red-black", "redblack", "rbt", "red-black-tree":
		return RedBlack, true
	case "min-heap", "minheap", "heap":
		return MinHeap, true
	case "trie", "prefix-tree":
		return Trie, true
	case "b-tree", "btree":
		return BTree, true
	case "b-plus-tree", "bplus", "bplustree", "b+tree":
		return BPlusTree, true
	case "segment-tree", "segtree", "segment":
		return SegmentTree, true
	case "fenwick-tree", "fenwick", "binary-indexed-tree", "bit":
		return FenwickTree, true
	default:
		return BST, false
	}
}
