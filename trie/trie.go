// Package trie implements a prefix tree over words. Input is normalized
// (trimmed, lowercased) before use, one character per node. The root node
// carries no character and always exists, so an empty trie still displays.
package trie

import (
	"fmt"
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Normalize maps raw input to the stored form of a word.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tree is a prefix tree. It counts whole words and character nodes
// separately; the root is neither.
type Tree struct {
	root  *abstract.TrieNode
	words int
	nodes int
	rec   *steps.Recorder
}

// New constructs an empty trie.
func New() *Tree {
	return &Tree{root: &abstract.TrieNode{}, rec: steps.NewRecorder()}
}

// Insert adds word, reporting whether the trie changed. Inserting a stored
// word again is a no-op.
func (t *Tree) Insert(word string) bool {
	word = Normalize(word)
	if word == "" {
		return false
	}
	cur := t.root
	for _, r := range word {
		next, ok := cur.Children[r]
		if !ok {
			next = &abstract.TrieNode{Char: r, Parent: cur}
			if cur.Children == nil {
				cur.Children = make(map[rune]*abstract.TrieNode)
			}
			cur.Children[r] = next
			t.nodes++
			t.rec.Recordf(steps.ActionInsert, next, "new node %q", r)
		} else {
			t.rec.Recordf(steps.ActionVisit, next, "follow %q", r)
		}
		cur = next
	}
	if cur.End {
		return false
	}
	cur.End = true
	t.words++
	t.rec.Recordf(steps.ActionUpdate, cur, "word end %q", word)
	return true
}

// Search locates word, requiring a word-end mark at its final node.
func (t *Tree) Search(word string) (*abstract.TrieNode, bool) {
	n := t.descend(Normalize(word))
	if n == nil || !n.End {
		return nil, false
	}
	t.rec.Recordf(steps.ActionFound, n, "")
	return n, true
}

// StartsWith reports whether any stored word begins with prefix.
func (t *Tree) StartsWith(prefix string) bool {
	prefix = Normalize(prefix)
	if prefix == "" {
		return false
	}
	return t.descend(prefix) != nil
}

func (t *Tree) descend(word string) *abstract.TrieNode {
	cur := t.root
	for _, r := range word {
		next, ok := cur.Children[r]
		if !ok {
			t.rec.Recordf(steps.ActionCompare, cur, "no edge %q", r)
			return nil
		}
		t.rec.Recordf(steps.ActionCompare, next, "edge %q", r)
		cur = next
	}
	return cur
}

// Delete unmarks word and prunes any character nodes left without words
// below them, reporting whether the word was stored.
func (t *Tree) Delete(word string) bool {
	word = Normalize(word)
	if word == "" {
		return false
	}
	path := []*abstract.TrieNode{t.root}
	cur := t.root
	for _, r := range word {
		next, ok := cur.Children[r]
		if !ok {
			return false
		}
		path = append(path, next)
		cur = next
	}
	if !cur.End {
		return false
	}
	cur.End = false
	t.words--
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		if n.End || len(n.Children) > 0 {
			break
		}
		delete(path[i-1].Children, n.Char)
		n.Parent = nil
		t.nodes--
		t.rec.Recordf(steps.ActionDelete, n, "prune %q", n.Char)
	}
	return true
}

// Words lists the stored words in ascending order.
func (t *Tree) Words() []string {
	var out []string
	var prefix []rune
	var dfs func(n *abstract.TrieNode)
	dfs = func(n *abstract.TrieNode) {
		if n.End {
			out = append(out, string(prefix))
		}
		for _, c := range n.SortedChildren() {
			prefix = append(prefix, c.Char)
			dfs(c)
			prefix = prefix[:len(prefix)-1]
		}
	}
	dfs(t.root)
	return out
}

// Len returns the number of stored words.
func (t *Tree) Len() int { return t.words }

// Nodes returns the number of character nodes; the root is not one.
func (t *Tree) Nodes() int { return t.nodes }

// Height is the length of the longest stored prefix chain, 0 when no
// words are stored.
func (t *Tree) Height() int { return abstract.HeightOf(t.root) - 1 }

// Clear discards every word but keeps the root.
func (t *Tree) Clear() {
	t.root = &abstract.TrieNode{}
	t.words = 0
	t.nodes = 0
}

// Root returns the root node; a trie always has one to display.
func (t *Tree) Root() abstract.Node { return t.root }

// Steps drains the animation log recorded since the last drain.
func (t *Tree) Steps() []steps.Step { return t.rec.Drain() }

// String renders the stored words, e.g. "[car cat]".
func (t *Tree) String() string { return fmt.Sprintf("%v", t.Words()) }
