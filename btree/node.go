// Copyright 2018 The Cockroach Authors.
// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package btree

import (
	"fmt"
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
)

// insertAt makes room at index i and places v there.
func insertAt[T any](s []T, i int, v T) []T {
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeAt closes the gap at index i, zeroing the vacated tail slot.
func removeAt[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// split divides n at key index i. The current node shrinks, and this
// function returns the key that existed at that index and a new node
// containing all keys/children after it.
//
// Before:
//
//          +-----------+
//          |   x y z   |
//          +--/-/-\-\--+
//
// After:
//
//          +-----------+
//          |     y     |
//          +----/-\----+
//              /   \
//             v     v
// +-----------+     +-----------+
// |         x |     | z         |
// +-----------+     +-----------+
//
func split[K any](n *abstract.MultiNode[K], i int) (K, *abstract.MultiNode[K]) {
	up := n.Keys[i]
	next := &abstract.MultiNode[K]{Leaf: n.Leaf}
	next.Keys = append(next.Keys, n.Keys[i+1:]...)
	for j := i; j < len(n.Keys); j++ {
		var zero K
		n.Keys[j] = zero
	}
	n.Keys = n.Keys[:i]
	if !n.Leaf {
		next.Children = append(next.Children, n.Children[i+1:]...)
		for j := i + 1; j < len(n.Children); j++ {
			n.Children[j] = nil
		}
		n.Children = n.Children[:i+1]
	}
	return up, next
}

// writeString renders the subtree in a form similar to the
// https://en.wikipedia.org/wiki/Newick_format: leaves as comma-joined
// keys, internal nodes interleaving parenthesized children between keys.
func writeString[K any](n *abstract.MultiNode[K], b *strings.Builder) {
	if n.Leaf {
		for i, k := range n.Keys {
			if i != 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(b, "%v", k)
		}
		return
	}
	for i := 0; i <= len(n.Keys); i++ {
		b.WriteString("(")
		writeString(n.Children[i], b)
		b.WriteString(")")
		if i < len(n.Keys) {
			fmt.Fprintf(b, "%v", n.Keys[i])
		}
	}
}
