// Package render turns structure snapshots into terminal text: an indented
// outline, a two-dimensional canvas with connectors, and a numbered replay
// of animation steps. Structures expose read-only nodes and never carry
// rendering state; marks live here, in annotation tables keyed by node
// identity.
package render

import (
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
)

// Canvas draws the tree in two dimensions, each parent centered over its
// children, with /, |, and \ connectors between rows. Binary nodes keep an
// empty slot for a missing child so a lone child still leans the right way.
func Canvas(root abstract.Node) string {
	if root == nil {
		return "(empty)\n"
	}
	b := layout(root)
	return strings.Join(b.lines, "\n") + "\n"
}

// block is a laid-out subtree: its text lines, total width, and the column
// of the root label's center.
type block struct {
	lines []string
	width int
	root  int
}

const gap = 2

func layout(n abstract.Node) block {
	label := n.Label()
	slots := childSlots(n)
	if len(slots) == 0 {
		return block{lines: []string{label}, width: len(label), root: len(label) / 2}
	}

	blocks := make([]block, len(slots))
	roots := make([]int, len(slots))
	width, depth := 0, 0
	for i, c := range slots {
		bl := block{width: 1}
		if c != nil {
			bl = layout(c)
		}
		if i > 0 {
			width += gap
		}
		roots[i] = width + bl.root
		blocks[i] = bl
		width += bl.width
		if len(bl.lines) > depth {
			depth = len(bl.lines)
		}
	}

	body := make([]string, depth)
	col := 0
	for i, bl := range blocks {
		if i > 0 {
			col += gap
		}
		for r, line := range bl.lines {
			body[r] = overlay(body[r], line, col)
		}
		col += bl.width
	}

	start := (roots[0]+roots[len(roots)-1])/2 - len(label)/2
	if start < 0 {
		start = 0
	}
	if start+len(label) > width {
		width = start + len(label)
	}
	center := start + len(label)/2

	conn := ""
	for i, c := range slots {
		if c == nil {
			continue
		}
		ch := "|"
		switch {
		case roots[i] < center:
			ch = "/"
		case roots[i] > center:
			ch = `\`
		}
		conn = overlay(conn, ch, roots[i])
	}

	lines := append([]string{strings.Repeat(" ", start) + label, conn}, body...)
	return block{lines: lines, width: width, root: center}
}

// childSlots returns the children to lay out. Binary nodes keep nil slots
// as spacers unless both are empty; other kinds list present children only.
func childSlots(n abstract.Node) []abstract.Node {
	if n.Kind() == abstract.KindBinary {
		l, r := n.Child(0), n.Child(1)
		if l == nil && r == nil {
			return nil
		}
		return []abstract.Node{l, r}
	}
	var kids []abstract.Node
	for i, num := 0, n.NumChildren(); i < num; i++ {
		if c := n.Child(i); c != nil {
			kids = append(kids, c)
		}
	}
	return kids
}

// overlay writes src into dst at the given column. Layout writes each row
// left to right, so dst always ends at or before the column.
func overlay(dst, src string, at int) string {
	if len(dst) < at {
		dst += strings.Repeat(" ", at-len(dst))
	}
	return dst + src
}
