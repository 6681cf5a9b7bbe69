package render

import (
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
)

// Outline renders the tree as an indented outline, one node per line, with
// L/R tags on binary children and property pairs in brackets.
func Outline(root abstract.Node) string {
	return OutlineAnnotated(root, nil)
}

// OutlineAnnotated is Outline with per-node marks appended after an arrow.
func OutlineAnnotated(root abstract.Node, ann *Annotations) string {
	if root == nil {
		return "(empty)\n"
	}
	var b strings.Builder
	writeOutline(&b, root, ann, "", "", "")
	return b.String()
}

func writeOutline(b *strings.Builder, n abstract.Node, ann *Annotations, prefix, branch, tag string) {
	b.WriteString(prefix)
	b.WriteString(branch)
	if tag != "" {
		b.WriteString(tag)
		b.WriteString(" ")
	}
	b.WriteString(n.Label())
	if props := n.Props(); len(props) > 0 {
		parts := make([]string, len(props))
		for i, p := range props {
			parts[i] = p[0] + "=" + p[1]
		}
		b.WriteString(" [" + strings.Join(parts, " ") + "]")
	}
	if mark, ok := ann.Get(n); ok {
		b.WriteString(" <- " + mark)
	}
	b.WriteString("\n")

	type kid struct {
		n   abstract.Node
		tag string
	}
	var kids []kid
	if n.Kind() == abstract.KindBinary {
		if c := n.Child(0); c != nil {
			kids = append(kids, kid{c, "L"})
		}
		if c := n.Child(1); c != nil {
			kids = append(kids, kid{c, "R"})
		}
	} else {
		for i, num := 0, n.NumChildren(); i < num; i++ {
			if c := n.Child(i); c != nil {
				kids = append(kids, kid{c, ""})
			}
		}
	}

	childPrefix := prefix
	switch branch {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	for i, k := range kids {
		br := "├── "
		if i == len(kids)-1 {
			br = "└── "
		}
		writeOutline(b, k.n, ann, childPrefix, br, k.tag)
	}
}
