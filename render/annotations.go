package render

import (
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Annotations is a table of per-node marks keyed by node identity. Node
// references are stable within an operation, so a mark set while replaying
// steps finds its node again at draw time. A nil table reads as empty.
type Annotations struct {
	marks map[abstract.Node]string
}

func NewAnnotations() *Annotations {
	return &Annotations{marks: make(map[abstract.Node]string)}
}

// Set marks n, replacing any previous mark.
func (a *Annotations) Set(n abstract.Node, mark string) {
	a.marks[n] = mark
}

// Get returns the mark on n, if any.
func (a *Annotations) Get(n abstract.Node) (string, bool) {
	if a == nil {
		return "", false
	}
	mark, ok := a.marks[n]
	return mark, ok
}

// Len reports how many nodes carry marks.
func (a *Annotations) Len() int { return len(a.marks) }

// Clear drops every mark.
func (a *Annotations) Clear() {
	a.marks = make(map[abstract.Node]string)
}

// MarkSteps marks each step's node with the step's action, so an annotated
// outline shows where the last operation went. Later steps on the same
// node win. Steps without a node are skipped.
func (a *Annotations) MarkSteps(ss []steps.Step) {
	for _, st := range ss {
		if n, ok := st.Node.(abstract.Node); ok && n != nil {
			a.Set(n, st.Action.String())
		}
	}
}
