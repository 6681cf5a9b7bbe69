package render

import (
	"fmt"
	"strings"

	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/omercnkc/trees-data-structure/steps"
)

// Script formats a drained batch of steps as a numbered replay, one step
// per line.
func Script(ss []steps.Step) string {
	if len(ss) == 0 {
		return "(no steps)\n"
	}
	var b strings.Builder
	for i, st := range ss {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, st.String())
	}
	return b.String()
}

// Describe summarizes a structure as a small block of text: identity,
// capabilities, measures, and the one-line shape.
func Describe(s abstract.Structure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", s.Name(), s.Kind())
	fmt.Fprintf(&b, "  caps:   %s\n", s.Caps())
	fmt.Fprintf(&b, "  size:   %d\n", s.Len())
	fmt.Fprintf(&b, "  height: %d\n", s.Height())
	fmt.Fprintf(&b, "  shape:  %s\n", s)
	return b.String()
}
