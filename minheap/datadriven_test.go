package minheap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/omercnkc/trees-data-structure/abstract"
)

func TestDataDriven(t *testing.T) {
	s := NewStructure(nil)
	walk := func(f func(abstract.Visitor)) string {
		var labels []string
		f(func(n abstract.Node) bool { labels = append(labels, n.Label()); return true })
		return strings.Join(labels, " ")
	}
	datadriven.RunTest(t, "testdata/minheap", func(t *testing.T, td *datadriven.TestData) string {
		arg := ""
		if len(td.CmdArgs) > 0 {
			arg = td.CmdArgs[0].Key
		}
		switch td.Cmd {
		case "new":
			s = NewStructure(nil)
			return ""
		case "insert":
			for _, a := range td.CmdArgs {
				if err := s.Insert(a.Key); err != nil {
					return err.Error()
				}
			}
			return fmt.Sprintf("size=%d height=%d", s.Len(), s.Height())
		case "delete":
			ok, err := s.Delete(arg)
			if err != nil {
				return err.Error()
			}
			if !ok {
				return "not present"
			}
			return "deleted"
		case "search":
			n, err := s.Search(arg)
			if err != nil {
				return err.Error()
			}
			return "found " + n.Label()
		case "inorder":
			return walk(s.InOrder)
		case "levelorder":
			return walk(s.LevelOrder)
		case "string":
			return s.String()
		case "steps":
			var lines []string
			for _, st := range s.Steps() {
				lines = append(lines, st.String())
			}
			return strings.Join(lines, "\n")
		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}
