package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	trees "github.com/omercnkc/trees-data-structure"
	"github.com/omercnkc/trees-data-structure/bplus"
	"github.com/omercnkc/trees-data-structure/render"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "interactive session on one structure at a time",
	RunE:  runRepl,
}

// session is the REPL state: the structure being driven and the bus its
// mutations are announced on.
type session struct {
	cur    trees.Structure
	bus    *trees.Bus
	degree int
	out    io.Writer
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(configPath)
	if err != nil {
		return err
	}
	cfg.applyFlags()
	if err := cfg.validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.Log)
	if err != nil {
		return errors.Wrapf(err, "log level %q", cfg.Log)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	bus := trees.NewBus()
	trees.LogEvents(bus, func(topic string, m trees.Mutation) {
		logger.Info().
			Str("structure", m.Source.Kind().String()).
			Str("value", m.Value).
			Msg(topic)
	})

	s := &session{bus: bus, degree: cfg.Degree, out: cmd.OutOrStdout()}
	s.use(cfg.Kind)

	fmt.Fprintln(s.out, "type 'help' for commands, 'quit' to leave")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(s.out, "treeviz> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !s.handle(line) {
			break
		}
	}
	return scanner.Err()
}

func (s *session) handle(line string) bool {
	parts := strings.Fields(line)
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "help":
		s.printHelp()

	case "quit", "exit":
		return false

	case "kinds":
		s.cmdKinds()

	case "use":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: use <kind>")
			break
		}
		s.use(args[0])

	case "insert", "add":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: insert <value>...")
			break
		}
		s.cmdInsert(args)

	case "delete", "del":
		s.cmdDelete(args)

	case "search", "find":
		if len(args) != 1 {
			fmt.Fprintln(s.out, "usage: search <value>")
			break
		}
		s.cmdSearch(args[0])

	case "balance":
		s.cmdBalance()

	case "update":
		s.cmdUpdate(args)

	case "prefix":
		s.cmdPrefix(args)

	case "sum":
		s.cmdSum(args)

	case "words":
		s.cmdWords()

	case "startswith":
		s.cmdStartsWith(args)

	case "scan":
		s.cmdScan(args)

	case "inorder", "preorder", "postorder", "levelorder":
		s.cmdTraverse(cmd)

	case "steps":
		fmt.Fprint(s.out, render.Script(s.cur.Steps()))

	case "show":
		fmt.Fprint(s.out, render.Canvas(s.cur.Root()))

	case "outline":
		ann := render.NewAnnotations()
		ann.MarkSteps(s.cur.Steps())
		fmt.Fprint(s.out, render.OutlineAnnotated(s.cur.Root(), ann))

	case "stats":
		s.cmdStats()

	case "dump":
		fmt.Fprintln(s.out, s.cur.String())

	case "clear":
		s.cur.Clear()

	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
	return true
}

func (s *session) use(id string) {
	kind, ok := trees.ParseKind(id)
	if !ok {
		fmt.Fprintf(s.out, "unknown kind %q, using %s\n", id, kind)
	}
	s.cur = trees.New(kind, trees.WithBus(s.bus), trees.WithDegree(s.degree))
	fmt.Fprintf(s.out, "now on %s\n", s.cur.Name())
}

func (s *session) cmdKinds() {
	tbl := tablewriter.NewWriter(s.out)
	tbl.SetHeader([]string{"Id", "Name", "Caps"})
	for _, kind := range trees.Kinds() {
		st := trees.New(kind)
		tbl.Append([]string{kind.String(), st.Name(), st.Caps().String()})
	}
	tbl.Render()
}

func (s *session) cmdInsert(values []string) {
	for _, v := range values {
		if err := s.cur.Insert(v); err != nil {
			fmt.Fprintf(s.out, "insert %s: %v\n", v, err)
		}
	}
}

func (s *session) cmdDelete(args []string) {
	value := ""
	if len(args) > 0 {
		value = args[0]
	}
	ok, err := s.cur.Delete(value)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "delete: %v\n", err)
	case !ok:
		fmt.Fprintln(s.out, "not present")
	}
}

func (s *session) cmdSearch(value string) {
	n, err := s.cur.Search(value)
	switch {
	case errors.Is(err, trees.ErrNotFound):
		fmt.Fprintln(s.out, "not found")
	case err != nil:
		fmt.Fprintf(s.out, "search: %v\n", err)
	default:
		fmt.Fprintf(s.out, "found %s%s\n", n.Label(), formatProps(n.Props()))
	}
}

func (s *session) cmdBalance() {
	b, ok := s.cur.(trees.Balancer)
	if !ok {
		fmt.Fprintf(s.out, "%s does not rebuild on demand\n", s.cur.Name())
		return
	}
	if b.Balance() {
		fmt.Fprintln(s.out, "rebuilt")
	} else {
		fmt.Fprintln(s.out, "left alone")
	}
}

func (s *session) cmdUpdate(args []string) {
	u, ok := s.cur.(trees.Updater)
	if !ok {
		fmt.Fprintf(s.out, "%s has no point update\n", s.cur.Name())
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: update <slot> <value>")
		return
	}
	i, valid := s.parseIndex(args[0])
	if !valid {
		return
	}
	if err := u.Update(i, args[1]); err != nil {
		fmt.Fprintf(s.out, "update: %v\n", err)
	}
}

func (s *session) cmdPrefix(args []string) {
	p, ok := s.cur.(trees.PrefixSummer)
	if !ok {
		fmt.Fprintf(s.out, "%s has no prefix sums\n", s.cur.Name())
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: prefix <slot>")
		return
	}
	i, valid := s.parseIndex(args[0])
	if !valid {
		return
	}
	sum, err := p.PrefixSum(i)
	if err != nil {
		fmt.Fprintf(s.out, "prefix: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "sum of slots 0..%d = %d\n", i, sum)
}

func (s *session) cmdSum(args []string) {
	r, ok := s.cur.(trees.RangeSummer)
	if !ok {
		fmt.Fprintf(s.out, "%s has no range sums\n", s.cur.Name())
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: sum <lo> <hi>")
		return
	}
	lo, validLo := s.parseIndex(args[0])
	if !validLo {
		return
	}
	hi, validHi := s.parseIndex(args[1])
	if !validHi {
		return
	}
	sum, err := r.RangeSum(lo, hi)
	if err != nil {
		fmt.Fprintf(s.out, "sum: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "sum of slots %d..%d = %d\n", lo, hi, sum)
}

func (s *session) cmdWords() {
	w, ok := s.cur.(trees.WordSet)
	if !ok {
		fmt.Fprintf(s.out, "%s does not store words\n", s.cur.Name())
		return
	}
	words := w.Words()
	if len(words) == 0 {
		fmt.Fprintln(s.out, "(no words)")
		return
	}
	fmt.Fprintln(s.out, strings.Join(words, " "))
}

func (s *session) cmdStartsWith(args []string) {
	w, ok := s.cur.(trees.WordSet)
	if !ok {
		fmt.Fprintf(s.out, "%s does not store words\n", s.cur.Name())
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: startswith <prefix>")
		return
	}
	found, err := w.StartsWith(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "startswith: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, found)
}

func (s *session) cmdScan(args []string) {
	bp, ok := s.cur.(*bplus.Structure)
	if !ok {
		fmt.Fprintf(s.out, "%s has no leaf chain to scan\n", s.cur.Name())
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: scan <from>")
		return
	}
	var values []string
	if err := bp.Scan(args[0], func(v string) bool {
		values = append(values, v)
		return true
	}); err != nil {
		fmt.Fprintf(s.out, "scan: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, strings.Join(values, " "))
}

func (s *session) cmdTraverse(order string) {
	var labels []string
	visit := func(n trees.Node) bool {
		labels = append(labels, n.Label())
		return true
	}
	switch order {
	case "inorder":
		s.cur.InOrder(visit)
	case "preorder":
		s.cur.PreOrder(visit)
	case "postorder":
		s.cur.PostOrder(visit)
	case "levelorder":
		s.cur.LevelOrder(visit)
	}
	fmt.Fprintln(s.out, strings.Join(labels, " "))
}

func (s *session) cmdStats() {
	tbl := tablewriter.NewWriter(s.out)
	tbl.SetHeader([]string{"Field", "Value"})
	tbl.Append([]string{"name", s.cur.Name()})
	tbl.Append([]string{"kind", s.cur.Kind().String()})
	tbl.Append([]string{"caps", s.cur.Caps().String()})
	tbl.Append([]string{"size", strconv.Itoa(s.cur.Len())})
	tbl.Append([]string{"height", strconv.Itoa(s.cur.Height())})
	if w, ok := s.cur.(trees.WordSet); ok {
		tbl.Append([]string{"nodes", strconv.Itoa(w.Nodes())})
	}
	tbl.Render()
}

func (s *session) parseIndex(arg string) (int, bool) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(s.out, "slot %q is not a number\n", arg)
		return 0, false
	}
	return i, true
}

func formatProps(props [][2]string) string {
	if len(props) == 0 {
		return ""
	}
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p[0] + "=" + p[1]
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func (s *session) printHelp() {
	fmt.Fprint(s.out, `commands:
  kinds                   list the available structures
  use <kind>              switch structures (drops the current one)
  insert <value>...       insert values (words for the trie)
  delete [value]          delete a value; the min-heap removes its minimum
  search <value>          locate a value
  balance                 rebuild to minimal height (bst only)
  update <slot> <value>   point assignment (segment/fenwick)
  prefix <slot>           prefix sum (fenwick)
  sum <lo> <hi>           range sum (segment/fenwick)
  words                   stored words in order (trie)
  startswith <prefix>     prefix membership (trie)
  scan <from>             walk the leaf chain (b-plus-tree)
  inorder | preorder | postorder | levelorder
                          traversal dump
  steps                   drain and play back the recorded steps
  show                    two-dimensional sketch
  outline                 indented outline, latest steps marked
  stats                   size, height, capabilities
  dump                    compact one-line form
  clear                   drop every element
  quit                    leave
`)
}
