package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	trees "github.com/omercnkc/trees-data-structure"
	"github.com/omercnkc/trees-data-structure/abstract"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "measure insert/search/delete latency",
	Long: `Inserts, searches, and deletes random values in every structure kind,
recording per-operation latency. Restrict to one kind with --kind.`,
	RunE: runBench,
}

// zerologAdapter narrows a zerolog.Logger to the engine's logging surface.
type zerologAdapter struct {
	log zerolog.Logger
}

var _ abstract.Logger = zerologAdapter{}

func (a zerologAdapter) Infof(format string, args ...interface{}) {
	a.log.Info().Msgf(format, args...)
}

func (a zerologAdapter) Fatalf(format string, args ...interface{}) {
	a.log.Fatal().Msgf(format, args...)
}

type opHist struct {
	name string
	h    *hdrhistogram.Histogram
}

func newOpHist(name string) opHist {
	return opHist{name: name, h: hdrhistogram.New(1, time.Second.Nanoseconds(), 3)}
}

func (op opHist) record(start time.Time) {
	d := time.Since(start).Nanoseconds()
	if d < 1 {
		d = 1
	} else if d > time.Second.Nanoseconds() {
		d = time.Second.Nanoseconds()
	}
	if err := op.h.RecordValue(d); err != nil {
		panic(err)
	}
}

type benchResult struct {
	ops    []opHist
	growth []float64
}

func runBench(cmd *cobra.Command, _ []string) error {
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
	log := zerologAdapter{zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()}

	kinds := trees.Kinds()
	if kindFlag != "" {
		kind, ok := trees.ParseKind(kindFlag)
		if !ok {
			return errors.Newf("unknown kind %q", kindFlag)
		}
		kinds = []trees.Kind{kind}
	}

	out := cmd.OutOrStdout()
	tbl := tablewriter.NewWriter(out)
	tbl.SetHeader([]string{"Kind", "Op", "Ops", "P50(us)", "P95(us)", "P99(us)", "Max(us)"})

	type plot struct {
		kind   string
		growth []float64
	}
	var plots []plot
	for _, kind := range kinds {
		r := benchKind(log, kind, cfg)
		for _, op := range r.ops {
			if op.h.TotalCount() == 0 {
				continue
			}
			tbl.Append([]string{
				kind.String(),
				op.name,
				strconv.FormatInt(op.h.TotalCount(), 10),
				micros(op.h.ValueAtQuantile(50)),
				micros(op.h.ValueAtQuantile(95)),
				micros(op.h.ValueAtQuantile(99)),
				micros(op.h.Max()),
			})
		}
		plots = append(plots, plot{kind: kind.String(), growth: r.growth})
	}
	tbl.Render()

	for _, p := range plots {
		if len(p.growth) < 2 {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(p.growth,
			asciigraph.Height(10),
			asciigraph.Caption(fmt.Sprintf("%s height while inserting %d values", p.kind, cfg.Count))))
	}
	return nil
}

func benchKind(log abstract.Logger, kind trees.Kind, cfg settings) benchResult {
	s := trees.New(kind, trees.WithDegree(cfg.Degree))
	rng := rand.New(rand.NewSource(cfg.Seed))
	values := benchValues(rng, kind, cfg.Count)

	insert := newOpHist("insert")
	search := newOpHist("search")
	del := newOpHist("delete")

	// The steps recorder is drained after every operation, the way a
	// visualizer would consume it; the drain is not timed.
	sampleEvery := len(values)/64 + 1
	var growth []float64
	for i, v := range values {
		start := time.Now()
		err := s.Insert(v)
		insert.record(start)
		if err != nil {
			log.Fatalf("bench %s: insert %q: %v", kind, v, err)
		}
		s.Steps()
		if i%sampleEvery == 0 {
			growth = append(growth, float64(s.Height()))
		}
	}
	growth = append(growth, float64(s.Height()))
	log.Infof("bench %s: %d inserted, size %d, height %d", kind, len(values), s.Len(), s.Height())

	for _, v := range values {
		start := time.Now()
		_, err := s.Search(v)
		search.record(start)
		if err != nil && !errors.Is(err, trees.ErrNotFound) {
			log.Fatalf("bench %s: search %q: %v", kind, v, err)
		}
		s.Steps()
	}

	if s.Caps().Has(trees.CapDelete) {
		for _, v := range values {
			start := time.Now()
			_, err := s.Delete(v)
			del.record(start)
			if err != nil {
				log.Fatalf("bench %s: delete %q: %v", kind, v, err)
			}
			s.Steps()
		}
	}

	return benchResult{ops: []opHist{insert, search, del}, growth: growth}
}

// benchValues generates the workload: a shuffled range for the numeric
// structures, random short words for the trie. Collisions in the words are
// harmless, duplicate inserts are ignored.
func benchValues(rng *rand.Rand, kind trees.Kind, count int) []string {
	values := make([]string, count)
	if kind == trees.Trie {
		for i := range values {
			word := make([]byte, 3+rng.Intn(6))
			for j := range word {
				word[j] = byte('a' + rng.Intn(26))
			}
			values[i] = string(word)
		}
		return values
	}
	for i, v := range rng.Perm(count) {
		values[i] = strconv.Itoa(v)
	}
	return values
}

func micros(ns int64) string {
	return strconv.FormatFloat(float64(ns)/1e3, 'f', 1, 64)
}
