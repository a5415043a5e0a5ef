package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/revelaction/idensity/analysis"
	"github.com/revelaction/idensity/graph"
	"github.com/revelaction/idensity/stat"
)

const (
	DefaultWidth  = 80
	DefaultFormat = "text"
)

var (
	Red      = "\033[1;31m"
	Yellow   = "\033[0;33m"
	White    = "\033[1;37m"
	Off      = "\033[0m"
	Green256 = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "json"}
}

// Renderer reports the outcomes of a run.
type Renderer interface {
	// Outcome is called once per sentence, in corpus order.
	Outcome(o analysis.Outcome)

	// Summary is called once after the run.
	Summary(sum analysis.Summary) error
}

// Presentation holds the terminal dependent settings of a report.
type Presentation struct {
	Width int

	Color bool

	// Verbose lists every sentence and its propositions.
	Verbose bool
}

func DefaultPresentation() Presentation {
	return Presentation{Width: DefaultWidth, Verbose: true}
}

// DetectPresentation sizes the rule lines to the terminal behind f and
// enables color when f is a terminal.
func DetectPresentation(f *os.File) Presentation {
	p := DefaultPresentation()
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return p
	}

	p.Color = true
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		p.Width = w
	}
	return p
}

// Text writes the human readable report.
type Text struct {
	W io.Writer
	P Presentation
}

var _ Renderer = (*Text)(nil)

func NewText(w io.Writer, p Presentation) *Text {
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	return &Text{W: w, P: p}
}

func (r *Text) bold(s string) string {
	if !r.P.Color {
		return s
	}
	return White + s + Off
}

func (r *Text) color(c, s string) string {
	if !r.P.Color {
		return s
	}
	return c + s + Off
}

// Rule writes a separator line as wide as the presentation.
func (r *Text) Rule() {
	fmt.Fprintln(r.W, strings.Repeat("-", r.P.Width))
}

func (r *Text) Outcome(o analysis.Outcome) {
	if !r.P.Verbose {
		return
	}

	r.Rule()
	fmt.Fprintln(r.W, r.bold(fmt.Sprintf("Sentence %d:", o.Sentence)))
	fmt.Fprintf(r.W, "\t%s\n", o.Text)

	fmt.Fprintln(r.W, r.bold("Propositions:"))
	if o.Status == analysis.Skipped {
		fmt.Fprintf(r.W, "%s %s\n", r.color(Red, "skipped:"), o.Reason)
		return
	}
	for i, p := range o.Propositions {
		fmt.Fprintf(r.W, "%d %s\n", i+1, p)
	}
}

func (r *Text) Summary(sum analysis.Summary) error {
	if r.P.Verbose {
		r.Rule()
	}
	r.Stats(sum.Stats)
	r.Skipped(sum)
	return nil
}

// Stats writes the full kind table.
func (r *Text) Stats(s *stat.Stats) {
	fmt.Fprintln(r.W, "Stats:")
	fmt.Fprintln(r.W, "Kind\t#\t")
	for _, kc := range s.Table() {
		fmt.Fprintf(r.W, "%s\t%d\n", kc.Kind, kc.Count)
	}
}

// Features writes the compact P M C vector line.
func (r *Text) Features(s *stat.Stats) {
	fmt.Fprintln(r.W, s.VectorString())
}

// Skipped writes the skipped sentence diagnostics, if any.
func (r *Text) Skipped(sum analysis.Summary) {
	if sum.Skipped == 0 {
		return
	}

	fmt.Fprintf(r.W, "%s %d of %d sentences\n", r.color(Yellow, "Skipped:"), sum.Skipped, sum.Sentences)

	reasons := make([]string, 0, len(sum.Reasons))
	for k := range sum.Reasons {
		reasons = append(reasons, k)
	}
	sort.Strings(reasons)
	for _, k := range reasons {
		fmt.Fprintf(r.W, "%s\t%d\n", k, sum.Reasons[k])
	}
}

// Graph writes one row per node of g, in the column layout of a dependency
// parse.
func (r *Text) Graph(g *graph.Graph) {
	for _, n := range g.Nodes() {
		if n.IsRoot() {
			continue
		}
		fmt.Fprintf(r.W, "%4d %20q %15q %8s %8s %6d %10s\n", n.Address, n.Word, n.Lemma, n.CTag, n.Tag, n.Head, r.relColor(n))
	}
}

func (r *Text) relColor(n *graph.Node) string {
	if n.Head == 0 {
		return r.color(Green256, n.Rel)
	}
	return n.Rel
}
