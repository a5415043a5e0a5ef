package conll

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/idensity/graph"
)

const deprelColumn = 7

func orEmpty(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

// Write emits the real nodes of g as 10-column CoNLL-X rows followed by a
// blank line.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, n := range g.Nodes() {
		if n.IsRoot() {
			continue
		}
		fields := []string{
			strconv.Itoa(n.Address),
			orEmpty(n.Word),
			orEmpty(n.Lemma),
			orEmpty(n.CTag),
			orEmpty(n.Tag),
			orEmpty(n.Feats),
			strconv.Itoa(n.Head),
			orEmpty(n.Rel),
			emptyField,
			emptyField,
		}
		if _, err := fmt.Fprintln(bw, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// RelabelRoot copies r to w rewriting a deprel column value of "root" to
// "ROOT". Only the deprel column is touched; words that contain "root"
// are left alone.
func RelabelRoot(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	bw := bufio.NewWriter(w)

	for sc.Scan() {
		line := sc.Text()
		if out, ok := relabelLine(line); ok {
			line = out
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

func relabelLine(line string) (string, bool) {
	if strings.HasPrefix(line, comment) {
		return line, false
	}

	sep := " "
	if strings.Contains(line, "\t") {
		sep = "\t"
	}
	fields := Fields(line)
	if len(fields) < MinFields || fields[deprelColumn] != graph.RootLower {
		return line, false
	}

	fields[deprelColumn] = graph.RootUpper
	return strings.Join(fields, sep), true
}
