// Package conll reads tabular CoNLL-style dependency parses into graphs.
//
// Each token row carries at least the columns
//
//	id form lemma cpostag postag feats head deprel
//
// separated by tabs or spaces. Trailing columns (phead, pdeprel, CoNLL 2007
// extras) are ignored. A blank line ends a sentence.
package conll

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/revelaction/idensity/graph"
)

const (
	// MinFields is the number of semantic columns every row must carry.
	MinFields = 8

	emptyField = "_"
	comment    = "#"

	maxLineSize = 1024 * 1024
)

var ErrMalformedRow = errors.New("malformed row")

// RowError describes the row that dropped a sentence.
type RowError struct {
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, ErrMalformedRow, e.Reason)
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}

// Row is a single parsed row of a CoNLL sentence.
type Row struct {
	ID      int
	Form    string
	Lemma   string
	CPosTag string
	PosTag  string
	Feats   string
	Head    int
	DepRel  string
}

// Fields splits a row on tabs when present, on any whitespace otherwise.
// Surrounding whitespace of every field is dropped.
func Fields(line string) []string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if !strings.Contains(line, "\t") {
		return strings.Fields(line)
	}

	fields := strings.Split(line, "\t")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseString(value string) string {
	if value == emptyField {
		return ""
	}
	return value
}

// ParseRow parses the first MinFields columns of record.
func ParseRow(record []string) (Row, error) {
	var row Row
	if len(record) < MinFields {
		return row, fmt.Errorf("expected at least %d columns, got %d", MinFields, len(record))
	}

	id, err := strconv.Atoi(record[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %w", record[0], err)
	}
	if id <= 0 {
		return row, fmt.Errorf("ID field must be positive, got %d", id)
	}
	row.ID = id

	row.Form = record[1]
	row.Lemma = parseString(record[2])
	row.CPosTag = parseString(record[3])
	row.PosTag = parseString(record[4])
	row.Feats = parseString(record[5])

	head, err := strconv.Atoi(record[6])
	if err != nil {
		return row, fmt.Errorf("error parsing HEAD field (%s): %w", record[6], err)
	}
	if head < 0 {
		return row, fmt.Errorf("HEAD field must not be negative, got %d", head)
	}
	row.Head = head

	// relation labels, "_" included, are kept verbatim
	row.DepRel = record[7]
	return row, nil
}

var rangeID = regexp.MustCompile(`^\d+[-.]\d+$`)

// skipID reports ids of multiword token ranges (1-2) and empty nodes (1.1).
func skipID(id string) bool {
	return rangeID.MatchString(id)
}

type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Next returns the next sentence. A sentence with a malformed row comes
// back as an Entry with Err set, and reading resumes after the following
// blank line. io.EOF is returned once the input is exhausted.
func (r *Reader) Next() (graph.Entry, error) {
	var (
		rows   []Row
		rowErr error
		start  int
	)

	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()

		if strings.TrimSpace(line) == "" {
			if len(rows) == 0 && rowErr == nil {
				// blank or comment-only block
				start = 0
				continue
			}
			return r.entry(rows, rowErr, start), nil
		}

		if start == 0 {
			start = r.line
		}

		if strings.HasPrefix(line, comment) || rowErr != nil {
			continue
		}

		fields := Fields(line)
		if len(fields) > 0 && skipID(fields[0]) {
			continue
		}

		row, err := ParseRow(fields)
		if err != nil {
			rowErr = &RowError{Line: r.line, Reason: err.Error()}
			continue
		}
		rows = append(rows, row)
	}

	if err := r.sc.Err(); err != nil {
		return graph.Entry{}, err
	}

	if len(rows) == 0 && rowErr == nil {
		return graph.Entry{}, io.EOF
	}

	return r.entry(rows, rowErr, start), nil
}

func (r *Reader) entry(rows []Row, rowErr error, start int) graph.Entry {
	if rowErr != nil {
		return graph.Entry{Err: rowErr, Line: start}
	}

	g, err := Build(rows)
	if err != nil {
		return graph.Entry{Err: &RowError{Line: start, Reason: err.Error()}, Line: start}
	}
	return graph.Entry{Graph: g, Line: start}
}

// Build turns the rows of one sentence into a sealed graph. Relation labels
// are carried verbatim.
func Build(rows []Row) (*graph.Graph, error) {
	g := graph.New()
	for _, row := range rows {
		if _, ok := g.Node(row.ID); ok {
			return nil, fmt.Errorf("duplicate ID %d", row.ID)
		}
		row := row
		g.Upsert(row.ID, func(n *graph.Node) {
			n.Word = row.Form
			n.Lemma = row.Lemma
			n.CTag = row.CPosTag
			n.Tag = row.PosTag
			n.Feats = row.Feats
			n.Head = row.Head
			n.Rel = row.DepRel
		})
	}

	if err := g.LinkDependents(); err != nil {
		return nil, err
	}

	if err := g.ResolveRoot(); err != nil {
		return nil, err
	}

	g.Seal()
	return g, nil
}

// Read reads every sentence of r into a corpus. Malformed sentences are
// kept as error entries so that their position is not lost.
func Read(r io.Reader) (graph.Corpus, error) {
	var corpus graph.Corpus
	rd := NewReader(r)
	for {
		e, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return corpus, nil
		}
		if err != nil {
			return corpus, err
		}
		corpus.Add(e)
	}
}
