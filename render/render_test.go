package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/revelaction/idensity/analysis"
	"github.com/revelaction/idensity/engine"
	"github.com/revelaction/idensity/sentence"
	"github.com/revelaction/idensity/stat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextOutcomeVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, Presentation{Width: 10, Verbose: true})
	r.Outcome(analysis.Outcome{
		Sentence:     3,
		Text:         "Dogs bark",
		Status:       analysis.Counted,
		Propositions: []engine.Proposition{{Kind: "P", Text: "(bark, dogs)"}},
	})

	want := "----------\nSentence 3:\n\tDogs bark\nPropositions:\n1 P (bark, dogs)\n"
	assert.Equal(t, want, buf.String())
}

func TestTextOutcomeSkipped(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, Presentation{Width: 4, Verbose: true})
	r.Outcome(analysis.Outcome{Sentence: 1, Status: analysis.Skipped, Reason: errors.New("boom")})
	assert.Contains(t, buf.String(), "skipped: boom")
}

func TestTextOutcomeQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, Presentation{})
	r.Outcome(analysis.Outcome{Sentence: 1, Text: "x"})
	assert.Empty(t, buf.String())
}

func TestTextSummary(t *testing.T) {
	s := stat.New()
	s.AddN("P", 2)
	s.Add("X")

	var buf bytes.Buffer
	r := NewText(&buf, Presentation{})
	require.NoError(t, r.Summary(analysis.Summary{
		Stats:     s,
		Sentences: 4,
		Skipped:   1,
		Reasons:   map[string]int{analysis.ReasonEngine: 1},
	}))

	want := "Stats:\nKind\t#\t\nP\t2\nX\t1\nSkipped: 1 of 4 sentences\nengine-failure\t1\n"
	assert.Equal(t, want, buf.String())
}

func TestTextFeatures(t *testing.T) {
	s := stat.New()
	s.AddN("P", 2)
	s.Add("C")

	var buf bytes.Buffer
	NewText(&buf, Presentation{}).Features(s)
	assert.Equal(t, "2 0 1\n", buf.String())
}

func TestTextColorOnlyWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, Presentation{Width: 2, Verbose: true, Color: true})
	r.Outcome(analysis.Outcome{Sentence: 1, Text: "a"})
	assert.Contains(t, buf.String(), White)
}

func TestTextGraph(t *testing.T) {
	g, err := sentence.Graph([]sentence.Token{
		{Index: 0, Text: "Dogs", Lemma: "dog", Pos: "NOUN", Tag: "NNS", Head: 1, Dep: "nsubj"},
		{Index: 1, Text: "bark", Lemma: "bark", Pos: "VERB", Tag: "VBP", Head: 1, Dep: "ROOT"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	NewText(&buf, Presentation{}).Graph(g)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"Dogs"`)
	assert.Contains(t, lines[1], "ROOT")
}
