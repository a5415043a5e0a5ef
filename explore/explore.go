// Package explore is an interactive browser over an analysed corpus.
package explore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/idensity/analysis"
	"github.com/revelaction/idensity/graph"
	"github.com/revelaction/idensity/render"
)

const (
	cmdStats   = "stats"
	cmdFeats   = "feats"
	cmdSkipped = "skipped"
	cmdQuit    = "quit"

	// cap on completed sentence numbers
	maxSentenceSuggestions = 20
)

var commands = []prompt.Suggest{
	{Text: cmdStats, Description: "kind table"},
	{Text: cmdFeats, Description: "P M C vector"},
	{Text: cmdSkipped, Description: "skipped sentences"},
	{Text: cmdQuit, Description: "leave"},
}

type Handler struct {
	Corpus   graph.Corpus
	Outcomes []analysis.Outcome
	Summary  analysis.Summary
	Renderer *render.Text
}

// NewHandler returns a handler over corpus and the outcomes of its run, in
// corpus order.
func NewHandler(corpus graph.Corpus, outcomes []analysis.Outcome, sum analysis.Summary, r *render.Text) *Handler {
	return &Handler{
		Corpus:   corpus,
		Outcomes: outcomes,
		Summary:  sum,
		Renderer: r,
	}
}

func (h *Handler) Run() error {
	fmt.Fprintf(h.Renderer.W, "%d sentences. <n>: show sentence, %s, %s, %s, %s\n",
		h.Corpus.Len(), cmdStats, cmdFeats, cmdSkipped, cmdQuit)

	history := []string{}

	for {
		in := prompt.Input("      🔎 ", h.completer,
			prompt.OptionTitle("idensity explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}

		history = append(history, in)
		if quit := h.Exec(in); quit {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the session ends.
func (h *Handler) Exec(in string) bool {
	switch in {
	case cmdQuit:
		return true
	case cmdStats:
		h.Renderer.Stats(h.Summary.Stats)
		return false
	case cmdFeats:
		h.Renderer.Features(h.Summary.Stats)
		return false
	case cmdSkipped:
		h.skipped()
		return false
	}

	n, err := strconv.Atoi(in)
	if err != nil {
		fmt.Fprintf(h.Renderer.W, "unknown command %q\n", in)
		return false
	}

	h.sentence(n)
	return false
}

func (h *Handler) sentence(n int) {
	if n < 1 || n > h.Corpus.Len() {
		fmt.Fprintf(h.Renderer.W, "no sentence %d (1-%d)\n", n, h.Corpus.Len())
		return
	}

	e := h.Corpus.Entries[n-1]
	if e.Graph != nil {
		h.Renderer.Graph(e.Graph)
	}

	if n <= len(h.Outcomes) {
		h.Renderer.Outcome(h.Outcomes[n-1])
		return
	}

	if e.Err != nil {
		fmt.Fprintf(h.Renderer.W, "malformed: %v\n", e.Err)
	}
}

func (h *Handler) skipped() {
	for _, o := range h.Outcomes {
		if o.Status != analysis.Skipped {
			continue
		}
		fmt.Fprintf(h.Renderer.W, "%d\t%s\t%v\n", o.Sentence, analysis.ReasonKind(o.Reason), o.Reason)
	}
	h.Renderer.Skipped(h.Summary)
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()
	if word == "" {
		return []prompt.Suggest{}
	}

	s := prompt.FilterHasPrefix(commands, word, true)
	return append(s, h.completeSentence(word)...)
}

func (h *Handler) completeSentence(prefix string) []prompt.Suggest {
	if _, err := strconv.Atoi(prefix); err != nil {
		return nil
	}

	var s []prompt.Suggest
	for i, e := range h.Corpus.Entries {
		num := strconv.Itoa(i + 1)
		if !strings.HasPrefix(num, prefix) {
			continue
		}

		desc := "malformed"
		if e.Graph != nil {
			desc = e.Graph.SentenceText()
		}
		s = append(s, prompt.Suggest{Text: num, Description: desc})
		if len(s) == maxSentenceSuggestions {
			break
		}
	}
	return s
}
