package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/idensity/analysis"
	"github.com/revelaction/idensity/engine"
	"github.com/revelaction/idensity/stat"
)

// JSONSentence is the JSON form of an outcome.
type JSONSentence struct {
	Sentence     int                  `json:"sentence"`
	Text         string               `json:"text"`
	Status       string               `json:"status"`
	RootLess     bool                 `json:"root_less,omitempty"`
	Reason       string               `json:"reason,omitempty"`
	Error        string               `json:"error,omitempty"`
	Propositions []engine.Proposition `json:"propositions,omitempty"`
}

// JSONReport is the document written by JSONRenderer.
type JSONReport struct {
	Sentences []JSONSentence   `json:"sentences,omitempty"`
	Stats     []stat.KindCount `json:"stats"`
	Vector    [3]int           `json:"vector"`
	Total     int              `json:"total"`
	Counted   int              `json:"counted"`
	Skipped   int              `json:"skipped"`
	RootLess  int              `json:"root_less"`
	Reasons   map[string]int   `json:"reasons,omitempty"`
}

// JSONRenderer writes the whole run as one JSON document to a writer.
type JSONRenderer struct {
	W       io.Writer
	Verbose bool

	sentences []JSONSentence
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer, verbose bool) *JSONRenderer {
	return &JSONRenderer{W: w, Verbose: verbose}
}

func (r *JSONRenderer) Outcome(o analysis.Outcome) {
	if !r.Verbose {
		return
	}
	js := JSONSentence{
		Sentence:     o.Sentence,
		Text:         o.Text,
		Status:       o.Status.String(),
		RootLess:     o.RootLess,
		Propositions: o.Propositions,
	}
	if o.Reason != nil {
		js.Reason = analysis.ReasonKind(o.Reason)
		js.Error = o.Reason.Error()
	}
	r.sentences = append(r.sentences, js)
}

// Summary serializes the collected sentences and the statistics.
func (r *JSONRenderer) Summary(sum analysis.Summary) error {
	rep := JSONReport{
		Sentences: r.sentences,
		Stats:     sum.Stats.Table(),
		Vector:    sum.Stats.Vector(),
		Total:     sum.Sentences,
		Counted:   sum.Counted,
		Skipped:   sum.Skipped,
		RootLess:  sum.RootLess,
		Reasons:   sum.Reasons,
	}
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
