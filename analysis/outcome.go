package analysis

import (
	"context"
	"errors"

	"github.com/revelaction/idensity/engine"
	"github.com/revelaction/idensity/relation"
	"github.com/revelaction/idensity/stat"
)

var (
	ErrEngineFailure  = errors.New("engine failure")
	ErrMalformedInput = errors.New("malformed input")
)

// Reason kinds used in summaries and diagnostics.
const (
	ReasonMalformed  = "malformed-input"
	ReasonConversion = "conversion"
	ReasonEngine     = "engine-failure"
	ReasonTimeout    = "timeout"
	ReasonCancelled  = "cancelled"
)

type Status int

const (
	Counted Status = iota
	Skipped
)

func (s Status) String() string {
	switch s {
	case Counted:
		return "counted"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Outcome is the result of one sentence: either counted with its
// propositions, or skipped with a reason.
type Outcome struct {
	// 1-based position in the corpus
	Sentence int

	Text         string
	Status       Status
	Propositions []engine.Proposition
	Reason       error
	RootLess     bool
}

func counted(n int, text string, props []engine.Proposition, rootLess bool) Outcome {
	return Outcome{Sentence: n, Text: text, Status: Counted, Propositions: props, RootLess: rootLess}
}

func skipped(n int, text string, reason error, rootLess bool) Outcome {
	return Outcome{Sentence: n, Text: text, Status: Skipped, Reason: reason, RootLess: rootLess}
}

// ReasonKind classifies the reason of a skipped outcome.
func ReasonKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return ReasonCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, relation.ErrMissingField):
		return ReasonConversion
	case errors.Is(err, ErrMalformedInput):
		return ReasonMalformed
	}
	return ReasonEngine
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Stats *stat.Stats

	Sentences int
	Counted   int
	Skipped   int
	RootLess  int

	// Skipped sentences by reason kind
	Reasons map[string]int
}

func newSummary() Summary {
	return Summary{Stats: stat.New(), Reasons: map[string]int{}}
}

func (s *Summary) record(o Outcome) {
	s.Sentences++
	if o.RootLess {
		s.RootLess++
	}

	if o.Status == Skipped {
		s.Skipped++
		s.Reasons[ReasonKind(o.Reason)]++
		return
	}

	s.Counted++
	for _, p := range o.Propositions {
		s.Stats.Add(p.Kind)
	}
}
