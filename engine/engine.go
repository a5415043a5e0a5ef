// Package engine defines the boundary with the proposition extraction
// engine: one sentence of relations in, an ordered list of propositions
// out.
package engine

import (
	"context"
	"fmt"

	"github.com/revelaction/idensity/relation"
)

// Conventional proposition kinds: predications, modifications and
// connections.
const (
	KindPredication  = "P"
	KindModification = "M"
	KindConnection   = "C"
)

// Proposition is one extracted idea unit.
type Proposition struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (p Proposition) String() string {
	return fmt.Sprintf("%s %s", p.Kind, p.Text)
}

// Engine extracts the propositions of exactly one sentence. Implementations
// may fail on input they cannot handle.
type Engine interface {
	Analyze(ctx context.Context, rels []relation.Relation) ([]Proposition, error)
}

// Func adapts a function to the Engine interface.
type Func func(ctx context.Context, rels []relation.Relation) ([]Proposition, error)

func (f Func) Analyze(ctx context.Context, rels []relation.Relation) ([]Proposition, error) {
	return f(ctx, rels)
}

var _ Engine = Func(nil)
