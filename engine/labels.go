package engine

import (
	"context"
	"fmt"

	"github.com/revelaction/idensity/relation"
)

// DefaultLabels maps dependency labels to proposition kinds for the
// LabelTable engine.
var DefaultLabels = map[string]string{
	"root":     KindPredication,
	"ccomp":    KindPredication,
	"xcomp":    KindPredication,
	"advcl":    KindPredication,
	"acl":      KindPredication,
	"rcmod":    KindPredication,
	"amod":     KindModification,
	"advmod":   KindModification,
	"nummod":   KindModification,
	"num":      KindModification,
	"poss":     KindModification,
	"neg":      KindModification,
	"quantmod": KindModification,
	"cc":       KindConnection,
	"mark":     KindConnection,
	"prep":     KindConnection,
	"case":     KindConnection,
}

// LabelTable is a baseline engine that emits one proposition for each
// relation whose label is listed in Labels. It yields nothing for a
// sentence without a root relation.
type LabelTable struct {
	Labels map[string]string
}

var _ Engine = (*LabelTable)(nil)

func NewLabelTable(labels map[string]string) *LabelTable {
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	return &LabelTable{Labels: labels}
}

func (lt *LabelTable) Analyze(ctx context.Context, rels []relation.Relation) ([]Proposition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byAddr := make(map[int]relation.Relation, len(rels))
	hasRoot := false
	for _, r := range rels {
		if _, dup := byAddr[r.Address]; dup {
			return nil, fmt.Errorf("duplicate relation address %d", r.Address)
		}
		byAddr[r.Address] = r
		if r.Rel == "root" {
			hasRoot = true
		}
	}

	if !hasRoot {
		return nil, nil
	}

	var props []Proposition
	for _, r := range rels {
		if r.Address == 0 {
			continue
		}
		kind, ok := lt.Labels[r.Rel]
		if !ok {
			continue
		}

		head, ok := byAddr[r.Head]
		if !ok {
			return nil, fmt.Errorf("relation %d points to unknown head %d", r.Address, r.Head)
		}

		text := fmt.Sprintf("(%s, %s)", head.Word, r.Word)
		if head.Address == 0 {
			text = fmt.Sprintf("(%s)", r.Word)
		}
		props = append(props, Proposition{Kind: kind, Text: text})
	}

	return props, nil
}
