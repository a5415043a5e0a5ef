// Package relation converts graph nodes into the flat records consumed by a
// proposition extraction engine.
package relation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/idensity/graph"
)

var ErrMissingField = errors.New("node is missing a required field")

// Relation is the engine facing view of a graph node. Its label is always
// normalized.
type Relation struct {
	Address int              `json:"address"`
	Word    string           `json:"word"`
	Lemma   string           `json:"lemma"`
	CTag    string           `json:"ctag"`
	Tag     string           `json:"tag"`
	Feats   string           `json:"feats"`
	Head    int              `json:"head"`
	Rel     string           `json:"rel"`
	Deps    map[string][]int `json:"deps"`
}

// Normalize lowercases the ROOT label. Every other label is returned as is.
func Normalize(label string) string {
	if label == graph.RootUpper {
		return graph.RootLower
	}
	return label
}

// FromNode converts n. Real nodes need a surface form, a relation label and
// a head.
func FromNode(n *graph.Node) (Relation, error) {
	if n == nil {
		return Relation{}, fmt.Errorf("%w: nil node", ErrMissingField)
	}

	if !n.IsRoot() {
		var missing []string
		if n.Word == "" {
			missing = append(missing, "word")
		}
		if n.Rel == "" {
			missing = append(missing, "rel")
		}
		if n.Head < 0 {
			missing = append(missing, "head")
		}
		if len(missing) > 0 {
			return Relation{}, fmt.Errorf("%w: address %d lacks %s", ErrMissingField, n.Address, strings.Join(missing, ", "))
		}
	}

	return Relation{
		Address: n.Address,
		Word:    n.Word,
		Lemma:   n.Lemma,
		CTag:    n.CTag,
		Tag:     n.Tag,
		Feats:   n.Feats,
		Head:    n.Head,
		Rel:     Normalize(n.Rel),
		Deps:    n.Deps.Map(),
	}, nil
}

// FromGraph returns the relations of g in ascending address order, the
// virtual root first.
func FromGraph(g *graph.Graph) ([]Relation, error) {
	nodes := g.Nodes()
	rels := make([]Relation, 0, len(nodes))
	for _, n := range nodes {
		r, err := FromNode(n)
		if err != nil {
			return nil, err
		}
		rels = append(rels, r)
	}
	return rels, nil
}
