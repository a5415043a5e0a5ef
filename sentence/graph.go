package sentence

import (
	"errors"
	"fmt"

	"github.com/revelaction/idensity/graph"
)

var ErrMalformedSentence = errors.New("malformed token sentence")

// Graph builds the dependency graph of one sentence of tokens.
//
// Token indexes are 0-based, so every address and head is shifted by one.
// A token labelled ROOT always attaches to the virtual root, whatever head
// index the parser reported. A sentence without a ROOT token is returned
// root-less, not as an error.
func Graph(tokens []Token) (*graph.Graph, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no tokens", ErrMalformedSentence)
	}

	g := graph.New()
	for _, tok := range tokens {
		if tok.Index < 0 {
			return nil, fmt.Errorf("%w: negative index %d", ErrMalformedSentence, tok.Index)
		}

		address := tok.Index + 1
		if _, ok := g.Node(address); ok {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrMalformedSentence, tok.Index)
		}

		head := tok.Head + 1
		if tok.Dep == graph.RootUpper {
			head = 0
		}

		tok := tok
		g.Upsert(address, func(n *graph.Node) {
			n.Word = tok.Text
			n.Lemma = tok.Lemma
			n.CTag = tok.Pos
			n.Tag = tok.Tag
			n.Head = head
			n.Rel = tok.Dep
		})
	}

	if err := g.LinkDependents(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSentence, err)
	}

	if err := g.ResolveRoot(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSentence, err)
	}

	g.Seal()
	return g, nil
}

// Corpus converts every sentence of the doc. Sentences that cannot be
// converted keep their position as error entries.
func (d Doc) Corpus() graph.Corpus {
	var corpus graph.Corpus
	for i, tokens := range d.Tokens {
		g, err := Graph(tokens)
		if err != nil {
			corpus.Add(graph.Entry{Err: fmt.Errorf("sentence %d: %w", i+1, err)})
			continue
		}
		corpus.Add(graph.Entry{Graph: g})
	}
	return corpus
}
