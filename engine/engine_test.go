package engine

import (
	"context"
	"testing"

	"github.com/revelaction/idensity/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRelations() []relation.Relation {
	return []relation.Relation{
		{Address: 0, Tag: "TOP", Head: -1},
		{Address: 1, Word: "big", Head: 2, Rel: "amod"},
		{Address: 2, Word: "dogs", Head: 3, Rel: "nsubj"},
		{Address: 3, Word: "bark", Head: 0, Rel: "root"},
		{Address: 4, Word: "and", Head: 3, Rel: "cc"},
		{Address: 5, Word: "growl", Head: 3, Rel: "conj"},
	}
}

func TestLabelTableDefault(t *testing.T) {
	lt := NewLabelTable(nil)
	props, err := lt.Analyze(context.Background(), sampleRelations())
	require.NoError(t, err)

	assert.Equal(t, []Proposition{
		{Kind: "M", Text: "(dogs, big)"},
		{Kind: "P", Text: "(bark)"},
		{Kind: "C", Text: "(bark, and)"},
	}, props)
}

func TestLabelTableCustom(t *testing.T) {
	lt := NewLabelTable(map[string]string{"conj": "X"})
	props, err := lt.Analyze(context.Background(), sampleRelations())
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "X", props[0].Kind)
}

func TestLabelTableRootLessYieldsNothing(t *testing.T) {
	rels := []relation.Relation{
		{Address: 0, Head: -1},
		{Address: 1, Word: "big", Head: 2, Rel: "amod"},
		{Address: 2, Word: "dogs", Head: 0, Rel: "dep"},
	}
	props, err := NewLabelTable(nil).Analyze(context.Background(), rels)
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestLabelTableUnknownHead(t *testing.T) {
	rels := []relation.Relation{
		{Address: 0, Head: -1},
		{Address: 1, Word: "go", Head: 0, Rel: "root"},
		{Address: 2, Word: "fast", Head: 9, Rel: "advmod"},
	}
	_, err := NewLabelTable(nil).Analyze(context.Background(), rels)
	assert.Error(t, err)
}

func TestLabelTableCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLabelTable(nil).Analyze(ctx, sampleRelations())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodePropositions(t *testing.T) {
	props, err := DecodePropositions([]byte(`[{"kind":"P","text":"(bark, dogs)"},{"kind":"M","text":"(dogs, big)"}]`))
	require.NoError(t, err)
	assert.Equal(t, []Proposition{{"P", "(bark, dogs)"}, {"M", "(dogs, big)"}}, props)

	props, err = DecodePropositions([]byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, props)

	_, err = DecodePropositions([]byte("not json"))
	assert.Error(t, err)

	_, err = DecodePropositions([]byte(`[{"text":"orphan"}]`))
	assert.Error(t, err)
}

func TestNewCommandEmpty(t *testing.T) {
	_, err := NewCommand(nil)
	assert.Error(t, err)
}

func TestPropositionString(t *testing.T) {
	assert.Equal(t, "P (bark)", Proposition{Kind: "P", Text: "(bark)"}.String())
}

func TestFuncAdapter(t *testing.T) {
	called := 0
	var e Engine = Func(func(ctx context.Context, rels []relation.Relation) ([]Proposition, error) {
		called++
		return []Proposition{{Kind: "P"}}, nil
	})
	props, err := e.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, props, 1)
	assert.Equal(t, 1, called)
}
