package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, words []string, heads []int, rels []string) *Graph {
	t.Helper()
	g := New()
	for i, w := range words {
		word, head, rel := w, heads[i], rels[i]
		g.Upsert(i+1, func(n *Node) {
			n.Word = word
			n.Head = head
			n.Rel = rel
		})
	}
	require.NoError(t, g.LinkDependents())
	return g
}

func TestUpsertMergesOutOfOrderFields(t *testing.T) {
	g := New()
	g.Upsert(2, func(n *Node) { n.Head = 0 })
	g.Upsert(2, func(n *Node) { n.Word = "runs" })

	n, ok := g.Node(2)
	require.True(t, ok)
	assert.Equal(t, "runs", n.Word)
	assert.Equal(t, 0, n.Head)
	assert.Equal(t, 1, g.Len())
}

func TestNewNodeHasNoHead(t *testing.T) {
	g := New()
	n := g.Upsert(1, nil)
	assert.Equal(t, NoHead, n.Head)
	assert.NotNil(t, n.Deps)
}

func TestAddDependentKeepsSurfaceOrder(t *testing.T) {
	g := buildGraph(t,
		[]string{"big", "red", "dog"},
		[]int{3, 3, 0},
		[]string{"amod", "amod", "ROOT"},
	)
	dog, _ := g.Node(3)
	assert.Equal(t, []int{1, 2}, dog.Deps.Get("amod"))
	assert.Equal(t, []string{"amod"}, dog.Deps.Labels())
}

func TestAddDependentUnknownHead(t *testing.T) {
	g := New()
	g.Upsert(1, func(n *Node) { n.Head = 7 })
	err := g.AddDependent(7, "dep", 1)
	assert.True(t, errors.Is(err, ErrUnknownHead))
}

func TestDepsGetUnknownLabelDoesNotCreate(t *testing.T) {
	d := NewDeps()
	assert.Empty(t, d.Get("nsubj"))
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Labels())
}

func TestSentenceTextAddressOrder(t *testing.T) {
	g := New()
	g.Upsert(3, func(n *Node) { n.Word = "barks" })
	g.Upsert(1, func(n *Node) { n.Word = "The" })
	g.Upsert(2, func(n *Node) { n.Word = "dog" })
	g.Upsert(4, nil)

	assert.Equal(t, "The dog barks", g.SentenceText())
}

func TestResolveRootUpper(t *testing.T) {
	g := buildGraph(t, []string{"dog", "barks"}, []int{2, 0}, []string{"nsubj", "ROOT"})
	require.NoError(t, g.ResolveRoot())

	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, 2, root.Address)
	assert.False(t, g.RootLess())
}

func TestResolveRootLower(t *testing.T) {
	g := buildGraph(t, []string{"dog", "barks"}, []int{2, 0}, []string{"nsubj", "root"})
	require.NoError(t, g.ResolveRoot())
	root, err := g.Root()
	require.NoError(t, err)
	assert.Equal(t, "barks", root.Word)
}

func TestResolveRootMissing(t *testing.T) {
	g := buildGraph(t, []string{"dog", "barks"}, []int{2, 0}, []string{"nsubj", "dep"})
	require.NoError(t, g.ResolveRoot())
	assert.True(t, g.RootLess())

	_, err := g.Root()
	assert.True(t, errors.Is(err, ErrMissingRoot))
}

func TestResolveRootMultiple(t *testing.T) {
	g := buildGraph(t, []string{"dog", "barks"}, []int{0, 0}, []string{"ROOT", "root"})
	err := g.ResolveRoot()
	assert.True(t, errors.Is(err, ErrMultipleRoots))
}

func TestSealedGraphPanicsOnMutation(t *testing.T) {
	g := New()
	g.Seal()
	assert.True(t, g.Sealed())
	assert.Panics(t, func() { g.Upsert(1, nil) })
}

func TestCorpusGraphsSkipsMalformed(t *testing.T) {
	var c Corpus
	c.Add(Entry{Graph: New()})
	c.Add(Entry{Err: errors.New("bad row")})
	c.Add(Entry{Graph: New()})

	assert.Equal(t, 3, c.Len())
	assert.Len(t, c.Graphs(), 2)
}
