package zombiezen

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/idensity/stat"
	"github.com/revelaction/idensity/storage"
)

func openStore(t *testing.T) *RunStore {
	t.Helper()
	pool, store, err := OpenRunStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	return store
}

func TestRunStoreWriteList(t *testing.T) {
	store := openStore(t)

	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	id, err := store.Write(storage.Run{
		Input:     "corpus/story.conll",
		StartedAt: started,
		Sentences: 4,
		Counted:   3,
		Skipped:   1,
		Vector:    [3]int{5, 2, 1},
		Kinds: []stat.KindCount{
			{Kind: "P", Count: 5},
			{Kind: "X", Count: 1},
			{Kind: "M", Count: 2},
		},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = store.Write(storage.Run{Input: "other.json", StartedAt: started.Add(time.Hour)})
	require.NoError(t, err)

	runs, err := store.List("")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "other.json", runs[0].Input)
	assert.Empty(t, runs[0].Kinds)

	got := runs[1]
	assert.Equal(t, id, got.Id)
	assert.Equal(t, started, got.StartedAt)
	assert.Equal(t, [3]int{5, 2, 1}, got.Vector)
	assert.Equal(t, 1, got.Skipped)
	assert.Equal(t, []stat.KindCount{{Kind: "P", Count: 5}, {Kind: "X", Count: 1}, {Kind: "M", Count: 2}}, got.Kinds)
}

func TestRunStoreListMatch(t *testing.T) {
	store := openStore(t)
	for _, in := range []string{"a/story.conll", "b/notes.txt"} {
		_, err := store.Write(storage.Run{Input: in, StartedAt: time.Now()})
		require.NoError(t, err)
	}

	runs, err := store.List("story")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "a/story.conll", runs[0].Input)
}

func TestCreateSchemasUnknownScript(t *testing.T) {
	pool, err := NewPool(filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer pool.Close()

	assert.Error(t, CreateSchemas(pool, "missing.sql"))
}
