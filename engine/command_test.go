package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/idensity/relation"
)

func shell(t *testing.T, script string) *Command {
	t.Helper()
	c, err := NewCommand([]string{"sh", "-c", script})
	require.NoError(t, err)
	return c
}

func TestCommandAnalyze(t *testing.T) {
	stdin := filepath.Join(t.TempDir(), "stdin.json")
	c := shell(t, `cat > "`+stdin+`"; echo '[{"kind":"P","text":"(bark, dogs)"},{"kind":"M","text":"(dogs, big)"}]'`)

	props, err := c.Analyze(context.Background(), sampleRelations())
	require.NoError(t, err)
	assert.Equal(t, []Proposition{
		{Kind: "P", Text: "(bark, dogs)"},
		{Kind: "M", Text: "(dogs, big)"},
	}, props)

	data, err := os.ReadFile(stdin)
	require.NoError(t, err)
	var got []relation.Relation
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sampleRelations(), got)
}

func TestCommandAnalyzeEmptyOutput(t *testing.T) {
	c := shell(t, "cat > /dev/null")
	props, err := c.Analyze(context.Background(), sampleRelations())
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestCommandAnalyzeNonZeroExit(t *testing.T) {
	c := shell(t, "cat > /dev/null; echo 'no verb found' >&2; exit 1")
	_, err := c.Analyze(context.Background(), sampleRelations())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no verb found")
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestCommandAnalyzeUndecodableOutput(t *testing.T) {
	c := shell(t, "cat > /dev/null; echo 'P (bark, dogs)'")
	_, err := c.Analyze(context.Background(), sampleRelations())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid engine output")
}

func TestCommandAnalyzeKilledOnDeadline(t *testing.T) {
	c := shell(t, "sleep 5")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Analyze(ctx, sampleRelations())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestCommandAnalyzeMissingBinary(t *testing.T) {
	c, err := NewCommand([]string{filepath.Join(t.TempDir(), "no-such-engine")})
	require.NoError(t, err)
	_, err = c.Analyze(context.Background(), sampleRelations())
	assert.Error(t, err)
}
