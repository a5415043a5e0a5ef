package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/revelaction/idensity/relation"
)

// Command runs an external extraction engine once per sentence.
//
// The relations are written to the process stdin as a JSON array. The
// process must print a JSON array of {"kind", "text"} objects to stdout and
// exit with status 0.
type Command struct {
	Argv []string
}

// waitDelay bounds the wait for output pipes held open by children of a
// killed engine process.
const waitDelay = time.Second

var _ Engine = (*Command)(nil)

func NewCommand(argv []string) (*Command, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, errors.New("engine command is empty")
	}
	return &Command{Argv: argv}, nil
}

func (c *Command) Analyze(ctx context.Context, rels []relation.Relation) ([]Proposition, error) {
	in, err := json.Marshal(rels)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Stdin = bytes.NewReader(in)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", c.Argv[0], err, msg)
		}
		return nil, fmt.Errorf("%s: %w", c.Argv[0], err)
	}

	return DecodePropositions(stdout.Bytes())
}

// DecodePropositions parses the JSON output of an engine process. Empty
// output means no propositions.
func DecodePropositions(data []byte) ([]Proposition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var props []Proposition
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("invalid engine output: %w", err)
	}

	for i, p := range props {
		if p.Kind == "" {
			return nil, fmt.Errorf("invalid engine output: proposition %d has no kind", i+1)
		}
	}
	return props, nil
}
