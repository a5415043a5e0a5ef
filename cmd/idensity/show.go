package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/idensity/conll"
	"github.com/revelaction/idensity/render"
)

type ShowOptions struct {
	Conll bool
}

func showCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print the dependency graph of one sentence",
		ArgsUsage: "<file> <n>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "conll",
				Usage: "print the sentence as CoNLL-X rows",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("show needs a file and a sentence number")
			}

			n, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid sentence number %q", c.Args().Get(1))
			}

			return showCommand(c.Context, e, ShowOptions{Conll: c.Bool("conll")}, c.Args().First(), n)
		},
	}
}

// showCommand prints sentence n (1-based) of path.
func showCommand(ctx context.Context, e *env, opts ShowOptions, path string, n int) error {
	corpus, err := e.loadCorpus(ctx, path)
	if err != nil {
		return err
	}

	if n < 1 || n > corpus.Len() {
		return fmt.Errorf("sentence %d out of bounds (file has %d sentences)", n, corpus.Len())
	}

	entry := corpus.Entries[n-1]
	if entry.Err != nil {
		return fmt.Errorf("sentence %d: %w", n, entry.Err)
	}

	if opts.Conll {
		return conll.Write(e.ui.Out, entry.Graph)
	}

	r := render.NewText(e.ui.Out, e.presentation())
	fmt.Fprintln(e.ui.Out, entry.Graph.SentenceText())
	r.Graph(entry.Graph)
	return nil
}
