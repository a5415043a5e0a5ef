package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/idensity/analysis"
	"github.com/revelaction/idensity/explore"
	"github.com/revelaction/idensity/render"
)

func exploreCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "explore",
		Usage:     "analyse a file and browse its sentences interactively",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("explore needs exactly one input file")
			}
			return exploreCommand(c.Context, e, c.Args().First())
		},
	}
}

func exploreCommand(ctx context.Context, e *env, path string) error {
	h, err := newExploreHandler(ctx, e, path)
	if err != nil {
		return err
	}
	return h.Run()
}

func newExploreHandler(ctx context.Context, e *env, path string) (*explore.Handler, error) {
	corpus, err := e.loadCorpus(ctx, path)
	if err != nil {
		return nil, err
	}

	d, err := e.newDriver()
	if err != nil {
		return nil, err
	}

	outcomes := make([]analysis.Outcome, 0, corpus.Len())
	d.OnOutcome = func(o analysis.Outcome) { outcomes = append(outcomes, o) }

	sum, err := d.Run(ctx, corpus)
	if err != nil {
		return nil, err
	}

	p := e.presentation()
	p.Verbose = true
	return explore.NewHandler(corpus, outcomes, sum, render.NewText(e.ui.Out, p)), nil
}
