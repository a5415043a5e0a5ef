package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/idensity/render"
	"github.com/revelaction/idensity/stat"
	"github.com/revelaction/idensity/storage/filesystem"
)

type FeatsOptions struct {
	// Merge prints a single vector for all inputs.
	Merge bool
}

func featsCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "feats",
		Usage:     "print the P M C proposition vector of each input",
		ArgsUsage: "<file|dir>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "merge",
				Usage: "print one vector for all inputs",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("feats needs at least one input")
			}

			inputs, err := filesystem.ExpandInputs(c.Args().Slice())
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return errors.New("no input files found")
			}

			return featsCommand(c.Context, e, FeatsOptions{Merge: c.Bool("merge")}, inputs)
		},
	}
}

func featsCommand(ctx context.Context, e *env, opts FeatsOptions, inputs []string) error {
	d, err := e.newDriver()
	if err != nil {
		return err
	}

	r := render.NewText(e.ui.Out, render.Presentation{})
	merged := stat.New()

	for _, path := range inputs {
		corpus, err := e.loadCorpus(ctx, path)
		if err != nil {
			return err
		}

		sum, err := d.Run(ctx, corpus)
		if err != nil {
			return err
		}

		switch {
		case opts.Merge:
			merged.Merge(sum.Stats)
		case len(inputs) == 1:
			r.Features(sum.Stats)
		default:
			fmt.Fprintf(e.ui.Out, "%s\t%s\n", sum.Stats.VectorString(), path)
		}
	}

	if opts.Merge {
		r.Features(merged)
	}
	return nil
}
