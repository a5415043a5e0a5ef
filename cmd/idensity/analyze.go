package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/idensity/analysis"
	"github.com/revelaction/idensity/render"
	"github.com/revelaction/idensity/storage"
	"github.com/revelaction/idensity/storage/sqlite/zombiezen"
)

type AnalyzeOptions struct {
	Format  string
	Verbose bool
	DB      string
}

func analyzeCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "report the propositions of every sentence and the kind statistics",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "list every sentence with its propositions (--verbose=false for the statistics only)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   render.DefaultFormat,
				Usage:   "output format: text or json",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "record the run in this SQLite database",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of sentences analysed in parallel",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("analyze needs exactly one input file")
			}

			opts := AnalyzeOptions{
				Format:  c.String("format"),
				Verbose: e.cfg.Report.Verbose,
				DB:      e.cfg.Storage.Path,
			}
			if c.IsSet("verbose") {
				opts.Verbose = c.Bool("verbose")
			}
			if c.IsSet("db") {
				opts.DB = c.String("db")
			}
			if c.IsSet("workers") {
				e.cfg.Workers = c.Int("workers")
				if err := e.cfg.Validate(); err != nil {
					return err
				}
			}
			if !validFormat(opts.Format) {
				return fmt.Errorf("unknown format %q, allowed values are %v", opts.Format, render.SupportedFormats())
			}

			return analyzeCommand(c.Context, e, opts, c.Args().First())
		},
	}
}

func validFormat(f string) bool {
	for _, s := range render.SupportedFormats() {
		if s == f {
			return true
		}
	}
	return false
}

func analyzeCommand(ctx context.Context, e *env, opts AnalyzeOptions, path string) error {
	corpus, err := e.loadCorpus(ctx, path)
	if err != nil {
		return err
	}

	d, err := e.newDriver()
	if err != nil {
		return err
	}

	var r render.Renderer
	if opts.Format == "json" {
		r = render.NewJSONRenderer(e.ui.Out, opts.Verbose)
	} else {
		p := e.presentation()
		p.Verbose = opts.Verbose
		r = render.NewText(e.ui.Out, p)
	}
	d.OnOutcome = r.Outcome

	var progress *uiprogress.Progress
	if e.ui.Interactive && !opts.Verbose && opts.Format != "json" {
		progress = uiprogress.New()
		progress.SetOut(e.ui.Err)
		bar := progress.AddBar(corpus.Len())
		bar.AppendCompleted()
		bar.PrependElapsed()
		d.Progress = func() { bar.Incr() }
		progress.Start()
	}

	started := time.Now()
	sum, runErr := d.Run(ctx, corpus)

	if progress != nil {
		progress.Stop()
	}

	if err := r.Summary(sum); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	if opts.DB != "" {
		id, err := recordRun(opts.DB, path, started, sum)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		log.Info().Int64("run", id).Str("db", opts.DB).Msg("run recorded")
	}

	return nil
}

func recordRun(dbPath, input string, started time.Time, sum analysis.Summary) (int64, error) {
	pool, store, err := zombiezen.OpenRunStore(dbPath)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	if abs, err := filepath.Abs(input); err == nil {
		input = abs
	}

	return store.Write(storage.Run{
		Input:     input,
		StartedAt: started,
		Sentences: sum.Sentences,
		Counted:   sum.Counted,
		Skipped:   sum.Skipped,
		Vector:    sum.Stats.Vector(),
		Kinds:     sum.Stats.Table(),
	})
}
