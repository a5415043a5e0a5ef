package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/idensity/storage"
	"github.com/revelaction/idensity/storage/sqlite/zombiezen"
)

type HistoryOptions struct {
	DB    string
	Match string
}

func historyCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list the runs recorded with analyze --db",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite database holding the runs",
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "only runs whose input contains this string",
			},
		},
		Action: func(c *cli.Context) error {
			opts := HistoryOptions{DB: e.cfg.Storage.Path, Match: c.String("match")}
			if c.IsSet("db") {
				opts.DB = c.String("db")
			}
			if opts.DB == "" {
				return errors.New("history needs --db or storage.path")
			}

			pool, store, err := zombiezen.OpenRunStore(opts.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			return historyCommand(store, opts, e.ui)
		},
	}
}

func historyCommand(repo storage.RunReader, opts HistoryOptions, ui UI) error {
	runs, err := repo.List(opts.Match)
	if err != nil {
		return err
	}

	for _, r := range runs {
		fmt.Fprintf(ui.Out, "%d\t%s\t%d %d %d\t%d/%d\t%s\n",
			r.Id, r.StartedAt.Local().Format(time.RFC3339),
			r.Vector[0], r.Vector[1], r.Vector[2],
			r.Counted, r.Sentences, r.Input)
	}
	return nil
}
