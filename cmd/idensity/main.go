package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/idensity/config"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer

	// Interactive enables the progress bar and terminal presentation.
	Interactive bool
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr, Interactive: isTerminal(os.Stdout)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(ui).RunContext(ctx, os.Args); err != nil {
		fprintErr(ui.Err, err)
		stop()
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "idensity: %v\n", err)
}

// env is the state shared by the commands once the configuration is loaded.
type env struct {
	ui  UI
	cfg *config.Config
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui}

	return &cli.App{
		Name:      "idensity",
		Usage:     "count the propositions of a text and report its idea density",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{config.EnvConfig},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			e.cfg = cfg
			return setupLogging(ui.Err, cfg)
		},
		Commands: []*cli.Command{
			analyzeCmd(e),
			featsCmd(e),
			showCmd(e),
			exploreCmd(e),
			historyCmd(e),
			versionCmd(e),
		},
	}
}

// setupLogging points the global logger at w with a console writer.
func setupLogging(w io.Writer, cfg *config.Config) error {
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Logger()
	return nil
}
