package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/revelaction/idensity/analysis"
	"github.com/revelaction/idensity/config"
	"github.com/revelaction/idensity/engine"
	"github.com/revelaction/idensity/file"
	"github.com/revelaction/idensity/graph"
	"github.com/revelaction/idensity/parser"
	"github.com/revelaction/idensity/render"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadCorpus reads path according to its kind. Raw text goes through the
// upstream parser first; its failure aborts the command.
func (e *env) loadCorpus(ctx context.Context, path string) (graph.Corpus, error) {
	switch file.Kind(path) {
	case file.KindConll:
		return file.ReadConll(path)

	case file.KindDoc:
		doc, err := file.ReadDoc(path)
		if err != nil {
			return graph.Corpus{}, err
		}
		return doc.Corpus(), nil
	}

	if e.cfg.Parser.ClassPath == "" {
		return graph.Corpus{}, fmt.Errorf("%w: parser.classPath is not configured, cannot parse %s", parser.ErrUpstream, path)
	}

	out, err := e.cfg.Stanford().Parse(ctx, path)
	if err != nil {
		return graph.Corpus{}, err
	}

	// a configured work dir is kept for inspection
	if e.cfg.Parser.WorkDir == "" {
		defer os.RemoveAll(filepath.Dir(out))
	}
	return file.ReadConll(out)
}

// newEngine returns the process engine when a command is configured and the
// label table engine otherwise.
func (e *env) newEngine() (engine.Engine, error) {
	if len(e.cfg.Engine.Command) > 0 {
		return engine.NewCommand(e.cfg.Engine.Command)
	}
	return engine.NewLabelTable(e.cfg.Engine.Labels), nil
}

func (e *env) newDriver() (*analysis.Driver, error) {
	eng, err := e.newEngine()
	if err != nil {
		return nil, err
	}

	d := analysis.NewDriver(eng)
	d.Timeout = e.cfg.SentenceTimeout
	d.Workers = e.cfg.Workers
	return d, nil
}

// presentation merges the report section of the configuration with the
// terminal behind stdout.
func (e *env) presentation() render.Presentation {
	var det render.Presentation
	if e.ui.Interactive {
		det = render.DetectPresentation(os.Stdout)
	}
	return mergePresentation(e.cfg.Report, e.ui.Interactive, det)
}

// mergePresentation lets a configured width win over the detected one.
// Color needs an interactive output.
func mergePresentation(rc config.ReportConfig, interactive bool, det render.Presentation) render.Presentation {
	p := render.Presentation{
		Width:   rc.Width,
		Color:   rc.Color && interactive,
		Verbose: rc.Verbose,
	}

	if p.Width == 0 && interactive {
		p.Width = det.Width
	}
	return p
}
