// Package analysis drives proposition extraction over a corpus, one
// sentence at a time, and aggregates the results.
//
// A sentence that cannot be analysed never aborts the run: it becomes a
// Skipped outcome and contributes nothing to the statistics.
package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/idensity/engine"
	"github.com/revelaction/idensity/graph"
	"github.com/revelaction/idensity/relation"
)

type Driver struct {
	Engine engine.Engine

	// Timeout bounds each engine call. Zero means no bound.
	Timeout time.Duration

	// Workers above 1 analyse sentences in parallel. Outcomes are still
	// reported and counted in corpus order.
	Workers int

	// OnOutcome is called once per sentence, in corpus order.
	OnOutcome func(Outcome)

	// Progress is called after each sentence finishes, possibly from
	// several goroutines.
	Progress func()
}

func NewDriver(e engine.Engine) *Driver {
	return &Driver{Engine: e}
}

// Run analyses every sentence of the corpus. It returns early only when ctx
// is cancelled; the summary then holds the sentences finished so far.
func (d *Driver) Run(ctx context.Context, corpus graph.Corpus) (Summary, error) {
	if d.Workers > 1 {
		return d.runParallel(ctx, corpus)
	}

	sum := newSummary()
	for i, e := range corpus.Entries {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		o := d.analyze(ctx, i+1, e)
		d.progress()
		if interrupted(ctx, o) {
			return sum, ctx.Err()
		}
		d.record(&sum, o)
	}

	d.logSummary(sum)
	return sum, nil
}

func (d *Driver) runParallel(ctx context.Context, corpus graph.Corpus) (Summary, error) {
	slots := make([]*Outcome, corpus.Len())

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(d.Workers)

	for i, e := range corpus.Entries {
		if ctx.Err() != nil {
			break
		}
		i, e := i, e
		eg.Go(func() error {
			if egCtx.Err() != nil {
				return nil
			}
			o := d.analyze(egCtx, i+1, e)
			if !interrupted(ctx, o) {
				slots[i] = &o
			}

			mu.Lock()
			d.progress()
			mu.Unlock()
			return nil
		})
	}
	// workers never return errors
	_ = eg.Wait()

	sum := newSummary()
	for _, o := range slots {
		if o == nil {
			continue
		}
		d.record(&sum, *o)
	}

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	d.logSummary(sum)
	return sum, nil
}

// interrupted reports a sentence that did not fail but was cut short by
// the cancellation of the run. It is left out of the summary.
func interrupted(ctx context.Context, o Outcome) bool {
	return o.Status == Skipped && ctx.Err() != nil
}

func (d *Driver) record(sum *Summary, o Outcome) {
	if o.Status == Skipped {
		log.Warn().
			Int("sentence", o.Sentence).
			Str("reason", ReasonKind(o.Reason)).
			Err(o.Reason).
			Msg("sentence skipped")
	}
	if o.RootLess {
		log.Debug().Int("sentence", o.Sentence).Msg("sentence has no root")
	}

	sum.record(o)
	if d.OnOutcome != nil {
		d.OnOutcome(o)
	}
}

func (d *Driver) progress() {
	if d.Progress != nil {
		d.Progress()
	}
}

func (d *Driver) logSummary(sum Summary) {
	log.Info().
		Int("sentences", sum.Sentences).
		Int("counted", sum.Counted).
		Int("skipped", sum.Skipped).
		Int("rootLess", sum.RootLess).
		Int("propositions", sum.Stats.Total()).
		Msg("analysis finished")
}

// analyze takes one sentence from sealed graph to Counted or Skipped.
func (d *Driver) analyze(ctx context.Context, n int, e graph.Entry) Outcome {
	if e.Err != nil {
		return skipped(n, "", fmt.Errorf("%w: %w", ErrMalformedInput, e.Err), false)
	}
	if e.Graph == nil {
		return skipped(n, "", fmt.Errorf("%w: empty entry", ErrMalformedInput), false)
	}

	g := e.Graph
	text := g.SentenceText()
	rootLess := g.RootLess()

	rels, err := relation.FromGraph(g)
	if err != nil {
		return skipped(n, text, fmt.Errorf("%w: %w", ErrMalformedInput, err), rootLess)
	}

	props, err := d.invoke(ctx, rels)
	if err != nil {
		return skipped(n, text, err, rootLess)
	}

	return counted(n, text, props, rootLess)
}

type result struct {
	props []engine.Proposition
	err   error
}

// invoke calls the engine with the per-sentence timeout. A panic in the
// engine is turned into an error. An engine that ignores its context is
// abandoned once the deadline passes.
func (d *Driver) invoke(ctx context.Context, rels []relation.Relation) ([]engine.Proposition, error) {
	callCtx := ctx
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- result{err: panicValueToErr(v)}
			}
		}()
		props, err := d.Engine.Analyze(callCtx, rels)
		done <- result{props: props, err: err}
	}()

	select {
	case r := <-done:
		return r.unwrap(callCtx)

	case <-callCtx.Done():
		// a result that raced the deadline still wins
		select {
		case r := <-done:
			return r.unwrap(callCtx)
		default:
		}
		return nil, fmt.Errorf("%w: %w", ErrEngineFailure, callCtx.Err())
	}
}

func (r result) unwrap(ctx context.Context) ([]engine.Proposition, error) {
	if r.err == nil {
		return r.props, nil
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrEngineFailure, ctx.Err())
	}
	return nil, fmt.Errorf("%w: %w", ErrEngineFailure, r.err)
}

func panicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from an error of type %T", v)
	}
	return
}
