// Package orchestrator drives the eleven pipeline.Stage values in the
// strict order spec §4.3 mandates, applies era filtering and the
// era-tie-break, and produces DetectOne/DetectAll's final result lists.
// It replaces the teacher's pkg/validator.Validate "iterate registered
// units, aggregate, propagate, fail-fast" loop with the same skeleton
// driving Verdict/Narrow/Skip stage semantics instead of
// pass/warn/fail/error check semantics.
package orchestrator

import (
	"sort"

	"github.com/chardetect/chardet-core/pkg/models"
	"github.com/chardetect/chardet-core/pkg/pipeline"
	"github.com/chardetect/chardet-core/pkg/registry"
)

// EraTieEpsilon is the confidence window (spec §4.3 / §9's Open
// Question) within which the orchestrator prefers a more "modern" era
// tier over raw confidence order.
const EraTieEpsilon = 0.01

// ThresholdDefault is detect_all's default confidence floor (spec §4.3:
// "threshold is 0.20").
const ThresholdDefault = 0.20

// Options configures a detection run (spec §4.3 and SPEC_FULL.md §9.2's
// functional-options surface, assembled by pkg/chardet into this struct).
type Options struct {
	MaxBytes           int
	Era                registry.Era
	IgnoreThreshold    bool
	ShouldRenameLegacy bool
	Store              *models.Store
	Trace              func(stage string, outcome pipeline.Outcome)
}

// DetectOne runs the full pipeline and returns the single best verdict,
// after era-tie-break (spec §4.3's detect_one entry point).
func DetectOne(data []byte, opts Options) (pipeline.Result, error) {
	scored, err := run(data, opts)
	if err != nil {
		return pipeline.Result{}, err
	}
	if len(scored) == 0 {
		return pipeline.Result{}, nil
	}
	return scored[0].Result, nil
}

// DetectAll runs the full pipeline and returns every surviving result
// sorted by descending confidence, dropping below-threshold entries
// unless Options.IgnoreThreshold is set (spec §4.3's detect_all).
func DetectAll(data []byte, opts Options) ([]pipeline.Result, error) {
	scored, err := run(data, opts)
	if err != nil {
		return nil, err
	}

	out := make([]pipeline.Result, 0, len(scored))
	for _, s := range scored {
		if s.BelowThreshold && !opts.IgnoreThreshold {
			continue
		}
		out = append(out, s.Result)
	}
	return out, nil
}

// run executes the pipeline once and returns the full, era-tie-broken
// scored list both entry points share, so detect_one and detect_all agree
// up to tie-break equivalence (spec §8).
func run(data []byte, opts Options) ([]pipeline.ScoredResult, error) {
	if opts.Era == 0 || opts.Era&^registry.All != 0 {
		return nil, pipeline.ErrUnknownEra
	}
	if len(data) == 0 {
		return nil, nil // spec §7 EmptyInput: the "not detected" sentinel, not an error
	}

	store := opts.Store
	if store == nil {
		var err error
		store, err = models.Default()
		if err != nil {
			return nil, err
		}
	}

	analyzed := data
	if opts.MaxBytes > 0 && len(analyzed) > opts.MaxBytes {
		analyzed = analyzed[:opts.MaxBytes]
	}

	ctx := pipeline.NewContext(analyzed, opts.Era, store, opts.Trace)
	runStages(ctx, pipeline.Stages())

	scored := ctx.ScoredResults
	if scored == nil {
		// No stage returned a Verdict (runStages wraps any early one);
		// report the "not detected" sentinel so DetectAll and DetectOne
		// still agree.
		scored = []pipeline.ScoredResult{{}}
	}

	return eraTieBreak(scored), nil
}

// runStages drives the stage list in order, stopping at the first
// Verdict. Narrow and Skip outcomes fall through to the next stage; the
// final statistical-scoring stage always produces a Verdict and fills
// ctx.ScoredResults, and an earlier Verdict is wrapped here as a
// single-element list, so ctx.ScoredResults is populated on return.
func runStages(ctx *pipeline.Context, stages []pipeline.Stage) {
	for _, st := range stages {
		out := st.Run(ctx)
		if ctx.Trace != nil {
			ctx.Trace(st.Name(), out)
		}
		if out.Kind == pipeline.Verdict {
			if ctx.ScoredResults == nil {
				ctx.ScoredResults = []pipeline.ScoredResult{{Result: out.Result, Era: eraOf(out.Result.Encoding)}}
			}
			return
		}
	}
}

// eraOf looks up a verdict encoding's registry era, used to seed the
// single-element ScoredResult wrapper for early-short-circuit verdicts.
func eraOf(name string) registry.Era {
	enc, ok := registry.Resolve(name)
	if !ok {
		return 0
	}
	return enc.Era
}

// eraTieBreak implements spec §4.3's era-tie-breaking: among the
// confidence-sorted results within EraTieEpsilon of the top score, prefer
// the more "modern" era tier (MODERN_WEB > LEGACY_ISO > LEGACY_MAC >
// LEGACY_REGIONAL > DOS > MAINFRAME).
func eraTieBreak(scored []pipeline.ScoredResult) []pipeline.ScoredResult {
	if len(scored) <= 1 {
		return scored
	}

	top := scored[0].Result.Confidence
	n := 0
	for n < len(scored) && top-scored[n].Result.Confidence <= EraTieEpsilon {
		n++
	}
	if n <= 1 {
		return scored
	}

	window := append([]pipeline.ScoredResult(nil), scored[:n]...)
	sort.SliceStable(window, func(i, j int) bool {
		return registry.Rank(window[i].Era) < registry.Rank(window[j].Era)
	})
	copy(scored[:n], window)
	return scored
}
