// Package streaming wraps the orchestrator with the feed/close/reset
// surface spec §4.13 describes: an accumulating buffer, cheap
// deterministic prefix stages run after every Feed for early
// termination, and a full pipeline run on Close if nothing short-
// circuited. Streaming detectors carry no shared state with each other
// and are not safe for concurrent use (spec §5).
package streaming

import (
	"github.com/chardetect/chardet-core/pkg/models"
	"github.com/chardetect/chardet-core/pkg/orchestrator"
	"github.com/chardetect/chardet-core/pkg/pipeline"
)

// DefaultChunkSize is spec §4.13's "default 4 KB" chunk boundary.
const DefaultChunkSize = 4096

// Detector is a streaming character-encoding detector (spec §3's
// "Streaming Detector State"): an accumulated byte buffer, a done flag,
// and a cached final result once reached.
type Detector struct {
	opts      orchestrator.Options
	chunkSize int

	buffer      []byte
	lastChecked int // buffer length as of the last cheap-stage pass
	done        bool
	result      pipeline.Result
}

// New builds a Detector with the given orchestrator options and chunk
// size. A zero chunkSize uses DefaultChunkSize.
func New(opts orchestrator.Options, chunkSize int) *Detector {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if opts.Store == nil {
		if store, err := models.Default(); err == nil {
			opts.Store = store
		}
	}
	return &Detector{opts: opts, chunkSize: chunkSize}
}

// Done reports whether a verdict (from a cheap stage during Feed, or a
// full pipeline run from Close) has already been reached.
func (d *Detector) Done() bool { return d.done }

// Result returns the cached result and whether one has been reached yet.
func (d *Detector) Result() (pipeline.Result, bool) { return d.result, d.done }

// Reset clears the buffer, done flag, and cached result (spec §4.13).
func (d *Detector) Reset() {
	d.buffer = nil
	d.lastChecked = 0
	d.done = false
	d.result = pipeline.Result{}
}

// Feed appends chunk to the accumulated buffer. The cheap deterministic
// prefix stages (BOM, UTF-16/32 pattern, escape, markup) run against the
// buffer on every call while the buffer remains under MaxBytes; any
// Verdict marks the detector done and caches the result. These stages are
// cheap enough (a handful of fixed-prefix/table scans) to re-run on every
// chunk rather than only at a chunk-size boundary, which matters for
// callers feeding sub-chunk-sized pieces — e.g. a 3-byte BOM followed by
// a 5-byte word must still resolve to "done" after the very first Feed
// (spec §8's streaming scenario), well before a 4 KB boundary would ever
// be crossed. Each call rescans the whole buffer; neither d.chunkSize nor
// lastChecked limits the rescan. A MaxBytes of zero or less means no cap.
func (d *Detector) Feed(chunk []byte) error {
	if d.done {
		return nil
	}
	d.buffer = append(d.buffer, chunk...)

	if d.opts.MaxBytes > 0 && len(d.buffer) >= d.opts.MaxBytes {
		return nil
	}
	d.lastChecked = len(d.buffer)

	if res, ok := d.runCheapStages(); ok {
		d.done = true
		d.result = res
	}
	return nil
}

// Close returns the cached result if Feed already reached one; otherwise
// it runs the full pipeline over the accumulated buffer (capped at
// MaxBytes) and caches the result (spec §4.13).
func (d *Detector) Close() (pipeline.Result, error) {
	if d.done {
		return d.result, nil
	}
	res, err := orchestrator.DetectOne(d.buffer, d.opts)
	if err != nil {
		return pipeline.Result{}, err
	}
	d.done = true
	d.result = res
	return res, nil
}

func (d *Detector) runCheapStages() (pipeline.Result, bool) {
	ctx := pipeline.NewContext(d.buffer, d.opts.Era, d.opts.Store, d.opts.Trace)
	for _, st := range pipeline.CheapStages() {
		out := st.Run(ctx)
		if ctx.Trace != nil {
			ctx.Trace(st.Name(), out)
		}
		if out.Kind == pipeline.Verdict {
			return out.Result, true
		}
	}
	return pipeline.Result{}, false
}
