// Package chardet is the public surface over pkg/orchestrator and
// pkg/streaming: Detect, DetectAll, and NewStreamingDetector, configured
// via a functional-options Options struct (spec §6, §9.2). Mirrors the
// teacher's checks.Option / checks.WithFailFast / checks.WithPriority
// layering over a RunOptions struct.
package chardet

import (
	"github.com/chardetect/chardet-core/pkg/models"
	"github.com/chardetect/chardet-core/pkg/orchestrator"
	"github.com/chardetect/chardet-core/pkg/pipeline"
	"github.com/chardetect/chardet-core/pkg/registry"
	"github.com/chardetect/chardet-core/pkg/streaming"
)

// Era re-exports registry.Era so callers never need to import
// pkg/registry directly for WithEra.
type Era = registry.Era

// Era tier constants, OR-combinable (spec §6).
const (
	ModernWeb      = registry.ModernWeb
	LegacyISO      = registry.LegacyISO
	LegacyMac      = registry.LegacyMac
	LegacyRegional = registry.LegacyRegional
	DOS            = registry.DOS
	Mainframe      = registry.Mainframe
	AllEras        = registry.All
)

// Defaults per spec §6 / §9.2.
const (
	DefaultMaxBytes   = 200000
	DefaultChunkSize  = streaming.DefaultChunkSize
	DefaultEra        = registry.ModernWeb
	ThresholdDefault  = orchestrator.ThresholdDefault
	EraTieBreakWindow = orchestrator.EraTieEpsilon
)

// Result is the public detection outcome (spec §3's Result/Verdict). It
// is a thin façade over pipeline.Result: Encoding/Language empty and
// Confidence zero means "not detected", except when Binary is true (the
// binary-guard verdict, which never carries an encoding or language).
type Result struct {
	Encoding   string
	Confidence float64
	Language   string
	Binary     bool
}

// IsDetected reports whether Encoding/Confidence/Language are populated
// (spec §11: "not detected" vs binary vs a real verdict are three
// distinct outcomes callers must be able to tell apart without
// string-matching Encoding == "").
func (r Result) IsDetected() bool { return r.Encoding != "" }

// IsBinary reports whether the binary guard (spec §4.7) fired.
func (r Result) IsBinary() bool { return r.Binary }

func fromPipeline(r pipeline.Result) Result {
	return Result{
		Encoding:   r.Encoding,
		Confidence: r.Confidence,
		Language:   r.Language,
		Binary:     r.Binary,
	}
}

// Options configures a detection run. The zero value is not directly
// usable — construct one via resolveOptions, which applies spec-mandated
// defaults before any Option functions run.
type Options struct {
	maxBytes           int
	chunkSize          int
	era                registry.Era
	ignoreThreshold    bool
	shouldRenameLegacy bool
	store              *models.Store
	trace              func(stage string, outcome pipeline.Outcome)
}

// Option mutates an Options value (teacher idiom: checks.Option).
type Option func(*Options)

// WithMaxBytes caps how many leading bytes of the input are analyzed
// (spec §6: default 200 000).
func WithMaxBytes(n int) Option {
	return func(o *Options) { o.maxBytes = n }
}

// WithChunkSize sets the streaming detector's chunk size (spec §6:
// default 4096). Only NewStreamingDetector uses it, and only to store it:
// Feed runs the cheap stages on every call whatever the chunk size.
func WithChunkSize(n int) Option {
	return func(o *Options) { o.chunkSize = n }
}

// WithEra restricts the candidate set to the given era bit-set (spec
// §6: default MODERN_WEB).
func WithEra(e Era) Option {
	return func(o *Options) { o.era = e }
}

// WithIgnoreThreshold makes DetectAll include below-threshold candidates
// that would otherwise be dropped (spec §4.3).
func WithIgnoreThreshold() Option {
	return func(o *Options) { o.ignoreThreshold = true }
}

// WithShouldRenameLegacy threads a hint through to Options for callers
// that want legacy aliases normalized to their canonical registry name
// (spec §3's Encoding.Name vs Aliases distinction).
func WithShouldRenameLegacy() Option {
	return func(o *Options) { o.shouldRenameLegacy = true }
}

// WithTrace installs a caller-supplied stage-by-stage diagnostic
// callback (spec §9.1), the same "callback, no default I/O" shape as the
// teacher's RunRecipe messages.
func WithTrace(fn func(stage string, outcome pipeline.Outcome)) Option {
	return func(o *Options) { o.trace = fn }
}

// WithStore overrides the bigram model store, mainly for tests that need
// a deterministic in-memory store instead of models.Default().
func WithStore(s *models.Store) Option {
	return func(o *Options) { o.store = s }
}

func resolveOptions(opts []Option) Options {
	o := Options{
		maxBytes:  DefaultMaxBytes,
		chunkSize: DefaultChunkSize,
		era:       DefaultEra,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) toOrchestrator() orchestrator.Options {
	return orchestrator.Options{
		MaxBytes:           o.maxBytes,
		Era:                o.era,
		IgnoreThreshold:    o.ignoreThreshold,
		ShouldRenameLegacy: o.shouldRenameLegacy,
		Store:              o.store,
		Trace:              o.trace,
	}
}

// Detect runs the full pipeline and returns the single best verdict
// (spec §6's detect_one entry point).
func Detect(data []byte, opts ...Option) (Result, error) {
	o := resolveOptions(opts)
	res, err := orchestrator.DetectOne(data, o.toOrchestrator())
	if err != nil {
		return Result{}, err
	}
	return fromPipeline(res), nil
}

// DetectAll runs the full pipeline and returns every surviving result
// sorted by descending confidence (spec §6's detect_all entry point).
func DetectAll(data []byte, opts ...Option) ([]Result, error) {
	o := resolveOptions(opts)
	res, err := orchestrator.DetectAll(data, o.toOrchestrator())
	if err != nil {
		return nil, err
	}
	out := make([]Result, len(res))
	for i, r := range res {
		out[i] = fromPipeline(r)
	}
	return out, nil
}

// StreamingDetector is the public feed/close/reset surface (spec §6),
// a thin wrapper over pkg/streaming.Detector translating pipeline.Result
// to the public Result type.
type StreamingDetector struct {
	inner *streaming.Detector
}

// NewStreamingDetector builds a StreamingDetector with the given options.
func NewStreamingDetector(opts ...Option) *StreamingDetector {
	o := resolveOptions(opts)
	return &StreamingDetector{inner: streaming.New(o.toOrchestrator(), o.chunkSize)}
}

// Feed appends chunk to the accumulated buffer, running the cheap
// deterministic prefix stages for early termination (spec §4.13).
func (d *StreamingDetector) Feed(chunk []byte) error {
	return d.inner.Feed(chunk)
}

// Close returns the cached result if Feed already reached one;
// otherwise it runs the full pipeline over the accumulated buffer.
func (d *StreamingDetector) Close() (Result, error) {
	res, err := d.inner.Close()
	if err != nil {
		return Result{}, err
	}
	return fromPipeline(res), nil
}

// Reset clears the buffer, done flag, and cached result.
func (d *StreamingDetector) Reset() { d.inner.Reset() }

// Done reports whether a verdict has already been reached.
func (d *StreamingDetector) Done() bool { return d.inner.Done() }

// Result returns the cached result and whether one has been reached yet.
func (d *StreamingDetector) Result() (Result, bool) {
	res, ok := d.inner.Result()
	return fromPipeline(res), ok
}
