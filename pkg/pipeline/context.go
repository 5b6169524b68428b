// Package pipeline implements the Pipeline Context and the eleven ordered
// detection stages spec §4 describes: a tagged-variant Stage = Bom |
// Utf1632 | Escape | ... with a single Run(ctx) operation, replacing the
// teacher's CheckUnit class graph per spec §9's explicit design note.
package pipeline

import (
	"github.com/chardetect/chardet-core/internal/bigram"
	"github.com/chardetect/chardet-core/internal/decode"
	"github.com/chardetect/chardet-core/pkg/models"
	"github.com/chardetect/chardet-core/pkg/registry"
)

// Result is the immutable Detection Result triple spec §3 defines:
// (encoding, confidence, language). The zero value is spec.md's
// "(None, None, None)" sentinel, returned both for undetectable input and
// (with Binary set) for the binary guard's verdict — see IsBinary/IsDetected.
type Result struct {
	Encoding   string
	Confidence float64
	Language   string

	// Binary is true only when the binary guard stage (§4.7) produced this
	// verdict, distinguishing "not text" from plain "not detected" even
	// though both share the same empty Encoding/zero Confidence shape.
	Binary bool
}

// IsDetected reports whether a usable encoding verdict was reached.
func (r Result) IsDetected() bool { return r.Encoding != "" }

// IsBinary reports whether this result is the binary-guard verdict.
func (r Result) IsBinary() bool { return r.Binary }

// ScoredResult augments a Result with the bookkeeping the orchestrator
// needs to run era-tie-break (§4.3) and threshold filtering (§4.11) across
// the whole candidate list, not just the winner.
type ScoredResult struct {
	Result         Result
	Era            registry.Era
	BelowThreshold bool
}

// Context is the per-detect() mutable working state spec §3 describes:
// accumulated bytes, non-ASCII count, the live candidate set, a decode
// cache, and per-encoding structural scores. It holds no binary guess:
// the binary guard stage returns its verdict directly. It is created on
// entry to the orchestrator and discarded on return; nothing here is
// shared across concurrent invocations.
type Context struct {
	// Data is the analyzed prefix: the input truncated to Options.MaxBytes
	// for analysis purposes only (spec §4.3).
	Data []byte

	// Era is the caller's requested era filter (spec §4.3 step 8).
	Era registry.Era

	// Store is the Model Store consulted by the UTF-8 language fallback
	// and the statistical scoring stage.
	Store *models.Store

	// Candidates is the live candidate set, narrowed by the byte-validity
	// filter, CJK gate, and structural probe stages in turn.
	Candidates []registry.Encoding

	// decodeCache memoizes TryDecode results per encoding name (spec §4.9:
	// "memoized per-context by encoding name").
	decodeCache map[string]decode.Result

	// StructScores holds each multi-byte candidate's structural probe
	// score (§4.10), keyed by encoding name, populated by the CJK gate and
	// refined by the structural probing stage.
	StructScores map[string]float64

	// LeadHistograms holds each multi-byte candidate's lead-byte histogram
	// from structural probing, used by the Shift-JIS/EUC-JP Hiragana
	// context tie-break (§4.10).
	LeadHistograms map[string]map[byte]int

	// NonASCII counts bytes >= 0x80 in Data, a cheap signal several stages
	// consult before doing heavier work.
	NonASCII int

	// sample is a reusable cosine-scoring scratch buffer (spec §9's design
	// note on avoiding per-call allocation in the hot loop).
	sample bigram.Sample

	// ScoredResults is populated once a stage produces more than a single
	// winner worth keeping (currently only the statistical scoring stage);
	// the orchestrator falls back to wrapping the lone Verdict Result when
	// this is nil, so DetectAll and DetectOne always agree (spec §8).
	ScoredResults []ScoredResult

	// Trace, if set, is invoked after every stage runs (ambient stack,
	// SPEC_FULL.md §9.1), mirroring the teacher's caller-supplied message
	// callbacks rather than writing to stdout/stderr itself.
	Trace func(stage string, outcome Outcome)
}

// NewContext builds a fresh Context for one detect() invocation.
func NewContext(data []byte, era registry.Era, store *models.Store, trace func(string, Outcome)) *Context {
	nonASCII := 0
	for _, b := range data {
		if b >= 0x80 {
			nonASCII++
		}
	}
	return &Context{
		Data:           data,
		Era:            era,
		Store:          store,
		decodeCache:    make(map[string]decode.Result),
		StructScores:   make(map[string]float64),
		LeadHistograms: make(map[string]map[byte]int),
		NonASCII:       nonASCII,
		Trace:          trace,
	}
}

// DecodeCached runs TryDecode for encodingName (via decoderID), memoizing
// the result per Context by encoding name (spec §4.9).
func (c *Context) DecodeCached(encodingName, decoderID string) decode.Result {
	if r, ok := c.decodeCache[encodingName]; ok {
		return r
	}
	r := decode.TryDecode(c.Data, decoderID)
	c.decodeCache[encodingName] = r
	return r
}

// Sample returns the Context's reusable cosine-scoring scratch buffer.
func (c *Context) Sample() *bigram.Sample { return &c.sample }
