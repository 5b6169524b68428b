package pipeline

import "github.com/chardetect/chardet-core/internal/escapesm"

type escapeStage struct{}

func (escapeStage) Name() string { return "escape" }

// Run drives the three 7-bit escape state machines (spec §4.6). The first
// ITS_ME any of them reaches is an immediate Verdict; no language is
// attached (escape encodings don't carry per-language models here).
func (escapeStage) Run(ctx *Context) Outcome {
	m, ok := escapesm.Detect(ctx.Data)
	if !ok {
		return skip()
	}
	return verdict(Result{Encoding: m.Encoding, Confidence: 0.99})
}
