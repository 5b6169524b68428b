package pipeline

import "github.com/chardetect/chardet-core/pkg/registry"

type asciiStage struct{}

func (asciiStage) Name() string { return "ascii" }

// Run verdicts plain ASCII (spec §4.3 step 6): no byte >= 0x80 and no
// non-ASCII control bytes present. When the caller requested every era
// (no narrowing), the text is reported as the Windows-1252 superset
// instead, per spec's parenthetical.
func (asciiStage) Run(ctx *Context) Outcome {
	if len(ctx.Data) == 0 {
		return skip()
	}
	for _, b := range ctx.Data {
		if b >= 0x80 || isNonTextControl(b) {
			return skip()
		}
	}

	name := "ascii"
	if ctx.Era == registry.All {
		name = "windows-1252"
	}
	return verdict(Result{Encoding: name, Confidence: 0.95})
}
