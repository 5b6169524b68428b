package pipeline

import "github.com/chardetect/chardet-core/internal/decode"

type utf8ValidateStage struct{}

func (utf8ValidateStage) Name() string { return "utf8_validate" }

// Run performs a full RFC 3629 structural pass over the data (spec §4.3
// step 7). On success the language is filled in via tier 3 of §4.12
// (the bytes already are UTF-8, so no decode step is needed first).
func (utf8ValidateStage) Run(ctx *Context) Outcome {
	if !decode.TryDecode(ctx.Data, "utf-8").OK {
		return skip()
	}
	lang := tier3Language(ctx, ctx.Data)
	return verdict(Result{Encoding: "utf-8", Confidence: 0.99, Language: lang})
}
