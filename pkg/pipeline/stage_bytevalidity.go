package pipeline

import "github.com/chardetect/chardet-core/pkg/registry"

type byteValidityStage struct{}

func (byteValidityStage) Name() string { return "byte_validity" }

// Run initializes the candidate set from the registry, filtered by era,
// and eliminates every encoding whose decoder rejects the analyzed prefix
// (spec §4.9). This is the stage that turns the registry's 65 entries into
// typically 2-15 survivors for the structural/statistical stages to
// refine further.
func (byteValidityStage) Run(ctx *Context) Outcome {
	all := registry.CandidatesForEra(ctx.Era)
	survivors := make([]registry.Encoding, 0, len(all))
	for _, enc := range all {
		if ctx.DecodeCached(enc.Name, enc.DecoderID).OK {
			survivors = append(survivors, enc)
		}
	}
	ctx.Candidates = survivors
	if len(survivors) == 0 {
		return verdict(Result{})
	}
	return narrow()
}
