package pipeline

import (
	"github.com/chardetect/chardet-core/internal/markup"
	"github.com/chardetect/chardet-core/pkg/registry"
)

// markupWindow bounds how much of the prefix the markup sniffer examines
// (spec §4.8: "the first 8 KB").
const markupWindow = 8 * 1024

type markupStage struct{}

func (markupStage) Name() string { return "markup" }

// Run looks for an HTML meta-charset or XML encoding declaration (spec
// §4.8). A declared name the registry can't resolve is a Skip, not an
// error: the declaration might name an encoding genuinely outside this
// module's 65-entry catalog.
func (markupStage) Run(ctx *Context) Outcome {
	window := ctx.Data
	if len(window) > markupWindow {
		window = window[:markupWindow]
	}

	res, found := markup.Sniff(window)
	if !found {
		return skip()
	}
	enc, ok := registry.Resolve(res.Name)
	if !ok {
		return skip()
	}
	return verdict(Result{Encoding: enc.Name, Confidence: 0.99, Language: enc.Language})
}
