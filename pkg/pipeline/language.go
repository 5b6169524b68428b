package pipeline

import "github.com/chardetect/chardet-core/internal/bigram"

// tier3Window bounds the decoded-UTF-8 prefix the language fallback scores
// against (spec §4.12 tier 3: "the first 2 KB of the decoded prefix").
const tier3Window = 2 * 1024

// tier3Language is spec §4.12's third language-assignment tier: score
// decoded UTF-8 bytes against every per-language UTF-8 bigram profile and
// pick the argmax. Used both by the UTF-8 validation stage directly and
// by the statistical scoring stage as the last-resort fallback for
// multi-language legacy encodings with no trained profile of their own.
func tier3Language(ctx *Context, utf8Bytes []byte) string {
	if ctx.Store == nil {
		return ""
	}
	profiles := ctx.Store.AllUTF8LanguageProfiles()
	if len(profiles) == 0 {
		return ""
	}

	window := utf8Bytes
	if len(window) > tier3Window {
		window = window[:tier3Window]
	}

	sample := ctx.Sample()
	sample.Reset()
	sample.Accumulate(window)

	best, bestScore := "", 0.0
	for _, m := range profiles {
		if c := bigram.Cosine(sample, m); c > bestScore {
			bestScore, best = c, m.Language
		}
	}
	return best
}
