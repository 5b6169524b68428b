package pipeline

import (
	"sort"

	"github.com/chardetect/chardet-core/internal/bigram"
	"github.com/chardetect/chardet-core/internal/decode"
	"github.com/chardetect/chardet-core/pkg/registry"
)

// confidenceFloor is spec §4.11's "lower bound of 0.20": scores below it
// are reported at exactly 0.20 but flagged BelowThreshold so detect_all
// can drop them unless ignore_threshold is set.
const confidenceFloor = 0.20

// tier3DecodeCap bounds how much of a legacy candidate gets transcoded to
// UTF-8 purely to feed the language fallback (spec §4.12 tier 3 only
// needs the first 2 KB of decoded text).
const tier3DecodeCap = 4096

type statisticalScoreStage struct{}

func (statisticalScoreStage) Name() string { return "statistical_score" }

// Run scores every surviving candidate against its trained bigram
// profiles by cosine similarity (spec §4.11), assigns a language per the
// three-tier scheme (spec §4.12), sorts by descending confidence with
// registry declaration order as the final tie-break, and stashes the
// whole ranked list on the Context for DetectAll while returning the
// winner (or the "not detected" sentinel) as this stage's Verdict.
func (statisticalScoreStage) Run(ctx *Context) Outcome {
	if len(ctx.Candidates) == 0 {
		return verdict(Result{})
	}

	scored := make([]ScoredResult, 0, len(ctx.Candidates))
	for _, enc := range ctx.Candidates {
		scored = append(scored, scoreCandidate(ctx, enc))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Result.Confidence != scored[j].Result.Confidence {
			return scored[i].Result.Confidence > scored[j].Result.Confidence
		}
		return encodingOrder(ctx, scored[i].Result.Encoding) < encodingOrder(ctx, scored[j].Result.Encoding)
	})

	ctx.ScoredResults = scored
	return verdict(scored[0].Result)
}

func scoreCandidate(ctx *Context, enc registry.Encoding) ScoredResult {
	// Bigram profiles (pkg/models/builtin.go) are trained over raw
	// encoded bytes: EUC-JP prose lives in 0xA1-0xFE byte pairs, not the
	// 0xE3/0xE6/0xE8 + continuation-byte pairs its UTF-8 transcoding
	// would produce. The cosine sample has to live in that same
	// raw-byte space as the model it's compared against, for every
	// candidate, multi-byte or not — decoding first would score the
	// sample and the model in two disjoint byte spaces.
	sample := ctx.Sample()
	sample.Reset()
	sample.Accumulate(ctx.Data)

	models := ctx.Store.AllForEncoding(enc.Name)
	bestCos, bestLang := 0.0, ""
	for _, m := range models {
		if c := bigram.Cosine(sample, m); c > bestCos {
			bestCos, bestLang = c, m.Language
		}
	}

	// Structural evidence (§4.10) is independent of the cosine match
	// above and must still be able to carry a structurally clean
	// multi-byte stream over the confidence floor even when a trained
	// profile exists but scores this particular sample poorly.
	if structScore, ok := ctx.StructScores[enc.Name]; ok && structScore > bestCos {
		bestCos = structScore
	}

	if bestLang == "" {
		bestLang = languageFallback(ctx, enc)
	}

	// Tier 1 (spec §4.12): a single-language encoding's fixed table wins
	// over whatever the statistical pass guessed.
	lang := bestLang
	if enc.Language != "" {
		lang = enc.Language
	}

	below := bestCos < confidenceFloor
	conf := bestCos
	if below {
		conf = confidenceFloor
	}
	if conf > 1 {
		conf = 1
	}

	return ScoredResult{
		Result:         Result{Encoding: enc.Name, Confidence: conf, Language: lang},
		Era:            enc.Era,
		BelowThreshold: below,
	}
}

// languageFallback is spec §4.12 tier 3's last resort: multi-byte
// candidates are decoded to their UTF-8 prefix first (the per-language
// profiles AllUTF8LanguageProfiles returns are themselves UTF-8 text);
// single-byte candidates are scored as-is.
func languageFallback(ctx *Context, enc registry.Encoding) string {
	sampleData := ctx.Data
	if enc.MultiByte {
		decoded, err := decode.DecodeToUTF8Prefix(ctx.Data, enc.DecoderID, tier3DecodeCap)
		if err != nil {
			return ""
		}
		sampleData = decoded
	}
	return tier3Language(ctx, sampleData)
}

func encodingOrder(ctx *Context, name string) int {
	for _, enc := range ctx.Candidates {
		if enc.Name == name {
			return enc.Order
		}
	}
	return 0
}
