package pipeline

import (
	"github.com/chardetect/chardet-core/internal/structuralsm"
	"github.com/chardetect/chardet-core/pkg/registry"
)

// structuralElimFloor is the score below which a scored multi-byte
// candidate is dropped (spec §4.10: "prune those scoring below an
// elimination floor"; the spec leaves the exact value to calibration, so
// this module reuses CJKMinCoverage rather than inventing a second
// unnamed constant).
const structuralElimFloor = CJKMinCoverage

// hiraganaTieWeight is the maximum Shift-JIS/EUC-JP tie-break adjustment
// (spec §4.10: "up to +-0.1").
const hiraganaTieWeight = 0.1

type structuralProbeStage struct{}

func (structuralProbeStage) Name() string { return "structural_probe" }

// Run scores every remaining multi-byte candidate that has a structural
// prober: score = 0.5*coverage + 0.5*distribution, where distribution
// approximates the leading-byte frequency confidence spec §4.10 describes
// as a share of validated characters that were genuinely multi-byte
// (rather than incidental ASCII runs). Shift-JIS and EUC-JP additionally
// receive the Hiragana-context tie-break.
func (structuralProbeStage) Run(ctx *Context) Outcome {
	survivors := make([]registry.Encoding, 0, len(ctx.Candidates))
	for _, enc := range ctx.Candidates {
		if !enc.MultiByte {
			survivors = append(survivors, enc)
			continue
		}
		prober, ok := proberFor(enc.Name)
		if !ok {
			survivors = append(survivors, enc)
			continue
		}

		res := prober.Scan(ctx.Data)
		coverage := res.Coverage()
		distribution := multiByteShare(res)
		score := 0.5*coverage + 0.5*distribution

		if enc.Name == "shift-jis" || enc.Name == "euc-jp" {
			score += hiraganaTieBreak(ctx, enc.Name, res.LeadHistogram)
		}

		ctx.StructScores[enc.Name] = clamp01(score)
		ctx.LeadHistograms[enc.Name] = res.LeadHistogram

		if score < structuralElimFloor {
			continue // eliminated
		}
		survivors = append(survivors, enc)
	}
	ctx.Candidates = survivors
	if len(survivors) == 0 {
		return verdict(Result{})
	}
	return narrow()
}

// multiByteShare is this module's stand-in for spec §4.10's "language-
// specific leading-byte frequency table": the fraction of validated
// characters that consumed more than one byte, since genuine CJK prose
// is dense in multi-byte characters while an accidental byte-validity
// survivor usually isn't.
func multiByteShare(res structuralsm.Result) float64 {
	total := res.ValidChars + res.InvalidChars + res.IncompleteChars
	if total == 0 {
		return 0
	}
	return float64(sumHistogram(res.LeadHistogram)) / float64(total)
}

// sumHistogram totals the lead-byte histogram's counts.
func sumHistogram(h map[byte]int) int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

func hiraganaTieBreak(ctx *Context, encodingName string, hist map[byte]int) float64 {
	score := structuralsm.HiraganaContextScore(hist, encodingName)
	total := sumHistogram(hist)
	if total == 0 {
		return 0
	}
	ratio := float64(score) / float64(total)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * hiraganaTieWeight
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
