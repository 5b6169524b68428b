package pipeline

import (
	"github.com/chardetect/chardet-core/internal/structuralsm"
	"github.com/chardetect/chardet-core/pkg/registry"
)

// CJKMinCoverage is the minimum multi-byte structural coverage a
// candidate must clear once at least 1024 bytes have been analyzed (spec
// §4.10 / §9's Open Question; the spec takes 0.15 as a reasonable
// default and names it as a calibration constant).
const CJKMinCoverage = 0.15

// cjkMinCoverageSampleSize is the byte count spec §4.10 requires before
// the coverage floor applies ("after at least 1024 bytes").
const cjkMinCoverageSampleSize = 1024

// proberFor maps a registry encoding name to the structural prober that
// validates its multi-byte grammar. Escape-based encodings (ISO-2022-*,
// HZ-GB-2312) have no structural prober here — they're already resolved
// by the escape stage when present, and otherwise pass through this gate
// unfiltered.
func proberFor(name string) (structuralsm.Prober, bool) {
	switch name {
	case "gb2312", "gbk", "gb18030":
		return structuralsm.NewGB18030Prober(), true
	case "big5", "big5-hkscs":
		return structuralsm.NewBig5Prober(), true
	case "euc-jp":
		return structuralsm.NewEUCJPProber(), true
	case "euc-kr":
		return structuralsm.NewEUCKRProber(), true
	case "shift-jis":
		return structuralsm.NewShiftJISProber(), true
	case "cp949":
		return structuralsm.NewCP949Prober(), true
	case "johab":
		return structuralsm.NewJohabProber(), true
	default:
		return structuralsm.Prober{}, false
	}
}

type cjkGateStage struct{}

func (cjkGateStage) Name() string { return "cjk_gate" }

// Run eliminates multi-byte candidates whose structural coverage falls
// below CJKMinCoverage once enough data has been analyzed (spec §4.3 step
// 9). Single-byte candidates and multi-byte encodings with no structural
// prober pass through untouched; their scores are filled in (or skipped)
// by the structural probing stage that follows.
func (cjkGateStage) Run(ctx *Context) Outcome {
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
		ctx.StructScores[enc.Name] = res.Coverage()
		ctx.LeadHistograms[enc.Name] = res.LeadHistogram

		if len(ctx.Data) >= cjkMinCoverageSampleSize && res.Coverage() < CJKMinCoverage {
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
