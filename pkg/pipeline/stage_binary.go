package pipeline

import "bytes"

// binaryGuardWindow bounds the control-byte density scan (spec §4.7:
// "the first 64 KB").
const binaryGuardWindow = 64 * 1024

type binaryGuardStage struct{}

func (binaryGuardStage) Name() string { return "binary_guard" }

// Run classifies data as binary (spec §4.7) when a null byte survives
// past the UTF-16/32 pattern stage without being absorbed into a
// recognized pattern, or when non-text C0 control bytes exceed 5% of the
// first 64 KB. Either case short-circuits the whole pipeline with the
// zero Result marked Binary.
func (binaryGuardStage) Run(ctx *Context) Outcome {
	window := ctx.Data
	if len(window) > binaryGuardWindow {
		window = window[:binaryGuardWindow]
	}
	if len(window) == 0 {
		return skip()
	}

	if bytes.IndexByte(window, 0x00) >= 0 {
		return verdict(Result{Binary: true})
	}

	controls := 0
	for _, b := range window {
		if isNonTextControl(b) {
			controls++
		}
	}
	if float64(controls)/float64(len(window)) > 0.05 {
		return verdict(Result{Binary: true})
	}
	return skip()
}

// isNonTextControl reports whether b is a C0 control byte outside the set
// spec §4.7 explicitly carves out as text-bearing: TAB (0x09), LF (0x0A),
// FF (0x0C), CR (0x0D).
func isNonTextControl(b byte) bool {
	switch {
	case b <= 0x08:
		return true
	case b == 0x0B:
		return true
	case b >= 0x0E && b <= 0x1F:
		return true
	default:
		return false
	}
}
