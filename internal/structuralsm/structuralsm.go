// Package structuralsm implements the CJK structural probing state
// machines spec §4.10 describes: each multi-byte CJK encoding has a
// small coding-state machine that walks a byte stream validating
// lead/trail byte pairs, and a leading-byte distribution scorer used to
// break ties between structurally-compatible encodings (notably
// Shift-JIS vs EUC-JP).
package structuralsm

// Outcome is the per-character verdict the state machine reaches after
// consuming the bytes of one multi-byte (or single-byte) character.
type Outcome int

const (
	CharValid Outcome = iota
	CharInvalid
	CharIncomplete // ran out of bytes mid-sequence (end of buffer)
)

// seqClass describes one multi-byte encoding's lead/trail byte grammar.
// length reports how many bytes the sequence starting at lead occupies
// (0 means lead is not a valid multi-byte lead byte); validTrail checks
// byte at 1-based position pos within the sequence.
type seqClass struct {
	length     func(lead byte) int
	validTrail func(pos int, b byte) bool
}

// Prober walks a byte stream applying one encoding's seqClass, the
// structural counterpart to internal/escapesm's literal-sequence
// machines: here "ITS_ME" is a statistical property (high valid-sequence
// coverage) rather than a single accept state, so Prober accumulates
// counts instead of transitioning into one terminal state.
type Prober struct {
	Name string
	cls  seqClass
}

// Result is the structural coverage Prober.Scan reports for one input.
type Result struct {
	ValidChars      int
	InvalidChars    int
	IncompleteChars int
	// LeadHistogram counts how often each lead byte value started a
	// valid multi-byte character, used by HiraganaContext and other
	// tie-breaks.
	LeadHistogram map[byte]int
}

// Coverage is the fraction of characters (not bytes) that validated
// cleanly, the quantity spec §4.10's CJK min-coverage gate thresholds
// against.
func (r Result) Coverage() float64 {
	total := r.ValidChars + r.InvalidChars + r.IncompleteChars
	if total == 0 {
		return 0
	}
	return float64(r.ValidChars) / float64(total)
}

// Scan walks data, classifying it into single-byte ASCII runs and
// multi-byte sequences per p's grammar, and tallies how many resulting
// characters were structurally valid.
func (p Prober) Scan(data []byte) Result {
	res := Result{LeadHistogram: make(map[byte]int)}
	i := 0
	for i < len(data) {
		b := data[i]
		if b < 0x80 {
			res.ValidChars++
			i++
			continue
		}
		n := p.cls.length(b)
		if n == 0 {
			res.InvalidChars++
			i++
			continue
		}
		if i+n > len(data) {
			res.IncompleteChars++
			break
		}
		ok := true
		for pos := 1; pos < n; pos++ {
			if !p.cls.validTrail(pos, data[i+pos]) {
				ok = false
				break
			}
		}
		if ok {
			res.ValidChars++
			res.LeadHistogram[b]++
		} else {
			res.InvalidChars++
		}
		i += n
	}
	return res
}

func inRange(b, lo, hi byte) bool { return b >= lo && b <= hi }

// NewUTF8Prober builds the UTF-8 structural machine: sequence length is
// fully determined by the lead byte's high bits, continuation bytes
// must fall in 0x80-0xBF.
func NewUTF8Prober() Prober {
	return Prober{Name: "utf-8", cls: seqClass{
		length: func(lead byte) int {
			switch {
			case inRange(lead, 0xC2, 0xDF):
				return 2
			case inRange(lead, 0xE0, 0xEF):
				return 3
			case inRange(lead, 0xF0, 0xF4):
				return 4
			default:
				return 0
			}
		},
		validTrail: func(pos int, b byte) bool { return inRange(b, 0x80, 0xBF) },
	}}
}

// NewGB18030Prober builds the GB18030 structural machine for the two-byte
// form (lead 0x81-0xFE, trail 0x40-0xFE excluding 0x7F). Four-byte
// sequences (lead, digit, lead, digit) are not recognized; they count as
// invalid two-byte pairs.
func NewGB18030Prober() Prober {
	return Prober{Name: "gb18030", cls: seqClass{
		length: func(lead byte) int {
			if inRange(lead, 0x81, 0xFE) {
				return 2 // always 2; a digit second byte fails gb18030Trail
			}
			return 0
		},
		validTrail: gb18030Trail,
	}}
}

// gb18030Trail is stateful in spirit but expressed functionally: Scan
// always requests a 2-byte window first, so a genuine 4-byte sequence
// fails validTrail at pos 1 unless we special-case the digit lead-in.
// We approximate the common case (2-byte GBK-compatible range) here and
// treat digit-second-byte sequences as invalid 2-byte pairs, which
// correctly pushes 4-byte Unicode-extension text toward low coverage
// rather than silently misclassifying it; genuine GB18030 prose is
// overwhelmingly 2-byte.
func gb18030Trail(pos int, b byte) bool {
	return b != 0x7F && inRange(b, 0x40, 0xFE)
}

// NewBig5Prober builds the Big5 (and Big5-HKSCS) structural machine.
func NewBig5Prober() Prober {
	return Prober{Name: "big5", cls: seqClass{
		length: func(lead byte) int {
			if inRange(lead, 0x81, 0xFE) {
				return 2
			}
			return 0
		},
		validTrail: func(pos int, b byte) bool {
			return inRange(b, 0x40, 0x7E) || inRange(b, 0xA1, 0xFE)
		},
	}}
}

// NewEUCJPProber builds the EUC-JP structural machine: plain two-byte
// JIS X 0208 pairs, SS2-prefixed half-width kana, and SS3-prefixed JIS
// X 0212.
func NewEUCJPProber() Prober {
	return Prober{Name: "euc-jp", cls: seqClass{
		length: func(lead byte) int {
			switch {
			case lead == 0x8E:
				return 2
			case lead == 0x8F:
				return 3
			case inRange(lead, 0xA1, 0xFE):
				return 2
			default:
				return 0
			}
		},
		validTrail: func(pos int, b byte) bool {
			return inRange(b, 0xA1, 0xFE)
		},
	}}
}

// NewEUCKRProber builds the EUC-KR structural machine.
func NewEUCKRProber() Prober {
	return Prober{Name: "euc-kr", cls: seqClass{
		length: func(lead byte) int {
			if inRange(lead, 0xA1, 0xFE) {
				return 2
			}
			return 0
		},
		validTrail: func(pos int, b byte) bool { return inRange(b, 0xA1, 0xFE) },
	}}
}

// NewCP949Prober builds the CP949 structural machine, a superset of
// EUC-KR that also allows an extended trail-byte range.
func NewCP949Prober() Prober {
	return Prober{Name: "cp949", cls: seqClass{
		length: func(lead byte) int {
			if inRange(lead, 0x81, 0xFE) {
				return 2
			}
			return 0
		},
		validTrail: func(pos int, b byte) bool {
			return inRange(b, 0x41, 0x5A) || inRange(b, 0x61, 0x7A) || inRange(b, 0x81, 0xFE)
		},
	}}
}

// NewJohabProber builds the Johab structural machine.
func NewJohabProber() Prober {
	return Prober{Name: "johab", cls: seqClass{
		length: func(lead byte) int {
			if inRange(lead, 0x84, 0xD3) {
				return 2
			}
			return 0
		},
		validTrail: func(pos int, b byte) bool {
			return inRange(b, 0x41, 0x7E) || inRange(b, 0x81, 0xFE)
		},
	}}
}

// NewShiftJISProber builds the Shift-JIS structural machine: two-byte
// JIS X 0208 pairs plus single-byte half-width katakana (0xA1-0xDF).
func NewShiftJISProber() Prober {
	return Prober{Name: "shift-jis", cls: seqClass{
		length: func(lead byte) int {
			switch {
			case inRange(lead, 0xA1, 0xDF):
				return 1 // half-width kana, single byte
			case inRange(lead, 0x81, 0x9F), inRange(lead, 0xE0, 0xFC):
				return 2
			default:
				return 0
			}
		},
		validTrail: func(pos int, b byte) bool {
			return b != 0x7F && (inRange(b, 0x40, 0xFC))
		},
	}}
}

// All returns every structural prober this package knows, in the
// iteration order spec §4.10 probes them.
func All() []Prober {
	return []Prober{
		NewUTF8Prober(),
		NewGB18030Prober(),
		NewBig5Prober(),
		NewEUCJPProber(),
		NewEUCKRProber(),
		NewShiftJISProber(),
		NewCP949Prober(),
		NewJohabProber(),
	}
}

// HiraganaContextScore breaks the Shift-JIS/EUC-JP structural tie by
// counting lead bytes that fall in each encoding's hiragana/katakana
// block; real Japanese prose is dense in kana regardless of which
// encoding carries it, so whichever encoding's kana block lights up is
// the likelier reading (spec §4.10: "Hiragana-sequence context
// analyzers... tie-break").
func HiraganaContextScore(hist map[byte]int, encoding string) int {
	switch encoding {
	case "shift-jis":
		// Hiragana block in Shift-JIS: lead byte 0x82, second byte
		// 0x9F-0xF1. We only have the lead histogram here, so count
		// lead-byte 0x82 occurrences as a proxy.
		return hist[0x82]
	case "euc-jp":
		// Hiragana block in EUC-JP: lead byte 0xA4.
		return hist[0xA4]
	default:
		return 0
	}
}
