// Package escapesm runs the three 7-bit escape-sequence state machines
// spec §4.6 describes: ISO-2022-JP, ISO-2022-KR, and HZ-GB-2312. Each
// machine has a SEARCHING start state, an ITS_ME accept state reached
// only by a sequence unique to that encoding, and an ERROR state.
package escapesm

// State is a coding-state-machine state (spec glossary: "Coding state
// machine").
type State int

const (
	Searching State = iota
	ItsMe
	Error
)

// Match is the result of running all three machines against a prefix.
type Match struct {
	Encoding string // "iso-2022-jp", "iso-2022-kr", or "hz-gb-2312"
	AtOffset int    // byte offset one past the end of the matched sequence
}

// leadBytes are the first byte of every escape this package recognizes;
// used to fast-skip inputs that can't possibly match any machine before
// running the full automata (see internal/markup for the same idea
// applied to HTML/XML charset anchors, both grounded on
// github.com/coregx/ahocorasick's multi-pattern scan).
var leadBytes = [256]bool{0x1B: true, '~': true}

// Detect runs the three escape state machines over data and returns the
// first ITS_ME verdict encountered, scanning byte-by-byte so the winner
// is whichever sequence completes earliest in the stream (spec §4.6: "On
// first ITS_ME: Verdict").
func Detect(data []byte) (Match, bool) {
	hasLead := false
	for _, b := range data {
		if leadBytes[b] {
			hasLead = true
			break
		}
	}
	if !hasLead {
		return Match{}, false
	}

	jp := newISO2022JP()
	kr := newISO2022KR()
	hz := newHZGB2312()

	machines := []*machine{jp, kr, hz}

	for i, b := range data {
		allError := true
		for _, m := range machines {
			if m.state == Error {
				continue
			}
			m.step(b)
			if m.state == ItsMe {
				return Match{Encoding: m.encoding, AtOffset: i + 1}, true
			}
			if m.state != Error {
				allError = false
			}
		}
		// None of the three step functions below ever assign Error: a
		// byte that breaks a candidate sequence resets seq and leaves
		// the machine in Searching, on the chance a fresh escape starts
		// right there. So allError never actually goes true here — the
		// "all machines ERROR => Skip" exit (spec §4.6) is reachable
		// only in principle, pending a machine that can actually latch
		// into Error on an unrecoverable byte.
		if allError {
			return Match{}, false
		}
	}
	return Match{}, false
}

// machine is a small hand-rolled transition-table automaton; spec.md's
// three escape grammars are fixed, short literal sequences, not general
// regular languages, so a bespoke switch-driven automaton (in the
// teacher's sniffBOM/looksLikeUTF16NoBOM style) is the right tool rather
// than pulling in coregx-coregex's general-purpose NFA/DFA machinery.
type machine struct {
	encoding string
	state    State
	step     func(b byte)
	pos      int // internal sub-state position within the current candidate sequence
}

func newISO2022JP() *machine {
	m := &machine{encoding: "iso-2022-jp", state: Searching}
	// Sequences that identify ISO-2022-JP: ESC ( B/J (ASCII/Roman), ESC $ @/B
	// (JIS X 0208), ESC $ ( D (JIS X 0212), ESC ( I (half-width katakana).
	var seq []byte
	m.step = func(b byte) {
		seq = append(seq, b)
		if len(seq) == 1 {
			if b != 0x1B {
				seq = seq[:0]
			}
			return
		}
		if len(seq) == 2 {
			switch b {
			case '(', '$':
				return
			default:
				seq = seq[:0]
				m.state = Searching
			}
			return
		}
		if len(seq) == 3 {
			prev := seq[1]
			switch {
			case prev == '(' && (b == 'B' || b == 'J' || b == 'I'):
				m.state = ItsMe
			case prev == '$' && (b == '@' || b == 'B'):
				m.state = ItsMe
			case prev == '$' && b == '(':
				return // need a 4th byte (D)
			default:
				seq = seq[:0]
			}
			return
		}
		if len(seq) == 4 {
			if seq[1] == '$' && seq[2] == '(' && b == 'D' {
				m.state = ItsMe
				return
			}
			seq = seq[:0]
		}
	}
	return m
}

func newISO2022KR() *machine {
	m := &machine{encoding: "iso-2022-kr", state: Searching}
	// ISO-2022-KR identifies itself with ESC $ ) C, typically once near
	// the start of the stream.
	var seq []byte
	m.step = func(b byte) {
		seq = append(seq, b)
		switch len(seq) {
		case 1:
			if b != 0x1B {
				seq = seq[:0]
			}
		case 2:
			if b != '$' {
				seq = seq[:0]
			}
		case 3:
			if b != ')' {
				seq = seq[:0]
			}
		case 4:
			if b == 'C' {
				m.state = ItsMe
			} else {
				seq = seq[:0]
			}
		}
	}
	return m
}

func newHZGB2312() *machine {
	m := &machine{encoding: "hz-gb-2312", state: Searching}
	// HZ's shift-in sequence is "~{" (enter GB2312 two-byte mode); "~~"
	// is an escaped literal tilde and must not trigger a false match.
	var seq []byte
	m.step = func(b byte) {
		seq = append(seq, b)
		switch len(seq) {
		case 1:
			if b != '~' {
				seq = seq[:0]
			}
		case 2:
			if b == '{' {
				m.state = ItsMe
			} else {
				seq = seq[:0]
			}
		}
	}
	return m
}
