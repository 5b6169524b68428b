package pipeline

import "bytes"

// bomEntry is one row of spec §4.4's fixed BOM table. Longer prefixes must
// be tested before their shorter overlapping counterparts (UTF-32's
// FF FE 00 00 shares a two-byte prefix with UTF-16-LE's FF FE).
type bomEntry struct {
	prefix   []byte
	encoding string
}

var bomTable = []bomEntry{
	{[]byte{0xEF, 0xBB, 0xBF}, "utf-8-sig"},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32-le"},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32-be"},
	{[]byte{0xFF, 0xFE}, "utf-16-le"},
	{[]byte{0xFE, 0xFF}, "utf-16-be"},
}

type bomStage struct{}

func (bomStage) Name() string { return "bom" }

// Run checks data against the fixed BOM table (spec §4.4), longest prefix
// first. Any match is an immediate, maximum-confidence Verdict with no
// language (a BOM says nothing about the text's natural language).
func (bomStage) Run(ctx *Context) Outcome {
	for _, e := range bomTable {
		if bytes.HasPrefix(ctx.Data, e.prefix) {
			return verdict(Result{Encoding: e.encoding, Confidence: 1.0})
		}
	}
	return skip()
}
