// Package decode is the concrete realization of spec.md's abstract "host
// decoder": a single TryDecode function that tells the byte-validity
// filter (spec §4.9) and the structural probing stage (spec §4.10) whether
// a candidate encoding accepts a byte prefix, and if not, where it first
// failed. All encoding-specific decode knowledge lives here; every other
// package treats decoding as opaque (spec §9's design note).
package decode

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Result is the outcome of a TryDecode call: either the whole prefix
// decoded cleanly, or it failed at ErrAt (the first offending byte
// offset).
type Result struct {
	OK    bool
	ErrAt int
}

// codecs maps a registry DecoderID to a golang.org/x/text/encoding.Encoding.
// Populated once; golang.org/x/text's tables are themselves immutable.
var codecs = map[string]encoding.Encoding{
	"windows-1252": charmap.Windows1252,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"windows-1253": charmap.Windows1253,
	"windows-1254": charmap.Windows1254,
	"windows-1255": charmap.Windows1255,
	"windows-1256": charmap.Windows1256,
	"windows-1257": charmap.Windows1257,
	"windows-1258": charmap.Windows1258,
	"windows-874":  charmap.Windows874,

	"iso-8859-1":  charmap.ISO8859_1,
	"iso-8859-2":  charmap.ISO8859_2,
	"iso-8859-3":  charmap.ISO8859_3,
	"iso-8859-4":  charmap.ISO8859_4,
	"iso-8859-5":  charmap.ISO8859_5,
	"iso-8859-6":  charmap.ISO8859_6,
	"iso-8859-7":  charmap.ISO8859_7,
	"iso-8859-8":  charmap.ISO8859_8,
	"iso-8859-9":  charmap.ISO8859_9,
	"iso-8859-10": charmap.ISO8859_10,
	"iso-8859-13": charmap.ISO8859_13,
	"iso-8859-14": charmap.ISO8859_14,
	"iso-8859-15": charmap.ISO8859_15,
	"iso-8859-16": charmap.ISO8859_16,
	"tis-620":     charmap.Windows874, // closest table x/text ships

	"koi8-r": charmap.KOI8R,
	"koi8-u": charmap.KOI8U,

	"macintosh":      charmap.Macintosh,
	"x-mac-cyrillic": charmap.MacintoshCyrillic,

	"ibm437": charmap.CodePage437,
	"ibm850": charmap.CodePage850,
	"ibm852": charmap.CodePage852,
	"ibm855": charmap.CodePage855,
	"ibm858": charmap.CodePage858,
	"ibm860": charmap.CodePage860,
	"ibm862": charmap.CodePage862,
	"ibm863": charmap.CodePage863,
	"ibm865": charmap.CodePage865,
	"ibm866": charmap.CodePage866,

	"ibm037":  charmap.CodePage037,
	"ibm1047": charmap.CodePage1047,
	"ibm1140": charmap.CodePage1140,

	"shift-jis":   japanese.ShiftJIS,
	"euc-jp":      japanese.EUCJP,
	"iso-2022-jp": japanese.ISO2022JP,

	"euc-kr": korean.EUCKR,

	"gbk":        simplifiedchinese.GBK,
	"gb18030":    simplifiedchinese.GB18030,
	"hz-gb-2312": simplifiedchinese.HZGB2312,

	"big5": traditionalchinese.Big5,
}

// Lookup resolves a registry DecoderID into the codec TryDecode will use.
// The special ids "ascii", "utf-8", "utf-16", "utf-16le", "utf-16be",
// "utf-32", "utf-32le", and "utf-32be" are handled directly by TryDecode
// without consulting this table (they have no golang.org/x/text codec
// that matches spec.md's exact byte-level semantics for those forms).
func Lookup(decoderID string) (encoding.Encoding, bool) {
	c, ok := codecs[decoderID]
	return c, ok
}

// TryDecode attempts to decode the entirety of data as decoderID. It never
// returns an error: decode failure is reported through Result, exactly as
// spec §4.9 and §7 (DecodeFailure) require — "all internal decoder calls
// capture and classify errors by kind without propagating them upward."
func TryDecode(data []byte, decoderID string) Result {
	switch decoderID {
	case "ascii":
		return tryDecodeASCII(data)
	case "utf-8":
		return tryDecodeUTF8(data)
	case "utf-16le":
		return tryDecodeUTF16(data, false)
	case "utf-16be":
		return tryDecodeUTF16(data, true)
	case "utf-16":
		// Without a BOM, UTF-16 has no canonical byte order; the
		// byte-validity filter reaches this id only after the BOM and
		// UTF-16/32 pattern stages found nothing, and bare "utf-16" (like
		// bare "utf-32" below) is decoded as little-endian.
		return tryDecodeUTF16(data, false)
	case "utf-32le":
		return tryDecodeUTF32(data, false)
	case "utf-32be":
		return tryDecodeUTF32(data, true)
	case "utf-32":
		return tryDecodeUTF32(data, false)
	}

	codec, ok := codecs[decoderID]
	if !ok {
		return Result{OK: false, ErrAt: 0}
	}
	return tryDecodeCharmap(data, codec)
}

func tryDecodeASCII(data []byte) Result {
	for i, b := range data {
		if b >= 0x80 {
			return Result{OK: false, ErrAt: i}
		}
	}
	return Result{OK: true}
}

func tryDecodeUTF8(data []byte) Result {
	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return Result{OK: false, ErrAt: i}
		}
		i += size
	}
	return Result{OK: true}
}

func tryDecodeUTF16(data []byte, be bool) Result {
	if len(data)%2 != 0 {
		return Result{OK: false, ErrAt: len(data) - 1}
	}
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		if be {
			units = append(units, uint16(data[i])<<8|uint16(data[i+1]))
		} else {
			units = append(units, uint16(data[i+1])<<8|uint16(data[i]))
		}
	}
	for i, r := range utf16.Decode(units) {
		if r == utf8.RuneError {
			return Result{OK: false, ErrAt: i * 2}
		}
	}
	return Result{OK: true}
}

func tryDecodeUTF32(data []byte, be bool) Result {
	if len(data)%4 != 0 {
		return Result{OK: false, ErrAt: (len(data) / 4) * 4}
	}
	for i := 0; i+3 < len(data); i += 4 {
		var v uint32
		if be {
			v = uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
		} else {
			v = uint32(data[i+3])<<24 | uint32(data[i+2])<<16 | uint32(data[i+1])<<8 | uint32(data[i])
		}
		if v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
			return Result{OK: false, ErrAt: i}
		}
	}
	return Result{OK: true}
}

// tryDecodeCharmap round-trips data through a golang.org/x/text/encoding
// codec's decoder. x/text decoders replace invalid input with
// utf8.RuneError rather than erroring, so validity here means "every byte
// mapped to a defined code point" — computed by checking the decoder's
// NewDecoder().Bytes result for a RuneError. ErrAt is the number of runes
// decoded before the first RuneError, which equals the input byte offset
// for single-byte codecs only.
func tryDecodeCharmap(data []byte, codec encoding.Encoding) Result {
	dec := codec.NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return Result{OK: false, ErrAt: len(out)}
	}
	if i := bytes.IndexRune(out, utf8.RuneError); i >= 0 {
		return Result{OK: false, ErrAt: utf8.RuneCount(out[:i])}
	}
	return Result{OK: true}
}
