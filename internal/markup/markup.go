// Package markup sniffs a declared charset out of HTML <meta> tags and
// XML prologs, per spec §4.8. A multi-pattern prefilter skips the
// (common) case where no such declaration can possibly be present
// before the input is checked for an actual, located declaration.
package markup

import (
	"bytes"
	"regexp"
	"sync"

	"golang.org/x/net/html/charset"

	"github.com/coregx/ahocorasick"
)

var (
	anchorOnce sync.Once
	anchorAuto *ahocorasick.Automaton
)

// anchors are substrings that must be present for any HTML/XML charset
// declaration to exist; scanning for them with a compiled Aho-Corasick
// automaton is far cheaper than invoking the full prescanner on inputs
// that plainly carry no such declaration (same idea as
// internal/escapesm's lead-byte fast-skip, applied at pattern
// granularity instead of single bytes).
var anchorPatterns = [][]byte{
	[]byte("charset"),
	[]byte("encoding"),
	[]byte("<?xml"),
}

func automaton() *ahocorasick.Automaton {
	anchorOnce.Do(func() {
		b := ahocorasick.NewBuilder()
		for _, p := range anchorPatterns {
			b.AddPattern(p)
		}
		a, err := b.Build()
		if err != nil {
			panic("markup: building anchor automaton: " + err.Error())
		}
		anchorAuto = a
	})
	return anchorAuto
}

// HasAnchor reports whether data contains any substring that could
// introduce an HTML or XML charset declaration.
func HasAnchor(data []byte) bool {
	return automaton().IsMatch(data)
}

// Result is a markup-declared charset verdict.
type Result struct {
	Name    string // HTML: name reported by x/net/html/charset; XML: the declared name, lowercased
	Certain bool   // true when the declaration was unambiguous (e.g. explicit meta charset)
}

// xmlEncodingDecl matches the encoding pseudo-attribute of an XML
// prolog (e.g. `<?xml version="1.0" encoding="ISO-8859-1"?>`).
// x/net/html/charset has no XML-prolog equivalent of FromMeta, so the
// prolog is picked out by hand.
var xmlEncodingDecl = regexp.MustCompile(`(?i)<\?xml[^>]*\bencoding\s*=\s*["']([^"']+)["']`)

// Sniff looks for an HTML <meta charset> / http-equiv Content-Type tag
// or an XML encoding prolog in data and, if found, returns the declared
// encoding name. found is false when no charset-introducing substring
// is present at all, in which case the caller should fall through to
// the next pipeline stage without paying for a full prescan.
//
// charset.DetermineEncoding also returns a fallback *guess* (e.g.
// "windows-1252" for ASCII, "utf-8" for valid UTF-8) when no
// declaration is actually present anywhere in data, with a non-empty
// name — that would report found=true for plain prose that merely
// contains the words "charset" or "encoding" (which is exactly what
// HasAnchor's prefilter lets through). charset.FromMeta only matches a
// <meta> tag it actually locates, so it — plus the XML prolog check
// above — is used instead; DetermineEncoding's default-guessing path is
// never consulted here.
func Sniff(data []byte) (result Result, found bool) {
	if !HasAnchor(data) {
		return Result{}, false
	}
	if m := xmlEncodingDecl.FindSubmatch(data); m != nil {
		return Result{Name: string(bytes.ToLower(m[1])), Certain: true}, true
	}
	_, name := charset.FromMeta(data)
	if name == "" {
		return Result{}, false
	}
	return Result{Name: name, Certain: true}, true
}
