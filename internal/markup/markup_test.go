package markup

import "testing"

func TestHasAnchorTrueForMetaCharset(t *testing.T) {
	html := []byte(`<html><head><meta charset="utf-8"></head></html>`)
	if !HasAnchor(html) {
		t.Fatalf("expected anchor match for meta charset")
	}
}

func TestHasAnchorFalseForPlainText(t *testing.T) {
	plain := []byte("just a plain sentence with no markup at all")
	if HasAnchor(plain) {
		t.Fatalf("expected no anchor match for plain text")
	}
}

func TestSniffMetaCharset(t *testing.T) {
	html := []byte(`<html><head><meta charset="windows-1252"></head><body>hi</body></html>`)
	res, found := Sniff(html)
	if !found {
		t.Fatalf("expected a markup charset to be found")
	}
	if res.Name == "" {
		t.Fatalf("expected a non-empty encoding name")
	}
}

func TestSniffHttpEquivContentType(t *testing.T) {
	html := []byte(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=ISO-8859-1"></head></html>`)
	res, found := Sniff(html)
	if !found {
		t.Fatalf("expected a markup charset to be found")
	}
	if res.Name == "" {
		t.Fatalf("expected a non-empty encoding name")
	}
}

func TestSniffNoDeclarationFound(t *testing.T) {
	html := []byte(`<html><body>no charset declared here</body></html>`)
	if _, found := Sniff(html); found {
		t.Fatalf("expected no markup charset to be found")
	}
}

func TestSniffFastSkipsPlainText(t *testing.T) {
	plain := []byte("the quick brown fox jumps over the lazy dog")
	if _, found := Sniff(plain); found {
		t.Fatalf("expected plain text with no anchors to fast-skip")
	}
}

// Plain ASCII prose that merely mentions "encoding" passes HasAnchor's
// prefilter but declares nothing; Sniff must not fabricate a verdict
// from charset.DetermineEncoding's default-guessing fallback.
func TestSniffNoFalsePositiveOnProseMentioningEncoding(t *testing.T) {
	prose := []byte("Character encoding matters.")
	if res, found := Sniff(prose); found {
		t.Fatalf("expected no markup verdict for plain prose, got %+v", res)
	}
}

func TestSniffXMLProlog(t *testing.T) {
	xml := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><root>hi</root>`)
	res, found := Sniff(xml)
	if !found {
		t.Fatalf("expected a markup charset to be found")
	}
	if res.Name != "iso-8859-1" {
		t.Fatalf("expected iso-8859-1, got %q", res.Name)
	}
}
