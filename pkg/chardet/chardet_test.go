package chardet

import (
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestDetectPlainASCII(t *testing.T) {
	res, err := Detect([]byte("Hello, world!"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsDetected() {
		t.Fatalf("expected a detected result")
	}
	if res.IsBinary() {
		t.Fatalf("plain text should not be classified as binary")
	}
	if res.Encoding != "ascii" && res.Encoding != "windows-1252" {
		t.Fatalf(`expected "ascii" or "windows-1252", got %q`, res.Encoding)
	}
}

func TestDetectBinaryGuard(t *testing.T) {
	res, err := Detect([]byte{0x00, 0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsDetected() {
		t.Fatalf("expected IsDetected() false for binary input")
	}
	if !res.IsBinary() {
		t.Fatalf("expected IsBinary() true for binary input")
	}
}

func TestDetectEmptyInputIsNotDetected(t *testing.T) {
	res, err := Detect(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsDetected() || res.IsBinary() {
		t.Fatalf("expected the zero-value not-detected sentinel, got %+v", res)
	}
}

func TestDetectWithEraOption(t *testing.T) {
	data, err := charmap.Windows1251.NewEncoder().Bytes([]byte("Привет мир"))
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	res, err := Detect(data, WithEra(ModernWeb))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Encoding != "windows-1251" {
		t.Fatalf("expected windows-1251, got %q", res.Encoding)
	}
	if res.Language != "Russian" {
		t.Fatalf("expected Russian, got %q", res.Language)
	}
}

func TestDetectAllSortedByConfidence(t *testing.T) {
	data, err := charmap.Windows1251.NewEncoder().Bytes([]byte("Привет мир, это довольно длинный тестовый текст"))
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	results, err := DetectAll(data, WithEra(AllEras), WithIgnoreThreshold())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected at least one result")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Confidence > results[i-1].Confidence+EraTieBreakWindow {
			t.Fatalf("results not sorted by descending confidence at index %d: %+v", i, results)
		}
	}
}

func TestUnknownEraReturnsError(t *testing.T) {
	if _, err := Detect([]byte("hello"), WithEra(0)); err == nil {
		t.Fatalf("expected an error for Era(0)")
	}
}

func TestDefaultOptionsMatchSpec(t *testing.T) {
	o := resolveOptions(nil)
	if o.maxBytes != DefaultMaxBytes {
		t.Fatalf("expected default maxBytes %d, got %d", DefaultMaxBytes, o.maxBytes)
	}
	if o.chunkSize != DefaultChunkSize {
		t.Fatalf("expected default chunkSize %d, got %d", DefaultChunkSize, o.chunkSize)
	}
	if o.era != DefaultEra {
		t.Fatalf("expected default era %v, got %v", DefaultEra, o.era)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	o := resolveOptions([]Option{
		WithMaxBytes(1024),
		WithChunkSize(512),
		WithEra(AllEras),
		WithIgnoreThreshold(),
		WithShouldRenameLegacy(),
	})
	if o.maxBytes != 1024 || o.chunkSize != 512 || o.era != AllEras {
		t.Fatalf("option overrides did not apply: %+v", o)
	}
	if !o.ignoreThreshold || !o.shouldRenameLegacy {
		t.Fatalf("boolean option overrides did not apply: %+v", o)
	}
}

func TestStreamingDetectorFacade(t *testing.T) {
	d := NewStreamingDetector(WithEra(ModernWeb))
	if err := d.Feed([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Done() {
		t.Fatalf("expected Done() after feeding a complete BOM")
	}
	res, err := d.Close()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Encoding != "utf-8-sig" || res.Confidence != 1.0 {
		t.Fatalf("expected utf-8-sig/1.0, got %+v", res)
	}

	d.Reset()
	if d.Done() {
		t.Fatalf("expected Done() false after Reset")
	}
}
