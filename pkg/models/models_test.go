package models

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chardetect/chardet-core/internal/bigram"
)

func TestBlobRoundTrip(t *testing.T) {
	original := []*bigram.Model{
		trainModel("English", "ascii", []byte("the quick brown fox jumps over the lazy dog")),
		trainModel("Russian", "koi8-r", []byte{0xD0, 0xD2, 0xC9, 0xD7, 0xC5, 0xD4}),
	}

	var buf bytes.Buffer
	if err := WriteBlob(&buf, original); err != nil {
		t.Fatalf("WriteBlob failed: %v", err)
	}

	decoded, err := ReadBlob(&buf)
	if err != nil {
		t.Fatalf("ReadBlob failed: %v", err)
	}
	if len(decoded) != len(original) {
		t.Fatalf("expected %d models, got %d", len(original), len(decoded))
	}
	for i, m := range decoded {
		if m.Key() != original[i].Key() {
			t.Fatalf("model %d: key mismatch %q vs %q", i, m.Key(), original[i].Key())
		}
		if m.Table != original[i].Table {
			t.Fatalf("model %d: table mismatch after round trip", i)
		}
		if m.Norm != original[i].Norm {
			t.Fatalf("model %d: norm mismatch: %v vs %v", i, m.Norm, original[i].Norm)
		}
	}
}

func TestReadBlobRejectsBadMagic(t *testing.T) {
	_, err := ReadBlob(bytes.NewReader([]byte("NOPE\x01\x00\x00\x00\x00\x00")))
	if !errors.Is(err, ErrMalformedModel) {
		t.Fatalf("expected ErrMalformedModel, got %v", err)
	}
}

func TestReadBlobRejectsBadVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.Write([]byte{0xFF, 0xFF}) // bogus version, little-endian
	buf.Write([]byte{0, 0, 0, 0}) // count = 0
	_, err := ReadBlob(&buf)
	if !errors.Is(err, ErrMalformedModel) {
		t.Fatalf("expected ErrMalformedModel, got %v", err)
	}
}

func TestStoreLookup(t *testing.T) {
	store := New([]*bigram.Model{
		trainModel("English", "ascii", []byte("hello world")),
		trainModel("English", "utf-8", []byte("hello world")),
		trainModel("Russian", "windows-1251", []byte{0xCF, 0xF0, 0xE8}),
	})

	t.Run("exact key lookup", func(t *testing.T) {
		m, ok := store.Get("English/ascii")
		if !ok {
			t.Fatalf("expected English/ascii to be present")
		}
		if m.Language != "English" {
			t.Fatalf("unexpected language %q", m.Language)
		}
	})

	t.Run("all for encoding", func(t *testing.T) {
		utf8Models := store.AllForEncoding("utf-8")
		if len(utf8Models) != 1 {
			t.Fatalf("expected 1 utf-8 model, got %d", len(utf8Models))
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		if _, ok := store.Get("Klingon/utf-8"); ok {
			t.Fatalf("expected unknown key to miss")
		}
	})
}

func TestDefaultStoreIsPopulatedAndStable(t *testing.T) {
	s1, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1.Len() == 0 {
		t.Fatalf("expected built-in default store to be non-empty")
	}
	s2, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("expected Default() to return the same instance on repeated calls")
	}
}

func TestBuiltinModelsCoverKeyLanguages(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"Russian/windows-1251", "Japanese/euc-jp", "Greek/iso-8859-7"} {
		if _, ok := s.Get(key); !ok {
			t.Fatalf("expected built-in store to contain %q", key)
		}
	}
}
