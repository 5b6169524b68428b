// Package models is the immutable Model Store (spec §4.2): a catalog of
// bigram profiles keyed by "language/encoding". The process-wide default
// is built lazily from the built-in profile set and materialized once
// behind a double-checked lock so that the hot path after first use costs
// nothing but an atomic load (spec §5, §9's design note); LoadFile reads a
// packed models.bin blob into a separate Store.
package models

import (
	"sync"

	"github.com/chardetect/chardet-core/internal/bigram"
)

// Store is an immutable-after-construction catalog of bigram profiles.
// Construct one via ReadBlob plus New, LoadFile, or New, or use Default() for the
// process-wide lazily-initialized instance the pipeline stages consult.
type Store struct {
	byKey      map[string]*bigram.Model
	byEncoding map[string][]*bigram.Model
	utf8Langs  []*bigram.Model
}

// New builds a Store from an already-materialized slice of models. The
// slice becomes immutable from the Store's perspective: callers must not
// mutate the underlying Model values after passing them in.
func New(all []*bigram.Model) *Store {
	s := &Store{
		byKey:      make(map[string]*bigram.Model, len(all)),
		byEncoding: make(map[string][]*bigram.Model),
	}
	for _, m := range all {
		s.byKey[m.Key()] = m
		s.byEncoding[m.Encoding] = append(s.byEncoding[m.Encoding], m)
		if m.Encoding == "utf-8" {
			s.utf8Langs = append(s.utf8Langs, m)
		}
	}
	return s
}

// Get returns the profile for an exact "language/encoding" key.
func (s *Store) Get(key string) (*bigram.Model, bool) {
	m, ok := s.byKey[key]
	return m, ok
}

// AllForEncoding returns every profile trained for the given encoding
// name, in no particular order (callers needing determinism should sort
// by Model.Language themselves).
func (s *Store) AllForEncoding(encodingName string) []*bigram.Model {
	return s.byEncoding[encodingName]
}

// AllUTF8LanguageProfiles returns every per-language UTF-8 profile, used
// by the tier-3 language fallback (spec §4.12).
func (s *Store) AllUTF8LanguageProfiles() []*bigram.Model {
	return s.utf8Langs
}

// Len reports how many profiles the store holds.
func (s *Store) Len() int { return len(s.byKey) }

// --- process-wide default instance -----------------------------------

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the process-wide Store, built once from the built-in
// profile set (see builtin.go). Subsequent calls are a single unlocked
// read of the already-published pointer (spec §5's double-checked lock
// contract). Default reads no blob, so building it cannot fail and the
// returned error is always nil; ErrMalformedModel comes only from
// ReadBlob and LoadFile.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = New(builtinModels()), nil
	})
	return defaultStore, defaultErr
}
