package registry

import (
	"sort"
	"strings"
	"sync"
)

// byName and aliasIndex are populated once from builtin() on first use
// and never mutated again; the sync.Once guards the one-time build, not
// ongoing writes (mirrors the teacher's registry.go RWMutex, narrowed to a
// build-once contract per spec §3 "Registry entries are fixed at build
// time").
var (
	once       sync.Once
	byName     map[string]*Encoding
	aliasIndex map[string]*Encoding
	ordered    []*Encoding
)

func ensureInit() {
	once.Do(func() {
		entries := builtin()
		byName = make(map[string]*Encoding, len(entries))
		aliasIndex = make(map[string]*Encoding, len(entries)*2)
		ordered = make([]*Encoding, 0, len(entries))

		for i := range entries {
			e := &entries[i]
			e.Order = i
			byName[e.Name] = e
			for _, a := range e.Aliases {
				aliasIndex[normalize(a)] = e
			}
			ordered = append(ordered, e)
		}
	})
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve looks up an encoding by canonical name or any case-insensitive
// alias. The second return is false when the name is unknown.
func Resolve(name string) (Encoding, bool) {
	ensureInit()
	e, ok := aliasIndex[normalize(name)]
	if !ok {
		return Encoding{}, false
	}
	return *e, true
}

// IsMultibyte reports whether name resolves to a multi-byte encoding. An
// unknown name reports false.
func IsMultibyte(name string) bool {
	e, ok := Resolve(name)
	return ok && e.MultiByte
}

// CandidatesForEra returns every registered encoding whose Era bit-set
// intersects mask, in declaration order.
func CandidatesForEra(mask Era) []Encoding {
	ensureInit()
	out := make([]Encoding, 0, len(ordered))
	for _, e := range ordered {
		if e.Era&mask != 0 {
			out = append(out, *e)
		}
	}
	return out
}

// AllEncodings returns every registered encoding in declaration order.
func AllEncodings() []Encoding {
	ensureInit()
	out := make([]Encoding, len(ordered))
	for i, e := range ordered {
		out[i] = *e
	}
	return out
}

// AllAliasesFor returns the case-insensitive alias set for a canonical
// encoding name, or nil if the name is unknown.
func AllAliasesFor(name string) []string {
	ensureInit()
	e, ok := byName[normalize(name)]
	if !ok {
		return nil
	}
	out := make([]string, len(e.Aliases))
	copy(out, e.Aliases)
	return out
}

// SortByDeclarationOrder sorts encodings in place by their registration
// Order field, the stable final tie-break named in spec §4.11.
func SortByDeclarationOrder(encodings []Encoding) {
	sort.SliceStable(encodings, func(i, j int) bool {
		return encodings[i].Order < encodings[j].Order
	})
}
