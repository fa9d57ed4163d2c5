package alternatives

import (
	"strings"

	"github.com/rs/zerolog"
)

// Matcher resolves a free-text service name against the alternatives
// catalog. The lookup is purely static; the interface is kept compatible
// with a future model-backed suggester so the two can be swapped without
// touching callers.
type Matcher struct {
	entries []catalogEntry
	exact   map[string][]AlternativeDetail
	log     zerolog.Logger
}

// NewMatcher builds a matcher over the built-in catalog. The exact-match
// index is derived once; the ordered entry slice is kept for substring
// scanning.
func NewMatcher(log zerolog.Logger) *Matcher {
	exact := make(map[string][]AlternativeDetail, len(defaultCatalog))
	for _, entry := range defaultCatalog {
		exact[entry.key] = entry.alternatives
	}
	return &Matcher{
		entries: defaultCatalog,
		exact:   exact,
		log:     log,
	}
}

// Normalize lowercases and trims a service name into its canonical lookup
// key form.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the alternatives for a service name. Exact match on the
// normalized name wins; otherwise the first catalog key (in declaration
// order) that occurs as a substring of the input is used, so "icloud
// storage" resolves to "icloud". No match returns an empty slice, never an
// error.
func (m *Matcher) Lookup(name string) []AlternativeDetail {
	key := Normalize(name)

	if alts, ok := m.exact[key]; ok {
		m.log.Info().Str("service", key).Int("count", len(alts)).Msg("Exact alternatives match")
		return alts
	}

	for _, entry := range m.entries {
		if strings.Contains(key, entry.key) {
			m.log.Info().
				Str("service", key).
				Str("matched_key", entry.key).
				Int("count", len(entry.alternatives)).
				Msg("Partial alternatives match")
			return entry.alternatives
		}
	}

	m.log.Info().Str("service", key).Msg("No alternatives found")
	return []AlternativeDetail{}
}
