package ontology

// KeyExtractor derives the keys a term should be reachable under in a
// TermPropertyMap, e.g. its alternate identifiers or its synonyms.
type KeyExtractor[K comparable] func(t *Term) []K

// AltIDKeys extracts a term's alternate identifiers. It is the extractor
// behind alternate-identifier resolution.
func AltIDKeys(t *Term) []TermID { return t.Alternatives }

// TermPropertyMap maps term properties of type K back to the primary
// identifier of the term carrying them. When two distinct terms claim
// the same key, the first term (in catalog order) wins and the conflict
// is counted as an ambiguity; the same term claiming a key twice is not
// ambiguous.
type TermPropertyMap[K comparable] struct {
	keys        map[K]TermID
	ambiguities int
}

// NewTermPropertyMap builds the key index over all terms of tm.
// Complexity: O(total number of extracted keys).
func NewTermPropertyMap[K comparable](tm TermMap, extract KeyExtractor[K]) *TermPropertyMap[K] {
	m := &TermPropertyMap[K]{keys: make(map[K]TermID)}
	for _, t := range tm.Terms() {
		for _, k := range extract(t) {
			if prev, ok := m.keys[k]; ok {
				if prev != t.ID {
					m.ambiguities++
				}
				continue
			}
			m.keys[k] = t.ID
		}
	}
	return m
}

// Get returns the primary identifier of the term owning the key, or
// false when no term claims it.
func (m *TermPropertyMap[K]) Get(key K) (TermID, bool) {
	id, ok := m.keys[key]
	return id, ok
}

// Len returns the number of distinct keys in the map.
func (m *TermPropertyMap[K]) Len() int { return len(m.keys) }

// Ambiguities returns how many extracted keys were dropped because a
// different term had already claimed them.
func (m *TermPropertyMap[K]) Ambiguities() int { return m.ambiguities }
