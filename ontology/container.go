package ontology

// TermMap is the read view of a term catalog. Parsers implement it (or
// hand their terms to NewTermContainer) and Create consumes it.
type TermMap interface {
	// Get returns the term with the given primary identifier, or nil.
	Get(id TermID) *Term

	// Terms returns all terms. The slice must not be mutated and its
	// order must be stable across calls.
	Terms() []*Term

	// Len returns the number of terms.
	Len() int
}

// TermContainer is the canonical TermMap: a slice preserving the input
// order plus an identifier index. When the input contains several terms
// with the same primary identifier, the first one wins.
type TermContainer struct {
	terms []*Term
	byID  map[TermID]*Term
}

// NewTermContainer indexes the given terms. Nil entries are skipped.
func NewTermContainer(terms []*Term) *TermContainer {
	c := &TermContainer{
		terms: make([]*Term, 0, len(terms)),
		byID:  make(map[TermID]*Term, len(terms)),
	}
	for _, t := range terms {
		if t == nil {
			continue
		}
		if _, ok := c.byID[t.ID]; ok {
			continue
		}
		c.terms = append(c.terms, t)
		c.byID[t.ID] = t
	}
	return c
}

// Get returns the term with the given primary identifier, or nil.
func (c *TermContainer) Get(id TermID) *Term { return c.byID[id] }

// Terms returns all terms in input order. The slice is shared and must
// be treated as read-only.
func (c *TermContainer) Terms() []*Term { return c.terms }

// Len returns the number of terms.
func (c *TermContainer) Len() int { return len(c.terms) }
