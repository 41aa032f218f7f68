package ontology

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTermID indicates a term identifier string that does not
// have the prefix:digits shape.
var ErrMalformedTermID = errors.New("ontology: malformed term id")

// termIDDigits is the width of the numeric part in the canonical string
// form, e.g. GO:0000001.
const termIDDigits = 7

// TermID identifies a term: a namespace prefix plus a non-negative
// number. TermID is a small value type with equality by value, usable as
// a map key and as a graph vertex.
type TermID struct {
	// Prefix is the namespace, e.g. "GO".
	Prefix string

	// ID is the numeric part of the identifier.
	ID int32
}

// NewTermID builds a TermID from its parts.
func NewTermID(prefix string, id int32) TermID {
	return TermID{Prefix: prefix, ID: id}
}

// ParseTermID parses the canonical prefix:digits form, e.g. "GO:0000001".
// Returns ErrMalformedTermID when the colon or the numeric part is
// missing or the number is negative.
func ParseTermID(s string) (TermID, error) {
	prefix, digits, ok := strings.Cut(s, ":")
	if !ok || prefix == "" || digits == "" {
		return TermID{}, fmt.Errorf("%w: %q", ErrMalformedTermID, s)
	}
	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil || n < 0 {
		return TermID{}, fmt.Errorf("%w: %q", ErrMalformedTermID, s)
	}
	return TermID{Prefix: prefix, ID: int32(n)}, nil
}

// String renders the canonical form with the numeric part zero-padded to
// seven digits, e.g. "GO:0000001".
func (t TermID) String() string {
	return fmt.Sprintf("%s:%0*d", t.Prefix, termIDDigits, t.ID)
}

// Less imposes a total order: by prefix, then by number.
func (t TermID) Less(o TermID) bool {
	if t.Prefix != o.Prefix {
		return t.Prefix < o.Prefix
	}
	return t.ID < o.ID
}
