package ontology

// RelationMeaning is the coarse category a relation kind maps to. A
// filtered walk follows only edges whose relation meaning is in the
// caller's allow-set.
type RelationMeaning uint8

// Coarse relation meanings.
const (
	MeaningUnknown RelationMeaning = iota
	MeaningIsA
	MeaningPartOf
	MeaningRegulates
)

// String returns the snake_case name of the meaning.
func (m RelationMeaning) String() string {
	switch m {
	case MeaningIsA:
		return "is_a"
	case MeaningPartOf:
		return "part_of"
	case MeaningRegulates:
		return "regulates"
	default:
		return "unknown"
	}
}

// RelationType is the concrete kind of a declared parent relation. The
// zero value is RelationUnknown, so zero-valued edge payloads (synthetic
// root edges, transitive-closure edges) read as unknown relations.
type RelationType uint8

// Relation kinds of the ontology vocabulary.
const (
	RelationUnknown RelationType = iota
	RelationIsA
	RelationPartOf
	RelationRegulates
	RelationPositivelyRegulates
	RelationNegativelyRegulates
)

// Meaning maps the relation kind to its coarse category.
func (r RelationType) Meaning() RelationMeaning {
	switch r {
	case RelationIsA:
		return MeaningIsA
	case RelationPartOf:
		return MeaningPartOf
	case RelationRegulates, RelationPositivelyRegulates, RelationNegativelyRegulates:
		return MeaningRegulates
	default:
		return MeaningUnknown
	}
}

// String returns the snake_case name of the relation kind.
func (r RelationType) String() string {
	switch r {
	case RelationIsA:
		return "is_a"
	case RelationPartOf:
		return "part_of"
	case RelationRegulates:
		return "regulates"
	case RelationPositivelyRegulates:
		return "positively_regulates"
	case RelationNegativelyRegulates:
		return "negatively_regulates"
	default:
		return "unknown"
	}
}

// ParseRelationType maps a snake_case relation name to its kind. Unknown
// names yield RelationUnknown; catalogs produced by external parsers may
// carry relation kinds this vocabulary does not model.
func ParseRelationType(s string) RelationType {
	switch s {
	case "is_a":
		return RelationIsA
	case "part_of":
		return RelationPartOf
	case "regulates":
		return RelationRegulates
	case "positively_regulates":
		return RelationPositivelyRegulates
	case "negatively_regulates":
		return RelationNegativelyRegulates
	default:
		return RelationUnknown
	}
}
