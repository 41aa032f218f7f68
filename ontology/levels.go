package ontology

// TermLevels holds the level (length of the longest path from the root)
// of a set of terms, queryable in both directions: term→level and
// level→terms.
type TermLevels struct {
	termToLevel  map[TermID]int
	levelToTerms map[int]map[TermID]struct{}
	maxLevel     int
}

func newTermLevels() *TermLevels {
	return &TermLevels{
		termToLevel:  make(map[TermID]int),
		levelToTerms: make(map[int]map[TermID]struct{}),
		maxLevel:     -1,
	}
}

func (l *TermLevels) putLevel(id TermID, level int) {
	l.termToLevel[id] = level
	set, ok := l.levelToTerms[level]
	if !ok {
		set = make(map[TermID]struct{})
		l.levelToTerms[level] = set
	}
	set[id] = struct{}{}
	if level > l.maxLevel {
		l.maxLevel = level
	}
}

// TermLevel returns the level of the term, or -1 when the term was not
// part of the query.
func (l *TermLevels) TermLevel(id TermID) int {
	if lvl, ok := l.termToLevel[id]; ok {
		return lvl
	}
	return -1
}

// LevelTermSet returns the terms sitting at the given level, or nil when
// the level is empty. The map is shared and must be treated as read-only.
func (l *TermLevels) LevelTermSet(level int) map[TermID]struct{} {
	return l.levelToTerms[level]
}

// MaxLevel returns the largest recorded level, or -1 when no term was
// recorded.
func (l *TermLevels) MaxLevel() int { return l.maxLevel }

// Len returns the number of terms with a recorded level.
func (l *TermLevels) Len() int { return len(l.termToLevel) }
