package domain

// Literal is a word-form identity: the headword of one dump article.
// It owns its lexical entries exclusively. Anagrams hold raw target labels
// until the cross-reference linker resolves them.
type Literal struct {
	ID            string
	Label         string
	Pronunciation *string
	Etymology     *string
	Anagrams      []string
	Entries       []*LexicalEntry
}

// LexicalEntry is one part-of-speech occurrence of a literal. A literal may
// carry several entries, including several of the same class.
type LexicalEntry struct {
	ID            string
	Class         WordClass
	ClassAbbrev   string
	Genders       []Gender
	Numbers       []Number
	Pronunciation *string
	Senses        []*LexicalSense

	// Links maps a relation kind to raw target labels collected from
	// cross-reference sub-sections. Resolved (or dropped) by the linker.
	Links map[RelationKind][]string

	// Inflections are facts of the form "this entry is the <kind> form of
	// <target label>", from verbal inflection tables and retracted
	// agreement senses.
	Inflections []Inflection
}

// Inflection is a provisional inflection edge with an unresolved target label.
type Inflection struct {
	Kind   InflectionKind
	Target string
}

// LexicalSense is one definition of an entry, with its usage examples and
// precision tags. DependsOn indexes the preceding sense within the same
// entry when this sense refines it; -1 means no dependency.
type LexicalSense struct {
	ID         string
	Definition string
	Examples   []string
	Precisions []string
	DependsOn  int
}

// AddLink records a raw cross-reference target on the entry.
func (e *LexicalEntry) AddLink(kind RelationKind, target string) {
	if e.Links == nil {
		e.Links = make(map[RelationKind][]string)
	}
	e.Links[kind] = append(e.Links[kind], target)
}

// InheritPronunciation adopts the literal's pronunciation for every entry
// that has no override of its own. Idempotent.
func (l *Literal) InheritPronunciation() {
	if l.Pronunciation == nil {
		return
	}
	for _, e := range l.Entries {
		if e.Pronunciation == nil {
			p := *l.Pronunciation
			e.Pronunciation = &p
		}
	}
}
