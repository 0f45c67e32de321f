package lexicon

// Relation is a typed edge from an assembled node to another node in the
// graph, excluding the structural ownership edges.
type Relation struct {
	Name     string
	TargetID string
}

// LiteralView is a fully assembled literal: the written form together with
// its lexical entries, senses, and outgoing relations.
type LiteralView struct {
	ID            string
	Label         string
	Pronunciation string
	Etymology     string
	Relations     []Relation
	Entries       []EntryView
}

// EntryView is one part-of-speech reading of a literal. Class is the word
// class the entry node is typed with (CommonNoun, Verb, ...).
type EntryView struct {
	ID            string
	Class         string
	Pronunciation string
	Genders       []string
	Numbers       []string
	Relations     []Relation
	Senses        []SenseView
}

// SenseView is one definition of an entry. DependsOn names the sense this
// one refines, when the definition opened with a relationship precision.
type SenseView struct {
	ID         string
	Definition string
	Examples   []string
	Precisions []string
	DependsOn  string
}
