package article

import (
	"log/slog"

	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/heartmarshall/flont-backend/internal/wikitext"
)

// parseEntry builds a lexical entry from one part-of-speech section. The
// section head carries the grammatical traits, the pronunciation override,
// verbal inflection facts and the definition list; depth-4 sub-sections carry
// cross-references. Anagram sub-sections are returned separately: anagrams
// relate labels rather than entries, so they belong to the enclosing literal
// even when filed under a part of speech.
func parseEntry(log *slog.Logger, pos posInfo, section wikitext.Section) (*domain.LexicalEntry, []string) {
	entry := &domain.LexicalEntry{
		Class:       pos.Class,
		ClassAbbrev: pos.Abbrev,
	}

	head := wikitext.Head(section.Body)
	if p, ok := wikitext.Pronunciation(head); ok {
		entry.Pronunciation = &p
	}
	parseTraits(entry, head)
	parseVerbalInflections(entry, head)

	senses, edges := retractAgreements(segmentSenses(head))
	entry.Senses = senses
	entry.Inflections = append(entry.Inflections, edges...)

	var anagrams []string
	for _, sub := range wikitext.Sections(section.Body, 4) {
		token := ParseSectionTitle(sub.Title)
		if _, skip := entryIgnore[token]; skip {
			continue
		}
		category := Classify(token)
		if category.Kind == CategoryAnagrams {
			anagrams = append(anagrams, wikitext.LinkTargets(sub.Body)...)
			continue
		}
		if !parseEntrySubsection(entry, category, sub) {
			log.Warn("unhandled entry sub-section", "category", token)
		}
	}
	return entry, anagrams
}

func parseEntrySubsection(entry *domain.LexicalEntry, category Category, sub wikitext.Section) bool {
	switch category.Kind {
	case CategoryReference:
		for _, target := range wikitext.LinkTargets(sub.Body) {
			entry.AddLink(category.Relation, target)
		}
	case CategoryPronunciation:
		if entry.Pronunciation == nil {
			if p, ok := wikitext.Pronunciation(sub.Body); ok {
				entry.Pronunciation = &p
			}
		}
	default:
		return false
	}
	return true
}

// parseTraits reads the bare gender and number marker templates from the
// entry head. The "mf" marker declares both genders at once.
func parseTraits(entry *domain.LexicalEntry, head string) {
	for _, t := range wikitext.Templates(head) {
		switch t.Name {
		case "m":
			entry.Genders = append(entry.Genders, domain.GenderMasculine)
		case "f":
			entry.Genders = append(entry.Genders, domain.GenderFeminine)
		case "mf":
			entry.Genders = append(entry.Genders,
				domain.GenderMasculine, domain.GenderFeminine)
		case "p":
			entry.Numbers = append(entry.Numbers, domain.NumberPlural)
		case "s":
			entry.Numbers = append(entry.Numbers, domain.NumberSingular)
		}
	}
}

// parseVerbalInflections reads the verbal inflection table template: its
// first positional argument names the infinitive, and each recognized named
// argument asserts one conjugated-form fact against it.
func parseVerbalInflections(entry *domain.LexicalEntry, head string) {
	for _, t := range wikitext.Templates(head) {
		if t.Name != verbFlexionTemplate {
			continue
		}
		target, ok := t.Arg(0)
		if !ok || target == "" {
			return
		}
		for _, arg := range t.Args {
			if kind, known := conjugationCodes[arg.Name]; known {
				entry.Inflections = append(entry.Inflections, domain.Inflection{
					Kind:   kind,
					Target: target,
				})
			}
		}
		return
	}
}
