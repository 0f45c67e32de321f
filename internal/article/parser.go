// Package article turns raw dump articles into domain literals: section
// classification, lexical entry extraction, sense segmentation and
// deterministic identifier assignment.
package article

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/heartmarshall/flont-backend/internal/wikitext"
)

// frenchSectionTitle selects the language section this pipeline extracts.
const frenchSectionTitle = "langue|fr"

// Parser extracts domain literals from raw wikitext articles.
type Parser struct {
	log *slog.Logger
}

func NewParser(log *slog.Logger) *Parser {
	return &Parser{log: log}
}

// ParseArticle parses one dump article into a literal. Only the French
// language section is read; articles without one are rejected with
// ErrUnparseable. Identifiers are assigned before returning, so the result
// is ready for flattening.
func (p *Parser) ParseArticle(title, content string) (*domain.Literal, error) {
	french, ok := findFrenchSection(content)
	if !ok {
		return nil, fmt.Errorf("article %q: no french section: %w",
			title, domain.ErrUnparseable)
	}

	literal := &domain.Literal{Label: title}
	log := p.log.With("article", title)

	for _, section := range wikitext.Sections(french.Body, 3) {
		token := ParseSectionTitle(section.Title)
		if _, skip := literalIgnore[token]; skip {
			continue
		}
		if !p.parseLiteralSection(log, literal, token, section) {
			log.Warn("unhandled literal section", "category", token)
		}
	}

	literal.InheritPronunciation()
	domain.AssignIdentifiers(literal)
	return literal, nil
}

func (p *Parser) parseLiteralSection(log *slog.Logger, literal *domain.Literal, token string, section wikitext.Section) bool {
	category := Classify(token)
	switch category.Kind {
	case CategoryPartOfSpeech:
		entry, anagrams := parseEntry(log, category.POS, section)
		literal.Entries = append(literal.Entries, entry)
		literal.Anagrams = append(literal.Anagrams, anagrams...)
	case CategoryEtymology:
		if etym := strings.TrimSpace(section.Body); etym != "" {
			literal.Etymology = &etym
		}
	case CategoryAnagrams:
		literal.Anagrams = append(literal.Anagrams,
			wikitext.LinkTargets(section.Body)...)
	case CategoryPronunciation:
		if pron, ok := wikitext.Pronunciation(section.Body); ok {
			literal.Pronunciation = &pron
		}
	default:
		return false
	}
	return true
}

// findFrenchSection locates the depth-2 language section for French among
// the article's top level sections.
func findFrenchSection(content string) (wikitext.Section, bool) {
	for _, section := range wikitext.Sections(content, 2) {
		if strings.TrimSpace(section.Title) == frenchSectionTitle {
			return section, true
		}
	}
	return wikitext.Section{}, false
}
