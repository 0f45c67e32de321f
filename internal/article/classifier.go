package article

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/flont-backend/internal/domain"
)

// titleMarkup matches the wrapper characters stripped from section titles
// before classification.
var titleMarkup = regexp.MustCompile(`[={}]`)

// ParseSectionTitle lemmatizes a section title into its category token:
// markup wrapper characters are stripped, the result is lowercased and split
// on '|'. A single part is the category itself; when the first part is the
// short-form section marker "s", the category is the second part; otherwise
// the first part wins (discarding language codes and template options).
func ParseSectionTitle(title string) string {
	cleaned := strings.ToLower(titleMarkup.ReplaceAllString(title, ""))
	parts := strings.Split(cleaned, "|")
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0])
	}
	if strings.TrimSpace(parts[0]) == "s" {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(parts[0])
}

// CategoryKind is the semantic role of a classified section.
type CategoryKind int

const (
	CategoryUnknown CategoryKind = iota
	CategoryPartOfSpeech
	CategoryEtymology
	CategoryPronunciation
	CategoryAnagrams
	CategoryReference
)

// Category is the classification result for one section title.
type Category struct {
	Kind     CategoryKind
	Token    string
	POS      posInfo             // set when Kind is CategoryPartOfSpeech
	Relation domain.RelationKind // set when Kind is CategoryReference
}

// Classify maps a lemmatized category token to its semantic role. Ignore
// sets are level-specific and checked by the callers, not here.
func Classify(token string) Category {
	if pos, ok := posTemplates[token]; ok {
		return Category{Kind: CategoryPartOfSpeech, Token: token, POS: pos}
	}
	if rel, ok := linkCategories[token]; ok {
		return Category{Kind: CategoryReference, Token: token, Relation: rel}
	}
	switch token {
	case "étymologie":
		return Category{Kind: CategoryEtymology, Token: token}
	case "prononciation":
		return Category{Kind: CategoryPronunciation, Token: token}
	case "anagrammes":
		return Category{Kind: CategoryAnagrams, Token: token}
	}
	return Category{Kind: CategoryUnknown, Token: token}
}
