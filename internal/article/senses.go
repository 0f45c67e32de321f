package article

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/heartmarshall/flont-backend/internal/wikitext"
)

// definitionPattern matches definition lines: one or more '#' markers, an
// optional '*' (example marker), and the line content.
var definitionPattern = regexp.MustCompile(`^ *(#+) *(\*?) *(.*)`)

// templateCallPattern is used for in-place precision template resolution
// within definition text.
var templateCallPattern = regexp.MustCompile(`{{(.*?)}}`)

// inflectionLink matches the two link syntaxes that carry the target of an
// agreement phrasing: {{lien|target|...}} (group 1) and [[target]] (group 2).
const inflectionLink = `(?:(?:{l(?:ien)?\|(.*?)[\|}])|(?:\[\[(.*?)\]\]))`

// agreementFamily is one inflection kind with its recognized phrasings.
// Families are tried in fixed order; a sense may match several families and
// contribute one edge per matching family.
type agreementFamily struct {
	kind     domain.InflectionKind
	patterns []*regexp.Regexp
}

func agreementPatterns(phrasings ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(phrasings))
	for i, p := range phrasings {
		out[i] = regexp.MustCompile(p + inflectionLink)
	}
	return out
}

var agreementFamilies = []agreementFamily{
	{domain.InflectionFeminineOf, agreementPatterns(
		`[Ff]éminin(?: singulier)?[' ]*d[ue’'].*`,
		`Forme féminine d[e’'].*`,
	)},
	{domain.InflectionFemininePluralOf, agreementPatterns(
		`[Ff]éminin pluriel[' ]*d[e’'].*`,
		`Masculin et féminin pluriels d[e’'].*`,
	)},
	{domain.InflectionMasculinePluralOf, agreementPatterns(
		`[Mm]asculin pluriel[' ]*d[e’'].*`,
		`Masculin et féminin pluriels d[e’'].*`,
	)},
	{domain.InflectionPluralOf, agreementPatterns(
		`[Pp]luriel(?:le)?(?: traditionnel)?[' ]*d[e’'].*`,
		`[Pp]luriel[' ]*du nom.*`,
		`Un des(?: deux)? pluriels d[e’'].*`,
	)},
}

// segmentSenses parses the head text of an entry line by line into tentative
// senses. A single-marker line starts a new sense; a marker followed by '*'
// appends an example to the open sense; deeper markers (sub-definitions) are
// skipped. Precision templates are resolved on each closed sense.
func segmentSenses(head string) []*domain.LexicalSense {
	type pair struct {
		definition string
		examples   []string
	}

	var pairs []pair
	var definition string
	var examples []string
	open := false

	for _, line := range strings.Split(head, "\n") {
		m := definitionPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if len(m[1]) > 1 {
			// Nested sub-definition, out of scope.
			continue
		}
		if m[2] == "" {
			if open {
				pairs = append(pairs, pair{definition, examples})
			}
			definition, examples, open = m[3], nil, true
		} else if open {
			examples = append(examples, m[3])
		}
	}
	if open {
		pairs = append(pairs, pair{definition, examples})
	}

	var senses []*domain.LexicalSense
	for _, p := range pairs {
		sense, depends := resolvePrecisions(p.definition)
		sense.Examples = p.examples
		if depends {
			// Relationship precisions refine the sense just above.
			sense.DependsOn = len(senses) - 1
		}
		senses = append(senses, sense)
	}
	return senses
}

// resolvePrecisions builds a tentative sense from raw definition text:
// every template call matching the precision table is removed from the
// visible definition and recorded as a tag. The second result reports
// whether a relationship-kind precision was seen, which makes the sense
// depend on its predecessor.
func resolvePrecisions(definition string) (*domain.LexicalSense, bool) {
	sense := &domain.LexicalSense{DependsOn: -1}
	depends := false

	resolved := templateCallPattern.ReplaceAllStringFunc(definition, func(call string) string {
		inner := call[2 : len(call)-2]
		name := strings.TrimSpace(strings.Split(inner, "|")[0])
		info, ok := precisionTemplates[name]
		if !ok {
			return call
		}
		if info.Kind == domain.PrecisionRelationship {
			depends = true
		}
		sense.Precisions = append(sense.Precisions, info.Tag)
		return ""
	})

	sense.Definition = wikitext.CollapseSpaces(resolved)
	return sense, depends
}

// retractAgreements runs the agreement-inflection retraction pass over the
// tentative senses: a sense whose definition matches an agreement phrasing is
// converted into inflection edges and removed. The surviving senses keep
// their document order, and DependsOn markers are remapped to indices into
// the surviving list (dropped when the predecessor itself was retracted).
// Pure function: the input slice is not modified.
func retractAgreements(tentative []*domain.LexicalSense) ([]*domain.LexicalSense, []domain.Inflection) {
	var kept []*domain.LexicalSense
	var edges []domain.Inflection

	// Index of each surviving tentative sense in the kept list.
	survivors := make(map[int]int, len(tentative))

	for i, sense := range tentative {
		retracted := false
		for _, family := range agreementFamilies {
			for _, pattern := range family.patterns {
				m := pattern.FindStringSubmatch(sense.Definition)
				if m == nil {
					continue
				}
				retracted = true
				edges = append(edges, domain.Inflection{
					Kind:   family.kind,
					Target: agreementTarget(m),
				})
				break // one edge per family
			}
		}
		if retracted {
			continue
		}
		survivors[i] = len(kept)
		copied := *sense
		kept = append(kept, &copied)
	}

	// Remap dependency indices against the surviving list.
	for i, sense := range tentative {
		keptIdx, alive := survivors[i]
		if !alive || sense.DependsOn < 0 {
			continue
		}
		if prev, ok := survivors[sense.DependsOn]; ok {
			kept[keptIdx].DependsOn = prev
		} else {
			kept[keptIdx].DependsOn = -1
		}
	}

	return kept, edges
}

// agreementTarget extracts the raw target label from an agreement match:
// the first non-empty capture group of the two alternate link syntaxes.
// Wikilink targets additionally drop display text and anchors.
func agreementTarget(m []string) string {
	if m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	target := m[2]
	target, _, _ = strings.Cut(target, "|")
	target, _, _ = strings.Cut(target, "#")
	return strings.TrimSpace(target)
}
