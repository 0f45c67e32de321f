package domain

// WordClass represents the grammatical class of a lexical entry.
// Values follow the ontology class vocabulary.
type WordClass string

const (
	WordClassAdjective              WordClass = "Adjective"
	WordClassDemonstrativeAdjective WordClass = "DemonstrativeAdjective"
	WordClassExclamativeAdjective   WordClass = "ExclamativeAdjective"
	WordClassIndefiniteAdjective    WordClass = "IndefiniteAdjective"
	WordClassInterrogativeAdjective WordClass = "InterrogativeAdjective"
	WordClassNumeralAdjective       WordClass = "NumeralAdjective"
	WordClassPossessiveAdjective    WordClass = "PossessiveAdjective"
	WordClassRelativeAdjective      WordClass = "RelativeAdjective"
	WordClassAdverb                 WordClass = "Adverb"
	WordClassInterrogativeAdverb    WordClass = "InterrogativeAdverb"
	WordClassRelativeAdverb         WordClass = "RelativeAdverb"
	WordClassDefiniteArticle        WordClass = "DefiniteArticle"
	WordClassIndefiniteArticle      WordClass = "IndefiniteArticle"
	WordClassPartitiveArticle       WordClass = "PartitiveArticle"
	WordClassConjunction            WordClass = "Conjunction"
	WordClassCoordConjunction       WordClass = "CoordinatingConjunction"
	WordClassInterfix               WordClass = "Interfix"
	WordClassInterjection           WordClass = "Interjection"
	WordClassLetter                 WordClass = "Letter"
	WordClassLocution               WordClass = "Locution"
	WordClassCommonNoun             WordClass = "CommonNoun"
	WordClassProperNoun             WordClass = "ProperNoun"
	WordClassFamilyName             WordClass = "FamilyName"
	WordClassFirstName              WordClass = "FirstName"
	WordClassOnomatopoeia           WordClass = "Onomatopoeia"
	WordClassParticle               WordClass = "Particle"
	WordClassSentence               WordClass = "Sentence"
	WordClassPostposition           WordClass = "Postposition"
	WordClassPrefix                 WordClass = "Prefix"
	WordClassPreposition            WordClass = "Preposition"
	WordClassPronoun                WordClass = "Pronoun"
	WordClassDemonstrativePronoun   WordClass = "DemonstrativePronoun"
	WordClassIndefinitePronoun      WordClass = "IndefinitePronoun"
	WordClassInterrogativePronoun   WordClass = "InterrogativePronoun"
	WordClassPersonalPronoun        WordClass = "PersonalPronoun"
	WordClassPossessivePronoun      WordClass = "PossessivePronoun"
	WordClassRelativePronoun        WordClass = "RelativePronoun"
	WordClassProverb                WordClass = "Proverb"
	WordClassSuffix                 WordClass = "Suffix"
	WordClassSymbol                 WordClass = "Symbol"
	WordClassVerb                   WordClass = "Verb"
)

func (c WordClass) String() string { return string(c) }

// Gender is a grammatical gender trait.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
)

func (g Gender) String() string { return string(g) }

// Number is a grammatical number trait.
type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

func (n Number) String() string { return string(n) }

// RelationKind is a typed cross-reference relation between literals.
// Values double as object property names in the output graph.
type RelationKind string

const (
	RelationSynonym         RelationKind = "hasSynonym"
	RelationQuasiSynonym    RelationKind = "hasQuasiSynonym"
	RelationAntonym         RelationKind = "hasAntonym"
	RelationDerivedWord     RelationKind = "hasDerivedWord"
	RelationRelatedWord     RelationKind = "hasRelatedWord"
	RelationHyperonym       RelationKind = "hasHyperonym"
	RelationHyponym         RelationKind = "hasHyponym"
	RelationHolonym         RelationKind = "hasHolonym"
	RelationMeronym         RelationKind = "hasMeronym"
	RelationHomophone       RelationKind = "hasHomophone"
	RelationParonym         RelationKind = "hasParonym"
	RelationSpellingVariant RelationKind = "hasSpellingVariant"
	RelationDialectVariant  RelationKind = "hasDialectVariant"
	RelationDiminutive      RelationKind = "hasDiminutive"
	RelationAugmentative    RelationKind = "hasAugmentative"
	RelationComponentOf     RelationKind = "isComponentOf"
	RelationOldSpelling     RelationKind = "hasOldSpelling"
	RelationTroponym        RelationKind = "hasTroponym"
	RelationAbbreviation    RelationKind = "hasAbbreviation"
	RelationVocabulary      RelationKind = "hasRelatedVocabulary"
	RelationAnagram         RelationKind = "isAnagramOf"
)

func (k RelationKind) String() string { return string(k) }

// InflectionKind is a typed inflection relation from an entry to the literal
// it is a form of. Values double as object property names in the output graph.
// The four agreement kinds are produced by sense retraction; the conjugated
// kinds come from the verbal inflection table codes.
type InflectionKind string

const (
	InflectionFeminineOf        InflectionKind = "isFeminineOf"
	InflectionFemininePluralOf  InflectionKind = "isFemininePluralOf"
	InflectionMasculinePluralOf InflectionKind = "isMasculinePluralOf"
	InflectionPluralOf          InflectionKind = "isPluralOf"
)

func (k InflectionKind) String() string { return string(k) }

// PrecisionKind classifies a precision annotation template.
type PrecisionKind string

const (
	PrecisionUsage        PrecisionKind = "UsagePrecision"
	PrecisionDomain       PrecisionKind = "DomainPrecision"
	PrecisionRelationship PrecisionKind = "RelationshipBetweenDefinition"
)

// NodeType identifies the ontology class of a graph node. Lexical entry
// nodes carry their word class as the type, so the part of speech survives
// in the output graph.
type NodeType string

const (
	NodeTypeLiteral      NodeType = "Literal"
	NodeTypeLexicalSense NodeType = "LexicalSense"
)

func (t NodeType) String() string { return string(t) }
