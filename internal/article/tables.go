package article

import (
	"github.com/heartmarshall/flont-backend/internal/domain"
)

// The tables below carry the corpus-specific section and template vocabulary.
// They are the seam where new section types are added without touching the
// parsing logic.

// posInfo maps a part-of-speech section category to its ontology class and
// the abbreviation used in entry identifiers.
type posInfo struct {
	Class  domain.WordClass
	Abbrev string
}

// posTemplates maps section categories (as returned by ParseSectionTitle)
// to part-of-speech classes.
var posTemplates = map[string]posInfo{
	"adjectif":                    {domain.WordClassAdjective, "adj"},
	"adjectif démonstratif":       {domain.WordClassDemonstrativeAdjective, "adjDem"},
	"adjectif exclamatif":         {domain.WordClassExclamativeAdjective, "adjExc"},
	"adjectif indéfini":           {domain.WordClassIndefiniteAdjective, "adjInd"},
	"adjectif interrogatif":       {domain.WordClassInterrogativeAdjective, "adjInt"},
	"adjectif numéral":            {domain.WordClassNumeralAdjective, "adjNum"},
	"adjectif possessif":          {domain.WordClassPossessiveAdjective, "adjPos"},
	"adjectif relatif":            {domain.WordClassRelativeAdjective, "adjRel"},
	"adverbe":                     {domain.WordClassAdverb, "adv"},
	"adverbe interrogatif":        {domain.WordClassInterrogativeAdverb, "advInt"},
	"adverbe relatif":             {domain.WordClassRelativeAdverb, "advRel"},
	"article défini":              {domain.WordClassDefiniteArticle, "artDef"},
	"article indéfini":            {domain.WordClassIndefiniteArticle, "artInd"},
	"article partitif":            {domain.WordClassPartitiveArticle, "artPar"},
	"conjonction":                 {domain.WordClassConjunction, "con"},
	"conjonction de coordination": {domain.WordClassCoordConjunction, "conCoo"},
	"interfixe":                   {domain.WordClassInterfix, "affInt"},
	"interjection":                {domain.WordClassInterjection, "int"},
	"lettre":                      {domain.WordClassLetter, "let"},
	"locution":                    {domain.WordClassLocution, "loc"},
	"locution-phrase":             {domain.WordClassLocution, "loc"},
	"nom":                         {domain.WordClassCommonNoun, "nCom"},
	"nom commun":                  {domain.WordClassCommonNoun, "nCom"},
	"nom de famille":              {domain.WordClassFamilyName, "nFam"},
	"nom propre":                  {domain.WordClassProperNoun, "nPro"},
	"nom scientifique":            {domain.WordClassCommonNoun, "nCom"},
	"onomatopée":                  {domain.WordClassOnomatopoeia, "ono"},
	"particule":                   {domain.WordClassParticle, "par"},
	"patronyme":                   {domain.WordClassFamilyName, "nFam"},
	"phrase":                      {domain.WordClassSentence, "sen"},
	"phrases":                     {domain.WordClassSentence, "sen"},
	"postposition":                {domain.WordClassPostposition, "adpPos"},
	"préfixe":                     {domain.WordClassPrefix, "affPre"},
	"prénom":                      {domain.WordClassFirstName, "nFir"},
	"préposition":                 {domain.WordClassPreposition, "adpPre"},
	"pronom":                      {domain.WordClassPronoun, "pro"},
	"pronom démonstratif":         {domain.WordClassDemonstrativePronoun, "proDem"},
	"pronom indéfini":             {domain.WordClassIndefinitePronoun, "proInd"},
	"pronom interrogatif":         {domain.WordClassInterrogativePronoun, "proInt"},
	"pronom personnel":            {domain.WordClassPersonalPronoun, "proPer"},
	"pronom possessif":            {domain.WordClassPossessivePronoun, "proPos"},
	"pronom relatif":              {domain.WordClassRelativePronoun, "proRel"},
	"proverbe":                    {domain.WordClassProverb, "prv"},
	"substantif":                  {domain.WordClassCommonNoun, "nCom"},
	"suffixe":                     {domain.WordClassSuffix, "affSuf"},
	"symbole":                     {domain.WordClassSymbol, "sym"},
	"verbe":                       {domain.WordClassVerb, "ver"},
}

// linkCategories maps cross-reference sub-section categories to the relation
// kind of the edges they produce.
var linkCategories = map[string]domain.RelationKind{
	"synonymes":                domain.RelationSynonym,
	"quasi-synonymes":          domain.RelationQuasiSynonym,
	"antonymes":                domain.RelationAntonym,
	"dérivés":                  domain.RelationDerivedWord,
	"apparentés":               domain.RelationRelatedWord,
	"hyperonymes":              domain.RelationHyperonym,
	"hyponymes":                domain.RelationHyponym,
	"holonymes":                domain.RelationHolonym,
	"méronymes":                domain.RelationMeronym,
	"homophones":               domain.RelationHomophone,
	"paronymes":                domain.RelationParonym,
	"variantes orthographiques": domain.RelationSpellingVariant,
	"variantes dialectales":    domain.RelationDialectVariant,
	"diminutifs":               domain.RelationDiminutive,
	"augmentatifs":             domain.RelationAugmentative,
	"composés":                 domain.RelationComponentOf,
	"anciennes orthographes":   domain.RelationOldSpelling,
	"troponymes":               domain.RelationTroponym,
	"abréviations":             domain.RelationAbbreviation,
	"vocabulaire":              domain.RelationVocabulary,
}

// literalIgnore lists depth-3 categories skipped without a diagnostic when
// they appear directly under the language section. Several of them are
// cross-reference categories that only belong under an entry but show up
// mis-leveled in the corpus.
var literalIgnore = map[string]struct{}{
	"références":             {},
	"voir aussi":             {},
	"voir":                   {},
	"variante typographique": {},
	"liens externes":         {},
	"traductions":            {},
	"sources":                {},
	"erreur":                 {},
	"faute":                  {},
	"pesornel":               {},
	"synonymes":              {},
	"variante":               {},
	"homophone":              {},
	"paronymes":              {},
	"quasi-synonymes":        {},
}

// entryIgnore lists depth-4 categories skipped without a diagnostic under a
// part-of-speech section.
var entryIgnore = map[string]struct{}{
	"notes":                    {},
	"note":                     {},
	"remarque":                 {},
	"transcriptions":           {},
	"translittérations":        {},
	"dérivés autres langues":   {},
	"faux-amis":                {},
	"apparentés étymologiques": {},
	"voir aussi":               {},
	"voir":                     {},
	"traductions":              {},
	"trad-trier":               {},
	"vidéos":                   {},
	"références":               {},
	"liens externes":           {},
}

// verbFlexionTemplate is the template carrying conjugated-form facts: its
// first positional argument is the base verb, and each named argument is a
// tense/person/number code from conjugationCodes.
const verbFlexionTemplate = "fr-verbe-flexion"

// conjugationCodes maps the named arguments of the verbal inflection
// template to inflection kinds.
var conjugationCodes = buildConjugationCodes()

func buildConjugationCodes() map[string]domain.InflectionKind {
	tenses := []struct{ code, name string }{
		{"ind.p", "IndicativePresent"},
		{"ind.i", "IndicativeImperfect"},
		{"ind.ps", "IndicativeSimplePast"},
		{"ind.f", "IndicativeFuture"},
		{"cond.p", "ConditionalPresent"},
		{"sub.p", "SubjunctivePresent"},
		{"sub.i", "SubjunctiveImperfect"},
	}
	persons := []struct{ code, name string }{
		{"1s", "FirstSingular"},
		{"2s", "SecondSingular"},
		{"3s", "ThirdSingular"},
		{"1p", "FirstPlural"},
		{"2p", "SecondPlural"},
		{"3p", "ThirdPlural"},
	}

	m := make(map[string]domain.InflectionKind, len(tenses)*len(persons)+8)
	for _, t := range tenses {
		for _, p := range persons {
			m[t.code+"."+p.code] = domain.InflectionKind("is" + t.name + p.name + "Of")
		}
	}
	// Imperative only exists for three persons.
	m["imp.p.2s"] = "isImperativePresentSecondSingularOf"
	m["imp.p.1p"] = "isImperativePresentFirstPluralOf"
	m["imp.p.2p"] = "isImperativePresentSecondPluralOf"
	// Participles.
	m["ppr"] = "isPresentParticipleOf"
	m["pp"] = "isPastParticipleOf"
	m["pp.ms"] = "isPastParticipleOf"
	m["pp.mp"] = "isMasculinePluralPastParticipleOf"
	m["pp.fs"] = "isFemininePastParticipleOf"
	m["pp.fp"] = "isFemininePluralPastParticipleOf"
	return m
}

// precisionInfo is the registration record of an inline precision template:
// the normalized tag recorded on the sense, and the template kind.
// Relationship-kind templates mark the sense as refining the previous one.
type precisionInfo struct {
	Tag  string
	Kind domain.PrecisionKind
}

// precisionTemplates maps inline annotation template names found in
// definition text to their normalized precision tags.
var precisionTemplates = map[string]precisionInfo{
	"figuré":        {"figurative", domain.PrecisionUsage},
	"familier":      {"informal", domain.PrecisionUsage},
	"vieilli":       {"dated", domain.PrecisionUsage},
	"désuet":        {"obsolete", domain.PrecisionUsage},
	"populaire":     {"popular", domain.PrecisionUsage},
	"littéraire":    {"literary", domain.PrecisionUsage},
	"soutenu":       {"formal", domain.PrecisionUsage},
	"ironique":      {"ironic", domain.PrecisionUsage},
	"péjoratif":     {"pejorative", domain.PrecisionUsage},
	"mélioratif":    {"meliorative", domain.PrecisionUsage},
	"argot":         {"slang", domain.PrecisionUsage},
	"rare":          {"rare", domain.PrecisionUsage},
	"vulgaire":      {"vulgar", domain.PrecisionUsage},
	"anglicisme":    {"anglicism", domain.PrecisionUsage},
	"néologisme":    {"neologism", domain.PrecisionUsage},
	"régionalisme":  {"regionalism", domain.PrecisionUsage},
	"botanique":     {"botany", domain.PrecisionDomain},
	"zoologie":      {"zoology", domain.PrecisionDomain},
	"cuisine":       {"cooking", domain.PrecisionDomain},
	"médecine":      {"medicine", domain.PrecisionDomain},
	"droit":         {"law", domain.PrecisionDomain},
	"informatique":  {"computing", domain.PrecisionDomain},
	"linguistique":  {"linguistics", domain.PrecisionDomain},
	"musique":       {"music", domain.PrecisionDomain},
	"militaire":     {"military", domain.PrecisionDomain},
	"marine":        {"nautical", domain.PrecisionDomain},
	"par extension": {"byExtension", domain.PrecisionRelationship},
	"par analogie":  {"byAnalogy", domain.PrecisionRelationship},
	"par métonymie": {"byMetonymy", domain.PrecisionRelationship},
	"en particulier": {"specifically", domain.PrecisionRelationship},
	"spécialement":  {"specifically", domain.PrecisionRelationship},
}
