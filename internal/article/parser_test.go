package article

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/heartmarshall/flont-backend/internal/wikitext"
)

func newTestParser() *Parser {
	return NewParser(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParseArticle(t *testing.T) {
	t.Run("noun and verb entries", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"# un animal\n" +
			"#* exemple ici\n" +
			"=== {{S|verbe}} ===\n" +
			"# courir vite"

		literal, err := newTestParser().ParseArticle("loup", content)
		require.NoError(t, err)
		require.Len(t, literal.Entries, 2)

		noun := literal.Entries[0]
		assert.Equal(t, domain.WordClassCommonNoun, noun.Class)
		require.Len(t, noun.Senses, 1)
		assert.Equal(t, "un animal", noun.Senses[0].Definition)
		assert.Equal(t, []string{"exemple ici"}, noun.Senses[0].Examples)

		verb := literal.Entries[1]
		assert.Equal(t, domain.WordClassVerb, verb.Class)
		require.Len(t, verb.Senses, 1)
		assert.Equal(t, "courir vite", verb.Senses[0].Definition)
		assert.Empty(t, verb.Senses[0].Examples)
	})

	t.Run("no french section", func(t *testing.T) {
		content := "== {{langue|en}} ==\n=== {{S|nom}} ===\n# a word"
		_, err := newTestParser().ParseArticle("word", content)
		assert.ErrorIs(t, err, domain.ErrUnparseable)
	})

	t.Run("other language sections skipped", func(t *testing.T) {
		content := "== {{langue|en}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"# english sense\n" +
			"== {{langue|fr}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"# sens français\n"

		literal, err := newTestParser().ParseArticle("table", content)
		require.NoError(t, err)
		require.Len(t, literal.Entries, 1)
		assert.Equal(t, "sens français", literal.Entries[0].Senses[0].Definition)
	})

	t.Run("identifiers assigned in document order", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"# premier nom\n" +
			"=== {{S|nom}} ===\n" +
			"# second nom\n" +
			"=== {{S|verbe}} ===\n" +
			"# un verbe\n"

		literal, err := newTestParser().ParseArticle("pomme", content)
		require.NoError(t, err)
		assert.Equal(t, "pomme", literal.ID)
		require.Len(t, literal.Entries, 3)
		assert.Equal(t, "pomme_nCom1", literal.Entries[0].ID)
		assert.Equal(t, "pomme_nCom2", literal.Entries[1].ID)
		assert.Equal(t, "pomme_ver1", literal.Entries[2].ID)
		assert.Equal(t, "pomme_nCom1.1", literal.Entries[0].Senses[0].ID)
	})

	t.Run("etymology and anagrams", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|étymologie}} ===\n" +
			"Du latin.\n" +
			"=== {{S|nom}} ===\n" +
			"# un sens\n" +
			"=== {{S|anagrammes}} ===\n" +
			"* [[chien]]\n* [[niche]]\n"

		literal, err := newTestParser().ParseArticle("chine", content)
		require.NoError(t, err)
		require.NotNil(t, literal.Etymology)
		assert.Equal(t, "Du latin.", *literal.Etymology)
		assert.Equal(t, []string{"chien", "niche"}, literal.Anagrams)
	})

	t.Run("anagrams nested under an entry reach the literal", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"# un sens\n" +
			"==== {{S|anagrammes}} ====\n" +
			"* [[niche]]\n"

		literal, err := newTestParser().ParseArticle("chien", content)
		require.NoError(t, err)
		assert.Equal(t, []string{"niche"}, literal.Anagrams)
	})

	t.Run("pronunciation inherited by entries", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"'''pomme''' {{pron|pɔm|fr}} {{f}}\n" +
			"# un fruit\n" +
			"=== {{S|verbe}} ===\n" +
			"# un verbe\n" +
			"=== {{S|prononciation}} ===\n" +
			"* {{pron|pɔm|fr}}\n"

		literal, err := newTestParser().ParseArticle("pomme", content)
		require.NoError(t, err)
		require.NotNil(t, literal.Pronunciation)
		assert.Equal(t, "pɔm", *literal.Pronunciation)
		require.Len(t, literal.Entries, 2)
		require.NotNil(t, literal.Entries[1].Pronunciation)
		assert.Equal(t, "pɔm", *literal.Entries[1].Pronunciation)
	})

	t.Run("ignored sections produce nothing", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"# un sens\n" +
			"=== {{S|traductions}} ===\n" +
			"* [[apple]]\n" +
			"=== {{S|références}} ===\n" +
			"* une source\n"

		literal, err := newTestParser().ParseArticle("pomme", content)
		require.NoError(t, err)
		assert.Len(t, literal.Entries, 1)
		assert.Empty(t, literal.Anagrams)
	})
}

func TestParseEntry(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("traits and pronunciation", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|nom}} ===\n" +
			"'''pomme''' {{pron|pɔm|fr}} {{f}} {{s}}\n" +
			"# un fruit\n"

		literal, err := newTestParser().ParseArticle("pomme", content)
		require.NoError(t, err)
		entry := literal.Entries[0]
		assert.Equal(t, []domain.Gender{domain.GenderFeminine}, entry.Genders)
		assert.Equal(t, []domain.Number{domain.NumberSingular}, entry.Numbers)
		require.NotNil(t, entry.Pronunciation)
		assert.Equal(t, "pɔm", *entry.Pronunciation)
	})

	t.Run("dual gender marker", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n=== {{S|nom}} ===\n{{mf}}\n# un sens\n"
		literal, err := newTestParser().ParseArticle("artiste", content)
		require.NoError(t, err)
		assert.Equal(t, []domain.Gender{
			domain.GenderMasculine,
			domain.GenderFeminine,
		}, literal.Entries[0].Genders)
	})

	t.Run("agreement sense becomes inflection", func(t *testing.T) {
		content := "== {{langue|fr}} ==\n" +
			"=== {{S|adjectif}} ===\n" +
			"# Féminin de [[chat]].\n"

		literal, err := newTestParser().ParseArticle("chatte", content)
		require.NoError(t, err)
		entry := literal.Entries[0]
		assert.Empty(t, entry.Senses)
		require.Len(t, entry.Inflections, 1)
		assert.Equal(t, domain.InflectionFeminineOf, entry.Inflections[0].Kind)
		assert.Equal(t, "chat", entry.Inflections[0].Target)
	})

	t.Run("verbal inflection table", func(t *testing.T) {
		head := "{{fr-verbe-flexion|chanter|ind.p.1s=oui|ind.p.3s=oui|inconnu=oui}}\n"
		entry := &domain.LexicalEntry{}
		parseVerbalInflections(entry, head)
		require.Len(t, entry.Inflections, 2)
		for _, inf := range entry.Inflections {
			assert.Equal(t, "chanter", inf.Target)
		}
		assert.Equal(t,
			domain.InflectionKind("isIndicativePresentFirstSingularOf"),
			entry.Inflections[0].Kind)
	})

	t.Run("cross reference subsections", func(t *testing.T) {
		section := "'''pomme'''\n" +
			"# un fruit\n" +
			"==== {{S|synonymes}} ====\n" +
			"* [[fruit défendu]]\n" +
			"==== {{S|dérivés}} ====\n" +
			"* [[pommier]]\n* [[pomme de terre]]\n" +
			"==== {{S|traductions}} ====\n" +
			"* [[apple]]\n"

		entry, _ := parseEntry(log, posInfo{domain.WordClassCommonNoun, "nCom"},
			wikitext.Section{Title: "S|nom", Body: section})
		assert.Equal(t, []string{"fruit défendu"},
			entry.Links[domain.RelationSynonym])
		assert.Equal(t, []string{"pommier", "pomme de terre"},
			entry.Links[domain.RelationDerivedWord])
		assert.NotContains(t, entry.Links, domain.RelationKind("traductions"))
	})
}
