package lexicon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Fake graph reader backed by an in-memory record set
// ---------------------------------------------------------------------------

type fakeGraph struct {
	nodes   []domain.Node
	data    []domain.DataProperty
	objects []domain.ObjectProperty

	// Optional overrides for error injection and call inspection.
	SearchLabelsFunc func(ctx context.Context, prefix string, limit int) ([]string, error)
	TriplesFunc      func(ctx context.Context, filter domain.TripleFilter) ([]domain.ObjectProperty, error)
}

func (f *fakeGraph) Nodes(_ context.Context, nodeIDs []string) ([]domain.Node, error) {
	ids := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		ids[id] = true
	}
	var out []domain.Node
	for _, n := range f.nodes {
		if ids[n.ID] {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeGraph) NodeIDByLabel(_ context.Context, label string) (string, error) {
	for _, p := range f.data {
		if p.Name == domain.PropLabel && p.Value == label {
			return p.NodeID, nil
		}
	}
	return "", domain.ErrNotFound
}

func (f *fakeGraph) SearchLabels(ctx context.Context, prefix string, limit int) ([]string, error) {
	if f.SearchLabelsFunc != nil {
		return f.SearchLabelsFunc(ctx, prefix, limit)
	}
	var labels []string
	for _, p := range f.data {
		if p.Name == domain.PropLabel && strings.HasPrefix(p.Value, prefix) {
			labels = append(labels, p.Value)
		}
	}
	sort.Strings(labels)
	if len(labels) > limit {
		labels = labels[:limit]
	}
	return labels, nil
}

func (f *fakeGraph) DataProperties(_ context.Context, nodeIDs []string) ([]domain.DataProperty, error) {
	ids := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		ids[id] = true
	}
	var out []domain.DataProperty
	for _, p := range f.data {
		if ids[p.NodeID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGraph) ObjectProperties(_ context.Context, nodeIDs []string) ([]domain.ObjectProperty, error) {
	ids := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		ids[id] = true
	}
	var out []domain.ObjectProperty
	for _, p := range f.objects {
		if ids[p.NodeID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGraph) Triples(ctx context.Context, filter domain.TripleFilter) ([]domain.ObjectProperty, error) {
	if f.TriplesFunc != nil {
		return f.TriplesFunc(ctx, filter)
	}
	var out []domain.ObjectProperty
	for _, p := range f.objects {
		if filter.NodeID != "" && p.NodeID != filter.NodeID {
			continue
		}
		if filter.Name != "" && p.Name != filter.Name {
			continue
		}
		if filter.TargetID != "" && p.TargetID != filter.TargetID {
			continue
		}
		out = append(out, p)
		if len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// pommeGraph is the record set of a two-entry literal plus the synonym
// target it points at.
func pommeGraph() *fakeGraph {
	return &fakeGraph{
		nodes: []domain.Node{
			{ID: "pomme", Type: domain.NodeTypeLiteral},
			{ID: "pomme_nCom1", Type: domain.NodeType(domain.WordClassCommonNoun)},
			{ID: "pomme_ver1", Type: domain.NodeType(domain.WordClassVerb)},
			{ID: "pomme_nCom1.1", Type: domain.NodeTypeLexicalSense},
			{ID: "pomme_nCom1.2", Type: domain.NodeTypeLexicalSense},
			{ID: "pomme_ver1.1", Type: domain.NodeTypeLexicalSense},
			{ID: "poire", Type: domain.NodeTypeLiteral},
			{ID: "pommier", Type: domain.NodeTypeLiteral},
		},
		data: []domain.DataProperty{
			{NodeID: "pomme", Name: domain.PropLabel, Value: "pomme"},
			{NodeID: "pomme", Name: domain.PropPronunciation, Value: "pɔm"},
			{NodeID: "pomme", Name: domain.PropEtymology, Value: "Du latin poma."},
			{NodeID: "pomme_nCom1", Name: domain.PropPronunciation, Value: "pɔm"},
			{NodeID: "pomme_nCom1", Name: domain.PropGender, Value: "feminine"},
			{NodeID: "pomme_nCom1", Name: domain.PropNumber, Value: "singular"},
			{NodeID: "pomme_nCom1.1", Name: domain.PropDefinition, Value: "Fruit du [[pommier]]."},
			{NodeID: "pomme_nCom1.1", Name: domain.PropExample, Value: "Une ''pomme'' rouge."},
			{NodeID: "pomme_nCom1.2", Name: domain.PropDefinition, Value: "Cœur du chou."},
			{NodeID: "pomme_nCom1.2", Name: domain.PropPrecision, Value: "byAnalogy"},
			{NodeID: "pomme_ver1", Name: domain.PropPronunciation, Value: "pɔm"},
			{NodeID: "pomme_ver1.1", Name: domain.PropDefinition, Value: "Former sa pomme."},
			{NodeID: "poire", Name: domain.PropLabel, Value: "poire"},
			{NodeID: "pommier", Name: domain.PropLabel, Value: "pommier"},
		},
		objects: []domain.ObjectProperty{
			{NodeID: "pomme", Name: domain.PropIsLiteralOf, TargetID: "pomme_nCom1"},
			{NodeID: "pomme", Name: domain.PropIsLiteralOf, TargetID: "pomme_ver1"},
			{NodeID: "pomme", Name: "isAnagramOf", TargetID: "mempo"},
			{NodeID: "pomme_nCom1", Name: domain.PropHasSense, TargetID: "pomme_nCom1.1"},
			{NodeID: "pomme_nCom1", Name: domain.PropHasSense, TargetID: "pomme_nCom1.2"},
			{NodeID: "pomme_nCom1", Name: "hasSynonym", TargetID: "poire"},
			{NodeID: "pomme_ver1", Name: domain.PropHasSense, TargetID: "pomme_ver1.1"},
			{NodeID: "pomme_nCom1.2", Name: domain.PropDependsOn, TargetID: "pomme_nCom1.1"},
		},
	}
}

func newTestService(g *fakeGraph) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, g)
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

func TestLookup_AssemblesLiteral(t *testing.T) {
	svc := newTestService(pommeGraph())

	view, err := svc.Lookup(context.Background(), "pomme")
	require.NoError(t, err)

	assert.Equal(t, "pomme", view.ID)
	assert.Equal(t, "pomme", view.Label)
	assert.Equal(t, "pɔm", view.Pronunciation)
	assert.Equal(t, "Du latin poma.", view.Etymology)
	assert.Equal(t, []Relation{{Name: "isAnagramOf", TargetID: "mempo"}}, view.Relations)

	require.Len(t, view.Entries, 2)

	noun := view.Entries[0]
	assert.Equal(t, "pomme_nCom1", noun.ID)
	assert.Equal(t, "CommonNoun", noun.Class)
	assert.Equal(t, []string{"feminine"}, noun.Genders)
	assert.Equal(t, []string{"singular"}, noun.Numbers)
	assert.Equal(t, []Relation{{Name: "hasSynonym", TargetID: "poire"}}, noun.Relations)

	require.Len(t, noun.Senses, 2)
	assert.Equal(t, "Fruit du pommier.", noun.Senses[0].Definition)
	assert.Equal(t, []string{`Une "pomme" rouge.`}, noun.Senses[0].Examples)
	assert.Empty(t, noun.Senses[0].DependsOn)
	assert.Equal(t, "Cœur du chou.", noun.Senses[1].Definition)
	assert.Equal(t, []string{"byAnalogy"}, noun.Senses[1].Precisions)
	assert.Equal(t, "pomme_nCom1.1", noun.Senses[1].DependsOn)

	verb := view.Entries[1]
	assert.Equal(t, "pomme_ver1", verb.ID)
	assert.Equal(t, "Verb", verb.Class)
	require.Len(t, verb.Senses, 1)
	assert.Equal(t, "Former sa pomme.", verb.Senses[0].Definition)
}

func TestLookup_NotFound(t *testing.T) {
	svc := newTestService(pommeGraph())

	_, err := svc.Lookup(context.Background(), "motInconnu")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLookup_EmptyLabel(t *testing.T) {
	svc := newTestService(pommeGraph())

	_, err := svc.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLookup_LiteralWithoutEntries(t *testing.T) {
	svc := newTestService(pommeGraph())

	view, err := svc.Lookup(context.Background(), "pommier")
	require.NoError(t, err)
	assert.Equal(t, "pommier", view.ID)
	assert.Empty(t, view.Entries)
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestSearch(t *testing.T) {
	svc := newTestService(pommeGraph())

	t.Run("prefix match", func(t *testing.T) {
		labels, err := svc.Search(context.Background(), "pom", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"pomme", "pommier"}, labels)
	})

	t.Run("empty query returns empty result", func(t *testing.T) {
		labels, err := svc.Search(context.Background(), "  ", 10)
		require.NoError(t, err)
		assert.Empty(t, labels)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		g := pommeGraph()
		var gotLimit int
		g.SearchLabelsFunc = func(_ context.Context, _ string, limit int) ([]string, error) {
			gotLimit = limit
			return nil, nil
		}
		svc := newTestService(g)

		_, err := svc.Search(context.Background(), "pom", 0)
		require.NoError(t, err)
		assert.Equal(t, 20, gotLimit)

		_, err = svc.Search(context.Background(), "pom", 9999)
		require.NoError(t, err)
		assert.Equal(t, 50, gotLimit)
	})
}

// ---------------------------------------------------------------------------
// Query
// ---------------------------------------------------------------------------

func TestQuery(t *testing.T) {
	svc := newTestService(pommeGraph())

	t.Run("filtered by name", func(t *testing.T) {
		got, err := svc.Query(context.Background(), domain.TripleFilter{Name: "hasSynonym"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "poire", got[0].TargetID)
	})

	t.Run("unconstrained query is rejected", func(t *testing.T) {
		_, err := svc.Query(context.Background(), domain.TripleFilter{Limit: 10})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		g := pommeGraph()
		var gotLimit int
		g.TriplesFunc = func(_ context.Context, filter domain.TripleFilter) ([]domain.ObjectProperty, error) {
			gotLimit = filter.Limit
			return nil, nil
		}
		svc := newTestService(g)

		_, err := svc.Query(context.Background(), domain.TripleFilter{Name: "hasSynonym", Limit: 100000})
		require.NoError(t, err)
		assert.Equal(t, 200, gotLimit)
	})

	t.Run("store error passes through", func(t *testing.T) {
		g := pommeGraph()
		g.TriplesFunc = func(_ context.Context, _ domain.TripleFilter) ([]domain.ObjectProperty, error) {
			return nil, errors.New("connection lost")
		}
		svc := newTestService(g)

		_, err := svc.Query(context.Background(), domain.TripleFilter{Name: "hasSynonym"})
		assert.Error(t, err)
	})
}
