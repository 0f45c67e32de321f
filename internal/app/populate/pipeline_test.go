package populate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/flont-backend/internal/config"
	"github.com/heartmarshall/flont-backend/internal/domain"
)

// mockSource serves in-memory articles in a fixed order.
type mockSource struct {
	titles   []string
	articles map[string]string
	countErr error
}

func (m *mockSource) Count(context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.titles), nil
}

func (m *mockSource) Iterate(_ context.Context, max int, fn func(title, content string) error) error {
	for i, title := range m.titles {
		if max > 0 && i >= max {
			return nil
		}
		if err := fn(title, m.articles[title]); err != nil {
			return err
		}
	}
	return nil
}

// mockStore records written graph records.
type mockStore struct {
	nodes   []domain.Node
	data    []domain.DataProperty
	objects []domain.ObjectProperty
	saved   bool

	declareErr error

	callLog []string
}

func (m *mockStore) BulkDeclareNodes(_ context.Context, nodes []domain.Node) (int, error) {
	m.callLog = append(m.callLog, "BulkDeclareNodes")
	if m.declareErr != nil {
		return 0, m.declareErr
	}
	m.nodes = append(m.nodes, nodes...)
	return len(nodes), nil
}

func (m *mockStore) BulkSetDataProperties(_ context.Context, props []domain.DataProperty) (int, error) {
	m.callLog = append(m.callLog, "BulkSetDataProperties")
	m.data = append(m.data, props...)
	return len(props), nil
}

func (m *mockStore) BulkSetObjectProperties(_ context.Context, props []domain.ObjectProperty) (int, error) {
	m.callLog = append(m.callLog, "BulkSetObjectProperties")
	m.objects = append(m.objects, props...)
	return len(props), nil
}

func (m *mockStore) Save(context.Context) error {
	m.callLog = append(m.callLog, "Save")
	m.saved = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSource() *mockSource {
	return &mockSource{
		titles: []string{"pomme", "poire", "vide"},
		articles: map[string]string{
			"pomme": "== {{langue|fr}} ==\n" +
				"=== {{S|nom}} ===\n" +
				"# Fruit du pommier.\n" +
				"==== {{S|synonymes}} ====\n" +
				"* [[poire]]\n* [[motInconnu]]\n",
			"poire": "== {{langue|fr}} ==\n=== {{S|nom}} ===\n# Fruit du poirier.\n",
			"vide":  "== {{langue|en}} ==\n=== {{S|nom}} ===\n# not french\n",
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	store := &mockStore{}
	p := NewPipeline(testLogger(), testSource(), store, config.PipelineConfig{BatchSize: 2})

	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.HasErrors() {
		t.Fatalf("unexpected phase errors: %+v", p.Results())
	}

	extract := p.Results()["extract"]
	if extract.Inserted != 2 {
		t.Errorf("extract: expected 2 literals, got %d", extract.Inserted)
	}
	if extract.Skipped != 1 {
		t.Errorf("extract: expected 1 skipped article, got %d", extract.Skipped)
	}

	link := p.Results()["link"]
	if link.Inserted != 1 {
		t.Errorf("link: expected 1 resolved edge, got %d", link.Inserted)
	}
	if link.Skipped != 1 {
		t.Errorf("link: expected 1 dropped target, got %d", link.Skipped)
	}

	// 2 literals, 2 entries, 2 senses.
	if len(store.nodes) != 6 {
		t.Errorf("expected 6 nodes written, got %d", len(store.nodes))
	}
	if !store.saved {
		t.Error("expected Save to be called")
	}

	// Entry nodes carry their word class as node type.
	types := map[string]domain.NodeType{}
	for _, n := range store.nodes {
		types[n.ID] = n.Type
	}
	if got := types["pomme_nCom1"]; got != domain.NodeType(domain.WordClassCommonNoun) {
		t.Errorf("entry node type: expected %q, got %q", domain.WordClassCommonNoun, got)
	}

	// The resolved synonym edge must be among the written edges.
	found := false
	for _, e := range store.objects {
		if e.NodeID == "pomme_nCom1" && e.Name == "hasSynonym" && e.TargetID == "poire" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing resolved synonym edge, got %+v", store.objects)
	}
}

func TestPipeline_PhaseFilter(t *testing.T) {
	store := &mockStore{}
	p := NewPipeline(testLogger(), testSource(), store, config.PipelineConfig{BatchSize: 2})

	if err := p.Run(context.Background(), []string{"extract"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(store.callLog) != 0 {
		t.Errorf("expected no store calls with only extract selected, got %v", store.callLog)
	}
	if _, ok := p.Results()["extract"]; !ok {
		t.Error("expected extract phase result")
	}
	if _, ok := p.Results()["write"]; ok {
		t.Error("write phase must not run when not selected")
	}
}

func TestPipeline_Stats(t *testing.T) {
	p := NewPipeline(testLogger(), testSource(), &mockStore{}, config.PipelineConfig{BatchSize: 2})

	if err := p.Run(context.Background(), []string{"extract"}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	stats := p.Stats()
	if stats.Articles != 3 {
		t.Errorf("expected 3 articles read, got %d", stats.Articles)
	}
	if stats.Unparseable != 1 {
		t.Errorf("expected 1 unparseable article, got %d", stats.Unparseable)
	}
	if stats.Literals != 2 {
		t.Errorf("expected 2 literals, got %d", stats.Literals)
	}
	if stats.Entries != 2 {
		t.Errorf("expected 2 entries, got %d", stats.Entries)
	}
	if stats.Senses != 2 {
		t.Errorf("expected 2 senses, got %d", stats.Senses)
	}
}

func TestPipeline_DryRun(t *testing.T) {
	store := &mockStore{}
	p := NewPipeline(testLogger(), testSource(), store, config.PipelineConfig{BatchSize: 2, DryRun: true})

	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(store.callLog) != 0 {
		t.Errorf("expected no store calls in dry run, got %v", store.callLog)
	}
	if p.Results()["write"].Skipped == 0 {
		t.Error("expected write phase to report skipped records")
	}
}

func TestPipeline_MaxArticles(t *testing.T) {
	store := &mockStore{}
	p := NewPipeline(testLogger(), testSource(), store, config.PipelineConfig{BatchSize: 2, MaxArticles: 1})

	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := p.Results()["extract"].Inserted; got != 1 {
		t.Errorf("expected 1 literal with MaxArticles=1, got %d", got)
	}
}

func TestPipeline_WriteFailureAborts(t *testing.T) {
	sentinel := errors.New("connection lost")
	store := &mockStore{declareErr: sentinel}
	p := NewPipeline(testLogger(), testSource(), store, config.PipelineConfig{BatchSize: 2})

	err := p.Run(context.Background(), nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected write failure to surface, got %v", err)
	}
	if !p.HasErrors() {
		t.Error("expected HasErrors after failed write")
	}
	if store.saved {
		t.Error("Save must not run after a failed write")
	}
}

func TestPipeline_SourceFailure(t *testing.T) {
	sentinel := errors.New("dump unreadable")
	source := testSource()
	source.countErr = sentinel
	p := NewPipeline(testLogger(), source, &mockStore{}, config.PipelineConfig{BatchSize: 2})

	err := p.Run(context.Background(), nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected source failure to surface, got %v", err)
	}
}

func TestBatchProcess(t *testing.T) {
	items := make([]int, 5)
	var calls int
	total, err := batchProcess(items, 2, func(batch []int) (int, error) {
		calls++
		return len(batch), nil
	})
	if err != nil {
		t.Fatalf("batchProcess: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if calls != 3 {
		t.Errorf("expected 3 batches, got %d", calls)
	}
}
