// Package populate defines interfaces and orchestration for the extraction
// pipeline: dump articles in, ontology graph out.
package populate

import (
	"context"

	"github.com/heartmarshall/flont-backend/internal/domain"
)

// ArticleSource streams raw dump articles. Implemented by articlestore.Store.
type ArticleSource interface {
	Count(ctx context.Context) (int, error)
	Iterate(ctx context.Context, max int, fn func(title, content string) error) error
}

// GraphStore is the batch graph contract consumed by the pipeline.
// All methods use only domain types, no adapter imports.
// Implemented by graph.Repo.
type GraphStore interface {
	// Batch inserts are ON CONFLICT DO NOTHING, safe to re-run.
	BulkDeclareNodes(ctx context.Context, nodes []domain.Node) (int, error)
	BulkSetDataProperties(ctx context.Context, props []domain.DataProperty) (int, error)
	BulkSetObjectProperties(ctx context.Context, props []domain.ObjectProperty) (int, error)

	// Save closes a populate run (planner statistics refresh).
	Save(ctx context.Context) error
}
