package graph

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/flont-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flont-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Batch insert methods (pgx.Batch API)
// ---------------------------------------------------------------------------

// BulkDeclareNodes inserts nodes using pgx.Batch. Already-declared nodes
// are skipped via ON CONFLICT DO NOTHING, so re-running a write phase over
// the same records is harmless.
// Returns the number of actually inserted rows.
func (r *Repo) BulkDeclareNodes(ctx context.Context, nodes []domain.Node) (int, error) {
	if len(nodes) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, n := range nodes {
		batch.Queue(
			`INSERT INTO nodes (id, node_type)
			 VALUES ($1, $2)
			 ON CONFLICT (id) DO NOTHING`,
			n.ID, n.Type.String(),
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// BulkSetDataProperties inserts data properties using pgx.Batch.
// Duplicate (node, name, value) triples are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkSetDataProperties(ctx context.Context, props []domain.DataProperty) (int, error) {
	if len(props) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range props {
		batch.Queue(
			`INSERT INTO data_properties (node_id, name, value)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (node_id, name, value) DO NOTHING`,
			p.NodeID, p.Name, p.Value,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// BulkSetObjectProperties inserts edges using pgx.Batch.
// Duplicate (node, name, target) triples are skipped via ON CONFLICT DO NOTHING.
func (r *Repo) BulkSetObjectProperties(ctx context.Context, props []domain.ObjectProperty) (int, error) {
	if len(props) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range props {
		batch.Queue(
			`INSERT INTO object_properties (node_id, name, target_id)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (node_id, name, target_id) DO NOTHING`,
			p.NodeID, p.Name, p.TargetID,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// Save refreshes planner statistics after a bulk load. The insert batches
// are already durable; this is the closing step of a populate run.
func (r *Repo) Save(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, `ANALYZE nodes, data_properties, object_properties`); err != nil {
		return fmt.Errorf("analyze graph tables: %w", err)
	}
	return nil
}

// sendBatchExec sends the batch and sums affected rows across all queued
// statements.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}
