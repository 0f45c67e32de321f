// Package graph implements the output graph store on PostgreSQL. Nodes,
// data properties and object properties live in three append-only tables;
// writes go through pgx.Batch and are idempotent, reads use parameterized
// SQL built with squirrel where the filter set is dynamic.
package graph

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flont-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flont-backend/internal/domain"
)

// psql is the statement builder for PostgreSQL placeholder syntax.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides graph persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new graph repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Ping verifies database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping graph store: %w", domain.ErrUnavailable)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getNodeSQL = `
SELECT id, node_type FROM nodes WHERE id = $1`

const nodesSQL = `
SELECT id, node_type FROM nodes
WHERE id = ANY($1::text[])
ORDER BY id`

const nodeIDsByLabelSQL = `
SELECT node_id FROM data_properties
WHERE name = 'label' AND value = $1`

const searchLabelsSQL = `
SELECT DISTINCT value FROM data_properties
WHERE name = 'label' AND value LIKE $1
ORDER BY value
LIMIT $2`

const dataPropertiesSQL = `
SELECT node_id, name, value FROM data_properties
WHERE node_id = ANY($1::text[])
ORDER BY node_id, name, value`

const objectPropertiesSQL = `
SELECT node_id, name, target_id FROM object_properties
WHERE node_id = ANY($1::text[])
ORDER BY node_id, name, target_id`

// GetNode returns one node by identifier. Returns domain.ErrNotFound when
// the node does not exist.
func (r *Repo) GetNode(ctx context.Context, id string) (domain.Node, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n domain.Node
	err := q.QueryRow(ctx, getNodeSQL, id).Scan(&n.ID, &n.Type)
	if err != nil {
		return domain.Node{}, mapError(err, "node", id)
	}
	return n, nil
}

// Nodes returns several nodes in one round trip, ordered by identifier.
// Missing identifiers are simply absent from the result.
func (r *Repo) Nodes(ctx context.Context, nodeIDs []string) ([]domain.Node, error) {
	if len(nodeIDs) == 0 {
		return []domain.Node{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, nodesSQL, nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("get nodes: %w", err)
	}
	defer rows.Close()

	nodes := []domain.Node{}
	for rows.Next() {
		var n domain.Node
		if err := rows.Scan(&n.ID, &n.Type); err != nil {
			return nil, fmt.Errorf("get nodes: %w", err)
		}
		nodes = append(nodes, n)
	}
	return nodes, rows.Err()
}

// NodeIDByLabel resolves a literal label to its node identifier. Returns
// domain.ErrNotFound when no literal carries the label.
func (r *Repo) NodeIDByLabel(ctx context.Context, label string) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id string
	err := q.QueryRow(ctx, nodeIDsByLabelSQL, label).Scan(&id)
	if err != nil {
		return "", mapError(err, "label", label)
	}
	return id, nil
}

// SearchLabels returns up to limit distinct labels starting with prefix,
// in lexicographic order.
func (r *Repo) SearchLabels(ctx context.Context, prefix string, limit int) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, searchLabelsSQL, escapeLike(prefix)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search labels: %w", err)
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("search labels: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// DataProperties returns the data properties of several nodes in one round
// trip, ordered deterministically.
func (r *Repo) DataProperties(ctx context.Context, nodeIDs []string) ([]domain.DataProperty, error) {
	if len(nodeIDs) == 0 {
		return []domain.DataProperty{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, dataPropertiesSQL, nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("get data properties: %w", err)
	}
	defer rows.Close()

	props := []domain.DataProperty{}
	for rows.Next() {
		var p domain.DataProperty
		if err := rows.Scan(&p.NodeID, &p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("get data properties: %w", err)
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

// ObjectProperties returns the outgoing edges of several nodes in one round
// trip, ordered deterministically.
func (r *Repo) ObjectProperties(ctx context.Context, nodeIDs []string) ([]domain.ObjectProperty, error) {
	if len(nodeIDs) == 0 {
		return []domain.ObjectProperty{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, objectPropertiesSQL, nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("get object properties: %w", err)
	}
	defer rows.Close()

	return scanObjectProperties(rows)
}

// Triples runs a triple pattern query over the object properties. The
// result is bounded by the filter's limit and ordered deterministically.
func (r *Repo) Triples(ctx context.Context, filter domain.TripleFilter) ([]domain.ObjectProperty, error) {
	builder := psql.
		Select("node_id", "name", "target_id").
		From("object_properties").
		OrderBy("node_id", "name", "target_id").
		Limit(uint64(filter.Limit))

	if filter.NodeID != "" {
		builder = builder.Where(sq.Eq{"node_id": filter.NodeID})
	}
	if filter.Name != "" {
		builder = builder.Where(sq.Eq{"name": filter.Name})
	}
	if filter.TargetID != "" {
		builder = builder.Where(sq.Eq{"target_id": filter.TargetID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build triple query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query triples: %w", err)
	}
	defer rows.Close()

	return scanObjectProperties(rows)
}

func scanObjectProperties(rows pgx.Rows) ([]domain.ObjectProperty, error) {
	props := []domain.ObjectProperty{}
	for rows.Next() {
		var p domain.ObjectProperty
		if err := rows.Scan(&p.NodeID, &p.Name, &p.TargetID); err != nil {
			return nil, fmt.Errorf("scan object property: %w", err)
		}
		props = append(props, p)
	}
	return props, rows.Err()
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied prefix.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
