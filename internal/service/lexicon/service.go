// Package lexicon exposes read operations over the extracted graph: label
// search, full literal lookup, and triple pattern queries.
package lexicon

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flont-backend/internal/domain"
)

type graphReader interface {
	Nodes(ctx context.Context, nodeIDs []string) ([]domain.Node, error)
	NodeIDByLabel(ctx context.Context, label string) (string, error)
	SearchLabels(ctx context.Context, prefix string, limit int) ([]string, error)
	DataProperties(ctx context.Context, nodeIDs []string) ([]domain.DataProperty, error)
	ObjectProperties(ctx context.Context, nodeIDs []string) ([]domain.ObjectProperty, error)
	Triples(ctx context.Context, filter domain.TripleFilter) ([]domain.ObjectProperty, error)
}

// Service implements lexicon read operations on top of a graph store.
type Service struct {
	log   *slog.Logger
	graph graphReader
}

// NewService creates a new lexicon service.
func NewService(logger *slog.Logger, graph graphReader) *Service {
	return &Service{
		log:   logger.With("service", "lexicon"),
		graph: graph,
	}
}

// clampLimit ensures the limit is within [1, max], defaulting 0 and
// negatives to def.
func clampLimit(limit, max, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
