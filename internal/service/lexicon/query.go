package lexicon

import (
	"context"
	"fmt"

	"github.com/heartmarshall/flont-backend/internal/domain"
)

// Query runs a triple pattern query over the graph's object properties.
// At least one of the filter fields must be set; the limit is clamped to
// [1, 200], defaulting to 50.
func (s *Service) Query(ctx context.Context, filter domain.TripleFilter) ([]domain.ObjectProperty, error) {
	if filter.NodeID == "" && filter.Name == "" && filter.TargetID == "" {
		return nil, fmt.Errorf("at least one of node, name, target is required: %w", domain.ErrValidation)
	}

	filter.Limit = clampLimit(filter.Limit, 200, 50)

	return s.graph.Triples(ctx, filter)
}
