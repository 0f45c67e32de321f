package lexicon

import (
	"context"
	"strings"
)

// Search returns labels starting with the given prefix, ordered
// alphabetically. An empty prefix returns an empty result. Limit is
// clamped to [1, 50], defaulting to 20.
func (s *Service) Search(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}

	limit = clampLimit(limit, 50, 20)

	return s.graph.SearchLabels(ctx, prefix, limit)
}
