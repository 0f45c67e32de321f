// Package linker resolves the raw cross-reference targets collected during
// extraction against the full set of literals. Resolution is a second pass:
// it can only run once every article has been parsed, because a target label
// may refer to any literal in the corpus.
package linker

import (
	"log/slog"
	"sort"

	"github.com/heartmarshall/flont-backend/internal/domain"
)

// Index is the in-memory label index of every extracted literal. It is owned
// by the pipeline and passed into the resolution pass by reference.
type Index struct {
	log      *slog.Logger
	byLabel  map[string]*domain.Literal
	ordered  []*domain.Literal
	dropped  int
	resolved int
}

func NewIndex(log *slog.Logger) *Index {
	return &Index{
		log:     log,
		byLabel: make(map[string]*domain.Literal),
	}
}

// Add registers a literal under its label. On a duplicate label the first
// registration wins and the newcomer is dropped with a diagnostic.
func (ix *Index) Add(l *domain.Literal) {
	if prev, ok := ix.byLabel[l.Label]; ok {
		ix.log.Warn("duplicate literal label, keeping first",
			"label", l.Label, "kept", prev.ID, "dropped", l.ID)
		return
	}
	ix.byLabel[l.Label] = l
	ix.ordered = append(ix.ordered, l)
}

// Len reports the number of indexed literals.
func (ix *Index) Len() int { return len(ix.byLabel) }

// Literals returns the indexed literals in registration order.
func (ix *Index) Literals() []*domain.Literal { return ix.ordered }

// Resolved and Dropped report edge counters from the last Resolve call.
func (ix *Index) Resolved() int { return ix.resolved }
func (ix *Index) Dropped() int  { return ix.dropped }

// Resolve walks every indexed literal and converts its raw targets into
// object property edges. A target whose label is not in the index produces
// no edge and no error. The result is sorted, so resolving the same index
// twice yields identical output.
func (ix *Index) Resolve() []domain.ObjectProperty {
	ix.resolved, ix.dropped = 0, 0
	var edges []domain.ObjectProperty

	for _, literal := range ix.ordered {
		for _, target := range literal.Anagrams {
			if e, ok := ix.edge(literal.ID, domain.RelationAnagram.String(), target); ok {
				edges = append(edges, e)
			}
		}
		for _, entry := range literal.Entries {
			for kind, targets := range entry.Links {
				for _, target := range targets {
					if e, ok := ix.edge(entry.ID, kind.String(), target); ok {
						edges = append(edges, e)
					}
				}
			}
			for _, inf := range entry.Inflections {
				if e, ok := ix.edge(entry.ID, inf.Kind.String(), inf.Target); ok {
					edges = append(edges, e)
				}
			}
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.NodeID != b.NodeID {
			return a.NodeID < b.NodeID
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.TargetID < b.TargetID
	})
	return edges
}

// edge resolves one raw target label into an edge toward the matching
// literal node. Unresolvable targets are counted and dropped.
func (ix *Index) edge(nodeID, name, target string) (domain.ObjectProperty, bool) {
	resolved, ok := ix.byLabel[target]
	if !ok {
		ix.dropped++
		return domain.ObjectProperty{}, false
	}
	ix.resolved++
	return domain.ObjectProperty{
		NodeID:   nodeID,
		Name:     name,
		TargetID: resolved.ID,
	}, true
}
