package lexicon

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/flont-backend/internal/domain"
	"github.com/heartmarshall/flont-backend/internal/wikitext"
)

// Lookup assembles the full view of a literal from its graph properties:
// the literal node found by label, its entries, their senses, and every
// outgoing relation. Returns domain.ErrNotFound when no literal carries
// the label.
func (s *Service) Lookup(ctx context.Context, label string) (*LiteralView, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("label is required: %w", domain.ErrValidation)
	}

	id, err := s.graph.NodeIDByLabel(ctx, label)
	if err != nil {
		return nil, err
	}

	view := &LiteralView{ID: id, Label: label}

	litObjs, err := s.graph.ObjectProperties(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("literal edges: %w", err)
	}

	var entryIDs []string
	for _, o := range litObjs {
		if o.Name == domain.PropIsLiteralOf {
			entryIDs = append(entryIDs, o.TargetID)
			continue
		}
		view.Relations = append(view.Relations, Relation{Name: o.Name, TargetID: o.TargetID})
	}

	// Entries and senses are sized before any pointer into them is taken;
	// the slices must not grow after that.
	view.Entries = make([]EntryView, len(entryIDs))
	entryByID := make(map[string]*EntryView, len(entryIDs))
	for i, entryID := range entryIDs {
		view.Entries[i].ID = entryID
		entryByID[entryID] = &view.Entries[i]
	}

	var entryObjs []domain.ObjectProperty
	if len(entryIDs) > 0 {
		// Entry nodes are typed with their word class.
		entryNodes, err := s.graph.Nodes(ctx, entryIDs)
		if err != nil {
			return nil, fmt.Errorf("entry nodes: %w", err)
		}
		for _, n := range entryNodes {
			if entry, ok := entryByID[n.ID]; ok {
				entry.Class = n.Type.String()
			}
		}

		entryObjs, err = s.graph.ObjectProperties(ctx, entryIDs)
		if err != nil {
			return nil, fmt.Errorf("entry edges: %w", err)
		}
	}

	sensesByEntry := make(map[string][]string)
	for _, o := range entryObjs {
		if o.Name == domain.PropHasSense {
			sensesByEntry[o.NodeID] = append(sensesByEntry[o.NodeID], o.TargetID)
			continue
		}
		entry := entryByID[o.NodeID]
		entry.Relations = append(entry.Relations, Relation{Name: o.Name, TargetID: o.TargetID})
	}

	var senseIDs []string
	senseByID := make(map[string]*SenseView)
	for entryID, ids := range sensesByEntry {
		entry := entryByID[entryID]
		entry.Senses = make([]SenseView, len(ids))
		for i, senseID := range ids {
			entry.Senses[i].ID = senseID
			senseByID[senseID] = &entry.Senses[i]
			senseIDs = append(senseIDs, senseID)
		}
	}

	if len(senseIDs) > 0 {
		senseObjs, err := s.graph.ObjectProperties(ctx, senseIDs)
		if err != nil {
			return nil, fmt.Errorf("sense edges: %w", err)
		}
		for _, o := range senseObjs {
			if o.Name == domain.PropDependsOn {
				senseByID[o.NodeID].DependsOn = o.TargetID
			}
		}
	}

	nodeIDs := make([]string, 0, 1+len(entryIDs)+len(senseIDs))
	nodeIDs = append(nodeIDs, id)
	nodeIDs = append(nodeIDs, entryIDs...)
	nodeIDs = append(nodeIDs, senseIDs...)

	props, err := s.graph.DataProperties(ctx, nodeIDs)
	if err != nil {
		return nil, fmt.Errorf("data properties: %w", err)
	}
	for _, p := range props {
		s.applyProperty(view, entryByID, senseByID, p)
	}

	return view, nil
}

func (s *Service) applyProperty(view *LiteralView, entries map[string]*EntryView, senses map[string]*SenseView, p domain.DataProperty) {
	if p.NodeID == view.ID {
		switch p.Name {
		case domain.PropLabel:
			view.Label = p.Value
		case domain.PropPronunciation:
			view.Pronunciation = p.Value
		case domain.PropEtymology:
			view.Etymology = wikitext.Clean(p.Value)
		}
		return
	}

	if entry, ok := entries[p.NodeID]; ok {
		switch p.Name {
		case domain.PropPronunciation:
			entry.Pronunciation = p.Value
		case domain.PropGender:
			entry.Genders = append(entry.Genders, p.Value)
		case domain.PropNumber:
			entry.Numbers = append(entry.Numbers, p.Value)
		}
		return
	}

	// Definitions and examples are stored with their wiki markup; strip it
	// for display.
	if sense, ok := senses[p.NodeID]; ok {
		switch p.Name {
		case domain.PropDefinition:
			sense.Definition = wikitext.Clean(p.Value)
		case domain.PropExample:
			sense.Examples = append(sense.Examples, wikitext.Clean(p.Value))
		case domain.PropPrecision:
			sense.Precisions = append(sense.Precisions, p.Value)
		}
	}
}
