package domain

// GraphRecords is the flat record set of one or more literals, ready for
// bulk insertion. Cross-literal edges are produced separately by the
// resolution pass and appended to Objects before writing.
type GraphRecords struct {
	Nodes   []Node
	Data    []DataProperty
	Objects []ObjectProperty
}

// Flatten appends the node declarations, data properties and ownership
// edges of a literal to the record set. Identifiers must have been assigned.
func (r *GraphRecords) Flatten(l *Literal) {
	r.Nodes = append(r.Nodes, Node{ID: l.ID, Type: NodeTypeLiteral})
	r.data(l.ID, PropLabel, l.Label)
	if l.Pronunciation != nil {
		r.data(l.ID, PropPronunciation, *l.Pronunciation)
	}
	if l.Etymology != nil {
		r.data(l.ID, PropEtymology, *l.Etymology)
	}
	for _, e := range l.Entries {
		r.flattenEntry(l, e)
	}
}

func (r *GraphRecords) flattenEntry(l *Literal, e *LexicalEntry) {
	r.Nodes = append(r.Nodes, Node{ID: e.ID, Type: NodeType(e.Class)})
	r.object(l.ID, PropIsLiteralOf, e.ID)
	if e.Pronunciation != nil {
		r.data(e.ID, PropPronunciation, *e.Pronunciation)
	}
	for _, g := range e.Genders {
		r.data(e.ID, PropGender, g.String())
	}
	for _, n := range e.Numbers {
		r.data(e.ID, PropNumber, n.String())
	}
	for _, s := range e.Senses {
		r.flattenSense(e, s)
	}
}

func (r *GraphRecords) flattenSense(e *LexicalEntry, s *LexicalSense) {
	r.Nodes = append(r.Nodes, Node{ID: s.ID, Type: NodeTypeLexicalSense})
	r.object(e.ID, PropHasSense, s.ID)
	r.data(s.ID, PropDefinition, s.Definition)
	for _, ex := range s.Examples {
		r.data(s.ID, PropExample, ex)
	}
	for _, p := range s.Precisions {
		r.data(s.ID, PropPrecision, p)
	}
	if s.DependsOn >= 0 && s.DependsOn < len(e.Senses) {
		r.object(s.ID, PropDependsOn, e.Senses[s.DependsOn].ID)
	}
}

func (r *GraphRecords) data(nodeID, name, value string) {
	r.Data = append(r.Data, DataProperty{NodeID: nodeID, Name: name, Value: value})
}

func (r *GraphRecords) object(nodeID, name, targetID string) {
	r.Objects = append(r.Objects, ObjectProperty{NodeID: nodeID, Name: name, TargetID: targetID})
}
