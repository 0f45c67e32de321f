package domain

// Node is a declared individual in the output graph.
type Node struct {
	ID   string
	Type NodeType
}

// DataProperty attaches a string value to a node. Properties are
// multi-valued: repeated inserts append rather than overwrite.
type DataProperty struct {
	NodeID string
	Name   string
	Value  string
}

// ObjectProperty is a typed edge between two nodes. Multi-valued with the
// same append semantics as data properties.
type ObjectProperty struct {
	NodeID   string
	Name     string
	TargetID string
}

// Data property names used in the output graph.
const (
	PropLabel         = "label"
	PropPronunciation = "pronunciation"
	PropEtymology     = "etymology"
	PropDefinition    = "definition"
	PropExample       = "example"
	PropPrecision     = "hasPrecision"
	PropGender        = "hasGender"
	PropNumber        = "hasNumber"
)

// TripleFilter restricts a triple pattern query. Empty fields match
// anything.
type TripleFilter struct {
	NodeID   string
	Name     string
	TargetID string
	Limit    int
}

// Object property names for the ownership structure of the graph.
const (
	PropIsLiteralOf = "isLiteralOf"
	PropHasSense    = "hasSense"
	PropDependsOn   = "dependsOn"
)
