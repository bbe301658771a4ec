package jsonskema

// nodeID addresses a schema node in the graph arena. References between nodes
// are indices, so cyclic schemas need no cyclic ownership.
type nodeID int

const noNode nodeID = -1

// keyword is the compiled, draft-specific form of one schema keyword.
type keyword interface {
	eval(f *frame)
}

type compiledKeyword struct {
	name string
	kw   keyword
}

// schemaNode is one compiled schema object or boolean schema.
type schemaNode struct {
	boolean  bool // node is a boolean schema
	allow    bool // value of a boolean schema
	keywords []compiledKeyword
	// abs is the canonical URI of the schema ("" without a base URI).
	abs      string
	resource int
}

// graphResource is the evaluation-time view of a schema resource, used to
// resolve $dynamicRef and $recursiveRef against the dynamic scope.
type graphResource struct {
	id             string
	dynamicAnchors map[string]nodeID
	recursive      nodeID
}

// graph is immutable once compilation returns and is shared by every clone of
// a Validator.
type graph struct {
	nodes     []schemaNode
	resources []graphResource
	// tracking is set when the schema uses unevaluatedProperties or
	// unevaluatedItems, which need evaluated-location bookkeeping.
	tracking bool
}

func (g *graph) reserve() nodeID {
	g.nodes = append(g.nodes, schemaNode{})
	return nodeID(len(g.nodes) - 1)
}

func (g *graph) addResource(id string) int {
	g.resources = append(g.resources, graphResource{id: id, dynamicAnchors: map[string]nodeID{}, recursive: noNode})
	return len(g.resources) - 1
}
