package plan

// NodeKind identifies the engine-native element a node serializes to.
type NodeKind string

const (
	KindTestPlan          NodeKind = "TestPlan"
	KindSessionController NodeKind = "SessionController"
	KindStateController   NodeKind = "StateController"
	KindHTTPSampler       NodeKind = "HTTPSampler"
	KindJavaSampler       NodeKind = "JavaSampler"
	KindSOAPSampler       NodeKind = "SOAPSampler"
	KindScriptSampler     NodeKind = "ScriptSampler"
	KindResponseAssertion NodeKind = "ResponseAssertion"
	KindHeaderManager     NodeKind = "HeaderManager"
)

// Property is one engine-level property of a node. The engine treats
// the bag as unordered; insertion order is kept for reproducible
// output.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Argument is one ordered argument entry of a node, e.g. an HTTP
// sampler argument or an assertion test string.
type Argument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is one element of the generated execution tree. Nodes are built
// once during assembly, may be adjusted by filters, and are immutable
// afterwards by convention.
type Node struct {
	Kind       NodeKind
	Name       string
	Properties []Property
	Arguments  []Argument
	Children   []*Node
}

// SetProperty appends a property. Duplicate names are allowed; the
// engine applies them in order, so the last value wins.
func (n *Node) SetProperty(name, value string) {
	n.Properties = append(n.Properties, Property{Name: name, Value: value})
}

// Property returns the effective value of a named property.
func (n *Node) Property(name string) (string, bool) {
	value, found := "", false
	for _, p := range n.Properties {
		if p.Name == name {
			value, found = p.Value, true
		}
	}
	return value, found
}

// AddArgument appends an ordered argument entry.
func (n *Node) AddArgument(name, value string) {
	n.Arguments = append(n.Arguments, Argument{Name: name, Value: value})
}

// AddChild appends a child node, preserving enqueue order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// PrependChild inserts a child before all existing children. Used by
// filters that add management nodes ahead of the generated content.
func (n *Node) PrependChild(child *Node) {
	n.Children = append([]*Node{child}, n.Children...)
}

// Walk visits n and every descendant in depth-first order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Tree is the assembled execution plan: a single root node plus the
// document identity the serializers emit.
type Tree struct {
	PlanID string
	Root   *Node
}

// Walk visits every node of the tree in depth-first order.
func (t *Tree) Walk(visit func(*Node)) {
	if t.Root != nil {
		t.Root.Walk(visit)
	}
}
