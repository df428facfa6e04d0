package plan

// NodeFactory produces empty engine-native nodes, one constructor per
// node kind. Implementations must be stateless: every call returns a
// fresh, independent node.
type NodeFactory interface {
	NewTestPlan() *Node
	NewSessionController() *Node
	NewStateController() *Node
	NewHTTPSampler() *Node
	NewJavaSampler() *Node
	NewSOAPSampler() *Node
	NewScriptSampler() *Node
	NewResponseAssertion() *Node
	NewHeaderManager() *Node
}

// EngineFactory is the default NodeFactory for the target engine's
// document format.
type EngineFactory struct{}

// NewEngineFactory returns the default node factory.
func NewEngineFactory() *EngineFactory {
	return &EngineFactory{}
}

func (EngineFactory) NewTestPlan() *Node          { return &Node{Kind: KindTestPlan} }
func (EngineFactory) NewSessionController() *Node { return &Node{Kind: KindSessionController} }
func (EngineFactory) NewStateController() *Node   { return &Node{Kind: KindStateController} }
func (EngineFactory) NewHTTPSampler() *Node       { return &Node{Kind: KindHTTPSampler} }
func (EngineFactory) NewJavaSampler() *Node       { return &Node{Kind: KindJavaSampler} }
func (EngineFactory) NewSOAPSampler() *Node       { return &Node{Kind: KindSOAPSampler} }
func (EngineFactory) NewScriptSampler() *Node     { return &Node{Kind: KindScriptSampler} }
func (EngineFactory) NewResponseAssertion() *Node { return &Node{Kind: KindResponseAssertion} }
func (EngineFactory) NewHeaderManager() *Node     { return &Node{Kind: KindHeaderManager} }
