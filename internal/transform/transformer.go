package transform

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/plangen/internal/model"
	"github.com/wesleyorama2/plangen/internal/plan"
)

// Transformer turns one request into the execution subtree rooted at
// its sampler node. Each implementation handles exactly one request
// variant and fails fast on any other.
type Transformer interface {
	// Kind is the request variant this transformer handles.
	Kind() model.RequestKind

	// Transform builds the sampler node for the request, including
	// the trailing assertion subtree when the request carries
	// assertions.
	Transform(req *model.Request, factory plan.NodeFactory) (*plan.Node, error)
}

// Registry maps request variants to their transformers.
type Registry struct {
	transformers map[model.RequestKind]Transformer
}

// NewRegistry creates an empty transformer registry.
func NewRegistry() *Registry {
	return &Registry{transformers: make(map[model.RequestKind]Transformer)}
}

// DefaultRegistry returns a registry with all built-in variant
// transformers registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(HTTPTransformer{})
	r.MustRegister(JavaTransformer{})
	r.MustRegister(SOAPTransformer{})
	r.MustRegister(ScriptTransformer{})
	return r
}

// Register registers a transformer for its variant. Returns an error
// if the variant already has a transformer.
func (r *Registry) Register(t Transformer) error {
	if t == nil {
		return fmt.Errorf("cannot register nil transformer")
	}
	kind := t.Kind()
	if _, exists := r.transformers[kind]; exists {
		return fmt.Errorf("transformer for %s variant is already registered", kind)
	}
	r.transformers[kind] = t
	return nil
}

// MustRegister registers a transformer and panics on error.
func (r *Registry) MustRegister(t Transformer) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Lookup returns the transformer for a request variant.
func (r *Registry) Lookup(kind model.RequestKind) (Transformer, error) {
	t, exists := r.transformers[kind]
	if !exists {
		return nil, fmt.Errorf("no transformer registered for %s variant", kind)
	}
	return t, nil
}

// ensureKind is the single gate protecting the dispatch from
// misrouting. It must run before any node is created.
func ensureKind(expected model.RequestKind, req *model.Request) error {
	if req.Kind != expected {
		return &TypeMismatchError{RequestID: req.ID, Expected: expected, Actual: req.Kind}
	}
	return nil
}

// applyProperties copies every request property onto the node in
// source order.
func applyProperties(node *plan.Node, req *model.Request) {
	for _, p := range req.Properties {
		node.SetProperty(p.Key, p.Value)
	}
}

// applyParameters emits one argument per parameter, encoding
// multi-valued parameters as a random choice.
func applyParameters(node *plan.Node, req *model.Request) {
	for _, p := range req.Parameters {
		node.AddArgument(p.Name, EncodeParameterValue(p))
	}
}

// EncodeParameterValue renders a parameter value for the engine. A
// value with two or more delimiter-separated tokens becomes a
// chooseRandom call selecting one token per iteration, keyed by the
// parameter name; a single token (including the empty string) passes
// through untouched.
func EncodeParameterValue(p model.Parameter) string {
	tokens := strings.Split(p.Value, model.ParameterDelimiter)
	if len(tokens) < 2 {
		return p.Value
	}
	return "${__chooseRandom(" + strings.Join(tokens, ",") + "," + p.Name + ")}"
}

// buildAssertionSubtree builds the response-assertion node wrapping
// the request's expected-content strings, or nil when the request has
// none. The subtree is identical across variants: assertion nodes are
// never variant-specific.
func buildAssertionSubtree(req *model.Request, factory plan.NodeFactory) *plan.Node {
	if len(req.Assertions) == 0 {
		return nil
	}
	node := factory.NewResponseAssertion()
	node.Name = req.ID + " Assertion"
	for _, expected := range req.Assertions {
		node.AddArgument("contains", expected)
	}
	return node
}

// buildSampler is the shared transformation sequence: guard the
// variant, create the node, name it, copy properties, optionally copy
// parameters, and append the assertion subtree last.
func buildSampler(req *model.Request, factory plan.NodeFactory, expected model.RequestKind, create func(plan.NodeFactory) *plan.Node) (*plan.Node, error) {
	if err := ensureKind(expected, req); err != nil {
		return nil, err
	}

	node := create(factory)
	node.Name = req.ID
	applyProperties(node, req)
	if expected.AcceptsParameters() {
		applyParameters(node, req)
	}
	if assertion := buildAssertionSubtree(req, factory); assertion != nil {
		node.AddChild(assertion)
	}
	return node, nil
}
