package transform

import (
	"github.com/wesleyorama2/plangen/internal/model"
	"github.com/wesleyorama2/plangen/internal/plan"
)

// HTTPTransformer builds HTTP sampler nodes. HTTP requests carry
// properties, parameters and assertions.
type HTTPTransformer struct{}

func (HTTPTransformer) Kind() model.RequestKind { return model.KindHTTP }

func (HTTPTransformer) Transform(req *model.Request, factory plan.NodeFactory) (*plan.Node, error) {
	return buildSampler(req, factory, model.KindHTTP, plan.NodeFactory.NewHTTPSampler)
}

// JavaTransformer builds method-invocation sampler nodes. Java
// requests carry properties, parameters and assertions.
type JavaTransformer struct{}

func (JavaTransformer) Kind() model.RequestKind { return model.KindJava }

func (JavaTransformer) Transform(req *model.Request, factory plan.NodeFactory) (*plan.Node, error) {
	return buildSampler(req, factory, model.KindJava, plan.NodeFactory.NewJavaSampler)
}

// SOAPTransformer builds SOAP call sampler nodes. SOAP requests carry
// no parameters; the model's structural typing prevents them upstream.
type SOAPTransformer struct{}

func (SOAPTransformer) Kind() model.RequestKind { return model.KindSOAP }

func (SOAPTransformer) Transform(req *model.Request, factory plan.NodeFactory) (*plan.Node, error) {
	return buildSampler(req, factory, model.KindSOAP, plan.NodeFactory.NewSOAPSampler)
}

// ScriptTransformer builds script evaluation sampler nodes. Script
// requests carry no parameters; the script source travels as a
// property like any other.
type ScriptTransformer struct{}

func (ScriptTransformer) Kind() model.RequestKind { return model.KindScript }

func (ScriptTransformer) Transform(req *model.Request, factory plan.NodeFactory) (*plan.Node, error) {
	return buildSampler(req, factory, model.KindScript, plan.NodeFactory.NewScriptSampler)
}
