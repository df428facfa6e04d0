package filter

import (
	"github.com/wesleyorama2/plangen/internal/model"
	"github.com/wesleyorama2/plangen/internal/plan"
)

// Header is one default header injected by the HeaderDefaults filter.
type Header struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// HeaderDefaults injects a header-manager node ahead of the generated
// content so every sampler inherits the configured default headers.
type HeaderDefaults struct {
	headers []Header
}

// NewHeaderDefaults creates the filter with the given headers. With no
// headers configured the filter is a no-op.
func NewHeaderDefaults(headers []Header) *HeaderDefaults {
	return &HeaderDefaults{headers: headers}
}

// SetHeaders replaces the configured headers. The generator calls this
// after loading its configuration.
func (f *HeaderDefaults) SetHeaders(headers []Header) {
	f.headers = headers
}

func (f *HeaderDefaults) Name() string { return "headerdefaults" }

func (f *HeaderDefaults) Description() string {
	return "inject a header manager with the configured default headers"
}

func (f *HeaderDefaults) Apply(tree *plan.Tree, _ *model.WorkloadModel) error {
	if len(f.headers) == 0 || tree.Root == nil {
		return nil
	}

	manager := &plan.Node{Kind: plan.KindHeaderManager, Name: "Header Defaults"}
	for _, h := range f.headers {
		manager.AddArgument(h.Name, h.Value)
	}
	tree.Root.PrependChild(manager)
	return nil
}

// GZIPEncoding marks every HTTP sampler as accepting gzip-compressed
// responses.
type GZIPEncoding struct{}

func (GZIPEncoding) Name() string { return "gzip" }

func (GZIPEncoding) Description() string {
	return "request gzip response encoding on every HTTP sampler"
}

func (GZIPEncoding) Apply(tree *plan.Tree, _ *model.WorkloadModel) error {
	tree.Walk(func(n *plan.Node) {
		if n.Kind == plan.KindHTTPSampler {
			n.SetProperty("accept-encoding", "gzip")
		}
	})
	return nil
}
