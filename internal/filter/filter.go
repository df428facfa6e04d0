package filter

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/plangen/internal/model"
	"github.com/wesleyorama2/plangen/internal/plan"
)

// Filter is one post-processing stage applied to the assembled tree
// before serialization. Filters operate on the generic tree shape only
// and may not assume which transformer produced a subtree. Execution
// order follows the selection string; filters are not guaranteed to be
// idempotent.
type Filter interface {
	// Name is the identifier used in filter selection strings.
	Name() string

	// Description is a one-line summary for the filters listing.
	Description() string

	// Apply mutates the tree in place. The workload model is
	// available read-only for filters that need model context.
	Apply(tree *plan.Tree, m *model.WorkloadModel) error
}

// Pipeline applies an ordered sequence of filters.
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates a pipeline running the given filters in order.
func NewPipeline(filters ...Filter) *Pipeline {
	return &Pipeline{filters: filters}
}

// Apply runs every filter in order. The first failure aborts the
// pipeline, tagged with the failing filter's name.
func (p *Pipeline) Apply(tree *plan.Tree, m *model.WorkloadModel) error {
	for _, f := range p.filters {
		if err := f.Apply(tree, m); err != nil {
			return fmt.Errorf("filter %s: %w", f.Name(), err)
		}
	}
	return nil
}

// Registry holds the available filters, keyed by name. Listing order
// is registration order.
type Registry struct {
	filters map[string]Filter
	names   []string
}

// NewRegistry creates an empty filter registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Filter)}
}

// DefaultRegistry returns a registry with all built-in filters
// registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(NewHeaderDefaults(nil))
	r.MustRegister(GZIPEncoding{})
	return r
}

// Register adds a filter. Returns an error on a duplicate or empty
// name.
func (r *Registry) Register(f Filter) error {
	if f == nil {
		return fmt.Errorf("cannot register nil filter")
	}
	name := f.Name()
	if name == "" {
		return fmt.Errorf("filter name cannot be empty")
	}
	if _, exists := r.filters[name]; exists {
		return fmt.Errorf("filter %q is already registered", name)
	}
	r.filters[name] = f
	r.names = append(r.names, name)
	return nil
}

// MustRegister adds a filter and panics on error.
func (r *Registry) MustRegister(f Filter) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Get returns a filter by name.
func (r *Registry) Get(name string) (Filter, error) {
	f, exists := r.filters[name]
	if !exists {
		return nil, fmt.Errorf("filter not found: %s", name)
	}
	return f, nil
}

// Names returns all registered filter names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Select parses a comma-separated selection string into a pipeline.
// An empty selection yields an empty pipeline. Selection order is
// execution order.
func (r *Registry) Select(selection string) (*Pipeline, error) {
	var filters []Filter
	for _, name := range strings.Split(selection, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return NewPipeline(filters...), nil
}
