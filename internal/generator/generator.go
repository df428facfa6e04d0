package generator

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wesleyorama2/plangen/internal/filter"
	"github.com/wesleyorama2/plangen/internal/model"
	"github.com/wesleyorama2/plangen/internal/plan"
	"github.com/wesleyorama2/plangen/internal/transform"
)

// Phase is the orchestrator's position in the generation pipeline.
// Transitions are one-directional and never retried.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseInitialized
	PhaseModelLoaded
	PhaseValidated
	PhaseTreeAssembled
	PhaseFiltersApplied
	PhaseSerialized
	PhaseValidationFailed
	PhaseGenerationFailed
)

// String returns the phase name used in logs and errors.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseInitialized:
		return "Initialized"
	case PhaseModelLoaded:
		return "ModelLoaded"
	case PhaseValidated:
		return "Validated"
	case PhaseTreeAssembled:
		return "TreeAssembled"
	case PhaseFiltersApplied:
		return "FiltersApplied"
	case PhaseSerialized:
		return "Serialized"
	case PhaseValidationFailed:
		return "ValidationFailed"
	case PhaseGenerationFailed:
		return "GenerationFailed"
	}
	return "Unknown"
}

// Result reports the outcome of a serialization attempt to the caller.
type Result struct {
	OK      bool
	Message string
}

// Generator sequences validation, tree assembly, filtering and
// serialization for one workload model. It owns no transformation
// logic itself. A Generator handles one model per instance; create a
// new one for each generation run.
type Generator struct {
	cfg          *Config
	defaults     *TestPlanDefaults
	factory      plan.NodeFactory
	transformers *transform.Registry
	filters      *filter.Registry
	log          *zap.Logger

	phase     Phase
	modelData []byte
	modelPath string
	model     *model.WorkloadModel
	diag      *model.Diagnostic
	tree      *plan.Tree
}

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the structured logger. The default is a no-op
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithFactory overrides the node factory.
func WithFactory(f plan.NodeFactory) Option {
	return func(g *Generator) { g.factory = f }
}

// WithTransformers overrides the transformer registry.
func WithTransformers(r *transform.Registry) Option {
	return func(g *Generator) { g.transformers = r }
}

// WithFilters overrides the filter registry.
func WithFilters(r *filter.Registry) Option {
	return func(g *Generator) { g.filters = r }
}

// New creates an initialized Generator. Passing nil for cfg or
// defaults selects empty defaults.
func New(cfg *Config, defaults *TestPlanDefaults, opts ...Option) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if defaults == nil {
		defaults = &TestPlanDefaults{}
	}

	filters := filter.NewRegistry()
	filters.MustRegister(filter.NewHeaderDefaults(cfg.DefaultHeaders))
	filters.MustRegister(filter.GZIPEncoding{})

	g := &Generator{
		cfg:          cfg,
		defaults:     defaults,
		factory:      plan.NewEngineFactory(),
		transformers: transform.DefaultRegistry(),
		filters:      filters,
		log:          zap.NewNop(),
		phase:        PhaseInitialized,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Phase returns the current pipeline phase.
func (g *Generator) Phase() Phase { return g.phase }

// Diagnostic returns the validation diagnostic tree, or nil before
// Validate has run.
func (g *Generator) Diagnostic() *model.Diagnostic { return g.diag }

// Tree returns the assembled plan tree, or nil before assembly.
func (g *Generator) Tree() *plan.Tree { return g.tree }

// Filters returns the filter registry, for listing.
func (g *Generator) Filters() *filter.Registry { return g.filters }

func (g *Generator) requirePhase(want Phase, op string) error {
	if g.phase != want {
		return fmt.Errorf("cannot %s in phase %s (want %s)", op, g.phase, want)
	}
	return nil
}

// LoadModel reads the workload model file. The raw bytes are kept for
// validation.
func (g *Generator) LoadModel(path string) error {
	if err := g.requirePhase(PhaseInitialized, "load model"); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &ResourceError{Path: path, Err: err}
	}

	g.modelData = data
	g.modelPath = path
	g.phase = PhaseModelLoaded
	g.log.Debug("model loaded", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// Validate runs structural and semantic validation. Generation only
// proceeds when the diagnostic tree is clean.
func (g *Generator) Validate() error {
	if err := g.requirePhase(PhaseModelLoaded, "validate"); err != nil {
		return err
	}

	g.diag = model.Validate(g.modelData, g.modelPath)
	if !g.diag.OK() {
		g.phase = PhaseValidationFailed
		return &ValidationFailure{Diagnostic: g.diag}
	}

	m, err := model.ParseModel(g.modelData, g.modelPath)
	if err != nil {
		g.phase = PhaseValidationFailed
		return err
	}

	g.model = m
	g.phase = PhaseValidated
	g.log.Debug("model validated", zap.Int("states", len(m.States)))
	return nil
}

// Assemble builds the execution tree: a test-plan root, a session
// controller, and one state controller per model state owning the
// sampler subtree its request transformer produced. Assembly order is
// model source order, which makes output deterministic.
func (g *Generator) Assemble() error {
	if err := g.requirePhase(PhaseValidated, "assemble tree"); err != nil {
		return err
	}

	root := g.factory.NewTestPlan()
	root.Name = g.defaults.Name
	if root.Name == "" {
		root.Name = g.model.Name
	}
	if g.defaults.Comment != "" {
		root.SetProperty("comment", g.defaults.Comment)
	}
	root.SetProperty("protocol", g.cfg.Engine.Protocol)
	root.SetProperty("encoding", g.cfg.Engine.Encoding)
	for _, p := range g.defaults.Properties {
		root.SetProperty(p.Key, p.Value)
	}

	session := g.factory.NewSessionController()
	session.Name = "Session"
	root.AddChild(session)

	for i := range g.model.States {
		state := &g.model.States[i]

		controller := g.factory.NewStateController()
		controller.Name = state.ID
		for _, tr := range state.Transitions {
			token, err := transform.FormatThinkTime(tr.ThinkTime)
			if err != nil {
				g.phase = PhaseGenerationFailed
				return fmt.Errorf("state %s: %w", state.ID, err)
			}
			controller.AddArgument(tr.Target, token)
		}

		t, err := g.transformers.Lookup(state.Request.Kind)
		if err != nil {
			g.phase = PhaseGenerationFailed
			return fmt.Errorf("state %s: %w", state.ID, err)
		}
		sampler, err := t.Transform(&state.Request, g.factory)
		if err != nil {
			g.phase = PhaseGenerationFailed
			return fmt.Errorf("state %s: %w", state.ID, err)
		}
		controller.AddChild(sampler)
		session.AddChild(controller)
	}

	g.tree = &plan.Tree{PlanID: uuid.NewString(), Root: root}
	g.phase = PhaseTreeAssembled
	g.log.Debug("tree assembled", zap.String("planId", g.tree.PlanID))
	return nil
}

// ApplyFilters runs the selected post-processing filters over the
// assembled tree. An empty selection falls back to the configured
// default; selection order is execution order.
func (g *Generator) ApplyFilters(selection string) error {
	if err := g.requirePhase(PhaseTreeAssembled, "apply filters"); err != nil {
		return err
	}

	if selection == "" {
		selection = g.cfg.Filters
	}
	pipeline, err := g.filters.Select(selection)
	if err != nil {
		g.phase = PhaseGenerationFailed
		return err
	}
	if err := pipeline.Apply(g.tree, g.model); err != nil {
		g.phase = PhaseGenerationFailed
		return err
	}

	g.phase = PhaseFiltersApplied
	g.log.Debug("filters applied", zap.String("selection", selection))
	return nil
}

// Serialize writes the plan document. The outcome is reported as a
// Result rather than a fatal condition: the tree stays intact even
// when the write fails.
func (g *Generator) Serialize(path string, format plan.Format) Result {
	if err := g.requirePhase(PhaseFiltersApplied, "serialize"); err != nil {
		return Result{OK: false, Message: err.Error()}
	}

	out, err := os.Create(path)
	if err != nil {
		g.phase = PhaseGenerationFailed
		return Result{OK: false, Message: (&SerializationFailure{Path: path, Err: err}).Error()}
	}
	if err := g.tree.Write(out, format); err != nil {
		out.Close()
		g.phase = PhaseGenerationFailed
		return Result{OK: false, Message: (&SerializationFailure{Path: path, Err: err}).Error()}
	}
	if err := out.Close(); err != nil {
		g.phase = PhaseGenerationFailed
		return Result{OK: false, Message: (&SerializationFailure{Path: path, Err: err}).Error()}
	}

	g.phase = PhaseSerialized
	g.log.Debug("plan serialized", zap.String("path", path), zap.String("format", string(format)))
	return Result{OK: true, Message: fmt.Sprintf("plan written to %s", path)}
}

// Run drives the whole pipeline from model file to written document.
func (g *Generator) Run(modelPath, outputPath, filterSelection string, format plan.Format) error {
	if err := g.LoadModel(modelPath); err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if err := g.Assemble(); err != nil {
		return err
	}
	if err := g.ApplyFilters(filterSelection); err != nil {
		return err
	}
	if result := g.Serialize(outputPath, format); !result.OK {
		return fmt.Errorf("%s", result.Message)
	}
	return nil
}
