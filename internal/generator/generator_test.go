package generator

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/plangen/internal/filter"
	"github.com/wesleyorama2/plangen/internal/plan"
)

const testModel = `
name: Shop
states:
  - id: Home
    request:
      id: R1
      kind: http
      properties:
        - key: port
          value: "80"
      parameters:
        - name: q
          value: a;b;c
    transitions:
      - target: Checkout
        thinkTime:
          mean: 300
          deviation: 100.5
  - id: Checkout
    request:
      id: Check
      kind: script
      assertions:
        - "OK"
        - "200"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerator_Run(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "model.yaml", testModel)
	outputPath := filepath.Join(dir, "plan.xml")

	cfg := DefaultConfig()
	cfg.DefaultHeaders = []filter.Header{{Name: "Accept", Value: "*/*"}}
	defaults := &TestPlanDefaults{Name: "Shop Plan", Comment: "generated"}

	gen := New(cfg, defaults)
	require.Equal(t, PhaseInitialized, gen.Phase())

	err := gen.Run(modelPath, outputPath, "headerdefaults,gzip", plan.FormatXML)
	require.NoError(t, err)
	assert.Equal(t, PhaseSerialized, gen.Phase())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `name="Shop Plan"`)
	assert.Contains(t, out, `<prop name="comment">generated</prop>`)
	assert.Contains(t, out, `kind="HeaderManager"`)
	assert.Contains(t, out, `<node kind="StateController" name="Home">`)
	assert.Contains(t, out, `<arg name="Checkout">norm(300.00 100.50)</arg>`)
	assert.Contains(t, out, `<arg name="q">${__chooseRandom(a,b,c,q)}</arg>`)
	assert.Contains(t, out, `<prop name="accept-encoding">gzip</prop>`)
	assert.Contains(t, out, `<node kind="ScriptSampler" name="Check">`)
	assert.Contains(t, out, `<arg name="contains">OK</arg>`)
}

func TestGenerator_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "model.yaml", `
states:
  - id: S1
    request:
      id: R1
      kind: ftp
`)

	gen := New(nil, nil)
	err := gen.Run(modelPath, filepath.Join(dir, "plan.xml"), "", plan.FormatXML)
	require.Error(t, err)

	var vf *ValidationFailure
	require.True(t, errors.As(err, &vf))
	assert.NotNil(t, vf.Diagnostic)
	assert.False(t, vf.Diagnostic.OK())
	assert.Equal(t, PhaseValidationFailed, gen.Phase())
	assert.Nil(t, gen.Tree())
}

func TestGenerator_MissingModel(t *testing.T) {
	gen := New(nil, nil)
	err := gen.LoadModel("/nonexistent/model.yaml")
	require.Error(t, err)

	var re *ResourceError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "/nonexistent/model.yaml", re.Path)
	assert.Equal(t, PhaseInitialized, gen.Phase())
}

func TestGenerator_PhaseGuards(t *testing.T) {
	gen := New(nil, nil)

	assert.Error(t, gen.Validate())
	assert.Error(t, gen.Assemble())
	assert.Error(t, gen.ApplyFilters(""))

	result := gen.Serialize("out.xml", plan.FormatXML)
	assert.False(t, result.OK)

	var zero Generator
	assert.Equal(t, PhaseUninitialized, zero.Phase())
	assert.Error(t, zero.LoadModel("model.yaml"))
}

func TestGenerator_UnknownFilter(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "model.yaml", testModel)

	gen := New(nil, nil)
	err := gen.Run(modelPath, filepath.Join(dir, "plan.xml"), "nosuchfilter", plan.FormatXML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter not found: nosuchfilter")
	assert.Equal(t, PhaseGenerationFailed, gen.Phase())
}

func TestGenerator_SerializationFailure(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "model.yaml", testModel)

	gen := New(nil, nil)
	require.NoError(t, gen.LoadModel(modelPath))
	require.NoError(t, gen.Validate())
	require.NoError(t, gen.Assemble())
	require.NoError(t, gen.ApplyFilters(""))

	result := gen.Serialize(filepath.Join(dir, "missing", "plan.xml"), plan.FormatXML)
	assert.False(t, result.OK)
	assert.Contains(t, result.Message, "failed to write plan")
	assert.Equal(t, PhaseGenerationFailed, gen.Phase())
	// The in-memory tree survives the failed write.
	assert.NotNil(t, gen.Tree())
}

func TestGenerator_DeterministicAssembly(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "model.yaml", testModel)

	assemble := func() *plan.Tree {
		gen := New(nil, nil)
		require.NoError(t, gen.LoadModel(modelPath))
		require.NoError(t, gen.Validate())
		require.NoError(t, gen.Assemble())
		return gen.Tree()
	}

	first := assemble()
	second := assemble()

	// Plan ids are unique per run; the structure must match exactly.
	assert.NotEqual(t, first.PlanID, second.PlanID)
	assert.True(t, reflect.DeepEqual(first.Root, second.Root), "assembly must be deterministic")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "generator.yaml", `
engine:
  protocol: https
filters: headerdefaults
defaultHeaders:
  - name: Accept
    value: application/json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https", cfg.Engine.Protocol)
	// Unset settings fall back to defaults.
	assert.Equal(t, "UTF-8", cfg.Engine.Encoding)
	assert.Equal(t, "headerdefaults", cfg.Filters)
	require.Len(t, cfg.DefaultHeaders, 1)
	assert.Equal(t, "Accept", cfg.DefaultHeaders[0].Name)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	var re *ResourceError
	require.True(t, errors.As(err, &re))
}

func TestLoadTestPlanDefaults(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "defaults.json", `{"name":"Plan","properties":[{"key":"retries","value":"3"}]}`)

	defaults, err := LoadTestPlanDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "Plan", defaults.Name)
	require.Len(t, defaults.Properties, 1)
	assert.Equal(t, "retries", defaults.Properties[0].Key)

	badPath := writeFile(t, dir, "bad.yaml", "name: [")
	_, err = LoadTestPlanDefaults(badPath)
	require.Error(t, err)
}

func TestPhase_String(t *testing.T) {
	tests := map[Phase]string{
		PhaseUninitialized:    "Uninitialized",
		PhaseInitialized:      "Initialized",
		PhaseModelLoaded:      "ModelLoaded",
		PhaseValidated:        "Validated",
		PhaseTreeAssembled:    "TreeAssembled",
		PhaseFiltersApplied:   "FiltersApplied",
		PhaseSerialized:       "Serialized",
		PhaseValidationFailed: "ValidationFailed",
		PhaseGenerationFailed: "GenerationFailed",
		Phase(99):             "Unknown",
	}

	for phase, expected := range tests {
		assert.Equal(t, expected, phase.String())
	}
}
