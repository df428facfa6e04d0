package model

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var compiledSchema = jsonschema.MustCompileString("model.schema.json", modelSchema)

// Validate checks workload model data for structural and semantic
// well-formedness and returns the full diagnostic tree. The caller
// decides whether to proceed based on Diagnostic.OK.
func Validate(data []byte, path string) *Diagnostic {
	root := &Diagnostic{Severity: SeverityOK, Message: fmt.Sprintf("workload model %s", filepath.Base(path))}

	value, err := decodeGeneric(data, path)
	if err != nil {
		root.Add(SeverityError, err.Error())
		return root
	}

	if err := compiledSchema.Validate(value); err != nil {
		structural := root.Add(SeverityError, "structural validation failed")
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			appendSchemaCauses(structural, verr)
		} else {
			structural.Add(SeverityError, err.Error())
		}
		return root
	}

	m, err := ParseModel(data, path)
	if err != nil {
		// Schema passed but decoding into the typed model failed,
		// e.g. a YAML type mismatch the schema cannot see.
		root.Add(SeverityError, err.Error())
		return root
	}

	validateSemantics(root, m)
	return root
}

// decodeGeneric decodes model data into generic JSON values so a single
// schema covers both YAML and JSON input. YAML is round-tripped through
// JSON to normalize scalar types.
func decodeGeneric(data []byte, path string) (interface{}, error) {
	var value interface{}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return value, nil
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid model document: %w", err)
	}
	if err := json.Unmarshal(normalized, &value); err != nil {
		return nil, fmt.Errorf("invalid model document: %w", err)
	}
	return value, nil
}

// appendSchemaCauses flattens a jsonschema validation error into child
// diagnostics, one level of nesting per cause level.
func appendSchemaCauses(parent *Diagnostic, err *jsonschema.ValidationError) {
	node := parent
	if err.Message != "" {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		node = parent.Add(SeverityError, fmt.Sprintf("%s: %s", location, err.Message))
	}
	for _, cause := range err.Causes {
		appendSchemaCauses(node, cause)
	}
}

// validateSemantics checks the constraints the schema cannot express:
// identifier uniqueness, transition targets, and the no-parameters rule
// for SOAP and script requests.
func validateSemantics(root *Diagnostic, m *WorkloadModel) {
	stateIDs := make(map[string]bool)
	requestIDs := make(map[string]bool)

	for _, s := range m.States {
		if stateIDs[s.ID] {
			root.Add(SeverityError, fmt.Sprintf("duplicate state id: %s", s.ID))
		}
		stateIDs[s.ID] = true

		if requestIDs[s.Request.ID] {
			root.Add(SeverityError, fmt.Sprintf("duplicate request id: %s", s.Request.ID))
		}
		requestIDs[s.Request.ID] = true

		if !s.Request.Kind.AcceptsParameters() && len(s.Request.Parameters) > 0 {
			root.Add(SeverityError, fmt.Sprintf("request %s: %s requests do not accept parameters", s.Request.ID, s.Request.Kind))
		}
	}

	for _, s := range m.States {
		seen := make(map[string]bool)
		for _, tr := range s.Transitions {
			if !stateIDs[tr.Target] {
				root.Add(SeverityError, fmt.Sprintf("state %s: transition target not found: %s", s.ID, tr.Target))
			}
			if seen[tr.Target] {
				root.Add(SeverityWarning, fmt.Sprintf("state %s: duplicate transition target: %s", s.ID, tr.Target))
			}
			seen[tr.Target] = true
		}
	}
}
