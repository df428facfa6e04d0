package model

import (
	"strings"
	"testing"
)

func collectMessages(d *Diagnostic) []string {
	var out []string
	var walk func(*Diagnostic)
	walk = func(d *Diagnostic) {
		out = append(out, d.Message)
		for _, c := range d.Children {
			walk(c)
		}
	}
	walk(d)
	return out
}

func containsMessage(d *Diagnostic, fragment string) bool {
	for _, m := range collectMessages(d) {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}

func TestValidate_ValidModel(t *testing.T) {
	diag := Validate([]byte(sampleYAML), "model.yaml")

	if !diag.OK() {
		t.Errorf("expected a clean diagnostic tree, got: %v", collectMessages(diag))
	}
	if diag.Worst() != SeverityOK {
		t.Errorf("expected worst severity OK, got %s", diag.Worst())
	}
}

func TestValidate_Structural(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		fragment string
	}{
		{
			name:     "missing states",
			data:     `name: Empty`,
			fragment: "structural validation failed",
		},
		{
			name: "unknown request kind",
			data: `
states:
  - id: S1
    request:
      id: R1
      kind: ftp
`,
			fragment: "structural validation failed",
		},
		{
			name: "transition without target",
			data: `
states:
  - id: S1
    request:
      id: R1
      kind: http
    transitions:
      - thinkTime: {mean: 1, deviation: 1}
`,
			fragment: "structural validation failed",
		},
		{
			name:     "malformed yaml",
			data:     "states: [",
			fragment: "invalid YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag := Validate([]byte(tt.data), "model.yaml")
			if diag.OK() {
				t.Fatal("expected validation to fail")
			}
			if diag.Worst() != SeverityError {
				t.Errorf("expected worst severity ERROR, got %s", diag.Worst())
			}
			if !containsMessage(diag, tt.fragment) {
				t.Errorf("expected a diagnostic containing %q, got: %v", tt.fragment, collectMessages(diag))
			}
		})
	}
}

func TestValidate_Semantics(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		worst    Severity
		fragment string
	}{
		{
			name: "duplicate state id",
			data: `
states:
  - id: S1
    request: {id: R1, kind: http}
  - id: S1
    request: {id: R2, kind: http}
`,
			worst:    SeverityError,
			fragment: "duplicate state id: S1",
		},
		{
			name: "duplicate request id",
			data: `
states:
  - id: S1
    request: {id: R1, kind: http}
  - id: S2
    request: {id: R1, kind: http}
`,
			worst:    SeverityError,
			fragment: "duplicate request id: R1",
		},
		{
			name: "unknown transition target",
			data: `
states:
  - id: S1
    request: {id: R1, kind: http}
    transitions:
      - target: Gone
`,
			worst:    SeverityError,
			fragment: "transition target not found: Gone",
		},
		{
			name: "parameters on a script request",
			data: `
states:
  - id: S1
    request:
      id: R1
      kind: script
      parameters:
        - name: p
          value: v
`,
			worst:    SeverityError,
			fragment: "script requests do not accept parameters",
		},
		{
			name: "duplicate transition target",
			data: `
states:
  - id: S1
    request: {id: R1, kind: http}
    transitions:
      - target: S1
      - target: S1
`,
			worst:    SeverityWarning,
			fragment: "duplicate transition target: S1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag := Validate([]byte(tt.data), "model.yaml")
			if diag.OK() {
				t.Fatal("expected validation findings")
			}
			if diag.Worst() != tt.worst {
				t.Errorf("expected worst severity %s, got %s", tt.worst, diag.Worst())
			}
			if !containsMessage(diag, tt.fragment) {
				t.Errorf("expected a diagnostic containing %q, got: %v", tt.fragment, collectMessages(diag))
			}
		})
	}
}

func TestValidate_JSONInput(t *testing.T) {
	data := `{"states":[{"id":"S1","request":{"id":"R1","kind":"java"}}]}`

	diag := Validate([]byte(data), "model.json")
	if !diag.OK() {
		t.Errorf("expected a clean diagnostic tree, got: %v", collectMessages(diag))
	}
}

func TestDiagnostic_Worst(t *testing.T) {
	root := &Diagnostic{Severity: SeverityOK, Message: "root"}
	child := root.Add(SeverityOK, "child")
	child.Add(SeverityWarning, "grandchild")

	if root.Worst() != SeverityWarning {
		t.Errorf("expected WARNING, got %s", root.Worst())
	}
	if root.OK() {
		t.Error("tree with a warning must not report OK")
	}

	child.Add(SeverityError, "worse")
	if root.Worst() != SeverityError {
		t.Errorf("expected ERROR, got %s", root.Worst())
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev      Severity
		expected string
	}{
		{SeverityOK, "OK"},
		{SeverityWarning, "WARNING"},
		{SeverityError, "ERROR"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.expected {
			t.Errorf("expected '%s', got '%s'", tt.expected, got)
		}
	}
}
