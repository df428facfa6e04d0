package model

// RequestKind identifies one of the closed set of request variants
// supported by the transformation core.
type RequestKind string

const (
	KindHTTP   RequestKind = "http"
	KindJava   RequestKind = "java"
	KindSOAP   RequestKind = "soap"
	KindScript RequestKind = "script"
)

// Valid reports whether the kind is one of the supported variants.
func (k RequestKind) Valid() bool {
	switch k {
	case KindHTTP, KindJava, KindSOAP, KindScript:
		return true
	}
	return false
}

// AcceptsParameters reports whether the variant carries a parameter list.
// SOAP and script requests intentionally do not.
func (k RequestKind) AcceptsParameters() bool {
	return k == KindHTTP || k == KindJava
}

// ParameterDelimiter separates alternative values inside a single
// parameter value. A value with two or more delimited tokens means
// "pick one of these at random per iteration".
const ParameterDelimiter = ";"

// Property is a plain key/value pair copied verbatim onto the generated
// execution node. Source order is preserved for reproducible output.
type Property struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

// Parameter is a named argument of an HTTP or Java request. The value
// may hold several alternatives separated by ParameterDelimiter.
type Parameter struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// ThinkTime describes a normally distributed pause between actions.
// A nil *ThinkTime means the think time is undefined.
type ThinkTime struct {
	Mean      float64 `yaml:"mean" json:"mean"`
	Deviation float64 `yaml:"deviation" json:"deviation"`
}

// Request is one user action of the workload model. The Kind field
// selects the variant; Parameters is only meaningful for variants where
// AcceptsParameters is true.
type Request struct {
	ID         string      `yaml:"id" json:"id"`
	Kind       RequestKind `yaml:"kind" json:"kind"`
	Properties []Property  `yaml:"properties,omitempty" json:"properties,omitempty"`
	Parameters []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Assertions []string    `yaml:"assertions,omitempty" json:"assertions,omitempty"`
}

// Transition is one outbound edge of a state, annotated with the think
// time spent before following it.
type Transition struct {
	Target    string     `yaml:"target" json:"target"`
	ThinkTime *ThinkTime `yaml:"thinkTime,omitempty" json:"thinkTime,omitempty"`
}

// State is one node of the workload graph: a request to execute plus
// the outbound transitions. A state without transitions is a final
// state and is valid.
type State struct {
	ID          string       `yaml:"id" json:"id"`
	Request     Request      `yaml:"request" json:"request"`
	Transitions []Transition `yaml:"transitions,omitempty" json:"transitions,omitempty"`
}

// WorkloadModel is the already-materialized behavior graph the
// generator walks. States keep their source order; tree assembly
// follows that order exactly.
type WorkloadModel struct {
	Name   string  `yaml:"name" json:"name"`
	States []State `yaml:"states" json:"states"`
}

// State returns the state with the given id, or nil.
func (m *WorkloadModel) State(id string) *State {
	for i := range m.States {
		if m.States[i].ID == id {
			return &m.States[i]
		}
	}
	return nil
}
