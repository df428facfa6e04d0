package model

// Severity grades a diagnostic message. Generation only proceeds when
// the whole diagnostic tree is SeverityOK.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the severity label used in printed diagnostics.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "OK"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Diagnostic is one node of the validation report: a human-readable
// message with a severity, plus nested child diagnostics. Printers
// indent one level per nesting step.
type Diagnostic struct {
	Severity Severity
	Message  string
	Children []*Diagnostic
}

// Add appends a child diagnostic and returns it.
func (d *Diagnostic) Add(sev Severity, message string) *Diagnostic {
	child := &Diagnostic{Severity: sev, Message: message}
	d.Children = append(d.Children, child)
	return child
}

// Worst returns the highest severity found in the tree rooted at d.
func (d *Diagnostic) Worst() Severity {
	worst := d.Severity
	for _, c := range d.Children {
		if w := c.Worst(); w > worst {
			worst = w
		}
	}
	return worst
}

// OK reports whether the whole tree is clean.
func (d *Diagnostic) OK() bool {
	return d.Worst() == SeverityOK
}
