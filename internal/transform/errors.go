package transform

import (
	"fmt"

	"github.com/wesleyorama2/plangen/internal/model"
)

// TypeMismatchError reports a request routed to the wrong transformer.
// It indicates a dispatch bug, never bad input: the orchestrator aborts
// the whole generation when it sees one.
type TypeMismatchError struct {
	RequestID string
	Expected  model.RequestKind
	Actual    model.RequestKind
}

// Error returns the mismatch description with full dispatch context.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("request %q: transformer for %s variant received %s variant", e.RequestID, e.Expected, e.Actual)
}
