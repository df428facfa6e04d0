package generator

import (
	"fmt"

	"github.com/wesleyorama2/plangen/internal/model"
)

// ResourceError reports a missing or unreadable input file. It always
// carries the offending path and halts the stage it occurred in.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource error: %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// ValidationFailure reports a model that failed structural or semantic
// checks. The full diagnostic tree is preserved for display.
type ValidationFailure struct {
	Diagnostic *model.Diagnostic
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("model validation failed: %s", e.Diagnostic.Message)
}

// SerializationFailure reports a failed plan write. The in-memory tree
// is still intact, but the generation run counts as failed.
type SerializationFailure struct {
	Path string
	Err  error
}

func (e *SerializationFailure) Error() string {
	return fmt.Sprintf("failed to write plan to %s: %v", e.Path, e.Err)
}

func (e *SerializationFailure) Unwrap() error { return e.Err }
