package structurer

import "fmt"

// StructuringError wraps a failure of the AI structuring path. It is
// recovered by falling back to deterministic structuring and is never
// surfaced to the end user as an error.
type StructuringError struct {
	Stage string // "generate", "salvage", "schema", "decode"
	Cause error
}

func (e *StructuringError) Error() string {
	return fmt.Sprintf("ai structuring failed at %s: %v", e.Stage, e.Cause)
}

func (e *StructuringError) Unwrap() error {
	return e.Cause
}
