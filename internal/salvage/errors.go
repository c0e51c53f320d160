package salvage

import "fmt"

// ParseError is returned when every repair strategy has been exhausted.
// Callers are expected to recover by falling back to deterministic
// structuring rather than surfacing this to the end user.
type ParseError struct {
	Attempts int
	LastErr  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("salvage: no repair strategy produced valid JSON after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *ParseError) Unwrap() error {
	return e.LastErr
}
