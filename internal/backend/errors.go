package backend

import "fmt"

// OperationError is a structured domain failure reported by the backend
// (a MutationResult with Success=false). It is distinct from transport
// errors, which are plain wrapped errors; callers separate the two with
// errors.As.
type OperationError struct {
	Op      string
	Message string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}
