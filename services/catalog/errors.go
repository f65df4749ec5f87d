package catalog

import "fmt"

// NotFoundError signals a missing catalog entity.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InactiveEntityError signals an operation against a soft-deleted entity.
type InactiveEntityError struct {
	Kind string
	ID   string
}

func (e *InactiveEntityError) Error() string {
	return fmt.Sprintf("%s %s is inactive", e.Kind, e.ID)
}

// ValidationError signals a write rejected by configuration validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
