package engine

import "fmt"

// UndefinedVariableError indicates a marker referenced a variable that is
// not present in the answer map.
type UndefinedVariableError struct {
	// Name is the missing variable name.
	Name string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined template variable %q", e.Name)
}

// NewUndefinedVariableError creates an undefined variable error.
func NewUndefinedVariableError(name string) *UndefinedVariableError {
	return &UndefinedVariableError{Name: name}
}
