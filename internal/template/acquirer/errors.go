package acquirer

import "fmt"

// AcquireErrorType represents the type of acquisition error.
type AcquireErrorType int

const (
	// AcquireNotFound indicates the reference is neither a repository
	// locator nor an existing local path.
	AcquireNotFound AcquireErrorType = iota
	// AcquireCloneFailed indicates the repository clone failed.
	AcquireCloneFailed
	// AcquireCopyFailed indicates the local tree copy failed.
	AcquireCopyFailed
	// AcquireInvalidRef indicates the reference is malformed.
	AcquireInvalidRef
)

// String returns the string representation of the error type.
func (t AcquireErrorType) String() string {
	switch t {
	case AcquireNotFound:
		return "NotFound"
	case AcquireCloneFailed:
		return "CloneFailed"
	case AcquireCopyFailed:
		return "CopyFailed"
	case AcquireInvalidRef:
		return "InvalidRef"
	default:
		return "Unknown"
	}
}

// AcquireError represents a template acquisition error.
type AcquireError struct {
	// Type is the error type classification.
	Type AcquireErrorType
	// Ref is the template reference that caused the error.
	Ref string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *AcquireError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("acquire error [%s] for template '%s': %s (caused by: %v)",
			e.Type.String(), e.Ref, e.Message, e.Cause)
	}
	return fmt.Sprintf("acquire error [%s] for template '%s': %s",
		e.Type.String(), e.Ref, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *AcquireError) Unwrap() error {
	return e.Cause
}

// NewAcquireError creates a new AcquireError.
func NewAcquireError(typ AcquireErrorType, ref, message string, cause error) *AcquireError {
	return &AcquireError{
		Type:    typ,
		Ref:     ref,
		Message: message,
		Cause:   cause,
	}
}

// NewNotFoundError creates a template not found error.
func NewNotFoundError(ref string) *AcquireError {
	return NewAcquireError(AcquireNotFound, ref, "template not found", nil)
}

// NewCloneError creates a clone failed error.
func NewCloneError(ref string, cause error) *AcquireError {
	return NewAcquireError(AcquireCloneFailed, ref, "failed to clone repository", cause)
}

// NewCopyError creates a copy failed error.
func NewCopyError(ref string, cause error) *AcquireError {
	return NewAcquireError(AcquireCopyFailed, ref, "failed to copy template", cause)
}

// NewInvalidRefError creates an invalid reference error.
func NewInvalidRefError(ref string, cause error) *AcquireError {
	return NewAcquireError(AcquireInvalidRef, ref, "invalid template reference", cause)
}
