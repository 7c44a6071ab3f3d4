package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ResolveFailed indicates answer resolution failed.
	ResolveFailed AppErrorType = iota
	// AcquireFailed indicates template acquisition failed.
	AcquireFailed
	// ConfigLoadFailed indicates template config discovery failed.
	ConfigLoadFailed
	// BuildFailed indicates the render pipeline failed.
	BuildFailed
	// HookFailed indicates the completion hook failed.
	HookFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewResolveError creates a resolve error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewAcquireError creates an acquire error.
func NewAcquireError(message string, cause error) *AppError {
	return NewAppError(AcquireFailed, message, cause)
}

// NewConfigLoadError creates a config load error.
func NewConfigLoadError(message string, cause error) *AppError {
	return NewAppError(ConfigLoadFailed, message, cause)
}

// NewBuildError creates a build error.
func NewBuildError(message string, cause error) *AppError {
	return NewAppError(BuildFailed, message, cause)
}

// NewHookError creates a completion hook error.
func NewHookError(message string, cause error) *AppError {
	return NewAppError(HookFailed, message, cause)
}
