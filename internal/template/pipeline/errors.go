package pipeline

import "fmt"

// RenderError indicates a file failed to render. The message carries the
// offending file's path as a bracketed prefix.
type RenderError struct {
	// Path is the relative path of the file that failed.
	Path string
	// Cause is the underlying render error.
	Cause error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("[%s] %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a render error annotated with the file path.
func NewRenderError(path string, cause error) *RenderError {
	return &RenderError{Path: path, Cause: cause}
}

// CollectError indicates the staging directory could not be enumerated.
type CollectError struct {
	// StagingDir is the directory that failed to enumerate.
	StagingDir string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *CollectError) Error() string {
	return fmt.Sprintf("failed to collect template files from '%s': %v", e.StagingDir, e.Cause)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *CollectError) Unwrap() error {
	return e.Cause
}

// NewCollectError creates a collect error.
func NewCollectError(stagingDir string, cause error) *CollectError {
	return &CollectError{StagingDir: stagingDir, Cause: cause}
}

// PromptError indicates the interactive prompt capability failed.
type PromptError struct {
	// Cause is the underlying prompt error.
	Cause error
}

// Error implements the error interface.
func (e *PromptError) Error() string {
	return fmt.Sprintf("prompt failed: %v", e.Cause)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *PromptError) Unwrap() error {
	return e.Cause
}

// NewPromptError creates a prompt error.
func NewPromptError(cause error) *PromptError {
	return &PromptError{Cause: cause}
}

// WriteError indicates a file or directory could not be written.
type WriteError struct {
	// Path is the output path that failed.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write '%s': %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// NewWriteError creates a write error.
func NewWriteError(path string, cause error) *WriteError {
	return &WriteError{Path: path, Cause: cause}
}
