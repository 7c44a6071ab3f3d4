package discovery

import "fmt"

// DiscoveryErrorType represents the type of config discovery error.
type DiscoveryErrorType int

const (
	// DiscoverySearchFailed indicates the directory walk failed.
	DiscoverySearchFailed DiscoveryErrorType = iota
	// DiscoveryLoadFailed indicates a found config file could not be read.
	DiscoveryLoadFailed
	// DiscoveryParseFailed indicates a found config file is malformed.
	DiscoveryParseFailed
)

// String returns the string representation of the error type.
func (t DiscoveryErrorType) String() string {
	switch t {
	case DiscoverySearchFailed:
		return "SearchFailed"
	case DiscoveryLoadFailed:
		return "LoadFailed"
	case DiscoveryParseFailed:
		return "ParseFailed"
	default:
		return "Unknown"
	}
}

// DiscoveryError represents a configuration discovery error.
type DiscoveryError struct {
	// Type is the error type classification.
	Type DiscoveryErrorType
	// Path is the directory or file that caused the error.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("config discovery error [%s] at '%s': %v",
		e.Type.String(), e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}

// NewSearchError creates a search failed error.
func NewSearchError(path string, cause error) *DiscoveryError {
	return &DiscoveryError{Type: DiscoverySearchFailed, Path: path, Cause: cause}
}

// NewLoadError creates a load failed error.
func NewLoadError(path string, cause error) *DiscoveryError {
	return &DiscoveryError{Type: DiscoveryLoadFailed, Path: path, Cause: cause}
}

// NewParseError creates a parse failed error.
func NewParseError(path string, cause error) *DiscoveryError {
	return &DiscoveryError{Type: DiscoveryParseFailed, Path: path, Cause: cause}
}
