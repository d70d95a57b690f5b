package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeModelUnavailable   = "MODEL_UNAVAILABLE"
	ErrCodeIndexUnreachable   = "INDEX_UNREACHABLE"
	ErrCodeSummaryUnavailable = "SUMMARY_UNAVAILABLE"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrEmptyQuery     = NewDomainError(ErrCodeValidation, "query cannot be empty")
	ErrInvalidTopK    = NewDomainError(ErrCodeValidation, "top_k must be between 1 and 50")
	ErrEmptyChunkText = NewDomainError(ErrCodeValidation, "chunk text cannot be empty")
	ErrMissingChunkID = NewDomainError(ErrCodeValidation, "chunk id is required")
)

// Collaborator errors
var (
	ErrModelUnavailable   = NewDomainError(ErrCodeModelUnavailable, "embedding model unavailable")
	ErrIndexUnreachable   = NewDomainError(ErrCodeIndexUnreachable, "vector index unreachable")
	ErrSummaryUnavailable = NewDomainError(ErrCodeSummaryUnavailable, "summarizer unavailable")
)
