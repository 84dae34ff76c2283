package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
	CodeValidation       ErrorCode = "VALIDATION_ERROR"
	CodeRequestCancelled ErrorCode = "REQUEST_CANCELLED"

	// Generation pipeline errors
	CodeNoveltyExhausted ErrorCode = "NOVELTY_EXHAUSTED"
	CodeLLMServiceError  ErrorCode = "LLM_SERVICE_ERROR"
	CodeLLMAuthError     ErrorCode = "LLM_AUTH_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewRequestCancelledError marks an abort caused by the caller's context, so
// it can be reported as client-initiated rather than a server fault.
func NewRequestCancelledError(cause error) *DomainError {
	return NewError(CodeRequestCancelled, "request cancelled by client", cause)
}

// NewNoveltyExhaustedError signals that every retry produced only
// already-seen questions.
func NewNoveltyExhaustedError() *DomainError {
	return NewError(CodeNoveltyExhausted, "no new unique questions found after multiple attempts", nil)
}

// NewLLMServiceError wraps a retryable generation-service failure.
func NewLLMServiceError(cause error) *DomainError {
	return NewError(CodeLLMServiceError, "generation service request failed", cause)
}

// NewLLMAuthError wraps a non-retryable configuration or credential failure
// from the generation service. The retry loop aborts immediately on these.
func NewLLMAuthError(cause error) *DomainError {
	return NewError(CodeLLMAuthError, "generation service rejected credentials", cause)
}

// IsRetryable reports whether an upstream failure should be consumed as a
// zero-yield attempt rather than aborting the request.
func IsRetryable(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code != CodeLLMAuthError
	}
	return true
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field errors so a response can report all of
// them at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Error()
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}
