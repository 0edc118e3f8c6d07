package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation           ErrorCode = "VALIDATION_ERROR"
	CodeMissingField         ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat        ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange           ErrorCode = "OUT_OF_RANGE"
	CodeInvalidURL           ErrorCode = "INVALID_URL"
	CodeInvalidQuestionCount ErrorCode = "INVALID_QUESTION_COUNT"
	CodeURLInputDisabled     ErrorCode = "URL_INPUT_DISABLED"

	// Attempt lifecycle errors
	CodeAttemptNotFound      ErrorCode = "ATTEMPT_NOT_FOUND"
	CodeAttemptNotReady      ErrorCode = "ATTEMPT_NOT_READY"
	CodeAttemptLoaded        ErrorCode = "ATTEMPT_ALREADY_LOADED"
	CodeAttemptSubmitted     ErrorCode = "ATTEMPT_SUBMITTED"
	CodeAttemptNotSubmitted  ErrorCode = "ATTEMPT_NOT_SUBMITTED"
	CodeIncompleteAttempt    ErrorCode = "INCOMPLETE_ATTEMPT"
	CodeInvalidAnswer        ErrorCode = "INVALID_ANSWER"
	CodeEmptyQuiz            ErrorCode = "EMPTY_QUIZ"
	CodeResultNotFound       ErrorCode = "RESULT_NOT_FOUND"
	CodeBackendInvalidInput  ErrorCode = "BACKEND_INVALID_INPUT"
	CodeBackendServerError   ErrorCode = "BACKEND_SERVER_ERROR"
	CodeBackendError         ErrorCode = "BACKEND_ERROR"
	CodeBackendUnavailable   ErrorCode = "BACKEND_UNAVAILABLE"
	CodeBackendInvalidResult ErrorCode = "BACKEND_INVALID_RESPONSE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
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

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a key/value pair that is echoed back to API clients.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err is, or wraps, a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewAttemptNotFoundError(attemptID string) *DomainError {
	return NewError(CodeAttemptNotFound, fmt.Sprintf("Attempt not found with ID: %s", attemptID), nil)
}

func NewResultNotFoundError(resultID string) *DomainError {
	return NewError(CodeResultNotFound, fmt.Sprintf("Result not found with ID: %s", resultID), nil)
}

func NewInvalidAnswerError(letter Letter) *DomainError {
	return NewError(CodeInvalidAnswer, fmt.Sprintf("Invalid option %q, expected one of A, B, C, D", string(letter)), nil)
}

// ErrEmptyQuiz is returned when a score is requested for a quiz without questions.
var ErrEmptyQuiz = NewError(CodeEmptyQuiz, "Quiz has no questions", nil)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is returned by request validation; it is caught before any network call.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether any of the field errors carries code.
func (v ValidationErrors) Has(code ErrorCode) bool {
	for _, e := range v {
		if e.Code == code {
			return true
		}
	}
	return false
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewInvalidURLError(field, value string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidURL,
		Message: "URL must be absolute and start with http:// or https://",
		Value:   value,
	}
}

func NewInvalidQuestionCountError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidQuestionCount,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}

func NewURLInputDisabledError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeURLInputDisabled,
		Message: "URL input is currently disabled",
	}
}
