package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeAPIError          = "API_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeNoData            = "NO_DATA"
	ErrCodeExportError       = "EXPORT_ERROR"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewAPIError wraps a transport or decode failure, keeping the cause text
func NewAPIError(message string, cause error) error {
	return NewDomainError(ErrCodeAPIError, message, cause)
}

// NewKeywordNotFoundError creates a not-found error for an analysis miss,
// carrying the keys the upstream response actually contained
func NewKeywordNotFoundError(keyword string, availableKeys []string) error {
	return NewDomainError(ErrCodeNotFound,
		fmt.Sprintf("no analysis data found for keyword: %s. Available keywords: [%s]",
			keyword, strings.Join(availableKeys, ", ")),
		nil)
}

// NewNoDataError creates an error for a null or empty upstream response
func NewNoDataError(keyword string) error {
	return NewDomainError(ErrCodeNoData, fmt.Sprintf("no data returned for keyword: %s", keyword), nil)
}

// NewExportError creates an export error
func NewExportError(message string, cause error) error {
	return NewDomainError(ErrCodeExportError, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewUnsupportedFormatError creates an unsupported format error
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil)
}

// ErrorCode extracts the domain error code from err, or "" when err is
// not a DomainError
func ErrorCode(err error) string {
	var domainErr DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsErrorCode reports whether err is a DomainError with the given code
func IsErrorCode(err error, code string) bool {
	return ErrorCode(err) == code
}
