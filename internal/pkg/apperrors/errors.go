package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for every failure kind the catalog reports
var (
	ErrNotFound         = errors.New("resource not found")
	ErrAlreadyExists    = errors.New("resource already exists")
	ErrAlreadyEnrolled  = errors.New("student already enrolled")
	ErrNotEnrolled      = errors.New("student not enrolled")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
)

// Kind classifies a CatalogError for programmatic handling
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindAlreadyExists   Kind = "ALREADY_EXISTS"
	KindAlreadyEnrolled Kind = "ALREADY_ENROLLED"
	KindNotEnrolled     Kind = "NOT_ENROLLED"
	KindConflict        Kind = "CONFLICT"
	KindValidation      Kind = "VALIDATION_ERROR"
	KindInternal        Kind = "INTERNAL"
)

// Machine-readable codes, in the same scheme as the API error codes
const (
	CodeNotFound        = "RES_001"
	CodeAlreadyExists   = "RES_002"
	CodeConflict        = "RES_004"
	CodeAlreadyEnrolled = "ENR_001"
	CodeNotEnrolled     = "ENR_002"
	CodeValidation      = "VAL_001"
	CodeInternal        = "SRV_001"
)

var kindSentinels = map[Kind]error{
	KindNotFound:        ErrNotFound,
	KindAlreadyExists:   ErrAlreadyExists,
	KindAlreadyEnrolled: ErrAlreadyEnrolled,
	KindNotEnrolled:     ErrNotEnrolled,
	KindConflict:        ErrConflict,
	KindValidation:      ErrValidationFailed,
}

var kindCodes = map[Kind]string{
	KindNotFound:        CodeNotFound,
	KindAlreadyExists:   CodeAlreadyExists,
	KindAlreadyEnrolled: CodeAlreadyEnrolled,
	KindNotEnrolled:     CodeNotEnrolled,
	KindConflict:        CodeConflict,
	KindValidation:      CodeValidation,
}

// CatalogError is an expected, recoverable catalog failure.
// Message keeps the human-readable status text callers have always received.
type CatalogError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

// Error implements error interface
func (e *CatalogError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CatalogError) WithDetails(details map[string]interface{}) *CatalogError {
	e.Details = details
	return e
}

// New creates a CatalogError of the given kind with its sentinel and code.
func New(kind Kind, message string) *CatalogError {
	code, ok := kindCodes[kind]
	if !ok {
		code = CodeInternal
	}
	return &CatalogError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     kindSentinels[kind],
	}
}

// NewNotFoundError creates a not found error with a message
func NewNotFoundError(message string) *CatalogError {
	return New(KindNotFound, message)
}

// NewAlreadyExistsError creates an already exists error with a message
func NewAlreadyExistsError(message string) *CatalogError {
	return New(KindAlreadyExists, message)
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) *CatalogError {
	return New(KindConflict, message)
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...interface{}) *CatalogError {
	return New(KindValidation, fmt.Sprintf(format, args...))
}

// KindOf reports the kind of err, or KindInternal when err is not a CatalogError.
func KindOf(err error) Kind {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	for kind, sentinel := range kindSentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindInternal
}

// CodeOf reports the machine-readable code of err.
func CodeOf(err error) string {
	var ce *CatalogError
	if errors.As(err, &ce) && ce.Code != "" {
		return ce.Code
	}
	if code, ok := kindCodes[KindOf(err)]; ok {
		return code
	}
	return CodeInternal
}

// KindForCode is the inverse of CodeOf, used to rebuild errors received over the wire.
func KindForCode(code string) Kind {
	for kind, c := range kindCodes {
		if c == code {
			return kind
		}
	}
	return KindInternal
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
