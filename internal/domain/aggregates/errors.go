package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes registry failure semantics across entity kinds.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeInvalidReference   ErrorCode = "invalid_reference"
	CodeDuplicateName      ErrorCode = "duplicate_name"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodeConflict           ErrorCode = "conflict"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Error is the canonical registry error. Details is part of the contract:
// it always names the offending field or id and carries a "suggestion".
type Error struct {
	Code    ErrorCode
	Op      string
	Kind    Kind
	Message string
	Details map[string]any
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds a registry error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with registry error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// NotFound reports a referenced or target row that does not exist.
func NotFound(kind Kind, id uint) error {
	return &Error{
		Code:    CodeNotFound,
		Kind:    kind,
		Message: fmt.Sprintf("%s not found", kind.Label()),
		Details: map[string]any{
			"id":         id,
			"suggestion": fmt.Sprintf("Check the id or list the available %s records first.", kind.Label()),
		},
	}
}

// InvalidReference reports an id that is malformed rather than missing.
func InvalidReference(kind Kind, raw string) error {
	return &Error{
		Code:    CodeInvalidReference,
		Kind:    kind,
		Message: fmt.Sprintf("invalid %s id", kind.Label()),
		Details: map[string]any{
			"id":         raw,
			"suggestion": "Use the numeric id returned when the record was created.",
		},
	}
}

// DuplicateName reports a uniqueness violation on a name or identifier field.
func DuplicateName(kind Kind, field, value string) error {
	return &Error{
		Code:    CodeDuplicateName,
		Kind:    kind,
		Message: fmt.Sprintf("%s already registered", field),
		Details: map[string]any{
			field:        value,
			"suggestion": fmt.Sprintf("Choose another %s for the %s.", field, kind.Label()),
		},
	}
}

// AreaInvariantViolation reports arable + vegetation area exceeding the total area.
func AreaInvariantViolation(arable, vegetation, total float64) error {
	return &Error{
		Code:    CodeInvariantViolation,
		Kind:    KindRuralProperty,
		Message: "arable area plus vegetation area cannot exceed the total area",
		Details: map[string]any{
			"arable_area":     arable,
			"vegetation_area": vegetation,
			"total_area":      total,
			"suggestion":      "Check the arable and vegetation areas against the total area and try again.",
		},
	}
}

// Invalid reports a malformed input field.
func Invalid(kind Kind, field, message string) error {
	return &Error{
		Code:    CodeValidation,
		Kind:    kind,
		Message: strings.TrimSpace(message),
		Details: map[string]any{
			"field":      field,
			"suggestion": fmt.Sprintf("Fix the %s field and try again.", field),
		},
	}
}

// StillReferenced reports a delete rejected because other rows point at the target.
func StillReferenced(kind Kind, id uint, cause error) error {
	return &Error{
		Code:    CodeConflict,
		Kind:    kind,
		Message: fmt.Sprintf("%s is still referenced by other records", kind.Label()),
		Details: map[string]any{
			"id":         id,
			"suggestion": "Remove or re-point the dependent records first.",
		},
		Cause: cause,
	}
}

// WithOp stamps the operation name on a registry error that has none.
func WithOp(err error, op string) error {
	var regErr *Error
	if !errors.As(err, &regErr) || regErr.Op != "" {
		return err
	}
	regErr.Op = strings.TrimSpace(op)
	return err
}

// IsCode checks whether err (or wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var regErr *Error
	if !errors.As(err, &regErr) {
		return false
	}
	return regErr.Code == code
}

// CodeOf extracts the error code when available.
func CodeOf(err error) ErrorCode {
	var regErr *Error
	if !errors.As(err, &regErr) {
		return ""
	}
	return regErr.Code
}

// KindOf extracts the entity kind when available.
func KindOf(err error) Kind {
	var regErr *Error
	if !errors.As(err, &regErr) {
		return ""
	}
	return regErr.Kind
}

// DetailsOf extracts the structured details when available.
func DetailsOf(err error) map[string]any {
	var regErr *Error
	if !errors.As(err, &regErr) {
		return nil
	}
	return regErr.Details
}
