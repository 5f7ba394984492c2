package apierr

import (
	"errors"
	"fmt"
	"net/http"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

type Error struct {
	Status  int
	Code    string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

var statusByCode = map[domainagg.ErrorCode]int{
	domainagg.CodeValidation:         http.StatusBadRequest,
	domainagg.CodeInvalidReference:   http.StatusBadRequest,
	domainagg.CodeNotFound:           http.StatusNotFound,
	domainagg.CodeDuplicateName:      http.StatusConflict,
	domainagg.CodeConflict:           http.StatusConflict,
	domainagg.CodeInvariantViolation: http.StatusUnprocessableEntity,
	domainagg.CodeRetryable:          http.StatusServiceUnavailable,
	domainagg.CodeInternal:           http.StatusInternalServerError,
}

// StatusFor returns the HTTP status of a registry error code.
func StatusFor(code domainagg.ErrorCode) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// From converts any error into an API error. Registry errors keep their code
// and details; internal failures hide their message.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var regErr *domainagg.Error
	if !errors.As(err, &regErr) {
		return &Error{Status: http.StatusInternalServerError, Code: string(domainagg.CodeInternal), Err: errors.New("internal error")}
	}
	out := &Error{
		Status:  StatusFor(regErr.Code),
		Code:    string(regErr.Code),
		Details: regErr.Details,
		Err:     regErr,
	}
	if regErr.Code == domainagg.CodeInternal {
		out.Err = errors.New("internal error")
	} else if regErr.Message != "" {
		out.Err = errors.New(regErr.Message)
	}
	return out
}
