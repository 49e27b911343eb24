package woot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrURLMatch is matched by every URLMatchError.
	ErrURLMatch = errors.New("woot: no url match")
	// ErrInvocation is matched by every InvocationError.
	ErrInvocation = errors.New("woot: invalid invocation")
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("woot: invalid arguments")
	// ErrUnknownResource is returned when looking up a resource that was not registered.
	ErrUnknownResource = errors.New("woot: unknown resource")
	// ErrUnknownAction is returned when looking up an action a resource does not have.
	ErrUnknownAction = errors.New("woot: unknown action")
)

// URLMatchError reports that an action was called without a value for every
// placeholder of its URL template.
type URLMatchError struct {
	Resource string
	Action   string
	URL      string
	Missing  []string
	Err      error
}

func (e *URLMatchError) Error() string {
	msg := fmt.Sprintf("woot: no url match for %s.%s (%s)", e.Resource, e.Action, e.URL)
	if len(e.Missing) > 0 {
		msg += ": missing " + strings.Join(e.Missing, ", ")
	}
	return msg
}

func (e *URLMatchError) Is(target error) bool { return target == ErrURLMatch }
func (e *URLMatchError) Unwrap() error         { return e.Err }

// InvocationError reports that a bound action received a positional argument.
// Actions only take keyword arguments, passed as Args or Arg values.
type InvocationError struct {
	Resource string
	Action   string
	Position int
	Value    any
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("woot: %s.%s takes keyword arguments only, got positional argument %d of type %T",
		e.Resource, e.Action, e.Position, e.Value)
}

func (e *InvocationError) Is(target error) bool { return target == ErrInvocation }

// ValidationError reports keyword arguments that break their schema rules.
type ValidationError struct {
	Resource string
	Action   string
	// Fields maps a keyword to a human readable reason.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = k + ": " + e.Fields[k]
	}
	return fmt.Sprintf("woot: invalid arguments for %s.%s: %s", e.Resource, e.Action, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ErrorCode classifies a TransportError.
type ErrorCode string

const (
	CodeClientError   ErrorCode = "client_error"
	CodeServerError   ErrorCode = "server_error"
	CodeTimeout       ErrorCode = "timeout"
	CodeCanceled      ErrorCode = "canceled"
	CodeConnection    ErrorCode = "connection"
	CodeInvalidMethod ErrorCode = "invalid_method"
	CodeEncode        ErrorCode = "encode"
	CodeDecode        ErrorCode = "decode"
)

// CodeForStatus maps an HTTP status to an ErrorCode. Statuses below 400 have
// no code.
func CodeForStatus(status int) ErrorCode {
	switch {
	case status >= http.StatusInternalServerError:
		return CodeServerError
	case status >= http.StatusBadRequest:
		return CodeClientError
	default:
		return ""
	}
}

// TransportError is returned by the transport. The binder passes it through
// unchanged; nothing is retried.
type TransportError struct {
	Code       ErrorCode
	StatusCode int
	// Response is set when the server answered.
	Response *Response
	Err      error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Response != nil:
		return fmt.Sprintf("woot: %s: %s %s returned %d", e.Code, e.Response.Method, e.Response.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("woot: %s: %v", e.Code, e.Err)
	default:
		return fmt.Sprintf("woot: %s", e.Code)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// transportError wraps err with the code that best describes it.
func transportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	code := CodeConnection
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeTimeout
	case errors.Is(err, context.Canceled):
		code = CodeCanceled
	}
	return &TransportError{Code: code, Err: err}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "len":
		return fmt.Sprintf("must have length %s", ve.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
