package cgrates

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// error kinds, use errors.Is to check returned error against them
var (
	ErrAPI               = errors.New("api error")
	ErrNotFound          = errors.New("not found")
	ErrMaxUsageExceeded  = errors.New("max usage exceeded")
	ErrTransport         = errors.New("transport error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrMissingArgument   = errors.New("missing required argument")
)

// errPrefix used for all messages of failed calls
const errPrefix = "Invalid response from CGRateS API"

// Error returned by Call for any failed exchange. Kind is one of ErrTransport, ErrMalformedResponse,
// ErrNotFound, ErrMaxUsageExceeded or ErrAPI.
type Error struct {
	Kind     error
	Method   string                 // remote method name
	Message  string                 // human-readable message with the raw error embedded
	RawError string                 // error text as sent by server, or transport failure text
	Status   int                    // http status, 0 if nothing was received
	Body     []byte                 // raw response body, if any
	Response map[string]interface{} // decoded response body, nil if not decodable
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns error kind
func (e *Error) Unwrap() error { return e.Kind }

// Is reports NotFound and MaxUsageExceeded as ErrAPI as well
func (e *Error) Is(target error) bool {
	if target == ErrAPI {
		return e.Kind == ErrAPI || e.Kind == ErrNotFound || e.Kind == ErrMaxUsageExceeded
	}
	return e.Kind == target
}

// Classify maps server-side error text to error kind. First match wins:
// exact "NOT_FOUND", then anything containing "MAX_USAGE_EXCEEDED", everything else is ErrAPI.
func Classify(msg string) error {
	switch {
	case msg == "NOT_FOUND":
		return ErrNotFound
	case strings.Contains(msg, "MAX_USAGE_EXCEEDED"):
		return ErrMaxUsageExceeded
	default:
		return ErrAPI
	}
}

func newStatusError(method string, status int, body []byte) *Error {
	raw := fmt.Sprintf("HTTP ERROR: %d", status)
	return &Error{
		Kind:     ErrTransport,
		Method:   method,
		Message:  fmt.Sprintf("%s: %s", errPrefix, raw),
		RawError: raw,
		Status:   status,
		Body:     body,
	}
}
