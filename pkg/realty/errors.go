package realty

import (
	"errors"
	"fmt"
)

// ErrorKind classifies API failures so callers can branch on the class of
// failure rather than parsing message strings.
type ErrorKind string

// Error kinds, one per failure class surfaced by the HTTP layer.
const (
	// ErrorKindNetwork covers connection and timeout failures that occur
	// before any HTTP response is received.
	ErrorKindNetwork ErrorKind = "network"

	// ErrorKindAuthentication covers 401 and 403 responses.
	ErrorKindAuthentication ErrorKind = "authentication"

	// ErrorKindNotFound covers 404 responses.
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindValidation covers 422 responses and 400 responses carrying a
	// validation-shaped body.
	ErrorKindValidation ErrorKind = "validation"

	// ErrorKindRateLimit covers 429 responses.
	ErrorKindRateLimit ErrorKind = "rate_limit"

	// ErrorKindServer covers 5xx responses.
	ErrorKindServer ErrorKind = "server"

	// ErrorKindProtocol covers 2xx responses whose body cannot be decoded
	// as JSON. Treated as a server-side fault by IsServerError.
	ErrorKindProtocol ErrorKind = "protocol"
)

// Error is the base error type for all API failures. It retains the HTTP
// status code and the raw response body so failures can be diagnosed
// without re-running with verbose logging.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Body       []byte

	cause error
}

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, message string, statusCode int, body []byte) *Error {
	return &Error{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewNetworkError creates a network-kind Error wrapping the transport failure.
func NewNetworkError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrorKindNetwork,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error for network failures.
func (e *Error) Unwrap() error {
	return e.cause
}

// RawBody returns the raw response body retained for diagnostics.
func (e *Error) RawBody() []byte {
	return e.Body
}

// Static errors for fail-fast input validation. These are raised before any
// network call is made.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrAPIKeyRequired    = errors.New("API key is required (set Config.APIKey or REALTY_API_KEY)")
	ErrEmptyPayload      = errors.New("payload must not be empty")
	ErrInvalidID         = errors.New("id must be a positive integer")
	ErrInvalidPropertyID = errors.New("property id must be a positive integer")
	ErrEmptyPath         = errors.New("request path must not be empty")
)

// kindOf extracts the ErrorKind from err, or "" when err is not an *Error.
func kindOf(err error) ErrorKind {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}

	return ""
}

// IsNotFound checks if the error is a not-found error.
func IsNotFound(err error) bool {
	return kindOf(err) == ErrorKindNotFound
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return kindOf(err) == ErrorKindAuthentication
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return kindOf(err) == ErrorKindValidation
}

// IsRateLimit checks if the error is a rate-limit error.
func IsRateLimit(err error) bool {
	return kindOf(err) == ErrorKindRateLimit
}

// IsServerError checks if the error is a server-side failure. Protocol
// errors (undecodable 2xx bodies) count as server failures.
func IsServerError(err error) bool {
	kind := kindOf(err)

	return kind == ErrorKindServer || kind == ErrorKindProtocol
}

// IsNetwork checks if the error is a connection or timeout failure.
func IsNetwork(err error) bool {
	return kindOf(err) == ErrorKindNetwork
}
