package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Exit codes for api-gateway
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitServerError  = 3
)

// Kind classifies a GatewayError.
type Kind string

const (
	KindMissingParameter   Kind = "MissingParameter"
	KindProxyRequestFailed Kind = "ProxyRequestFailed"
	KindInternal           Kind = "Internal"
	KindNotFound           Kind = "NotFound"
	KindMethodNotAllowed   Kind = "MethodNotAllowed"
	KindConfig             Kind = "Config"
	KindServer             Kind = "Server"
)

// Wire-level error strings for the "error" field of the envelope.
var kindTitles = map[Kind]string{
	KindMissingParameter:   "Missing url parameter",
	KindProxyRequestFailed: "Proxy request failed",
	KindInternal:           "Internal server error",
	KindNotFound:           "Not found",
	KindMethodNotAllowed:   "Method not allowed",
	KindConfig:             "Configuration error",
	KindServer:             "Server error",
}

// MissingURLMessage is returned to callers that omit the url parameter.
const MissingURLMessage = "Please provide a target URL via ?url=<target_url>"

// GatewayError is the base error type for api-gateway
type GatewayError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Cause      error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// Title returns the short description written to the "error" field.
func (e *GatewayError) Title() string {
	if t, ok := kindTitles[e.Kind]; ok {
		return t
	}
	return kindTitles[KindInternal]
}

// ExitCode returns the process exit code for this error
func (e *GatewayError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindServer:
		return ExitServerError
	default:
		return ExitGeneralError
	}
}

// New creates a new GatewayError
func New(kind Kind, status int, message string) *GatewayError {
	return &GatewayError{
		Kind:       kind,
		StatusCode: status,
		Message:    message,
	}
}

// Wrap wraps an existing error with a GatewayError
func Wrap(kind Kind, status int, message string, cause error) *GatewayError {
	return &GatewayError{
		Kind:       kind,
		StatusCode: status,
		Message:    message,
		Cause:      cause,
	}
}

// Common error constructors

// MissingParameter returns the caller error for an absent target URL.
func MissingParameter() *GatewayError {
	return New(KindMissingParameter, http.StatusBadRequest, MissingURLMessage)
}

// ProxyRequestFailed returns an error for a failed outbound exchange.
// A status of zero means the upstream never answered and maps to 500.
func ProxyRequestFailed(status int, cause error) *GatewayError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	msg := "proxy request failed"
	if cause != nil {
		msg = cause.Error()
	}
	return Wrap(KindProxyRequestFailed, status, msg, cause)
}

// UpstreamStatus returns the error for an upstream non-2xx response.
func UpstreamStatus(status int) *GatewayError {
	return New(KindProxyRequestFailed, status, fmt.Sprintf("Request failed with status code %d", status))
}

// Internal returns an error for unexpected server-side failures
func Internal(cause error) *GatewayError {
	msg := "unexpected error"
	if cause != nil {
		msg = cause.Error()
	}
	return Wrap(KindInternal, http.StatusInternalServerError, msg, cause)
}

// NotFound returns an error for unrouted paths
func NotFound(path string) *GatewayError {
	return New(KindNotFound, http.StatusNotFound, fmt.Sprintf("no route for %s", path))
}

// MethodNotAllowed returns an error for a known path with the wrong method
func MethodNotAllowed(method, path string) *GatewayError {
	return New(KindMethodNotAllowed, http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed on %s", method, path))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *GatewayError {
	return Wrap(KindConfig, 0, message, cause)
}

// ServerError returns an error for listener failures
func ServerError(message string, cause error) *GatewayError {
	return Wrap(KindServer, 0, message, cause)
}

// ErrorResponse is the JSON envelope written for every failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusCode extracts the HTTP status from an error, defaulting to 500.
func StatusCode(err error) int {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.StatusCode != 0 {
		return gwErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Envelope converts any error into the wire envelope.
func Envelope(err error) ErrorResponse {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return ErrorResponse{Error: gwErr.Title(), Message: gwErr.Message}
	}
	if err == nil {
		return ErrorResponse{Error: kindTitles[KindInternal]}
	}
	return ErrorResponse{Error: kindTitles[KindInternal], Message: err.Error()}
}

// IsKind reports whether err is a GatewayError of the given kind.
func IsKind(err error, kind Kind) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Kind == kind
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
