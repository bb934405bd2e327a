package gateway

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of failure for a correction request.
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport-level error (connection refused,
	// host unreachable, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request exceeded the client timeout
	ErrTypeTimeout
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeHTTP indicates the server rejected the request (non-2xx status)
	ErrTypeHTTP
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// RequestError represents a failed correction request. It records which
// operation failed so the message can be surfaced meaningfully.
type RequestError struct {
	Type       ErrorType // Category of failure
	Operation  string    // Gateway operation ("correct", "polish-ai", "rewrite-tone")
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s (caused by: %v)", e.Operation, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Operation, e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *RequestError) Unwrap() error {
	return e.Err
}

// classifyTransportError maps an http.Client error onto a RequestError.
func classifyTransportError(operation string, err error) *RequestError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &RequestError{
			Type:      ErrTypeTimeout,
			Operation: operation,
			Message:   "request timed out",
			Err:       err,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &RequestError{
			Type:      ErrTypeDNS,
			Operation: operation,
			Message:   fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:       err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &RequestError{
			Type:      ErrTypeNetwork,
			Operation: operation,
			Message:   "server refused connection",
			Err:       err,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Recursively classify the underlying error
		if classified := classifyTransportError(operation, urlErr.Err); classified != nil {
			return classified
		}
	}

	return &RequestError{
		Type:      ErrTypeNetwork,
		Operation: operation,
		Message:   "network error occurred",
		Err:       err,
	}
}

// newHTTPError creates a server-rejection error
func newHTTPError(operation string, statusCode int) *RequestError {
	return &RequestError{
		Type:       ErrTypeHTTP,
		Operation:  operation,
		Message:    fmt.Sprintf("server rejected request with status %d", statusCode),
		StatusCode: statusCode,
	}
}

// newParseError creates a malformed-response error
func newParseError(operation string, message string, err error) *RequestError {
	return &RequestError{
		Type:      ErrTypeParse,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsTransportError reports whether the request never got a usable response
// from the server (unreachable, timeout, DNS).
func IsTransportError(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Type == ErrTypeNetwork ||
			reqErr.Type == ErrTypeTimeout ||
			reqErr.Type == ErrTypeDNS
	}
	return false
}

// IsServerRejection reports whether the server answered with a non-2xx status.
func IsServerRejection(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Type == ErrTypeHTTP
	}
	return false
}

// FailureSummary returns the user-facing changesSummary text for a failed
// request. Each failure class gets a distinct message.
func FailureSummary(err error) string {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return "Correction failed unexpectedly. Original text kept."
	}

	switch reqErr.Type {
	case ErrTypeTimeout:
		return "Could not reach the correction server (timed out). Original text kept."
	case ErrTypeDNS, ErrTypeNetwork:
		return "Could not reach the correction server. Original text kept."
	case ErrTypeHTTP:
		return fmt.Sprintf("The correction server rejected the request (HTTP %d). Original text kept.", reqErr.StatusCode)
	case ErrTypeParse:
		return "The correction server returned an unreadable response. Original text kept."
	default:
		return "Correction failed unexpectedly. Original text kept."
	}
}
