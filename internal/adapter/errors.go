package adapter

import "errors"

var (
	// ErrControllerUnreachable is returned when the controller cannot be
	// reached or answers with a non-success status
	ErrControllerUnreachable = errors.New("controller unreachable")
	// ErrInvalidResponse is returned when a response body does not match the
	// expected JSON shape
	ErrInvalidResponse = errors.New("invalid controller response")
	// ErrProjectNotFound is returned when no project matches the configured
	// name or identifier
	ErrProjectNotFound = errors.New("project not found")
)

// ErrorKind maps an error to a short label for metrics and logs
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrControllerUnreachable):
		return "controller_unreachable"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, ErrProjectNotFound):
		return "project_not_found"
	default:
		return "other"
	}
}
