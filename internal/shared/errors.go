package shared

import "fmt"

// Sentinel errors. Callers wrap them with context via fmt.Errorf("%w: ...") and test with errors.Is.
var (
	// ErrNotImplemented marks platform features pulse cannot provide (e.g. opening a browser).
	ErrNotImplemented = fmt.Errorf("not implemented")

	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// ErrAPIRequest wraps failed calls to lyrics providers and the catalog.
	ErrAPIRequest = fmt.Errorf("API request failed")
	// ErrServiceUnavailable wraps failures of the emotion analysis service and unconfigured collaborators.
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrTrackNotFound      = fmt.Errorf("track not found")

	// ErrInvalidInput is returned for requests that fail validation (blank artist, title or lyrics).
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
