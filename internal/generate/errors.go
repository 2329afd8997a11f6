package generate

import "errors"

// Error taxonomy for plan generation. Handlers branch on these with
// errors.Is to pick status codes and log levels.
var (
	// ErrValidation means the request was rejected before any network
	// call was made.
	ErrValidation = errors.New("validation error")

	// ErrTransport means the model endpoint could not be reached or
	// returned a failure status.
	ErrTransport = errors.New("transport error")

	// ErrMalformedResponse means the model responded but the payload
	// could not be parsed into a lesson plan.
	ErrMalformedResponse = errors.New("malformed model response")
)
