package response

import "fmt"

// APIError is the error body shape returned by the remote API on a
// non-2xx response. Details maps field names to validation messages.
// Transport-level failures are converted into an APIError carrying only
// a fixed per-operation fallback message, so callers see one failure
// shape regardless of failure origin.
type APIError struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d field errors)", e.Message, len(e.Details))
}
