package providers

import (
	"errors"
	"fmt"
	"net/http"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

// TransportError reports a completions call that failed after the whole
// credential fallback list was exhausted.
type TransportError struct {
	Err        error
	HTTPStatus int // status of the last attempt, 0 for network errors
	Attempts   int // credentials tried
}

func (e *TransportError) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("transport failed after %d credential(s), last status %d: %v", e.Attempts, e.HTTPStatus, e.Err)
	}
	return fmt.Sprintf("transport failed after %d credential(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAuth reports whether the final failure was an authentication rejection.
func (e *TransportError) IsAuth() bool {
	return e.HTTPStatus == http.StatusUnauthorized || e.HTTPStatus == http.StatusForbidden
}

// httpStatusOf extracts the HTTP status code from an SDK error.
// Returns 0 for network-level failures.
func httpStatusOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
