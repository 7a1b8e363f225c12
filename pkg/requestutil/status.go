package requestutil

import (
	"fmt"
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/go-logr/logr"
)

// StatusError is returned by CheckStatus when the
// server responds with an unexpected status code.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http response failed with code: %d (%s)", e.StatusCode, e.URL)
}

// CheckStatus accepts any 2xx response and
// rejects everything else with a *StatusError.
func CheckStatus() requests.ResponseHandler {
	return func(response *http.Response) error {
		log := logr.FromContextOrDiscard(response.Request.Context())
		if response.StatusCode < 200 || response.StatusCode > 299 {
			log.V(1).Info("unexpected response code", "code", response.StatusCode, "url", response.Request.URL.Redacted())
			return &StatusError{
				StatusCode: response.StatusCode,
				URL:        response.Request.URL.Redacted(),
			}
		}
		log.V(2).Info("http request completed", "code", response.StatusCode)
		return nil
	}
}
