package requestutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-logr/logr"
	"github.com/klauspost/compress/gzip"
)

// ErrDecode is wrapped by any error produced while
// reading or decoding a response body.
var ErrDecode = errors.New("decoding response")

var ContentTypesGzip = []string{
	"application/gzip",
	"application/x-gzip",
}

// WithBody hands the response body to fn. Bodies served
// with a gzip content type are decompressed first.
func WithBody(fn func(r io.Reader) error) requests.ResponseHandler {
	return func(response *http.Response) error {
		log := logr.FromContextOrDiscard(response.Request.Context())
		var stream io.Reader

		// if it's a gzip response, decompress it
		if isGzipped(response.Header.Get("Content-Type")) {
			log.V(8).Info("decompressing gzip response")
			dec, err := gzip.NewReader(response.Body)
			if err != nil {
				return fmt.Errorf("%w: decompressing: %w", ErrDecode, err)
			}
			defer dec.Close()
			stream = dec
		} else {
			stream = response.Body
		}
		return fn(stream)
	}
}

func isGzipped(s string) bool {
	return mimetype.EqualsAny(s, ContentTypesGzip...)
}
