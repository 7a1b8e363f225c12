package requestutil

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStatus(t *testing.T) {
	var cases = []struct {
		code int
		ok   bool
	}{
		{http.StatusOK, true},
		{http.StatusNoContent, true},
		{http.StatusMovedPermanently, false},
		{http.StatusNotFound, false},
		{http.StatusBadGateway, false},
	}

	for _, tt := range cases {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			err := CheckStatus()(newResponse(t, tt.code, "application/json", strings.NewReader("")))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var statusErr *StatusError
			assert.True(t, errors.As(err, &statusErr))
			assert.EqualValues(t, tt.code, statusErr.StatusCode)
			assert.Contains(t, statusErr.Error(), "example.org/p10")
		})
	}
}
