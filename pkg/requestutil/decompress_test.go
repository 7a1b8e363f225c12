package requestutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGzipped(t *testing.T) {
	var cases = []struct {
		s  string
		ok bool
	}{
		{
			"application/gzip",
			true,
		},
		{
			"application/x-gzip",
			true,
		},
		{
			"application/json",
			false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.s, func(t *testing.T) {
			ok := isGzipped(tt.s)
			assert.EqualValues(t, tt.ok, ok)
		})
	}
}

func newResponse(t *testing.T, code int, contentType string, body io.Reader) *http.Response {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, (&url.URL{Scheme: "http", Host: "example.org", Path: "/p10"}).String(), nil)
	require.NoError(t, err)

	return &http.Response{
		StatusCode: code,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(body),
		Request:    req,
	}
}

func TestWithBody(t *testing.T) {
	readAll := func(out *string) func(r io.Reader) error {
		return func(r io.Reader) error {
			data, err := io.ReadAll(r)
			*out = string(data)
			return err
		}
	}

	t.Run("plain", func(t *testing.T) {
		var out string
		err := WithBody(readAll(&out))(newResponse(t, http.StatusOK, "application/json", strings.NewReader(`{"length": 3}`)))
		assert.NoError(t, err)
		assert.EqualValues(t, `{"length": 3}`, out)
	})
	t.Run("gzip", func(t *testing.T) {
		buf := &bytes.Buffer{}
		gw := gzip.NewWriter(buf)
		_, err := gw.Write([]byte(`{"length": 5}`))
		require.NoError(t, err)
		require.NoError(t, gw.Close())

		var out string
		err = WithBody(readAll(&out))(newResponse(t, http.StatusOK, "application/gzip", buf))
		assert.NoError(t, err)
		assert.EqualValues(t, `{"length": 5}`, out)
	})
	t.Run("handler error", func(t *testing.T) {
		errBoom := errors.New("boom")
		err := WithBody(func(io.Reader) error {
			return errBoom
		})(newResponse(t, http.StatusOK, "application/json", strings.NewReader(`{}`)))
		assert.ErrorIs(t, err, errBoom)
		assert.NotErrorIs(t, err, ErrDecode)
	})
	t.Run("broken gzip", func(t *testing.T) {
		err := WithBody(func(io.Reader) error {
			t.Fatal("handler must not be called")
			return nil
		})(newResponse(t, http.StatusOK, "application/x-gzip", strings.NewReader(`not gzip`)))
		assert.ErrorIs(t, err, ErrDecode)
	})
}
