package altrepo

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/carlmjohnson/requests"
	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/djcass44/pkgdiff/pkg/requestutil"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/gzhttp"
)

func NewClient(ctx context.Context, opts Options) *Client {
	log := logr.FromContextOrDiscard(ctx)

	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	log.V(2).Info("preparing http client", "baseURL", opts.BaseURL, "timeout", opts.Timeout, "retries", opts.Retries)

	rc := retryablehttp.NewClient()
	rc.RetryMax = max(opts.Retries, 0)
	rc.Logger = &retryLogger{log: log.WithName("retry")}
	// hand the last response back untouched so that
	// the status code can still be reported
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient.Timeout = opts.Timeout
	rc.HTTPClient.Transport = gzhttp.Transport(rc.HTTPClient.Transport)

	return &Client{
		baseURL: opts.BaseURL,
		client:  rc.StandardClient(),
	}
}

// URL returns the address of the package list for a branch.
func (c *Client) URL(branch string) string {
	escaped := url.PathEscape(branch)
	if strings.Contains(c.baseURL, BranchPlaceholder) {
		return strings.ReplaceAll(c.baseURL, BranchPlaceholder, escaped)
	}
	return strings.TrimSuffix(c.baseURL, "/") + "/" + escaped
}

// Fetch downloads the binary packages of a branch and groups
// them by architecture. Any failure is returned as a *FetchError
// and no partial catalog is ever returned.
func (c *Client) Fetch(ctx context.Context, branch string) (v1.Catalog, error) {
	target := c.URL(branch)
	requestID := uuid.NewString()
	log := logr.FromContextOrDiscard(ctx).WithValues("branch", branch, "url", target, "requestId", requestID)
	log.V(1).Info("downloading branch packages")

	var catalog v1.Catalog
	var skipped int
	err := requests.URL(target).
		Client(c.client).
		Accept("application/json").
		Header("X-Request-Id", requestID).
		AddValidator(requestutil.CheckStatus()).
		Handle(requestutil.WithBody(func(r io.Reader) error {
			var err error
			catalog, skipped, err = Decode(r)
			return err
		})).
		Fetch(ctx)
	if err != nil {
		log.Error(err, "failed to download branch packages")
		return nil, newFetchError(branch, target, err)
	}
	if skipped > 0 {
		log.Info("skipped incomplete package entries", "count", skipped)
	}
	log.V(1).Info("successfully decoded branch packages", "count", catalog.Count(), "arches", len(catalog))
	return catalog, nil
}

func newFetchError(branch, target string, err error) *FetchError {
	fetchErr := &FetchError{
		Kind:   KindNetwork,
		Branch: branch,
		URL:    target,
		Err:    err,
	}
	var statusErr *requestutil.StatusError
	switch {
	case errors.As(err, &statusErr):
		fetchErr.Kind = KindHTTP
		fetchErr.StatusCode = statusErr.StatusCode
	case errors.Is(err, requestutil.ErrDecode):
		fetchErr.Kind = KindParse
	}
	return fetchErr
}
