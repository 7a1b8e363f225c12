package altrepo

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://rdb.altlinux.org/api/export/branch_binary_packages"
	DefaultTimeout = 5 * time.Minute

	// BranchPlaceholder may be used in the base URL to control
	// where the branch name is inserted.
	BranchPlaceholder = "{branch}"
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	// Retries is the number of additional attempts made
	// after a connection error or 5xx response.
	Retries int
}

type Client struct {
	baseURL string
	client  *http.Client
}

// response is the body returned by the
// branch_binary_packages export endpoint.
//
// Packages are kept as raw JSON so that a single malformed
// entry does not fail the whole response.
type response struct {
	Packages *[]json.RawMessage `json:"packages"`
}

type rawPackage struct {
	Name    *string `json:"name"`
	Version *string `json:"version"`
	Release *string `json:"release"`
	Arch    *string `json:"arch"`
}
