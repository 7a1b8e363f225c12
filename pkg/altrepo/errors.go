package altrepo

import "fmt"

type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindHTTP
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindHTTP:
		return "http error"
	case KindParse:
		return "parse error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// FetchError describes why a branch could not be fetched.
// StatusCode is only set for KindHTTP.
type FetchError struct {
	Kind       ErrorKind
	Branch     string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("fetching branch '%s': %s: status %d: %s", e.Branch, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching branch '%s': %s: %s", e.Branch, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
