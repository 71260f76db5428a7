package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTooManyRedirects is returned when a response chain exceeds the hop limit.
	ErrTooManyRedirects = errors.New("too many redirects")
	// ErrRedirectScheme is returned when a redirect leaves http or https.
	ErrRedirectScheme = errors.New("redirect to unsupported scheme")
)

// RedirectPolicy returns an http.Client CheckRedirect func allowing at most
// maxHops redirects, only to http and https targets. The last followed
// location becomes the document's FinalURL. maxHops <= 0 uses the default
// limit.
func RedirectPolicy(maxHops int) func(*http.Request, []*http.Request) error {
	if maxHops <= 0 {
		maxHops = defaultMaxRedirects
	}

	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxHops {
			return fmt.Errorf("%w: %d hops, last to %s", ErrTooManyRedirects, len(via), req.URL)
		}
		if s := req.URL.Scheme; s != "http" && s != "https" {
			return fmt.Errorf("%w: %s", ErrRedirectScheme, req.URL)
		}
		return nil
	}
}
