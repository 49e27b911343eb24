package middleware

import (
	"context"
	"net/http"

	"github.com/dearkafka/woot"
)

// HeadersConfig holds the headers added to every request.
type HeadersConfig struct {
	// UserAgent is sent as the User-Agent header when set.
	UserAgent string

	// Static headers are set on every request. They never replace the
	// access token header.
	Static map[string]string
}

// Headers returns an interceptor that adds the configured headers. Headers
// the request already carries take precedence. The "headers" extra is
// applied later by the HTTP transport and replaces what is set here.
func Headers(cfg HeadersConfig) woot.Interceptor {
	return func(ctx context.Context, req *woot.Request, next woot.TransportFunc) (*woot.Response, error) {
		if req.Header == nil {
			req.Header = make(http.Header)
		}
		for k, v := range cfg.Static {
			if http.CanonicalHeaderKey(k) == http.CanonicalHeaderKey(woot.AccessTokenHeader) {
				continue
			}
			if req.Header.Get(k) == "" {
				req.Header.Set(k, v)
			}
		}
		if cfg.UserAgent != "" && req.Header.Get("User-Agent") == "" {
			req.Header.Set("User-Agent", cfg.UserAgent)
		}
		return next(ctx, req)
	}
}
