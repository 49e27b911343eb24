// Package middleware provides transport interceptors for woot clients.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dearkafka/woot"
	"github.com/dearkafka/woot/internal/urltemplate"
)

// Logging returns an interceptor that logs every dispatched request using
// slog. It logs the start and end of each call, including duration, status
// and error.
func Logging(logger *slog.Logger) woot.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, req *woot.Request, next woot.TransportFunc) (*woot.Response, error) {
		start := time.Now()

		logger.InfoContext(ctx, "request started",
			slog.String("endpoint", req.Endpoint()),
			slog.String("method", req.Method.String()),
			slog.String("url", urltemplate.Readable(req.URL)),
		)

		res, err := next(ctx, req)
		duration := time.Since(start)

		if err != nil {
			attrs := []any{
				slog.String("endpoint", req.Endpoint()),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			}
			var te *woot.TransportError
			if errors.As(err, &te) {
				attrs = append(attrs, slog.String("code", string(te.Code)))
				if te.StatusCode != 0 {
					attrs = append(attrs, slog.Int("status", te.StatusCode))
				}
			}
			logger.ErrorContext(ctx, "request failed", attrs...)
		} else {
			attrs := []any{
				slog.String("endpoint", req.Endpoint()),
				slog.Duration("duration", duration),
			}
			if res != nil {
				attrs = append(attrs, slog.Int("status", res.StatusCode))
			}
			logger.InfoContext(ctx, "request completed", attrs...)
		}

		return res, err
	}
}
