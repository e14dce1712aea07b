package client

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport logs every round trip with its duration and outcome.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	ctx := req.Context()
	target := req.URL.Query().Get("target")

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("target", target),
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)
		return nil, err
	}

	t.logger.DebugContext(ctx, "request completed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("target", target),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)
	return resp, nil
}
