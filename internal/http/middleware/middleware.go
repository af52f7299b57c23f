package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-stats-service/internal/logging"
	"github.com/preston-bernstein/nhl-stats-service/internal/metrics"
)

// LoggingMiddleware wraps the handler with request logging, request ID support, and metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		if recorder != nil {
			recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.status, duration)
		}

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type requestIDKey struct{}

// routePrefixes maps parameterized routes to the label recorded in metrics.
var routePrefixes = []struct {
	prefix   string
	segments int
	suffix   string
	label    string
}{
	{prefix: "/api/schedule/", segments: 2, label: "/api/schedule/:team_abbr/:season"},
	{prefix: "/api/stats/", segments: 2, label: "/api/stats/:team_abbr/:season"},
	{prefix: "/api/game/", segments: 1, label: "/api/game/:game_id"},
	{prefix: "/api/player/", segments: 2, suffix: "career", label: "/api/player/:player_id/career"},
	{prefix: "/api/injuries/", segments: 1, label: "/api/injuries/:team_abbr"},
}

// normalizePath collapses path parameters so metrics keep a bounded label set.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	path = strings.Split(path, "?")[0]
	switch path {
	case "/", "/api/teams", "/api/standings", "/api/seasons":
		return path
	}
	for _, route := range routePrefixes {
		if !strings.HasPrefix(path, route.prefix) {
			continue
		}
		parts := strings.Split(strings.TrimPrefix(path, route.prefix), "/")
		if len(parts) != route.segments {
			continue
		}
		if route.suffix != "" && parts[len(parts)-1] != route.suffix {
			continue
		}
		return route.label
	}
	return "unmatched"
}
