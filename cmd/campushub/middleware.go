package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kailas-cloud/campushub/internal/domain/kind"
	logpkg "github.com/kailas-cloud/campushub/internal/logger"
	"github.com/kailas-cloud/campushub/internal/metrics"
)

// wideEventMiddleware emits one http_request line per request, carrying the
// catalog served and, for browse requests, the filter that was applied.
// It also stores a request-scoped logger in the context and echoes X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := append([]zap.Field{
				zap.String("method", r.Method),
				zap.String("route", metrics.RouteLabel(r)),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.Int("response_bytes", ww.BytesWritten()),
				zap.String("ip", r.RemoteAddr),
			}, catalogFields(r)...)

			reqLogger.Log(levelFor(status), "http_request", fields...)
		})
	}
}

// catalogFields describes what a catalog request asked for: the kind, the
// record for lookups, and query and tags for browse requests.
func catalogFields(r *http.Request) []zap.Field {
	k := kind.Kind(chi.URLParam(r, "kind"))
	if !k.IsValid() {
		return nil
	}
	fields := []zap.Field{zap.String("kind", k.String())}

	if id := chi.URLParam(r, "id"); id != "" {
		return append(fields, zap.String("record_id", id))
	}
	if r.Method != http.MethodGet || metrics.RouteLabel(r) != "/{kind}" {
		return fields
	}

	params := r.URL.Query()
	q, tags := params.Get("q"), params["tag"]
	return append(fields,
		zap.String("q", q),
		zap.Strings("tags", tags),
		zap.Bool("filtered", q != "" || len(tags) > 0),
	)
}

func levelFor(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
