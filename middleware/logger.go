package middleware

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"wordthink/pkg/logger"

	"go.uber.org/zap"
)

// Logger writes one access log entry per request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		entry := &accessEntry{}

		next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), accessEntryKey, entry)))

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", RequestIDFromCtx(r.Context())),
		}
		if entry.username != "" {
			fields = append(fields, zap.String("username", entry.username))
		}

		if sw.status >= http.StatusInternalServerError {
			logger.Log.Error("http.request", fields...)
			return
		}
		logger.Log.Info("http.request", fields...)
	})
}

// accessEntry carries values set by inner handlers back out to Logger.
type accessEntry struct {
	username string
}

const accessEntryKey contextKey = "accessEntry"

func recordUsername(ctx context.Context, username string) {
	if entry, ok := ctx.Value(accessEntryKey).(*accessEntry); ok {
		entry.username = username
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working behind the logger.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
