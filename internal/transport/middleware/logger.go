package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/vocab-builder/pkg/ctxutil"
)

// quietPaths are polled by supervisors and logged at debug level only.
var quietPaths = map[string]bool{"/live": true, "/ready": true}

// Logger writes one access log line per request. The level follows the
// status: error for 5xx, warn for 4xx, info otherwise.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &recordingWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			level := slog.LevelInfo
			switch {
			case rw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case rw.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			case quietPaths[r.URL.Path]:
				level = slog.LevelDebug
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if q := r.URL.RawQuery; q != "" {
				attrs = append(attrs, slog.String("query", q))
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// recordingWriter remembers the first status written and counts body bytes.
type recordingWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	written bool
}

func (w *recordingWriter) WriteHeader(code int) {
	if !w.written {
		w.status, w.written = code, true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.written = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
