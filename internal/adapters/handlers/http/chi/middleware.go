package chi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LoggerMiddleware logs one line per finished request. Bytes written matter
// here because the media proxy streams whole files; a short count on a 200
// usually means the client hung up mid-download.
func LoggerMiddleware(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				// health probes would drown everything else out
				if r.URL.Path == "/health" {
					return
				}
				l.Info("http request served",
					"requestID", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"elapsed", time.Since(start),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
