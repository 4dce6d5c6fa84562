package http

import (
	"net/http"
	"time"

	"github.com/kubedocs/k8s-docs-mcp-server/pkg/logging"
)

// loggingResponseWriter captures the status code written to the response.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

// WriteHeader records the first status code; later calls are ignored.
func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if lrw.wroteHeader {
		return
	}
	lrw.statusCode = code
	lrw.wroteHeader = true
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if !lrw.wroteHeader {
		lrw.WriteHeader(http.StatusOK)
	}
	return lrw.ResponseWriter.Write(b)
}

// RequestMiddleware logs every request with its method, path, status code,
// and duration. Health probes are logged at debug level.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(lrw, r)

		if r.URL.Path == healthEndpoint {
			logging.Debug("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
			return
		}
		logging.Info("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
	})
}
