package httpapi

import (
	"bytes"
	"net/http"
	"time"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/logger"
)

// maxLogBodyBytes caps how much of an error response body gets logged.
const maxLogBodyBytes = 512

// statusRecorder captures the status code and a truncated copy of the body
// so the access log can include error payloads without buffering whole
// responses.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	logBody      bytes.Buffer
	maxLogBytes  int
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	written, err := r.ResponseWriter.Write(p)
	r.bytesWritten += written

	remaining := r.maxLogBytes - r.logBody.Len()
	switch {
	case remaining <= 0:
		if len(p) > 0 {
			r.truncated = true
		}
	case len(p) > remaining:
		r.logBody.Write(p[:remaining])
		r.truncated = true
	default:
		r.logBody.Write(p)
	}

	return written, err
}

func withRequestLogging(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    maxLogBodyBytes,
		}

		start := time.Now()
		next.ServeHTTP(recorder, r)

		fields := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.statusCode,
			"bytes", recorder.bytesWritten,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if recorder.statusCode >= http.StatusBadRequest {
			fields = append(fields, "body", recorder.logBody.String(), "body_truncated", recorder.truncated)
			log.Warn("request handled", fields...)
			return
		}
		log.Info("request handled", fields...)
	})
}
