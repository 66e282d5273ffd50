package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workout-generator-api/internal/logger"
)

const requestIDHeader = "X-Request-ID"

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.written = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWrapper) Write(b []byte) (int, error) {
	rw.written = true
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware tags each request with an id and logs the response
// status and latency. Bodies carry biometrics and are logged by size only.
func loggingMiddleware(log *logger.LogMiddleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			ctx := logger.WithRequestID(r.Context(), id)
			r = r.WithContext(ctx)

			l := log.Logger(ctx)
			l.Info("REQ",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int64("content_length", r.ContentLength))

			wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapper, r)

			l.Info("RES",
				zap.Int("status", wrapper.statusCode),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}

// recoverMiddleware answers a handler panic with a 500 unless the handler
// already started writing.
func recoverMiddleware(log *logger.LogMiddleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Logger(r.Context()).Error("Handler panic",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path))
					if !wrapper.written {
						writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
					}
				}
			}()
			next.ServeHTTP(wrapper, r)
		})
	}
}
