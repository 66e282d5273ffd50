package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"workout-generator-api/internal/logger"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/generate", h.Generate).Methods(http.MethodPost)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/levels", h.Levels).Methods(http.MethodGet)

	return r
}

// NewServer wraps the router with panic recovery, request logging and CORS.
func NewServer(h *Handler, log *logger.LogMiddleware, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	})

	return c.Handler(loggingMiddleware(log)(recoverMiddleware(log)(NewRouter(h))))
}
