package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"workout-generator-api/internal/logger"
	"workout-generator-api/internal/workout"
)

type Handler struct {
	generator *workout.Generator
	log       *logger.LogMiddleware
	bodyLimit int64
}

func NewHandler(generator *workout.Generator, log *logger.LogMiddleware, bodyLimit int64) *Handler {
	return &Handler{generator: generator, log: log, bodyLimit: bodyLimit}
}

// writeJSON encodes v before touching the response, so an unencodable value
// becomes a 500 instead of a bodiless status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		body, _ = json.Marshal(errorResponse{Error: msgInternal})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// Generate handles POST /generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := h.log.Logger(r.Context())

	req, err := decodeGenerateRequest(http.MaxBytesReader(w, r.Body, h.bodyLimit))
	if err != nil {
		log.Info("Rejected generate request", zap.Error(err))
		writeError(w, err)
		return
	}

	profile, err := req.profile()
	if err != nil {
		log.Info("Rejected generate request", zap.Error(err))
		writeError(w, err)
		return
	}

	plan, err := h.generator.GeneratePlan(profile)
	if err != nil {
		log.Info("Plan generation failed", zap.Error(err))
		writeError(w, err)
		return
	}

	log.Debug("Generated plan",
		zap.String("fitness_level", plan.Profile.FitnessLevel),
		zap.String("category", string(plan.Profile.Category)))
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type levelInfo struct {
	Level    string `json:"level"`
	Duration string `json:"duration"`
	Reps     string `json:"reps"`
}

// Levels handles GET /api/levels, listing the levels the catalog supports.
func (h *Handler) Levels(w http.ResponseWriter, r *http.Request) {
	catalog := h.generator.Catalog()

	levels := make([]levelInfo, 0, len(workout.Levels))
	for _, l := range workout.Levels {
		lc, err := catalog.Level(l)
		if err != nil {
			continue
		}
		levels = append(levels, levelInfo{Level: l.String(), Duration: lc.Duration, Reps: lc.Reps})
	}
	writeJSON(w, http.StatusOK, levels)
}
