package api

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"workout-generator-api/internal/logger"
	"workout-generator-api/internal/workout"
)

func newTestServer(bodyLimit int64) http.Handler {
	gen := workout.NewGenerator(workout.DefaultCatalog(), workout.NewRandSampler(rand.NewPCG(1, 2)))
	log := logger.Wrap(zap.NewNop())
	return NewServer(NewHandler(gen, log, bodyLimit), log, []string{"*"})
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestGenerateOK(t *testing.T) {
	srv := newTestServer(1 << 20)

	rec := doRequest(srv, http.MethodPost, "/generate",
		`{"name":"  Jo ","age_range":"25-34","gender":"female","height":"180","weight":81,"fitness_level":"Intermediate"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var plan workout.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, workout.PlanProfile{
		Name:         "Jo",
		AgeRange:     "25-34",
		Gender:       "female",
		BMI:          25.0,
		Category:     workout.CategoryOverweight,
		FitnessLevel: "Intermediate",
	}, plan.Profile)
	assert.NotEmpty(t, plan.Motivation)
	assert.Len(t, plan.Warmup, 3)
	assert.Len(t, plan.Cardio.Exercises, 3)
	assert.Equal(t, "7-10 minutes", plan.Cardio.Duration)
	assert.Len(t, plan.Strength.Exercises, 4)
	assert.Equal(t, "12-15 reps", plan.Strength.Reps)
	assert.Len(t, plan.Flexibility, 3)
	assert.Len(t, plan.Cooldown, 2)
}

func TestGenerateWireShape(t *testing.T) {
	srv := newTestServer(1 << 20)

	rec := doRequest(srv, http.MethodPost, "/generate",
		`{"name":"Jo","age_range":"18-24","gender":"male","height":160,"weight":45,"fitness_level":"beginner"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"profile", "motivation", "warmup", "cardio", "strength", "flexibility", "cooldown"} {
		assert.Contains(t, raw, key)
	}

	var profile map[string]any
	require.NoError(t, json.Unmarshal(raw["profile"], &profile))
	assert.Equal(t, 17.58, profile["bmi"])
	assert.Equal(t, "Underweight", profile["category"])
	assert.Equal(t, "beginner", profile["fitness_level"])
}

func TestGenerateRejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"empty name", `{"name":"","height":170,"weight":70,"fitness_level":"beginner"}`, msgValidation},
		{"missing name", `{"height":170,"weight":70,"fitness_level":"beginner"}`, msgValidation},
		{"zero height", `{"name":"Jo","height":0,"weight":70,"fitness_level":"beginner"}`, msgValidation},
		{"negative weight", `{"name":"Jo","height":170,"weight":"-3","fitness_level":"beginner"}`, msgValidation},
		{"height too small for weight", `{"name":"Jo","height":"1e-200","weight":70,"fitness_level":"beginner"}`, msgValidation},
		{"weight overflows bmi", `{"name":"Jo","height":1,"weight":1e308,"fitness_level":"beginner"}`, msgValidation},
		{"word height", `{"name":"Jo","height":"abc","weight":70,"fitness_level":"beginner"}`, msgConversion},
		{"missing weight", `{"name":"Jo","height":170,"fitness_level":"beginner"}`, msgConversion},
		{"bad json", `{"name":`, msgConversion},
		{"unknown level", `{"name":"Jo","height":170,"weight":70,"fitness_level":"expert"}`, msgFitnessLevel},
		{"missing level", `{"name":"Jo","height":170,"weight":70}`, msgFitnessLevel},
	}

	srv := newTestServer(1 << 20)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, http.MethodPost, "/generate", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestGenerateBodyTooLarge(t *testing.T) {
	srv := newTestServer(16)

	rec := doRequest(srv, http.MethodPost, "/generate",
		`{"name":"Jo","height":170,"weight":70,"fitness_level":"beginner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgConversion, decodeError(t, rec))
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	rec := doRequest(newTestServer(1<<20), http.MethodGet, "/generate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := doRequest(newTestServer(1<<20), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLevels(t *testing.T) {
	rec := doRequest(newTestServer(1<<20), http.MethodGet, "/api/levels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"level":"beginner","duration":"5-7 minutes","reps":"10-12 reps"},
		{"level":"intermediate","duration":"7-10 minutes","reps":"12-15 reps"},
		{"level":"advanced","duration":"10-15 minutes","reps":"15-20 reps"}
	]`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(1 << 20)

	rec := doRequest(srv, http.MethodGet, "/health", "")
	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	newTestServer(1<<20).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWriteJSONUnencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"bmi": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternal, decodeError(t, rec))
}

func TestRecoverMiddleware(t *testing.T) {
	log := logger.Wrap(zap.NewNop())
	h := recoverMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternal, decodeError(t, rec))
}
