package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang-workoutcoach/coach"
	"golang-workoutcoach/database"
	"golang-workoutcoach/metrics"
	"golang-workoutcoach/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	engine  *gin.Engine
	store   database.WorkoutStore
	metrics *metrics.Manager
}

func newTestServer(t *testing.T, store database.WorkoutStore, generator coach.Generator, feedbackLimit int64) *testServer {
	t.Helper()

	metricsManager := metrics.NewTestManager()
	wc := NewWorkoutController(store, metricsManager)
	cc := NewCoachController(store, coach.NewCoach(generator, time.Second), feedbackLimit, metricsManager)

	engine := gin.New()
	engine.POST("/workouts", wc.CreateWorkout())
	engine.GET("/workouts", wc.GetWorkouts())
	engine.PATCH("/workouts/:id", wc.UpdateWorkout())
	engine.DELETE("/workouts/:id", wc.DeleteWorkout())
	engine.GET("/coach/feedback", cc.GetFeedback())
	engine.GET("/health", Health())

	return &testServer{
		engine:  engine,
		store:   store,
		metrics: metricsManager,
	}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.engine.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) seed(t *testing.T, workouts ...models.Workout) []models.Workout {
	t.Helper()

	stored := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		created, err := s.store.Insert(context.Background(), w)
		require.NoError(t, err)
		stored = append(stored, *created)
	}
	return stored
}

func decodeWorkout(t *testing.T, rr *httptest.ResponseRecorder) models.Workout {
	t.Helper()
	var w models.Workout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &w), rr.Body.String())
	return w
}

func decodeWorkouts(t *testing.T, rr *httptest.ResponseRecorder) []models.Workout {
	t.Helper()
	var ws []models.Workout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ws), rr.Body.String())
	return ws
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body["error"]
}

func jsonField(t *testing.T, rr *httptest.ResponseRecorder, key string) string {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	raw, ok := body[key]
	require.True(t, ok, "missing %q in %s", key, rr.Body.String())
	return string(raw)
}

func jsonString(t *testing.T, rr *httptest.ResponseRecorder, key string) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal([]byte(jsonField(t, rr, key)), &s))
	return s
}

func ptr[T any](v T) *T {
	return &v
}

var errStoreDown = errors.New("connection refused")

// brokenStore fails every call the way an unreachable database would.
type brokenStore struct{}

func (brokenStore) Insert(context.Context, models.Workout) (*models.Workout, error) {
	return nil, errStoreDown
}

func (brokenStore) FindMany(context.Context, models.WorkoutFilter, int64) ([]models.Workout, error) {
	return nil, errStoreDown
}

func (brokenStore) UpdateByID(context.Context, string, models.WorkoutPatch) (*models.Workout, error) {
	return nil, errStoreDown
}

func (brokenStore) DeleteByID(context.Context, string) (*models.Workout, error) {
	return nil, errStoreDown
}

var _ database.WorkoutStore = brokenStore{}
