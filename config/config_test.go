package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGODB_URI", "COACH_TIMEOUT", "FEEDBACK_WORKOUT_LIMIT",
		"CORS_ALLOW_ORIGINS", "AUTH_SECRET", "LOG_TO_STDOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "", cfg.MongoURI)
	assert.Equal(t, 30*time.Second, cfg.CoachTimeout)
	assert.Equal(t, int64(20), cfg.FeedbackWorkoutLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "", cfg.AuthSecret)
	assert.True(t, cfg.LogToStdout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("COACH_TIMEOUT", "5s")
	t.Setenv("FEEDBACK_WORKOUT_LIMIT", "10")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://coach.example.com ,")
	t.Setenv("LOG_TO_STDOUT", "false")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, 5*time.Second, cfg.CoachTimeout)
	assert.Equal(t, int64(10), cfg.FeedbackWorkoutLimit)
	assert.Equal(t, []string{"http://localhost:5173", "https://coach.example.com"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.LogToStdout)
}

func TestLoad_IgnoresBadValues(t *testing.T) {
	t.Setenv("COACH_TIMEOUT", "soon")
	t.Setenv("FEEDBACK_WORKOUT_LIMIT", "-4")

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.CoachTimeout)
	assert.Equal(t, int64(20), cfg.FeedbackWorkoutLimit)
}
