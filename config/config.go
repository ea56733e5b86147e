// Package config centralises configuration parsing for the workout coach service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port string
	// mongo; an empty URI selects the in-memory store
	MongoURI      string
	MongoDatabase string
	// coach
	OpenAIAPIKey         string
	OpenAIModel          string
	OpenAIBaseURL        string
	CoachTimeout         time.Duration
	FeedbackWorkoutLimit int64
	// http
	CORSAllowOrigins []string
	AuthSecret       string // empty disables bearer token checks
	GinMode          string
	// logging
	LogLevel      string
	LogFormatJSON bool
	LogFile       string
	LogToStdout   bool
}

// Load reads the environment, after loading .env when one is present.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("config: loading .env: %s", err)
	}

	return Config{
		Port:                 getEnv("PORT", "3000"),
		MongoURI:             getEnv("MONGODB_URI", ""),
		MongoDatabase:        getEnv("MONGODB_DATABASE", "workouts"),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", ""),
		CoachTimeout:         getDurationEnv("COACH_TIMEOUT", 30*time.Second),
		FeedbackWorkoutLimit: int64(getIntEnv("FEEDBACK_WORKOUT_LIMIT", 20)),
		CORSAllowOrigins:     splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		AuthSecret:           getEnv("AUTH_SECRET", ""),
		GinMode:              getEnv("GIN_MODE", "release"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormatJSON:        getBoolEnv("LOG_FORMAT_JSON", false),
		LogFile:              getEnv("LOG_FILE", ""),
		LogToStdout:          getBoolEnv("LOG_TO_STDOUT", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
