package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-workoutcoach/coach"
	"golang-workoutcoach/config"
	controller "golang-workoutcoach/controllers"
	"golang-workoutcoach/database"
	"golang-workoutcoach/logging"
	"golang-workoutcoach/metrics"
	routes "golang-workoutcoach/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const workoutCollectionName = "workouts"

func main() {
	cfg := config.Load()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogFile,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
	})
	gin.SetMode(cfg.GinMode)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, mongoClient, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open workout store: %s", err)
	}
	if mongoClient != nil {
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer disconnectCancel()
			if err := mongoClient.Disconnect(disconnectCtx); err != nil {
				log.Errorf("mongodb disconnect: %s", err)
			}
		}()
	}

	if cfg.OpenAIAPIKey == "" {
		log.Warnln("OPENAI_API_KEY is not set, feedback requests will fail")
	}
	generator := coach.NewOpenAIGenerator(coach.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	})
	workoutCoach := coach.NewCoach(generator, cfg.CoachTimeout)

	metricsManager := metrics.NewManager("workoutcoach", "server", prometheus.DefaultRegisterer)

	router := routes.NewRouter(routes.RouterParams{
		WorkoutController: controller.NewWorkoutController(store, metricsManager),
		CoachController:   controller.NewCoachController(store, workoutCoach, cfg.FeedbackWorkoutLimit, metricsManager),
		Metrics:           metricsManager,
		Gatherer:          prometheus.DefaultGatherer,
		CORSAllowOrigins:  cfg.CORSAllowOrigins,
		AuthSecret:        cfg.AuthSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("workout coach listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server error: %s", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Infoln("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %s", err)
	}
}

// openStore picks MongoDB when a URI is configured and falls back to the
// in-memory store otherwise. The returned client is nil for the latter.
func openStore(ctx context.Context, cfg config.Config) (database.WorkoutStore, *mongo.Client, error) {
	if cfg.MongoURI == "" {
		log.Warnln("MONGODB_URI is not set, workouts are kept in memory only")
		return database.NewMemoryWorkoutStore(), nil, nil
	}

	client, err := database.DBInstance(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}

	store := database.NewMongoWorkoutStore(database.OpenCollection(client, cfg.MongoDatabase, workoutCollectionName))
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return store, client, nil
}
