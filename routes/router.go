package routes

import (
	"net/http"

	controller "golang-workoutcoach/controllers"
	"golang-workoutcoach/metrics"
	"golang-workoutcoach/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterParams struct {
	WorkoutController *controller.WorkoutController
	CoachController   *controller.CoachController
	Metrics           *metrics.Manager
	// Gatherer backs /metrics. Nil skips the endpoint.
	Gatherer          prometheus.Gatherer
	CORSAllowOrigins  []string
	// AuthSecret enables bearer token checks on /api when set.
	AuthSecret        string
}

func NewRouter(params RouterParams) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LogRequest())
	router.Use(middleware.RequestMetrics(params.Metrics))
	router.Use(cors.New(corsConfig(params.CORSAllowOrigins)))

	if params.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(params.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")
	api.GET("/health", controller.Health())

	// Private routes
	privateRoutes := api.Group("")
	if params.AuthSecret != "" {
		privateRoutes.Use(middleware.Authentication(params.AuthSecret))
	}
	{
		WorkoutRoutes(privateRoutes, params.WorkoutController)
		CoachRoutes(privateRoutes, params.CoachController)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
