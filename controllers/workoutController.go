package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang-workoutcoach/database"
	"golang-workoutcoach/metrics"
	"golang-workoutcoach/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const storeTimeout = 10 * time.Second

type WorkoutController struct {
	store   database.WorkoutStore
	metrics *metrics.Manager
}

func NewWorkoutController(store database.WorkoutStore, metricsManager *metrics.Manager) *WorkoutController {
	return &WorkoutController{
		store:   store,
		metrics: metricsManager,
	}
}

func (wc *WorkoutController) CreateWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		workout, err := models.ValidateCreate(models.NormalizeWorkout(body))
		if err != nil {
			respondError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		created, err := wc.store.Insert(ctx, *workout)
		if err != nil {
			respondError(c, err)
			return
		}

		wc.metrics.CounterWorkoutsCreated.Inc()
		log.Debugf("workout %s created (%s on %s)", created.ID.Hex(), created.Type, created.Date)
		c.JSON(http.StatusCreated, created)
	}
}

func (wc *WorkoutController) GetWorkouts() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.BuildWorkoutFilter(c.Query("type"), c.Query("from"), c.Query("to"))

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		workouts, err := wc.store.FindMany(ctx, filter, 0)
		if err != nil {
			respondError(c, err)
			return
		}
		if workouts == nil {
			workouts = []models.Workout{}
		}

		c.JSON(http.StatusOK, workouts)
	}
}

func (wc *WorkoutController) UpdateWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		patch, err := models.ValidatePatch(models.NormalizeWorkout(body))
		if err != nil {
			respondError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		updated, err := wc.store.UpdateByID(ctx, c.Param("id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func (wc *WorkoutController) DeleteWorkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		deleted, err := wc.store.DeleteByID(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, deleted)
	}
}

// bindBody decodes a JSON object body. Non-object bodies, including a
// literal null, are rejected with 400.
func bindBody(c *gin.Context) (map[string]json.RawMessage, bool) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.MsgInvalidBody})
		return nil, false
	}
	return body, true
}
