package controllers

import (
	"context"
	"net/http"

	"golang-workoutcoach/coach"
	"golang-workoutcoach/database"
	"golang-workoutcoach/metrics"
	"golang-workoutcoach/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type CoachController struct {
	store        database.WorkoutStore
	coach        *coach.Coach
	workoutLimit int64
	metrics      *metrics.Manager
}

func NewCoachController(
	store database.WorkoutStore,
	workoutCoach *coach.Coach,
	workoutLimit int64,
	metricsManager *metrics.Manager,
) *CoachController {
	if workoutLimit <= 0 {
		workoutLimit = coach.MaxSummaryWorkouts
	}
	return &CoachController{
		store:        store,
		coach:        workoutCoach,
		workoutLimit: workoutLimit,
		metrics:      metricsManager,
	}
}

// GetFeedback answers with coaching text for the most recent workouts.
// A quota fallback is indistinguishable from generated feedback here.
func (cc *CoachController) GetFeedback() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeCtx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		workouts, err := cc.store.FindMany(storeCtx, models.WorkoutFilter{}, cc.workoutLimit)
		cancel()
		if err != nil {
			respondError(c, err)
			return
		}

		feedback, err := cc.coach.Feedback(c.Request.Context(), workouts)
		if err != nil {
			cc.metrics.CounterFeedback.WithLabelValues("failed").Inc()
			log.WithError(err).Error("coach feedback failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": coach.ErrFeedbackFailed.Error()})
			return
		}

		cc.metrics.CounterFeedback.WithLabelValues(string(feedback.Source)).Inc()
		c.JSON(http.StatusOK, gin.H{"feedback": feedback.Text})
	}
}
