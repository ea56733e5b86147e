package controllers

import (
	"errors"
	"net/http"

	"golang-workoutcoach/database"
	"golang-workoutcoach/models"

	"github.com/gin-gonic/gin"
)

const msgInternal = "internal server error"

// respondError maps domain errors to a status and an {"error": msg} body.
// Anything unrecognised is attached to the context for the request logger
// and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.Is(err, database.ErrMalformedID):
		c.JSON(http.StatusBadRequest, gin.H{"error": database.ErrMalformedID.Error()})
	case errors.Is(err, database.ErrWorkoutNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": database.ErrWorkoutNotFound.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}
