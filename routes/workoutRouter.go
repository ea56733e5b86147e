package routes

import (
	controller "golang-workoutcoach/controllers"

	"github.com/gin-gonic/gin"
)

func WorkoutRoutes(incomingRoutes *gin.RouterGroup, wc *controller.WorkoutController) {
	incomingRoutes.POST("/workouts", wc.CreateWorkout())
	incomingRoutes.GET("/workouts", wc.GetWorkouts())
	incomingRoutes.PATCH("/workouts/:id", wc.UpdateWorkout())
	incomingRoutes.DELETE("/workouts/:id", wc.DeleteWorkout())
}
