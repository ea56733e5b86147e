package routes

import (
	controller "golang-workoutcoach/controllers"

	"github.com/gin-gonic/gin"
)

func CoachRoutes(incomingRoutes *gin.RouterGroup, cc *controller.CoachController) {
	incomingRoutes.GET("/coach/feedback", cc.GetFeedback())
}
