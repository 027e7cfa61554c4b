package routes

import (
	"neurolearn/controllers"

	"github.com/gin-gonic/gin"
)

// SetupPredictRoutes wires the classification endpoints.
func SetupPredictRoutes(router *gin.RouterGroup) {
	predict := router.Group("/predict")
	{
		predict.POST("/support", controllers.PredictSupport)
		predict.POST("/mode", controllers.PredictMode)
		predict.POST("/struggle", controllers.PredictStruggle)
	}
	router.GET("/students/:studentId/insights", controllers.StudentInsights)
}
