package routes

import (
	"neurolearn/controllers"

	"github.com/gin-gonic/gin"
)

// SetupLearnerRoutes wires telemetry ingestion and profile endpoints.
func SetupLearnerRoutes(router *gin.RouterGroup) {
	router.POST("/events", controllers.CreateEvent)
	router.GET("/profile", controllers.GetProfile)
	router.PUT("/profile", controllers.UpdateProfile)
}
