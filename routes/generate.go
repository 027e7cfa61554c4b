package routes

import (
	"neurolearn/controllers"

	"github.com/gin-gonic/gin"
)

// SetupGenerateRoutes wires the content and image generation endpoints.
func SetupGenerateRoutes(router *gin.RouterGroup) {
	generate := router.Group("/generate")
	{
		generate.POST("/content", controllers.GenerateContent)
		generate.POST("/image", controllers.GenerateImage)
	}
}
