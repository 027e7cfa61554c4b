package routes

import (
	"neurolearn/controllers"

	"github.com/gin-gonic/gin"
)

func SignUpRouteHandler(ctx *gin.Context) {
	controllers.SignUp(ctx)
}

func LoginRouteHandler(ctx *gin.Context) {
	controllers.Login(ctx)
}
