package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/snap-point/places-api/controllers"
)

func SetupHelloRoutes(r gin.IRouter, helloController *controllers.HelloController) {
	r.GET("/hello", helloController.Hello)
	r.GET("/hello/:name", helloController.HelloName)
}
