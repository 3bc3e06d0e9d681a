package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery + structured request logging
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	AuthRoutes(r)
	OwnerRoutes(r)
	DriverRoutes(r)
	WebSocketRoutes(r)

	return r
}
