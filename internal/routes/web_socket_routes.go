package routes

import (
	"github.com/gin-gonic/gin"

	"unit_rental/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine) {
	ws := r.Group("/ws")
	{
		ws.GET("/ops", controllers.HandleOpsWebSocket)
	}
}
