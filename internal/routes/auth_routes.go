package routes

import (
	"github.com/gin-gonic/gin"

	"unit_rental/internal/controllers"
	"unit_rental/internal/middleware"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.SignupUser)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/logout", middleware.RequireAuth(), controllers.LogoutUser)
	}
}
