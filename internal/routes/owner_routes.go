package routes

import (
	"github.com/gin-gonic/gin"

	"unit_rental/internal/controllers"
	"unit_rental/internal/middleware"
	"unit_rental/internal/models"
)

func OwnerRoutes(r *gin.Engine) {
	owner := r.Group("/owner")
	owner.Use(middleware.RequireAuthWithRole(models.RoleOwner))
	owner.Use(middleware.TrackBusy(controllers.Busy))
	{
		owner.POST("/units", controllers.CreateUnit)
		owner.GET("/units", controllers.ListMyUnits)
		owner.GET("/units/:id", controllers.GetUnit)
		owner.PUT("/units/:id", controllers.UpdateUnit)
		owner.DELETE("/units/:id", controllers.DeleteUnit)
		owner.PATCH("/units/:id/driver", controllers.AssignDriver)
		owner.PATCH("/units/:id/cash", controllers.RecordCash)

		owner.GET("/analytics", controllers.OwnerAnalytics)

		owner.GET("/profile", controllers.GetOwnerProfile)
		owner.PUT("/profile", controllers.UpdateOwnerProfile)
	}
}
