package routes

import (
	"github.com/gin-gonic/gin"

	"unit_rental/internal/controllers"
	"unit_rental/internal/middleware"
	"unit_rental/internal/models"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/driver")
	driver.Use(middleware.RequireAuthWithRole(models.RoleDriver))
	driver.Use(middleware.TrackBusy(controllers.Busy))
	{
		driver.GET("/units", controllers.ListAssignedUnits)
		driver.GET("/units/:id", controllers.GetAssignedUnit)
		driver.GET("/profile", controllers.GetDriverProfile)
	}
}
