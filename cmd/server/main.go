package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"unit_rental/internal/auth"
	"unit_rental/internal/config"
	"unit_rental/internal/controllers"
	"unit_rental/internal/logger"
	"unit_rental/internal/middleware"
	"unit_rental/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Token revocation list; nil Redis degrades to expiry-only tokens
	controllers.Tokens = auth.NewTokenStore(config.NewRedisClient())
	middleware.SetRevocationCheck(func(c *gin.Context, token string) bool {
		return controllers.Tokens.IsRevoked(c.Request.Context(), token)
	})

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
