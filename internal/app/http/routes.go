package routes

import (
	healthapi "portfolio-backend/internal/api/health"
	worksapi "portfolio-backend/internal/api/works"
	"portfolio-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/", healthapi.Root)
	r.GET("/test", healthapi.TestDatabase)

	// ✅ Apply input sanitization to the public API group
	api := r.Group("/api")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	api.POST("/works", worksapi.CreateWork)
	api.GET("/works", worksapi.ListWorks)
	api.GET("/works/:id", worksapi.GetWorkByID)
}
