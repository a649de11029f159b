package web

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the HTTP routes
func SetupRoutes(handler *Handler) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(Recovery())
	router.Use(Logger())

	router.GET(DataPath, handler.GetData)

	// Everything else is looked up in the static assets directory.
	router.NoRoute(handler.ServeStatic)

	return router
}
