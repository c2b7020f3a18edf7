package routes

import (
	"net/http"

	"fixnow_backend/internal/handlers"
	"fixnow_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes registers every HTTP route of the application.
// uploadsDir is the local directory served under /uploads.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	uploadsDir string,
) {
	// Health probe used by the frontend and deploy checks.
	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "name": "FixNow API"})
	})

	// Uploaded avatars are served as static files.
	ginRouter.Static("/uploads", uploadsDir)

	root := ginRouter.Group("")
	{
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.MeHandler.RegisterRoutes(root)
		appHandlers.ServiceHandler.RegisterRoutes(root)
		appHandlers.UploadHandler.RegisterRoutes(root)
	}

	// The swagger spec is generated out-of-band with `swag init` from the
	// annotations in cmd/web/main.go; until it runs, the UI has no doc.json.
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info("Routes registered")
}
