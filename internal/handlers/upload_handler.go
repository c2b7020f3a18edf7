package handlers

import (
	"net/http"

	"fixnow_backend/internal/middleware"
	"fixnow_backend/internal/services"
	"fixnow_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	upload := rg.Group("/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("/avatar", h.UploadAvatar)
	}
}

// UploadAvatar stores a multipart image sent in the "avatar" field and
// links it to the authenticated user.
func (h *UploadHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.GetUserID(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrNoFileSent)
		return
	}

	db := h.GetDB(c)

	url, err := h.uploadService.SetAvatar(c.Request.Context(), db, userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "avatarUrl": url})
}
