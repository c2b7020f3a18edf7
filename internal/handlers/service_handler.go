package handlers

import (
	"net/http"

	"fixnow_backend/internal/middleware"
	"fixnow_backend/internal/services"
	"fixnow_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ServiceHandler covers the public catalog and the job lifecycle, which the
// frontend reaches through the /services route tree.
type ServiceHandler struct {
	*BaseHandler
	catalogService services.CatalogService
	jobService     services.JobService
}

func NewServiceHandler(base *BaseHandler, catalogService services.CatalogService, jobService services.JobService) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		jobService:     jobService,
	}
}

// RegisterRoutes registers catalog and job routes. Listing and detail are
// public; everything else requires a bearer token.
func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	svc := rg.Group("/services")
	{
		// Public reads still parse a bearer token when one is sent, so
		// access logs carry the user.
		svc.GET("", middleware.OptionalAuthMiddleware(), h.ListServices)
		svc.GET("/:id", middleware.OptionalAuthMiddleware(), h.GetService)

		authed := svc.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("", h.CreateService)
			authed.DELETE("/:id", h.DeleteService)
			authed.PATCH("/:id/availability", h.SetAvailability)

			authed.POST("/:id/jobs", h.CreateJob)
			authed.GET("/dashboard/client", h.ClientDashboard)
			authed.GET("/dashboard/provider", h.ProviderDashboard)
			authed.POST("/jobs/:id/accept", h.AcceptJob)
			authed.POST("/jobs/:id/complete", h.CompleteJob)
		}
	}
}

// --- catalog ---

func (h *ServiceHandler) ListServices(c *gin.Context) {
	db := h.GetDB(c)

	list, err := h.catalogService.ListAvailable(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "services": list})
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	db := h.GetDB(c)

	service, err := h.catalogService.GetService(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "service": service})
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	identity := middleware.GetClaims(c)

	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.catalogService.CreateService(db, identity, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "service": service})
}

func (h *ServiceHandler) SetAvailability(c *gin.Context) {
	identity := middleware.GetClaims(c)

	var req dto.SetAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	service, err := h.catalogService.SetAvailability(db, identity, c.Param("id"), req.Available)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "service": service})
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	identity := middleware.GetClaims(c)
	db := h.GetDB(c)

	if err := h.catalogService.DeleteService(db, identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --- jobs ---

func (h *ServiceHandler) CreateJob(c *gin.Context) {
	identity := middleware.GetClaims(c)

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.CreateJob(db, identity, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "job": job})
}

func (h *ServiceHandler) ClientDashboard(c *gin.Context) {
	identity := middleware.GetClaims(c)
	db := h.GetDB(c)

	jobs, err := h.jobService.ClientDashboard(db, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "jobs": jobs})
}

func (h *ServiceHandler) ProviderDashboard(c *gin.Context) {
	identity := middleware.GetClaims(c)
	db := h.GetDB(c)

	dashboard, err := h.jobService.ProviderDashboard(db, identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "jobs": dashboard.Jobs, "myServices": dashboard.MyServices})
}

func (h *ServiceHandler) AcceptJob(c *gin.Context) {
	identity := middleware.GetClaims(c)
	db := h.GetDB(c)

	job, err := h.jobService.AcceptJob(db, identity, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "job": job})
}

func (h *ServiceHandler) CompleteJob(c *gin.Context) {
	identity := middleware.GetClaims(c)
	db := h.GetDB(c)

	job, err := h.jobService.CompleteJob(db, identity, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "job": job})
}
