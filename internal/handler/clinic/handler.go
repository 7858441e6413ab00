package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/handler"
	"github.com/dragenda/agenda-api/internal/middleware"
	"github.com/dragenda/agenda-api/internal/model"
	clinicService "github.com/dragenda/agenda-api/internal/service/clinic"
)

// dashboardPath is where a successful clinic creation sends the caller.
const dashboardPath = "/dashboard"

type Handler struct {
	service clinicService.ClinicServicer
}

func NewHandler(service clinicService.ClinicServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clinics := r.Group("/clinics")
	{
		clinics.POST("", h.CreateClinic)
		clinics.GET("", h.ListClinics)
		clinics.GET("/:id", h.GetClinic)
		clinics.PUT("/:id", h.UpdateClinic)
		clinics.DELETE("/:id", h.DeleteClinic)
	}
}

// CreateClinic creates a clinic owned by the authenticated caller and
// redirects to the dashboard, matching the web client's post-creation flow.
func (h *Handler) CreateClinic(c *gin.Context) {
	var req model.CreateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	clinic, err := h.service.CreateForUser(c.Request.Context(), userID, req.Name)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.Header("Location", dashboardPath)
	c.JSON(http.StatusSeeOther, handler.NewSuccessResponse(clinic))
}

func (h *Handler) ListClinics(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	clinics, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinics))
}

func (h *Handler) GetClinic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	clinic, err := h.service.GetClinic(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinic))
}

func (h *Handler) UpdateClinic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	var req model.UpdateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	clinic, err := h.service.UpdateClinic(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinic))
}

func (h *Handler) DeleteClinic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	if err := h.service.DeleteClinic(c.Request.Context(), userID, id); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
