package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/handler"
	"github.com/dragenda/agenda-api/internal/middleware"
	"github.com/dragenda/agenda-api/internal/model"
	clinicService "github.com/dragenda/agenda-api/internal/service/clinic"
	doctorService "github.com/dragenda/agenda-api/internal/service/doctor"
)

type Handler struct {
	service doctorService.DoctorServicer
	clinics clinicService.ClinicServicer
}

func NewHandler(service doctorService.DoctorServicer, clinics clinicService.ClinicServicer) *Handler {
	return &Handler{service: service, clinics: clinics}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/clinics/:id/doctors", h.CreateDoctor)
	r.GET("/clinics/:id/doctors", h.ListDoctors)

	doctors := r.Group("/doctors")
	{
		doctors.GET("/:id", h.GetDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.clinics.RequireMembership(c.Request.Context(), userID, clinicID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	doctor := &model.Doctor{
		ClinicID:                clinicID,
		Name:                    req.Name,
		AvatarImageURL:          req.AvatarImageURL,
		Specialty:               req.Specialty,
		AvailableFromWeekDay:    req.AvailableFromWeekDay,
		AvailableToWeekDay:      req.AvailableToWeekDay,
		AvailableFromTime:       req.AvailableFromTime,
		AvailableToTime:         req.AvailableToTime,
		AppointmentPriceInCents: req.AppointmentPriceInCents,
	}
	if err := h.service.CreateDoctor(c.Request.Context(), doctor); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(doctor))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.clinics.RequireMembership(c.Request.Context(), userID, clinicID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	doctors, err := h.service.ListDoctors(c.Request.Context(), clinicID)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, ok := h.loadScoped(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	doctor, ok := h.loadScoped(c)
	if !ok {
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.AvatarImageURL != nil {
		doctor.AvatarImageURL = req.AvatarImageURL
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.AvailableFromWeekDay != nil {
		doctor.AvailableFromWeekDay = *req.AvailableFromWeekDay
	}
	if req.AvailableToWeekDay != nil {
		doctor.AvailableToWeekDay = *req.AvailableToWeekDay
	}
	if req.AvailableFromTime != nil {
		doctor.AvailableFromTime = *req.AvailableFromTime
	}
	if req.AvailableToTime != nil {
		doctor.AvailableToTime = *req.AvailableToTime
	}
	if req.AppointmentPriceInCents != nil {
		doctor.AppointmentPriceInCents = *req.AppointmentPriceInCents
	}

	if err := h.service.UpdateDoctor(c.Request.Context(), doctor); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	doctor, ok := h.loadScoped(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), doctor.ID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

// loadScoped fetches the doctor and verifies the caller belongs to its
// clinic. Writes the error response itself when the check fails.
func (h *Handler) loadScoped(c *gin.Context) (*model.Doctor, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return nil, false
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return nil, false
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.clinics.RequireMembership(c.Request.Context(), userID, doctor.ClinicID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return nil, false
	}
	return doctor, true
}
