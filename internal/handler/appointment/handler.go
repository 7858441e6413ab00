package appointment

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/handler"
	"github.com/dragenda/agenda-api/internal/middleware"
	"github.com/dragenda/agenda-api/internal/model"
	appointmentService "github.com/dragenda/agenda-api/internal/service/appointment"
	clinicService "github.com/dragenda/agenda-api/internal/service/clinic"
)

type Handler struct {
	service appointmentService.AppointmentServicer
	clinics clinicService.ClinicServicer
}

func NewHandler(service appointmentService.AppointmentServicer, clinics clinicService.ClinicServicer) *Handler {
	return &Handler{service: service, clinics: clinics}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/clinics/:id/appointments", h.CreateAppointment)
	r.GET("/clinics/:id/appointments", h.ListAppointments)

	appointments := r.Group("/appointments")
	{
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.clinics.RequireMembership(c.Request.Context(), userID, clinicID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	appointment := &model.Appointment{
		ClinicID:  clinicID,
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      req.Date,
	}
	if err := h.service.CreateAppointment(c.Request.Context(), appointment); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

func (h *Handler) ListAppointments(c *gin.Context) {
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

	filters := &model.AppointmentFilters{}
	if v := c.Query("doctor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor_id filter"))
			return
		}
		filters.DoctorID = id
	}
	if v := c.Query("patient_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient_id filter"))
			return
		}
		filters.PatientID = id
	}
	if v := c.Query("from"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid from filter"))
			return
		}
		filters.StartDate = ts
	}
	if v := c.Query("to"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid to filter"))
			return
		}
		filters.EndDate = ts
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), clinicID, filters)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appointment, ok := h.loadScoped(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	appointment, ok := h.loadScoped(c)
	if !ok {
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if req.Date != nil {
		appointment.Date = *req.Date
	}

	if err := h.service.UpdateAppointment(c.Request.Context(), appointment); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	appointment, ok := h.loadScoped(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), appointment.ID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) loadScoped(c *gin.Context) (*model.Appointment, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return nil, false
	}

	appointment, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return nil, false
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.clinics.RequireMembership(c.Request.Context(), userID, appointment.ClinicID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return nil, false
	}
	return appointment, true
}
