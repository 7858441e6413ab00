package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dragenda/agenda-api/internal/handler"
	"github.com/dragenda/agenda-api/internal/middleware"
	"github.com/dragenda/agenda-api/internal/model"
	clinicService "github.com/dragenda/agenda-api/internal/service/clinic"
	patientService "github.com/dragenda/agenda-api/internal/service/patient"
)

type Handler struct {
	service patientService.PatientServicer
	clinics clinicService.ClinicServicer
}

func NewHandler(service patientService.PatientServicer, clinics clinicService.ClinicServicer) *Handler {
	return &Handler{service: service, clinics: clinics}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/clinics/:id/patients", h.CreatePatient)
	r.GET("/clinics/:id/patients", h.ListPatients)

	patients := r.Group("/patients")
	{
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.clinics.RequireMembership(c.Request.Context(), userID, clinicID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	patient := &model.Patient{
		ClinicID:    clinicID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Sex:         req.Sex,
	}
	if err := h.service.CreatePatient(c.Request.Context(), patient); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(patient))
}

func (h *Handler) ListPatients(c *gin.Context) {
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

	patients, err := h.service.ListPatients(c.Request.Context(), clinicID)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) GetPatient(c *gin.Context) {
	patient, ok := h.loadScoped(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(patient))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	patient, ok := h.loadScoped(c)
	if !ok {
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = *req.PhoneNumber
	}
	if req.Sex != nil {
		patient.Sex = *req.Sex
	}

	if err := h.service.UpdatePatient(c.Request.Context(), patient); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patient))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	patient, ok := h.loadScoped(c)
	if !ok {
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), patient.ID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) loadScoped(c *gin.Context) (*model.Patient, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return nil, false
	}

	patient, err := h.service.GetPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return nil, false
	}

	userID := c.GetString(middleware.ContextUserID)
	if err := h.clinics.RequireMembership(c.Request.Context(), userID, patient.ClinicID); err != nil {
		c.JSON(handler.StatusFromError(err), handler.NewErrorResponse(handler.ErrorMessage(err)))
		return nil, false
	}
	return patient, true
}
