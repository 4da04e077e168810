package handler

import (
	"errors"
	"net/http"
	"time"

	"healthplatform/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PatientHandler interface {
	CreatePatient(c *gin.Context)
}

type patientHandler struct {
	patientService service.PatientService
	logger         *zap.Logger
}

func NewPatientHandler(patientService service.PatientService, logger *zap.Logger) PatientHandler {
	return &patientHandler{patientService: patientService, logger: logger}
}

type CreatePatientRequest struct {
	Name   string `json:"name" binding:"required"`
	DOB    string `json:"dob" binding:"required"` // YYYY-MM-DD
	Gender string `json:"gender" binding:"required"`
}

// CreatePatient handles POST /patients
func (h *patientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "dob must be a date in YYYY-MM-DD format"})
		return
	}

	patient, err := h.patientService.CreatePatient(req.Name, dateOfBirth, req.Gender)
	if err != nil {
		if errors.Is(err, service.ErrMissingName) || errors.Is(err, service.ErrInvalidGender) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient"})
		return
	}

	c.JSON(http.StatusCreated, patient)
}
