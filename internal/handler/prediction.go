package handler

import (
	"errors"
	"net/http"
	"strconv"

	"healthplatform/internal/models"
	"healthplatform/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PredictionHandler interface {
	PredictDiabetes(c *gin.Context)
	PatientHistory(c *gin.Context)
}

type predictionHandler struct {
	predictionService service.PredictionService
	logger            *zap.Logger
}

func NewPredictionHandler(predictionService service.PredictionService, logger *zap.Logger) PredictionHandler {
	return &predictionHandler{predictionService: predictionService, logger: logger}
}

// Numeric fields are pointers so a missing field is rejected instead of
// silently reading as zero.
type PredictDiabetesRequest struct {
	PatientID   *int64   `json:"patient_id" binding:"required"`
	Age         *float64 `json:"age" binding:"required"`
	BMI         *float64 `json:"bmi" binding:"required"`
	Glucose     *float64 `json:"glucose" binding:"required"`
	BPSystolic  *int     `json:"bp_systolic" binding:"required"`
	Cholesterol *float64 `json:"cholesterol" binding:"required"`
	Symptoms    string   `json:"symptoms"`
}

// PredictDiabetes handles POST /predict/diabetes
func (h *predictionHandler) PredictDiabetes(c *gin.Context) {
	var req PredictDiabetesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	input := models.VitalsInput{
		PatientID:   *req.PatientID,
		Age:         *req.Age,
		BMI:         *req.BMI,
		Glucose:     *req.Glucose,
		BPSystolic:  *req.BPSystolic,
		Cholesterol: *req.Cholesterol,
		Symptoms:    req.Symptoms,
	}

	prediction, err := h.predictionService.PredictDiabetes(input)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		h.logger.Error("Failed to run prediction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run prediction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prediction": gin.H{
			"probability": prediction.RiskScore,
			"label":       prediction.RiskLabel,
		},
		"recommendation": service.Recommend(prediction.RiskLabel),
		"prediction_id":  prediction.ID,
	})
}

// PatientHistory handles GET /patient/:id/history
func (h *predictionHandler) PatientHistory(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid patient ID format"})
		return
	}

	predictions, err := h.predictionService.History(patientID)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		h.logger.Error("Failed to load history", zap.Int64("patient_id", patientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, predictions)
}
