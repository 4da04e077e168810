package service

import (
	"fmt"
	"math"
	"time"

	"healthplatform/internal/models"
	"healthplatform/internal/repository"

	"go.uber.org/zap"
)

// Risk labels, ordered by severity.
const (
	RiskLabelLow    = "low"
	RiskLabelMedium = "medium"
	RiskLabelHigh   = "high"
)

// Label thresholds over the probability range. Monotonic and total:
// p < 0.33 -> low, p < 0.66 -> medium, else high.
const (
	lowThreshold    = 0.33
	mediumThreshold = 0.66
)

type PredictionService interface {
	PredictDiabetes(input models.VitalsInput) (*models.Prediction, error)
	History(patientID int64) ([]*models.Prediction, error)
}

type predictionService struct {
	patientRepo    repository.PatientRepository
	predictionRepo repository.PredictionRepository
	logger         *zap.Logger
}

func NewPredictionService(patientRepo repository.PatientRepository, predictionRepo repository.PredictionRepository, logger *zap.Logger) PredictionService {
	return &predictionService{
		patientRepo:    patientRepo,
		predictionRepo: predictionRepo,
		logger:         logger,
	}
}

// PredictDiabetes computes a diabetes risk probability for the given vitals,
// stores a prediction row snapshotting the input, and returns the stored
// record. Returns ErrPatientNotFound when the referenced patient does not
// exist; nothing is persisted in that case.
func (s *predictionService) PredictDiabetes(input models.VitalsInput) (*models.Prediction, error) {
	patient, err := s.patientRepo.GetPatientByID(input.PatientID)
	if err != nil {
		s.logger.Error("Failed to look up patient for prediction",
			zap.Int64("patient_id", input.PatientID), zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	score := RiskScore(input)

	prediction := &models.Prediction{
		PatientID:   input.PatientID,
		CreatedAt:   time.Now().UTC(),
		RiskScore:   score,
		RiskLabel:   RiskLabel(score),
		Age:         input.Age,
		BMI:         input.BMI,
		Glucose:     input.Glucose,
		BPSystolic:  input.BPSystolic,
		Cholesterol: input.Cholesterol,
		Symptoms:    input.Symptoms,
	}

	if err := s.predictionRepo.CreatePrediction(prediction); err != nil {
		s.logger.Error("Failed to store prediction",
			zap.Int64("patient_id", input.PatientID), zap.Error(err))
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}

	s.logger.Info("Prediction stored",
		zap.Int64("prediction_id", prediction.ID),
		zap.Int64("patient_id", prediction.PatientID),
		zap.Float64("risk_score", prediction.RiskScore),
		zap.String("risk_label", prediction.RiskLabel),
	)
	return prediction, nil
}

// History returns every stored prediction for the patient, oldest first.
// Returns ErrPatientNotFound when the patient does not exist; a patient with
// no predictions yields an empty slice.
func (s *predictionService) History(patientID int64) ([]*models.Prediction, error) {
	patient, err := s.patientRepo.GetPatientByID(patientID)
	if err != nil {
		s.logger.Error("Failed to look up patient for history",
			zap.Int64("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	predictions, err := s.predictionRepo.GetPredictionsByPatientID(patientID)
	if err != nil {
		s.logger.Error("Failed to load prediction history",
			zap.Int64("patient_id", patientID), zap.Error(err))
		return nil, fmt.Errorf("failed to load prediction history: %w", err)
	}
	if predictions == nil {
		predictions = []*models.Prediction{}
	}
	return predictions, nil
}

// RiskScore maps vitals to a probability in [0,1] using a fixed logistic
// curve over clinically centered features:
//
//	z = 0.050*(glucose-100) + 0.090*(bmi-25) + 0.030*(age-45)
//	  + 0.020*(bp_systolic-120) + 0.008*(cholesterol-200)
//	p = 1 / (1 + exp(-z))
//
// The weights are a documented heuristic, not a trained model. The function
// is deterministic and increases monotonically in every input.
func RiskScore(input models.VitalsInput) float64 {
	z := 0.050*(input.Glucose-100) +
		0.090*(input.BMI-25) +
		0.030*(input.Age-45) +
		0.020*(float64(input.BPSystolic)-120) +
		0.008*(input.Cholesterol-200)

	p := 1 / (1 + math.Exp(-z))
	return math.Min(1, math.Max(0, p))
}

// RiskLabel buckets a probability into low, medium or high.
func RiskLabel(score float64) string {
	switch {
	case score < lowThreshold:
		return RiskLabelLow
	case score < mediumThreshold:
		return RiskLabelMedium
	default:
		return RiskLabelHigh
	}
}
