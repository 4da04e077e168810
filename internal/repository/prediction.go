package repository

import (
	"healthplatform/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type PredictionRepository interface {
	CreatePrediction(prediction *models.Prediction) error
	GetPredictionsByPatientID(patientID int64) ([]*models.Prediction, error)
}

type predictionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPredictionRepository(db *sqlx.DB, logger *zap.Logger) PredictionRepository {
	return &predictionRepository{db: db, logger: logger}
}

func (r *predictionRepository) CreatePrediction(prediction *models.Prediction) error {
	query := `INSERT INTO predictions (patient_id, created_at, risk_score, risk_label, age, bmi, glucose, bp_systolic, cholesterol, symptoms)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowx(query, prediction.PatientID, prediction.CreatedAt, prediction.RiskScore,
		prediction.RiskLabel, prediction.Age, prediction.BMI, prediction.Glucose,
		prediction.BPSystolic, prediction.Cholesterol, prediction.Symptoms).
		Scan(&prediction.ID)
}

// GetPredictionsByPatientID returns every prediction stored for the patient,
// oldest first.
func (r *predictionRepository) GetPredictionsByPatientID(patientID int64) ([]*models.Prediction, error) {
	var predictions []*models.Prediction
	query := `SELECT id, patient_id, created_at, risk_score, risk_label, age, bmi, glucose, bp_systolic, cholesterol, symptoms
	          FROM predictions WHERE patient_id = $1 ORDER BY created_at ASC, id ASC`
	err := r.db.Select(&predictions, query, patientID)
	if err != nil {
		return nil, err
	}
	return predictions, nil
}
