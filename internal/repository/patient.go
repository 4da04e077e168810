package repository

import (
	"database/sql"

	"healthplatform/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type PatientRepository interface {
	CreatePatient(patient *models.Patient) error
	GetPatientByID(id int64) (*models.Patient, error)
}

type patientRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPatientRepository(db *sqlx.DB, logger *zap.Logger) PatientRepository {
	return &patientRepository{db: db, logger: logger}
}

func (r *patientRepository) CreatePatient(patient *models.Patient) error {
	query := `INSERT INTO patients (name, date_of_birth, gender)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowx(query, patient.Name, patient.DateOfBirth, patient.Gender).
		Scan(&patient.ID)
}

func (r *patientRepository) GetPatientByID(id int64) (*models.Patient, error) {
	var patient models.Patient
	query := `SELECT id, name, date_of_birth, gender FROM patients WHERE id = $1`
	err := r.db.Get(&patient, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Patient not found
		}
		return nil, err
	}
	return &patient, nil
}
