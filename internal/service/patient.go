package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"healthplatform/internal/models"
	"healthplatform/internal/repository"

	"go.uber.org/zap"
)

var ( // Define custom errors
	ErrPatientNotFound = errors.New("patient not found")
	ErrMissingName     = errors.New("patient name is required")
	ErrInvalidGender   = errors.New("gender must be one of M, F or O")
)

type PatientService interface {
	CreatePatient(name string, dateOfBirth time.Time, gender string) (*models.Patient, error)
	GetPatient(id int64) (*models.Patient, error)
}

type patientService struct {
	repo   repository.PatientRepository
	logger *zap.Logger
}

func NewPatientService(repo repository.PatientRepository, logger *zap.Logger) PatientService {
	return &patientService{repo: repo, logger: logger}
}

// CreatePatient validates the demographics and persists a new patient record.
// The returned record carries the database-assigned id.
func (s *patientService) CreatePatient(name string, dateOfBirth time.Time, gender string) (*models.Patient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return nil, ErrInvalidGender
	}

	patient := &models.Patient{
		Name:        name,
		DateOfBirth: dateOfBirth,
		Gender:      gender,
	}

	if err := s.repo.CreatePatient(patient); err != nil {
		s.logger.Error("Failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.logger.Info("Patient created", zap.Int64("patient_id", patient.ID))
	return patient, nil
}

func (s *patientService) GetPatient(id int64) (*models.Patient, error) {
	patient, err := s.repo.GetPatientByID(id)
	if err != nil {
		s.logger.Error("Failed to get patient", zap.Int64("patient_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve patient: %w", err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}
