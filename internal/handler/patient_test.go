package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healthplatform/internal/models"
	"healthplatform/internal/service"
)

type stubPatientService struct {
	created *models.Patient
	err     error
}

func (s *stubPatientService) CreatePatient(name string, dateOfBirth time.Time, gender string) (*models.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	patient := *s.created
	patient.Name = name
	patient.DateOfBirth = dateOfBirth
	patient.Gender = gender
	return &patient, nil
}

func (s *stubPatientService) GetPatient(id int64) (*models.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func newPatientRouter(svc service.PatientService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPatientHandler(svc, zap.NewNop())
	router.POST("/patients", h.CreatePatient)
	return router
}

func TestCreatePatientHandler_Success(t *testing.T) {
	router := newPatientRouter(&stubPatientService{created: &models.Patient{ID: 1}})

	body := `{"name":"Alice","dob":"1990-01-01","gender":"F"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var patient models.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patient))
	assert.Equal(t, int64(1), patient.ID)
	assert.Equal(t, "Alice", patient.Name)
	assert.Equal(t, "F", patient.Gender)
}

func TestCreatePatientHandler_MissingFields(t *testing.T) {
	router := newPatientRouter(&stubPatientService{created: &models.Patient{ID: 1}})

	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreatePatientHandler_BadDate(t *testing.T) {
	router := newPatientRouter(&stubPatientService{created: &models.Patient{ID: 1}})

	body := `{"name":"Alice","dob":"01/01/1990","gender":"F"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreatePatientHandler_InvalidGender(t *testing.T) {
	router := newPatientRouter(&stubPatientService{err: service.ErrInvalidGender})

	body := `{"name":"Alice","dob":"1990-01-01","gender":"X"}`
	req := httptest.NewRequest(http.MethodPost, "/patients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "gender")
}
