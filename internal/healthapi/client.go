// Package healthapi is the HTTP client of the platform backend used by the
// dashboard. It defines its own wire types so the dashboard only depends on
// the published JSON contract.
package healthapi

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client is a client for the Health Platform backend API.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient creates a backend API client. No retries: every dashboard action
// maps to a single call whose failure is shown to the user.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Patient is a patient record as returned by the backend.
type Patient struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender"`
}

// CreatePatientRequest is the body of POST /patients.
type CreatePatientRequest struct {
	Name   string `json:"name"`
	DOB    string `json:"dob"` // YYYY-MM-DD
	Gender string `json:"gender"`
}

// PredictRequest is the body of POST /predict/diabetes.
type PredictRequest struct {
	PatientID   int64   `json:"patient_id"`
	Age         float64 `json:"age"`
	BMI         float64 `json:"bmi"`
	Glucose     float64 `json:"glucose"`
	BPSystolic  int     `json:"bp_systolic"`
	Cholesterol float64 `json:"cholesterol"`
	Symptoms    string  `json:"symptoms,omitempty"`
}

// PredictionSummary is the probability/label pair inside a predict response.
type PredictionSummary struct {
	Probability float64 `json:"probability"`
	Label       string  `json:"label"`
}

// PredictResponse is the response of POST /predict/diabetes.
type PredictResponse struct {
	Prediction     PredictionSummary `json:"prediction"`
	Recommendation string            `json:"recommendation"`
	PredictionID   int64             `json:"prediction_id"`
}

// HistoryEntry is one stored prediction in a patient's history.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	CreatedAt   time.Time `json:"created_at"`
	RiskScore   float64   `json:"risk_score"`
	RiskLabel   string    `json:"risk_label"`
	Age         float64   `json:"age"`
	BMI         float64   `json:"bmi"`
	Glucose     float64   `json:"glucose"`
	BPSystolic  int       `json:"bp_systolic"`
	Cholesterol float64   `json:"cholesterol"`
	Symptoms    string    `json:"symptoms"`
}

// HealthResponse is the liveness payload of GET /.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func apiError(resp *resty.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	message := string(resp.Body())
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}

// CreatePatient registers a new patient and returns the stored record.
func (c *Client) CreatePatient(ctx context.Context, req CreatePatientRequest) (*Patient, error) {
	c.logger.Debug("Creating patient", zap.String("name", req.Name))

	var patient Patient
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&patient).
		Post("/patients")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &patient, nil
}

// PredictDiabetes submits vitals and returns the prediction result.
func (c *Client) PredictDiabetes(ctx context.Context, req PredictRequest) (*PredictResponse, error) {
	c.logger.Debug("Requesting prediction", zap.Int64("patient_id", req.PatientID))

	var result PredictResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/predict/diabetes")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

// PatientHistory returns the patient's predictions, oldest first.
func (c *Client) PatientHistory(ctx context.Context, patientID int64) ([]HistoryEntry, error) {
	var history []HistoryEntry
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&history).
		Get(fmt.Sprintf("/patient/%d/history", patientID))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return history, nil
}

// HealthCheck checks whether the backend is up.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}
