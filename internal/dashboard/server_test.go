package dashboard

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healthplatform/internal/healthapi"
)

// fakeBackend serves canned JSON for the routes the dashboard calls.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	// Method-prefixed mux patterns need go1.22+; check the method in the
	// handler instead so the stub works on go1.21.
	requireMethod := func(method string, h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.NotFound(w, r)
				return
			}
			h(w, r)
		}
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/patients", requireMethod(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Alice","date_of_birth":"1990-01-01T00:00:00Z","gender":"F"}`))
	}))
	mux.HandleFunc("/predict/diabetes", requireMethod(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"prediction":{"probability":0.42,"label":"medium"},"recommendation":"Reduce sugar intake.","prediction_id":7}`))
	}))
	mux.HandleFunc("/patient/1/history", requireMethod(http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"patient_id":1,"created_at":"2024-03-01T10:00:00Z","risk_score":0.3,"risk_label":"low","age":40,"bmi":24.22,"glucose":95,"bp_systolic":120,"cholesterol":180,"symptoms":""}]`))
	}))
	mux.HandleFunc("/patient/2/history", requireMethod(http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	mux.HandleFunc("/patient/99999/history", requireMethod(http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Patient not found"}`))
	}))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestDashboard(t *testing.T) *Server {
	t.Helper()
	backend := fakeBackend(t)
	api := healthapi.NewClient(backend.URL, zap.NewNop())
	return NewServer(api, zap.NewNop())
}

func TestCreatePatientScreen_ShowsForm(t *testing.T) {
	srv := newTestDashboard(t)

	req := httptest.NewRequest(http.MethodGet, "/patients/new", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Create a new patient")
	assert.Contains(t, w.Body.String(), "1990-01-01")
}

func TestCreatePatientScreen_SubmitShowsResult(t *testing.T) {
	srv := newTestDashboard(t)

	form := url.Values{"name": {"Alice"}, "dob": {"1990-01-01"}, "gender": {"F"}}
	req := httptest.NewRequest(http.MethodPost, "/patients/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Patient created")
	assert.Contains(t, w.Body.String(), "id=1")
}

func TestPredictScreen_SubmitShowsPredictionAndBMI(t *testing.T) {
	srv := newTestDashboard(t)

	form := url.Values{
		"patient_id":  {"1"},
		"age":         {"40"},
		"height":      {"170"},
		"weight":      {"70"},
		"glucose":     {"95"},
		"bp_systolic": {"120"},
		"cholesterol": {"180"},
		"symptoms":    {""},
	}
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Calculated BMI: 24.22")
	assert.Contains(t, body, "0.42")
	assert.Contains(t, body, "medium")
	assert.Contains(t, body, "Reduce sugar intake.")
	assert.Contains(t, body, "Prediction saved id: 7")
}

func TestPredictScreen_NonNumericInput(t *testing.T) {
	srv := newTestDashboard(t)

	form := url.Values{"patient_id": {"abc"}}
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "must be numeric")
}

func TestHistoryScreen_RendersTableAndChart(t *testing.T) {
	srv := newTestDashboard(t)

	req := httptest.NewRequest(http.MethodGet, "/history?patient_id=1", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "0.30")
	assert.Contains(t, body, "low")
	assert.Contains(t, body, "echarts", "history page should embed the chart")
}

func TestHistoryScreen_EmptyHistory(t *testing.T) {
	srv := newTestDashboard(t)

	req := httptest.NewRequest(http.MethodGet, "/history?patient_id=2", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No history found.")
}

func TestHistoryScreen_BackendErrorShownInline(t *testing.T) {
	srv := newTestDashboard(t)

	req := httptest.NewRequest(http.MethodGet, "/history?patient_id=99999", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load")
	assert.Contains(t, w.Body.String(), "Patient not found")
}
