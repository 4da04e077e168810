// Package dashboard is the form-based web UI of the platform: three screens
// for creating patients, running predictions and reviewing history. It talks
// to the backend exclusively through the healthapi client and surfaces every
// failure as an inline message.
package dashboard

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthplatform/internal/healthapi"
	"healthplatform/internal/service"
)

// Form defaults, matching the original data-entry screens.
const (
	defaultDOB         = "1990-01-01"
	defaultPatientID   = "1"
	defaultAge         = "40"
	defaultHeight      = "170.0"
	defaultWeight      = "70.0"
	defaultGlucose     = "95.0"
	defaultBPSystolic  = "120"
	defaultCholesterol = "180.0"
)

type Server struct {
	router *gin.Engine
	api    *healthapi.Client
	logger *zap.Logger
}

func NewServer(api *healthapi.Client, logger *zap.Logger) *Server {
	router := gin.Default()
	tmpl := template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router: router,
		api:    api,
		logger: logger,
	}

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/patients/new")
	})
	router.GET("/patients/new", s.showCreatePatient)
	router.POST("/patients/new", s.createPatient)
	router.GET("/predict", s.showPredict)
	router.POST("/predict", s.predict)
	router.GET("/history", s.showHistory)

	return s
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) {
	s.logger.Info("Dashboard starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Dashboard failed to start", zap.Error(err))
	}
}

type createPatientView struct {
	Name    string
	DOB     string
	Gender  string
	Error   string
	Patient *healthapi.Patient
}

func (s *Server) showCreatePatient(c *gin.Context) {
	c.HTML(http.StatusOK, "create.tmpl", createPatientView{DOB: defaultDOB, Gender: "M"})
}

func (s *Server) createPatient(c *gin.Context) {
	view := createPatientView{
		Name:   c.PostForm("name"),
		DOB:    c.PostForm("dob"),
		Gender: c.PostForm("gender"),
	}

	patient, err := s.api.CreatePatient(c.Request.Context(), healthapi.CreatePatientRequest{
		Name:   view.Name,
		DOB:    view.DOB,
		Gender: view.Gender,
	})
	if err != nil {
		s.logger.Warn("Create patient failed", zap.Error(err))
		view.Error = fmt.Sprintf("Failed: %v", err)
		c.HTML(http.StatusOK, "create.tmpl", view)
		return
	}

	view.Patient = patient
	c.HTML(http.StatusOK, "create.tmpl", view)
}

type predictView struct {
	PatientID   string
	Age         string
	Height      string
	Weight      string
	Glucose     string
	BPSystolic  string
	Cholesterol string
	Symptoms    string
	BMI         float64
	Error       string
	Result      *healthapi.PredictResponse
}

func defaultPredictView() predictView {
	return predictView{
		PatientID:   defaultPatientID,
		Age:         defaultAge,
		Height:      defaultHeight,
		Weight:      defaultWeight,
		Glucose:     defaultGlucose,
		BPSystolic:  defaultBPSystolic,
		Cholesterol: defaultCholesterol,
	}
}

func (s *Server) showPredict(c *gin.Context) {
	c.HTML(http.StatusOK, "predict.tmpl", defaultPredictView())
}

func (s *Server) predict(c *gin.Context) {
	view := predictView{
		PatientID:   c.PostForm("patient_id"),
		Age:         c.PostForm("age"),
		Height:      c.PostForm("height"),
		Weight:      c.PostForm("weight"),
		Glucose:     c.PostForm("glucose"),
		BPSystolic:  c.PostForm("bp_systolic"),
		Cholesterol: c.PostForm("cholesterol"),
		Symptoms:    c.PostForm("symptoms"),
	}

	patientID, err1 := strconv.ParseInt(view.PatientID, 10, 64)
	age, err2 := strconv.ParseFloat(view.Age, 64)
	height, err3 := strconv.ParseFloat(view.Height, 64)
	weight, err4 := strconv.ParseFloat(view.Weight, 64)
	glucose, err5 := strconv.ParseFloat(view.Glucose, 64)
	bpSystolic, err6 := strconv.Atoi(view.BPSystolic)
	cholesterol, err7 := strconv.ParseFloat(view.Cholesterol, 64)
	for _, err := range []error{err1, err2, err3, err4, err5, err6, err7} {
		if err != nil {
			view.Error = "All vitals fields must be numeric."
			c.HTML(http.StatusOK, "predict.tmpl", view)
			return
		}
	}

	view.BMI = service.ComputeBMI(weight, height)

	result, err := s.api.PredictDiabetes(c.Request.Context(), healthapi.PredictRequest{
		PatientID:   patientID,
		Age:         age,
		BMI:         view.BMI,
		Glucose:     glucose,
		BPSystolic:  bpSystolic,
		Cholesterol: cholesterol,
		Symptoms:    view.Symptoms,
	})
	if err != nil {
		s.logger.Warn("Prediction request failed", zap.Error(err))
		view.Error = fmt.Sprintf("Request error: %v", err)
		c.HTML(http.StatusOK, "predict.tmpl", view)
		return
	}

	view.Result = result
	c.HTML(http.StatusOK, "predict.tmpl", view)
}

type historyView struct {
	PatientID string
	Error     string
	Info      string
	Entries   []healthapi.HistoryEntry
	Chart     template.HTML
}

func (s *Server) showHistory(c *gin.Context) {
	view := historyView{PatientID: c.Query("patient_id")}
	if view.PatientID == "" {
		view.PatientID = defaultPatientID
		c.HTML(http.StatusOK, "history.tmpl", view)
		return
	}

	patientID, err := strconv.ParseInt(view.PatientID, 10, 64)
	if err != nil {
		view.Error = "Patient ID must be a number."
		c.HTML(http.StatusOK, "history.tmpl", view)
		return
	}

	entries, err := s.api.PatientHistory(c.Request.Context(), patientID)
	if err != nil {
		s.logger.Warn("History request failed", zap.Error(err))
		view.Error = fmt.Sprintf("Failed to load: %v", err)
		c.HTML(http.StatusOK, "history.tmpl", view)
		return
	}

	if len(entries) == 0 {
		view.Info = "No history found."
		c.HTML(http.StatusOK, "history.tmpl", view)
		return
	}

	view.Entries = entries
	chart, err := historyChart(entries)
	if err != nil {
		s.logger.Error("Failed to render history chart", zap.Error(err))
		view.Error = "Failed to render chart."
	} else {
		view.Chart = chart
	}
	c.HTML(http.StatusOK, "history.tmpl", view)
}
