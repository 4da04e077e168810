package server

import (
	"net/http"
	"time"

	"healthplatform/internal/config"
	"healthplatform/internal/handler"
	"healthplatform/internal/repository"
	"healthplatform/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger) *Server {
	router := gin.Default()

	// Explicit origin list instead of a wildcard; the dashboard is the only
	// expected browser client.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	patientRepo := repository.NewPatientRepository(s.db, s.logger)
	predictionRepo := repository.NewPredictionRepository(s.db, s.logger)

	patientService := service.NewPatientService(patientRepo, s.logger)
	predictionService := service.NewPredictionService(patientRepo, predictionRepo, s.logger)

	patientHandler := handler.NewPatientHandler(patientService, s.logger)
	predictionHandler := handler.NewPredictionHandler(predictionService, s.logger)
	recommendationHandler := handler.NewRecommendationHandler()

	// Liveness probe
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Intelligent Health Platform backend working.",
		})
	})

	s.router.POST("/patients", patientHandler.CreatePatient)
	s.router.POST("/predict/diabetes", predictionHandler.PredictDiabetes)
	s.router.GET("/patient/:id/history", predictionHandler.PatientHistory)
	s.router.GET("/recommendations/:label", recommendationHandler.GetRecommendation)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
