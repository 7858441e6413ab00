package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/dragenda/agenda-api/internal/config"
	appointmentHandler "github.com/dragenda/agenda-api/internal/handler/appointment"
	clinicHandler "github.com/dragenda/agenda-api/internal/handler/clinic"
	doctorHandler "github.com/dragenda/agenda-api/internal/handler/doctor"
	patientHandler "github.com/dragenda/agenda-api/internal/handler/patient"
	"github.com/dragenda/agenda-api/internal/handler"
	"github.com/dragenda/agenda-api/internal/middleware"
	"github.com/dragenda/agenda-api/internal/repository/postgres"
	"github.com/dragenda/agenda-api/internal/router"
	appointmentService "github.com/dragenda/agenda-api/internal/service/appointment"
	clinicService "github.com/dragenda/agenda-api/internal/service/clinic"
	doctorService "github.com/dragenda/agenda-api/internal/service/doctor"
	patientService "github.com/dragenda/agenda-api/internal/service/patient"
	sessionService "github.com/dragenda/agenda-api/internal/service/session"
	"github.com/dragenda/agenda-api/internal/worker"
	"github.com/dragenda/agenda-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	lg := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Logging.Pretty,
	})
	log.Logger = *lg.Zerolog()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	base := postgres.NewBaseRepository(db)
	sessionRepo := postgres.NewSessionRepository(base)
	verificationRepo := postgres.NewVerificationRepository(base)
	clinicRepo := postgres.NewClinicRepository(base)
	doctorRepo := postgres.NewDoctorRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base)

	sessionSvc := sessionService.NewService(sessionRepo, cfg.Session.CacheTTL)
	clinicSvc := clinicService.NewService(clinicRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, patientRepo)

	authMiddleware := middleware.NewAuthMiddleware(sessionSvc)

	h := handler.NewHandler()
	clinicH := clinicHandler.NewHandler(clinicSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc, clinicSvc)
	patientH := patientHandler.NewHandler(patientSvc, clinicSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc, clinicSvc)

	r := router.NewRouter(
		authMiddleware,
		clinicH,
		doctorH,
		patientH,
		appointmentH,
		h,
		router.Config{
			RateLimit:  rate.Limit(100),
			RateBurst:  200,
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	cleanup := worker.NewCleanupWorker(sessionRepo, verificationRepo, cfg.Session.CleanupInterval)
	go cleanup.Start(workerCtx)

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
