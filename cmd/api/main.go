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

	"github.com/medisys/hospital-api/internal/config"
	"github.com/medisys/hospital-api/internal/handler"
	appointmentHandler "github.com/medisys/hospital-api/internal/handler/appointment"
	billingHandler "github.com/medisys/hospital-api/internal/handler/billing"
	doctorHandler "github.com/medisys/hospital-api/internal/handler/doctor"
	patientHandler "github.com/medisys/hospital-api/internal/handler/patient"
	"github.com/medisys/hospital-api/internal/middleware"
	"github.com/medisys/hospital-api/internal/repository/postgres"
	"github.com/medisys/hospital-api/internal/router"
	appointmentService "github.com/medisys/hospital-api/internal/service/appointment"
	billingService "github.com/medisys/hospital-api/internal/service/billing"
	doctorService "github.com/medisys/hospital-api/internal/service/doctor"
	patientService "github.com/medisys/hospital-api/internal/service/patient"
	"github.com/medisys/hospital-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.Logging.Level))

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	billRepo := postgres.NewBillRepository(db)

	// Services
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo)
	billingSvc := billingService.NewService(billRepo, patientRepo)

	// Handlers
	h := handler.NewHandler(db)
	patientH := patientHandler.NewHandler(patientSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	billingH := billingHandler.NewHandler(billingSvc)

	r := router.NewRouter(
		patientH,
		doctorH,
		appointmentH,
		billingH,
		h,
		router.RouterConfig{
			RateLimit:      rate.Limit(cfg.Rate.RPS),
			RateBurst:      cfg.Rate.Burst,
			RequestTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
			CORSConfig:     middleware.DefaultCORSConfig(),
			MetricsPrefix:  "hospital_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

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
