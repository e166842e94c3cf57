package main

import (
	"clinic/cmd/internal/config"
	"clinic/cmd/internal/domain/sqlite"
	"clinic/cmd/internal/domain/sqlite/repository"
	"clinic/cmd/internal/routes"
	"clinic/cmd/internal/service"
	"clinic/cmd/internal/utils/validators"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic appointment booking API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and insert the sample doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := openStore(cfg)
			if err != nil {
				return err
			}
			return sqlite.Close(db)
		},
	}
}

func openStore(cfg *config.Config) (*gorm.DB, error) {
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	n, err := sqlite.SeedDoctors(db)
	if err != nil {
		_ = sqlite.Close(db)
		return nil, err
	}
	if n > 0 {
		log.Infof("seeded %d doctors", n)
	}
	return db, nil
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", err)
		return err
	}

	setLogLevel(cfg.LogLevel)
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	validate := validator.New()
	if err := validators.Register(validate); err != nil {
		return err
	}

	// Init SQLite
	db, err := openStore(cfg)
	if err != nil {
		log.Error("failed to initialize database", err)
		return err
	}
	defer sqlite.Close(db)

	// Getting repositories
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)

	// Getting services
	doctorService := service.NewDoctorService(doctorRepo)
	apptService := service.NewAppointmentService(apptRepo, doctorRepo, patientRepo, validate, cfg.Location)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(routes.AccessLog(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))

	routes.Register(e, routes.NewDoctorDefault(doctorService), routes.NewAppointmentDefault(apptService))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	default:
		log.SetLevel(log.INFO)
	}
}
