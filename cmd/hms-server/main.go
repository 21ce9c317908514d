package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/bed"
	"github.com/hms/hms/internal/domain/prescription"
	"github.com/hms/hms/internal/domain/schedule"
	"github.com/hms/hms/internal/domain/user"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/middleware"
	"github.com/hms/hms/internal/platform/seed"
)

// devJWTSecret backs token signing when no JWT_SECRET is configured. Only
// allowed outside production; Validate rejects a production config without
// an explicit secret.
const devJWTSecret = "hms-dev-secret-do-not-use-in-production"

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital Management API Server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the hospital management API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	secret := []byte(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		logger.Warn().Msg("JWT_SECRET not set; using insecure development secret")
		secret = []byte(devJWTSecret)
	}

	ctx := context.Background()

	// Repositories: Postgres when DATABASE_URL is set, in-memory otherwise.
	var (
		userRepo  user.Repository
		apptRepo  appointment.Repository
		bedRepo   bed.Repository
		rxRepo    prescription.Repository
		schedRepo schedule.Repository
		pool      *pgxpool.Pool
	)
	if cfg.UseMemoryStore() {
		logger.Info().Msg("no DATABASE_URL configured; using in-memory store")
		userRepo = user.NewMemoryRepo()
		apptRepo = appointment.NewMemoryRepo()
		bedRepo = bed.NewMemoryRepo()
		rxRepo = prescription.NewMemoryRepo()
		schedRepo = schedule.NewMemoryRepo()
	} else {
		pool, err = db.NewPool(ctx, db.PoolConfig{
			URL:      cfg.DatabaseURL,
			MaxConns: cfg.DBMaxConns,
			MinConns: cfg.DBMinConns,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		logger.Info().Msg("connected to database")

		if err := db.Migrate(ctx, pool); err != nil {
			logger.Fatal().Err(err).Msg("failed to run migrations")
		}

		userRepo = user.NewPostgresRepo(pool)
		apptRepo = appointment.NewPostgresRepo(pool)
		bedRepo = bed.NewPostgresRepo(pool)
		rxRepo = prescription.NewPostgresRepo(pool)
		schedRepo = schedule.NewPostgresRepo(pool)
	}

	// Services
	userSvc := user.NewService(userRepo)
	apptSvc := appointment.NewService(apptRepo)
	bedSvc := bed.NewService(bedRepo)
	rxSvc := prescription.NewService(rxRepo)
	schedSvc := schedule.NewService(schedRepo)

	if cfg.SeedBeds {
		if err := seed.Beds(ctx, bedRepo); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed beds")
		}
		logger.Info().Msg("bed seed data ensured")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	// Public routes: login and registration live outside the auth middleware.
	public := e.Group("/api")
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	userHandler := user.NewHandler(userSvc, secret, tokenTTL)
	userHandler.RegisterAuthRoutes(public)

	// Authenticated routes
	api := e.Group("/api", auth.Middleware(secret))
	userHandler.RegisterRoutes(api)
	appointment.NewHandler(apptSvc, userSvc).RegisterRoutes(api)
	bed.NewHandler(bedSvc).RegisterRoutes(api)
	prescription.NewHandler(rxSvc, userSvc).RegisterRoutes(api)
	schedule.NewHandler(schedSvc, userSvc).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
