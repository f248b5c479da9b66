// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/clubmap/internal/auth"
	"github.com/dangerclosesec/clubmap/internal/config"
	"github.com/dangerclosesec/clubmap/internal/database"
	"github.com/dangerclosesec/clubmap/internal/email"
	"github.com/dangerclosesec/clubmap/internal/handler"
	"github.com/dangerclosesec/clubmap/internal/metrics"
	"github.com/dangerclosesec/clubmap/internal/middleware"
	"github.com/dangerclosesec/clubmap/internal/migration"
	"github.com/dangerclosesec/clubmap/internal/repository"
	"github.com/dangerclosesec/clubmap/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()
	if cfg.IsProduction() && cfg.JWT.Secret == config.DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}

	ctx := context.Background()

	// Initialize database
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting database instance: %w", err)
	}
	applied, err := migration.NewMigrator(sqlDB, cfg.Dialect()).Up(ctx)
	if err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	logger.Info("schema up to date", "applied", applied)

	// Initialize services
	store := repository.NewStore(db)
	m := metrics.New()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	clubHandler := handler.NewClubHandler(service.NewClubService(store))
	submissions := service.NewSubmissionService(store, m)
	mailer, err := email.NewEmailService(cfg.Email)
	if err != nil {
		return fmt.Errorf("setting up email: %w", err)
	}
	if mailer.Enabled() {
		submissions.WithNotifier(mailer)
		logger.Info("review decision emails enabled", "provider", cfg.Email.Provider)
	}
	submissionHandler := handler.NewSubmissionHandler(submissions)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Instrument(m))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		handler.Register(r, clubHandler, submissionHandler, handler.Guards{
			RequireReviewer: middleware.RequireReviewer(tokenManager, cfg.Auth.IPWhitelist),
			LimitSubmissions: middleware.RateLimit(
				middleware.NewIPRateLimiter(cfg.RateLimit.Submissions, cfg.RateLimit.SubmissionWindow)),
			LimitAPI: middleware.RateLimit(
				middleware.NewIPRateLimiter(cfg.RateLimit.API, cfg.RateLimit.APIWindow)),
		})
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Static mounts
	r.Handle("/assets/submissions/*", http.StripPrefix("/assets/submissions/",
		http.FileServer(http.Dir(cfg.Static.SubmissionsDir))))
	r.Handle("/*", http.FileServer(http.Dir(cfg.Static.PublicDir)))

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "env", cfg.Env, "dialect", cfg.Dialect())
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
