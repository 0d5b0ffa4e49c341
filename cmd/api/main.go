package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/nahuelfigueredo/app-web-doctor/internal/config"
	"github.com/nahuelfigueredo/app-web-doctor/internal/handler"
	authHandler "github.com/nahuelfigueredo/app-web-doctor/internal/handler/auth"
	turnoHandler "github.com/nahuelfigueredo/app-web-doctor/internal/handler/turno"
	"github.com/nahuelfigueredo/app-web-doctor/internal/middleware"
	"github.com/nahuelfigueredo/app-web-doctor/internal/notification"
	"github.com/nahuelfigueredo/app-web-doctor/internal/repository/jsonfile"
	"github.com/nahuelfigueredo/app-web-doctor/internal/router"
	authService "github.com/nahuelfigueredo/app-web-doctor/internal/service/auth"
	turnoService "github.com/nahuelfigueredo/app-web-doctor/internal/service/turno"
	"github.com/nahuelfigueredo/app-web-doctor/pkg/auth"
	"github.com/nahuelfigueredo/app-web-doctor/pkg/logger"
	"github.com/nahuelfigueredo/app-web-doctor/pkg/security"
)

const bcryptCost = 10

func main() {
	lg := logger.NewLogger(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		lg.Fatal(err, "failed to load configuration")
	}

	// Initialize storage
	store, err := jsonfile.NewStore(cfg.Storage.TurnosFile, cfg.Storage.MedicoFile)
	if err != nil {
		lg.Fatal(err, "failed to initialize storage")
	}

	// Initialize repositories
	turnoRepo := jsonfile.NewTurnoRepository(store)
	medicoRepo := jsonfile.NewMedicoRepository(store)

	// Initialize services
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(bcryptCost)
	authSvc := authService.NewService(medicoRepo, jwtSvc, hasher)

	notifier := notification.NewNoop()
	if cfg.SMTP.Host != "" {
		notifier = notification.NewMailer(cfg.SMTP)
	}
	turnoSvc := turnoService.NewService(turnoRepo, notifier)

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	turnoH := turnoHandler.NewHandler(turnoSvc)

	// Setup router
	r := router.NewRouter(authMiddleware, authH, turnoH, h, router.RouterConfig{
		RateLimit:     rate.Limit(cfg.RateLimit.RequestsPerSecond),
		RateBurst:     cfg.RateLimit.Burst,
		MetricsPrefix: "turnos_api",
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	// Start server
	go func() {
		lg.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Fatal(err, "server forced to shutdown")
	}

	lg.Info("server exited properly")
}
