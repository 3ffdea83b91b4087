package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance_tracker/internal/config"
	"finance_tracker/internal/handlers"
	"finance_tracker/internal/logger"
	"finance_tracker/internal/mailer"
	"finance_tracker/internal/repository"
	"finance_tracker/internal/repository/db"
	"finance_tracker/internal/server"
	"finance_tracker/internal/service"
)

const shutdownGrace = 10 * time.Second

func main() {
	// load environment config; required keys fail fast
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	// ensure the upload directory exists before serving from it
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalw("failed to create upload dir", "dir", cfg.UploadDir, "err", err)
	}

	// open DB
	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, service.Deps{
		SigningKey: cfg.JWTSecret,
		Mailer:     mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	})
	apiHandler := handlers.NewHandler(services, log, cfg.UploadDir)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		log.Infow("starting server", "port", cfg.Port)
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
