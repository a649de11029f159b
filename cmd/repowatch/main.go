package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/omarshaarawi/repowatch/internal/api/github"
	"github.com/omarshaarawi/repowatch/internal/config"
	"github.com/omarshaarawi/repowatch/internal/repository/memory"
	"github.com/omarshaarawi/repowatch/internal/scheduler"
	"github.com/omarshaarawi/repowatch/internal/service"
	"github.com/omarshaarawi/repowatch/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.GitHubAPI.Token == "" {
		slog.Warn("GITHUB_ACCESS_TOKEN is not set; refreshes will fail and /data will serve the empty snapshot")
	}

	githubClient := github.NewClient(cfg.GitHubAPI)
	githubAPI := github.NewAPI(githubClient)

	repo := memory.NewRepository()
	refreshService := service.NewRefreshService(githubAPI, repo, clockwork.NewRealClock())

	sched, err := scheduler.NewScheduler(refreshService, cfg.Server.Schedule)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           web.SetupRoutes(web.NewHandler(repo, cfg.Server.StaticDir)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "addr", cfg.Server.Addr, "staticDir", cfg.Server.StaticDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
