package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vod-rounds/internal/platform/config"
	"vod-rounds/internal/platform/logger"
	"vod-rounds/internal/platform/metrics"
	"vod-rounds/internal/rounds"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	port := config.GetEnv("PORT", "8080")
	minReadings := config.GetEnvInt("MIN_READINGS", 0)
	logLevel := config.GetEnv("LOG_LEVEL", "info")
	logFormat := config.GetEnv("LOG_FORMAT", "json")

	log := logger.New(logLevel, logFormat)

	repo := rounds.NewInMemoryRepository()
	svc := rounds.NewService(repo, minReadings)
	met := metrics.New()
	h := rounds.NewHandler(svc, log, met)

	r := chi.NewRouter()
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		met.Handler(func() { met.SetActiveMatches(repo.ActiveMatchCount()) }).ServeHTTP(w, r)
	})
	r.Route("/matches/{match_id}", func(r chi.Router) {
		r.Post("/readings", h.RegisterReadings)
		r.Post("/end", h.EndMatch)
		r.Get("/rounds", h.GetRounds)
		r.Get("/clips", h.GetClips)
		r.Get("/summary", h.GetSummary)
	})

	addr := ":" + port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", port,
		"min_readings", minReadings,
		"log_level", logLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
