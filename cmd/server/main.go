package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deedflow/internal/jwtauth"
	"deedflow/internal/platform/config"
	"deedflow/internal/platform/httpserver"
	"deedflow/internal/platform/logger"
	platformmetrics "deedflow/internal/platform/metrics"
	"deedflow/internal/platform/postgres"
	"deedflow/internal/platform/redis"
	"deedflow/internal/tracking/cache"
	"deedflow/internal/tracking/events"
	"deedflow/internal/tracking/finance"
	"deedflow/internal/tracking/handler"
	trackingmetrics "deedflow/internal/tracking/metrics"
	"deedflow/internal/tracking/service"
	"deedflow/internal/tracking/store"
	"deedflow/internal/tracking/store/documents"
	"deedflow/internal/tracking/store/status"
	"deedflow/pkg/platform/debounce"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the tracking packages.
// Every backend is optional: without a database, Redis, or Kafka the process
// runs on in-memory stores and no-op collaborators.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	db, err := postgres.Open(startupCtx, cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connect failed", "error", err)
		os.Exit(1)
	}

	var docStore service.DocumentStore
	var statusStore service.StatusStore
	if db != nil {
		if _, err := db.ExecContext(startupCtx, store.Schema); err != nil {
			log.Error("apply tracking schema failed", "error", err)
			os.Exit(1)
		}
		docStore = documents.NewPostgres(db)
		statusStore = status.NewPostgres(db)
		log.Info("tracking stores backed by postgres")
	} else {
		docStore = documents.NewInMemory()
		statusStore = status.NewInMemory()
		log.Warn("DATABASE_URL not set, tracking state is in-memory")
	}

	redisClient, err := redis.New(startupCtx, cfg.Redis)
	if err != nil {
		log.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	if redisClient == nil {
		log.Warn("REDIS_URL not set, progress snapshots recompute on every read")
	}
	progressCache := cache.New(redisClient, cfg.ProgressCacheTTL)

	var publisher service.Publisher = events.Noop{}
	var kafka *events.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err = events.NewKafka(startupCtx, cfg.KafkaBrokers, log)
		if err != nil {
			log.Error("kafka connect failed", "error", err)
			os.Exit(1)
		}
		publisher = kafka
	}

	var gate service.FinancialGate = finance.Disabled{}
	if cfg.FinanceURL != "" {
		gate = finance.NewHTTPClient(cfg.FinanceURL, log)
	}

	scheduler := debounce.NewScheduler()
	httpMetrics := platformmetrics.New()
	trackingMetrics := trackingmetrics.New()

	svc := service.NewService(
		docStore,
		statusStore,
		gate,
		publisher,
		progressCache,
		scheduler,
		cfg.NoteDebounce,
		trackingMetrics,
		log,
	)

	jwtValidator := jwtauth.NewService(cfg.JWTSigningKey, "deedflow", "deedflow")

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				log.WarnContext(r.Context(), "redis health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Handle("/metrics", promhttp.Handler())
	trackingHandler := handler.New(svc, log, httpMetrics, jwtValidator)
	trackingHandler.RegisterAdmin(router, cfg.AdminTokenHash)
	trackingHandler.Register(router)

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting deedflow", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	// Pending note writes are dropped on shutdown; the debounce window is
	// short enough that the loss is bounded to the last keystrokes.
	scheduler.Stop()
	if kafka != nil {
		kafka.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
