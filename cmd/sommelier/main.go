package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vinoteca-cloud/sommelier/internal/config"
	dbRedis "github.com/vinoteca-cloud/sommelier/internal/db/redis"
	"github.com/vinoteca-cloud/sommelier/internal/domain"
	logpkg "github.com/vinoteca-cloud/sommelier/internal/logger"
	"github.com/vinoteca-cloud/sommelier/internal/metrics"
	"github.com/vinoteca-cloud/sommelier/internal/prompt"
	narrativerepo "github.com/vinoteca-cloud/sommelier/internal/repository/narrative"
	winerepo "github.com/vinoteca-cloud/sommelier/internal/repository/wine"
	chiTransport "github.com/vinoteca-cloud/sommelier/internal/transport/chi"
	"github.com/vinoteca-cloud/sommelier/internal/transport/mockai"
	openaiGen "github.com/vinoteca-cloud/sommelier/internal/transport/openai"
	comparisonuc "github.com/vinoteca-cloud/sommelier/internal/usecase/comparison"
	healthuc "github.com/vinoteca-cloud/sommelier/internal/usecase/health"
	profileuc "github.com/vinoteca-cloud/sommelier/internal/usecase/profile"
	wineuc "github.com/vinoteca-cloud/sommelier/internal/usecase/wine"
	"github.com/vinoteca-cloud/sommelier/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting sommelier API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// All narrative and catalog keys share the configured prefix.
	domain.KeyPrefix = cfg.Storage.KeyPrefix

	// Valkey and Redis speak the same protocol; both drivers resolve to the
	// rueidis-backed store.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register generation metrics explicitly (no init())
	metrics.RegisterGenerationMetrics()

	// Create repositories
	wineRepo := winerepo.New(store)
	recordRepo := narrativerepo.New(store)

	// Seed the wine catalog if configured
	if cfg.Catalog.SeedFile != "" {
		count, err := wineRepo.Seed(ctx, cfg.Catalog.SeedFile)
		if err != nil {
			logger.Fatal("Failed to seed wine catalog",
				zap.String("file", cfg.Catalog.SeedFile), zap.Error(err))
		}
		logger.Info("Wine catalog seeded",
			zap.String("file", cfg.Catalog.SeedFile), zap.Int("wines", count))
	}

	// Select the generation provider — composition root. The provider is fixed
	// at startup; a generation failure at request time surfaces as an error
	// rather than silently switching providers.
	var (
		profileGen     profileuc.Generator
		comparisonGen  comparisonuc.Generator
		genChecker     healthuc.GenerationChecker
		providerName   string
	)
	if cfg.OpenAIConfigured() {
		g := openaiGen.NewGenerator(&openaiGen.Config{
			APIKey:         cfg.AI.OpenAI.APIKey,
			BaseURL:        cfg.AI.OpenAI.BaseURL,
			Model:          cfg.AI.OpenAI.Model,
			MaxTokens:      cfg.AI.OpenAI.MaxTokens,
			Temperature:    cfg.AI.OpenAI.Temperature,
			MaxRetries:     cfg.AI.MaxRetries,
			RetryBaseDelay: time.Duration(cfg.AI.RetryBaseDelayMS) * time.Millisecond,
			Prompts:        prompt.NewBuilder(),
			Logger:         logger,
		})
		profileGen, comparisonGen, genChecker = g, g, g
		providerName = g.Name()
	} else {
		g := mockai.NewGenerator(logger)
		// The mock has no remote dependency, so the health report skips it.
		profileGen, comparisonGen = g, g
		providerName = g.Name()
	}
	logger.Info("Generation provider selected",
		zap.String("provider", providerName),
		zap.String("model", cfg.AI.OpenAI.Model),
	)

	// Create use case services
	wineSvc := wineuc.New(wineRepo)
	profileSvc := profileuc.New(wineRepo, recordRepo, profileGen, logger)
	comparisonSvc := comparisonuc.New(wineRepo, recordRepo, comparisonGen, logger)
	healthSvc := healthuc.New(store, genChecker)

	// Create chi server
	server := chiTransport.NewServer(wineSvc, profileSvc, comparisonSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
