package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/payright/ai-service/internal/alternatives"
	"github.com/payright/ai-service/internal/api/handlers"
	"github.com/payright/ai-service/internal/api/middleware"
	"github.com/payright/ai-service/internal/config"
	"github.com/payright/ai-service/internal/inference"
	"github.com/payright/ai-service/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Logger.Level)
	log.Info().Msg("PayRight AI Service starting up")

	ctx := context.Background()

	// The completion engine is constructed once and shared across requests.
	// Without a usable credential the service still starts, but the
	// inference endpoint stays closed (503) and only alternatives lookups
	// are served.
	var analyzer *inference.Analyzer
	degradedReason := ""
	if !cfg.GeminiConfigured() {
		degradedReason = "GEMINI_API_KEY not configured"
		log.Error().Msg("GEMINI_API_KEY is not configured; inference requests will be rejected")
	} else {
		completer, err := inference.NewGeminiCompleter(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		if err != nil {
			degradedReason = "completion engine initialization failed"
			log.Error().Err(err).Msg("Failed to initialize Gemini completer; inference requests will be rejected")
		} else {
			analyzer = inference.NewAnalyzer(completer, log)
			log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini completer initialized")
		}
	}

	matcher := alternatives.NewMatcher(log)

	analysisHandler := handlers.NewAnalysisHandler(analyzer, log)
	alternativesHandler := handlers.NewAlternativesHandler(matcher, log)
	statusHandler := handlers.NewStatusHandler(analyzer != nil, degradedReason)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/analyze-transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			analysisHandler.AnalyzeTransactions(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/suggest-alternatives", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			alternativesHandler.SuggestAlternatives(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			middleware.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		statusHandler.Status(w, r)
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if cfg.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.Metrics(
					middleware.CORS(mux),
				),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
