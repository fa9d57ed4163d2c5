package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/payright/ai-service/internal/alternatives"
	"github.com/payright/ai-service/internal/api/middleware"
	"github.com/payright/ai-service/internal/domain"
	"github.com/payright/ai-service/internal/inference"
)

// AnalysisHandler handles the subscription inference endpoint. A nil
// analyzer means the completion engine failed to initialize at startup; the
// endpoint then fails closed with 503 without attempting any model call.
type AnalysisHandler struct {
	analyzer *inference.Analyzer
	log      zerolog.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analyzer *inference.Analyzer, log zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
		log:      log,
	}
}

// AnalyzeTransactions handles POST /api/analyze-transactions
func (h *AnalysisHandler) AnalyzeTransactions(w http.ResponseWriter, r *http.Request) {
	if h.analyzer == nil {
		h.log.Error().Msg("Inference requested but completion engine is not initialized")
		middleware.WriteError(w, http.StatusServiceUnavailable, "Inference engine is not available. Check API key or initialization.")
		return
	}

	var records []domain.TransactionRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(records) == 0 {
		h.log.Warn().Msg("Received empty transaction batch for analysis")
		middleware.WriteError(w, http.StatusBadRequest, "No transactions provided for analysis")
		return
	}

	h.log.Info().
		Int("count", len(records)).
		Str("user_id", records[0].UserID).
		Msg("Received transaction batch for analysis")

	result, err := h.analyzer.Analyze(r.Context(), records)
	if err != nil {
		h.log.Error().Err(err).Msg("Transaction analysis failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Internal server error during analysis")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

// AlternativesResponse is the suggest-alternatives response body.
type AlternativesResponse struct {
	RequestedService string                           `json:"requested_service"`
	Alternatives     []alternatives.AlternativeDetail `json:"alternatives"`
	Message          string                           `json:"message"`
}

// AlternativesHandler handles alternative-service suggestions.
type AlternativesHandler struct {
	matcher *alternatives.Matcher
	log     zerolog.Logger
}

// NewAlternativesHandler creates a new alternatives handler.
func NewAlternativesHandler(matcher *alternatives.Matcher, log zerolog.Logger) *AlternativesHandler {
	return &AlternativesHandler{
		matcher: matcher,
		log:     log,
	}
}

// SuggestAlternatives handles POST /api/suggest-alternatives
//
// A blank service name is the only client error; zero matches is still a
// successful response.
func (h *AlternativesHandler) SuggestAlternatives(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ServiceName string `json:"service_name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Service name must be provided")
		return
	}

	alts := h.matcher.Lookup(req.ServiceName)

	middleware.WriteJSON(w, http.StatusOK, AlternativesResponse{
		RequestedService: req.ServiceName,
		Alternatives:     alts,
		Message:          fmt.Sprintf("Found %d alternatives for '%s'.", len(alts), req.ServiceName),
	})
}

// StatusHandler reports overall service health, including degraded mode
// when the completion engine is unavailable.
type StatusHandler struct {
	inferenceReady bool
	degradedReason string
}

// NewStatusHandler creates a status handler. degradedReason is shown when
// inferenceReady is false.
func NewStatusHandler(inferenceReady bool, degradedReason string) *StatusHandler {
	return &StatusHandler{
		inferenceReady: inferenceReady,
		degradedReason: degradedReason,
	}
}

// Status handles GET /
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	status := "running"
	if !h.inferenceReady {
		status = "degraded - " + h.degradedReason
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("PayRight AI Service is %s.", status),
	})
}
