package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/payright/ai-service/internal/alternatives"
	"github.com/payright/ai-service/internal/api/handlers"
	"github.com/payright/ai-service/internal/inference"
)

// fakeCompleter stands in for the Gemini client.
type fakeCompleter struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
	called       bool
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.called = true
	if f.CompleteFunc != nil {
		return f.CompleteFunc(ctx, prompt)
	}
	return "[]", nil
}

const requestBody = `[
  {"id": "txn_001", "userId": "user123", "transaction_date": "2023-01-15", "description": "NETFLIX.COM", "amount": 15.99, "currency": "USD", "source": "Bank A"},
  {"id": "txn_002", "userId": "user123", "transaction_date": "2023-02-15", "description": "NETFLIX.COM", "amount": 15.99, "currency": "USD"},
  {"id": "txn_003", "userId": "user123", "transaction_date": "2023-02-20", "description": "COFFEE SHOP", "amount": 4.50, "currency": "USD"}
]`

const modelOutput = `[
  {
    "name": "Netflix",
    "transaction_ids": ["txn_001", "txn_002"],
    "average_amount": 15.99,
    "currency": "USD",
    "detected_frequency": "monthly",
    "first_transaction_date": "2023-01-15",
    "last_transaction_date": "2023-02-15",
    "confidence_score": 0.9,
    "potential_next_billing_date": "2023-03-15"
  },
  {
    "name": "Mystery",
    "transaction_ids": ["txn_003"],
    "average_amount": 4.50,
    "currency": "USD",
    "detected_frequency": "monthly",
    "first_transaction_date": "2023-02-20",
    "last_transaction_date": "2023-02-20",
    "confidence_score": 3.0
  }
]`

func analysisHandler(completer inference.Completer) *handlers.AnalysisHandler {
	analyzer := inference.NewAnalyzer(completer, zerolog.Nop())
	return handlers.NewAnalysisHandler(analyzer, zerolog.Nop())
}

func TestAnalyzeTransactions_Success(t *testing.T) {
	completer := &fakeCompleter{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return modelOutput, nil
		},
	}
	h := analysisHandler(completer)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-transactions", strings.NewReader(requestBody))
	w := httptest.NewRecorder()
	h.AnalyzeTransactions(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body)
	}

	var result struct {
		UserID                  string   `json:"user_id"`
		ProcessedTransactionIDs []string `json:"processed_transaction_ids"`
		IdentifiedSubscriptions []struct {
			Name          string `json:"name"`
			AverageAmount string `json:"average_amount"`
		} `json:"identified_subscriptions"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.UserID != "user123" {
		t.Errorf("user_id = %q, want user123", result.UserID)
	}
	if len(result.ProcessedTransactionIDs) != 3 {
		t.Errorf("processed ids = %v, want all 3 input ids", result.ProcessedTransactionIDs)
	}
	// The second candidate has confidence 3.0 and must be dropped without
	// failing the request.
	if len(result.IdentifiedSubscriptions) != 1 {
		t.Fatalf("identified = %d, want 1", len(result.IdentifiedSubscriptions))
	}
	if result.IdentifiedSubscriptions[0].AverageAmount != "15.99" {
		t.Errorf("average_amount = %q, want exactly 15.99", result.IdentifiedSubscriptions[0].AverageAmount)
	}
}

func TestAnalyzeTransactions_EmptyBatch(t *testing.T) {
	completer := &fakeCompleter{}
	h := analysisHandler(completer)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-transactions", strings.NewReader("[]"))
	w := httptest.NewRecorder()
	h.AnalyzeTransactions(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if completer.called {
		t.Error("completion engine must not be called for an empty batch")
	}
}

func TestAnalyzeTransactions_InvalidBody(t *testing.T) {
	h := analysisHandler(&fakeCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-transactions", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.AnalyzeTransactions(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAnalyzeTransactions_EngineUnavailable(t *testing.T) {
	h := handlers.NewAnalysisHandler(nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-transactions", strings.NewReader(requestBody))
	w := httptest.NewRecorder()
	h.AnalyzeTransactions(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestAnalyzeTransactions_CompletionFailure(t *testing.T) {
	completer := &fakeCompleter{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("provider error")
		},
	}
	h := analysisHandler(completer)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-transactions", strings.NewReader(requestBody))
	w := httptest.NewRecorder()
	h.AnalyzeTransactions(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "provider error") {
		t.Error("internal error detail must not leak to the client")
	}
}

// Malformed model output is absorbed: the request still succeeds with zero
// subscriptions.
func TestAnalyzeTransactions_MalformedModelOutput(t *testing.T) {
	completer := &fakeCompleter{
		CompleteFunc: func(ctx context.Context, prompt string) (string, error) {
			return `[{"name": "Netflix",`, nil
		},
	}
	h := analysisHandler(completer)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-transactions", strings.NewReader(requestBody))
	w := httptest.NewRecorder()
	h.AnalyzeTransactions(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var result struct {
		IdentifiedSubscriptions []any `json:"identified_subscriptions"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(result.IdentifiedSubscriptions) != 0 {
		t.Errorf("expected 0 subscriptions, got %d", len(result.IdentifiedSubscriptions))
	}
}

func alternativesHandler() *handlers.AlternativesHandler {
	matcher := alternatives.NewMatcher(zerolog.Nop())
	return handlers.NewAlternativesHandler(matcher, zerolog.Nop())
}

func TestSuggestAlternatives_Known(t *testing.T) {
	h := alternativesHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/suggest-alternatives", strings.NewReader(`{"service_name": "Netflix"}`))
	w := httptest.NewRecorder()
	h.SuggestAlternatives(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp handlers.AlternativesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RequestedService != "Netflix" {
		t.Errorf("requested_service = %q", resp.RequestedService)
	}
	if len(resp.Alternatives) != 6 {
		t.Errorf("alternatives = %d, want 6", len(resp.Alternatives))
	}
	if resp.Message != "Found 6 alternatives for 'Netflix'." {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestSuggestAlternatives_Unknown(t *testing.T) {
	h := alternativesHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/suggest-alternatives", strings.NewReader(`{"service_name": "totally-unknown-service"}`))
	w := httptest.NewRecorder()
	h.SuggestAlternatives(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (zero matches is still success)", w.Code, http.StatusOK)
	}

	var resp handlers.AlternativesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Alternatives) != 0 {
		t.Errorf("alternatives = %d, want 0", len(resp.Alternatives))
	}
}

func TestSuggestAlternatives_BlankName(t *testing.T) {
	h := alternativesHandler()

	for _, body := range []string{`{"service_name": ""}`, `{"service_name": "   "}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/suggest-alternatives", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.SuggestAlternatives(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want %d", body, w.Code, http.StatusBadRequest)
		}
	}
}

func TestStatus(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		h := handlers.NewStatusHandler(true, "")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		h.Status(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "running") {
			t.Errorf("body = %s, want running", w.Body)
		}
	})

	t.Run("degraded", func(t *testing.T) {
		h := handlers.NewStatusHandler(false, "GEMINI_API_KEY not configured")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		h.Status(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "degraded - GEMINI_API_KEY not configured") {
			t.Errorf("body = %s, want degraded reason", w.Body)
		}
	})
}
