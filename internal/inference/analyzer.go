package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/payright/ai-service/internal/domain"
	"github.com/payright/ai-service/internal/metrics"
)

// Analyzer runs the transaction-to-subscription inference pipeline: prompt
// construction, model completion, response sanitation and candidate
// normalization. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	completer Completer
	log       zerolog.Logger
}

// NewAnalyzer wires the pipeline around a Completer. Tests substitute a
// fake; production passes a GeminiCompleter.
func NewAnalyzer(completer Completer, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		completer: completer,
		log:       log,
	}
}

// Analyze runs one transaction batch through the pipeline.
//
// A completion failure is returned to the caller; malformed model output is
// absorbed and degrades to an empty subscription list instead. The result's
// ProcessedTransactionIDs always covers the full input batch in order, and
// UserID comes from the first record.
func (a *Analyzer) Analyze(ctx context.Context, records []domain.TransactionRecord) (*domain.AnalysisResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("Analyze: empty transaction batch")
	}

	prompt := buildAnalysisPrompt(records)

	start := time.Now()
	raw, err := a.completer.Complete(ctx, prompt)
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("Analyze: completion: %w", err)
	}

	candidates := decodeCandidates(raw, a.log)
	subscriptions := normalizeCandidates(candidates, a.log)

	a.log.Info().
		Str("user_id", records[0].UserID).
		Int("transactions", len(records)).
		Int("candidates", len(candidates)).
		Int("subscriptions", len(subscriptions)).
		Msg("Transaction batch analyzed")

	ids := make([]string, len(records))
	for i, tx := range records {
		ids[i] = tx.ID
	}

	return &domain.AnalysisResult{
		UserID:                  records[0].UserID,
		ProcessedTransactionIDs: ids,
		IdentifiedSubscriptions: subscriptions,
	}, nil
}
