package inference

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/payright/ai-service/internal/domain"
	"github.com/payright/ai-service/internal/metrics"
)

// normalizeCandidates coerces loose candidate maps into typed
// IdentifiedSubscription values. Candidates are processed independently: a
// malformed one is logged with its raw data and dropped, the rest survive
// in their original relative order. One bad candidate never fails a batch.
func normalizeCandidates(candidates []map[string]any, log zerolog.Logger) []domain.IdentifiedSubscription {
	subs := make([]domain.IdentifiedSubscription, 0, len(candidates))
	for _, cand := range candidates {
		sub, err := normalizeCandidate(cand)
		if err != nil {
			log.Error().Err(err).Interface("candidate", cand).Msg("Dropping malformed subscription candidate")
			metrics.CandidatesDropped.Inc()
			continue
		}
		subs = append(subs, sub)
	}
	return subs
}

func normalizeCandidate(obj map[string]any) (domain.IdentifiedSubscription, error) {
	var sub domain.IdentifiedSubscription

	name, err := getStringField(obj, "name", true)
	if err != nil {
		return sub, err
	}
	currency, err := getStringField(obj, "currency", true)
	if err != nil {
		return sub, err
	}
	frequency, err := getStringField(obj, "detected_frequency", false)
	if err != nil {
		return sub, err
	}
	if frequency == "" {
		frequency = "unknown"
	}

	ids, err := getStringSliceField(obj, "transaction_ids")
	if err != nil {
		return sub, err
	}

	amount, err := getDecimalField(obj, "average_amount")
	if err != nil {
		return sub, err
	}

	first, err := getDateField(obj, "first_transaction_date")
	if err != nil {
		return sub, err
	}
	last, err := getDateField(obj, "last_transaction_date")
	if err != nil {
		return sub, err
	}
	next, err := getOptionalDateField(obj, "potential_next_billing_date")
	if err != nil {
		return sub, err
	}

	confidence, err := getFloatField(obj, "confidence_score")
	if err != nil {
		return sub, err
	}

	if confidence < 0.0 || confidence > 1.0 {
		return sub, fmt.Errorf("confidence_score %v is outside [0.0, 1.0]", confidence)
	}
	if last.Before(first) {
		return sub, fmt.Errorf("last_transaction_date %s precedes first_transaction_date %s", last, first)
	}

	sub = domain.IdentifiedSubscription{
		Name:                     name,
		TransactionIDs:           ids,
		AverageAmount:            amount,
		Currency:                 currency,
		DetectedFrequency:        frequency,
		FirstTransactionDate:     first,
		LastTransactionDate:      last,
		ConfidenceScore:          confidence,
		PotentialNextBillingDate: next,
	}

	if meta, ok := obj["metadata"].(map[string]any); ok {
		sub.Metadata = meta
	}

	return sub, nil
}

func getStringField(m map[string]any, key string, required bool) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("missing required field %q", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q has type %T, want string", key, v)
	}
	if required && strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("required field %q is empty", key)
	}
	return s, nil
}

func getStringSliceField(m map[string]any, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("missing required field %q", key)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q has type %T, want array", key, v)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("required field %q is empty", key)
	}
	out := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q element %d has type %T, want string", key, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// getDecimalField converts a numeric field into an exact decimal via the
// number's string form, so 15.99 stays "15.99" instead of the float64 it
// rode in on. String-typed numbers from the model are coerced the same way.
func getDecimalField(m map[string]any, key string) (decimal.Decimal, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return decimal.Decimal{}, fmt.Errorf("missing required field %q", key)
	}
	switch val := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("field %q: invalid number %q: %w", key, val.String(), err)
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("field %q: invalid numeric string %q: %w", key, val, err)
		}
		return d, nil
	case float64:
		// Only reachable when the candidate was decoded without UseNumber.
		d, err := decimal.NewFromString(strconv.FormatFloat(val, 'f', -1, 64))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("field %q: invalid number %v: %w", key, val, err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("field %q has type %T, want number", key, v)
	}
}

func getFloatField(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing required field %q", key)
	}
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %q: invalid number %q: %w", key, val.String(), err)
		}
		return f, nil
	case float64:
		return val, nil
	default:
		return 0, fmt.Errorf("field %q has type %T, want number", key, v)
	}
}

func getDateField(m map[string]any, key string) (civil.Date, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return civil.Date{}, fmt.Errorf("missing required field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return civil.Date{}, fmt.Errorf("field %q has type %T, want string date", key, v)
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("field %q: invalid date %q: %w", key, s, err)
	}
	return d, nil
}

// getOptionalDateField preserves a null or absent date as nil rather than
// treating it as an error.
func getOptionalDateField(m map[string]any, key string) (*civil.Date, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("field %q has type %T, want string date or null", key, v)
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("field %q: invalid date %q: %w", key, s, err)
	}
	return &d, nil
}
