package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// IdentifiedSubscription is one recurring subscription detected in a batch
// of transactions. Instances exist only for the lifetime of a single
// analysis request; nothing is persisted.
//
// DetectedFrequency is an opaque string ("monthly", "yearly", ...), not a
// closed enum: the model may emit tokens we have never seen and they are
// passed through as-is.
type IdentifiedSubscription struct {
	Name                     string          `json:"name"`
	TransactionIDs           []string        `json:"transaction_ids"`
	AverageAmount            decimal.Decimal `json:"average_amount"`
	Currency                 string          `json:"currency"`
	DetectedFrequency        string          `json:"detected_frequency"`
	FirstTransactionDate     civil.Date      `json:"first_transaction_date"`
	LastTransactionDate      civil.Date      `json:"last_transaction_date"`
	ConfidenceScore          float64         `json:"confidence_score"`
	PotentialNextBillingDate *civil.Date     `json:"potential_next_billing_date,omitempty"`
	Metadata                 map[string]any  `json:"metadata,omitempty"`
}

// AnalysisResult is the outcome of analyzing one transaction batch.
// ProcessedTransactionIDs always lists every input id in order, no matter
// how many subscriptions were identified.
type AnalysisResult struct {
	UserID                  string                   `json:"user_id,omitempty"`
	ProcessedTransactionIDs []string                 `json:"processed_transaction_ids"`
	IdentifiedSubscriptions []IdentifiedSubscription `json:"identified_subscriptions"`
}
