package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// TransactionRecord is one bank transaction submitted for subscription
// analysis. Records are immutable once received; the amount is carried as an
// exact decimal (never a float) so averages don't accumulate rounding drift.
type TransactionRecord struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	TransactionDate civil.Date      `json:"transaction_date"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Source          string          `json:"source,omitempty"`
}
