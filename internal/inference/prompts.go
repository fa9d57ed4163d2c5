package inference

import (
	"fmt"
	"strings"

	"github.com/payright/ai-service/internal/domain"
)

// buildAnalysisPrompt renders the instruction block sent to the model for a
// batch of transactions. The output is deterministic for a given batch; the
// caller guarantees the batch is non-empty.
func buildAnalysisPrompt(records []domain.TransactionRecord) string {
	var b strings.Builder

	userID := "unknown"
	if len(records) > 0 {
		userID = records[0].UserID
	}

	b.WriteString("You are an expert financial analyst specializing in identifying recurring subscriptions from transaction lists.\n")
	fmt.Fprintf(&b, "Analyze the following transactions for user %q and identify any recurring subscriptions.\n\n", userID)

	b.WriteString("For each identified subscription, provide the following fields in JSON format:\n")
	b.WriteString("- \"name\": the common name of the subscription service (e.g. \"Netflix\", \"Spotify\").\n")
	b.WriteString("- \"transaction_ids\": a list of the *original transaction IDs* (provided below) that belong to this subscription.\n")
	b.WriteString("- \"average_amount\": the average periodic amount as a bare number, no currency symbols.\n")
	b.WriteString("- \"currency\": the currency code (e.g. \"USD\").\n")
	b.WriteString("- \"detected_frequency\": the detected recurrence frequency (e.g. \"monthly\", \"yearly\", \"weekly\", \"bi-weekly\", or \"unknown\").\n")
	b.WriteString("- \"first_transaction_date\": the date of the earliest transaction in this group, \"YYYY-MM-DD\".\n")
	b.WriteString("- \"last_transaction_date\": the date of the latest transaction in this group, \"YYYY-MM-DD\".\n")
	b.WriteString("- \"confidence_score\": your confidence in this identification, a number from 0.0 to 1.0.\n")
	b.WriteString("- \"potential_next_billing_date\": your best estimate for the next billing date, \"YYYY-MM-DD\", or null if not calculable.\n\n")

	b.WriteString("Transaction data:\n")
	for _, tx := range records {
		fmt.Fprintf(&b, "- ID: %s, Date: %s, Description: %q, Amount: %s %s\n",
			tx.ID, tx.TransactionDate, tx.Description, tx.Amount, tx.Currency)
	}

	b.WriteString("\nReturn ONLY a JSON array of subscription objects.\n")
	b.WriteString("If no subscriptions are found, return an empty JSON array: [].\n")
	b.WriteString("Do NOT wrap the response in code fences or any Markdown.\n")
	b.WriteString("All monetary amounts must be numbers, not strings with currency symbols.\n")
	b.WriteString("All dates must be in YYYY-MM-DD format.\n")

	return b.String()
}
