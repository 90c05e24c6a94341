package models

import (
	"strconv"
	"time"
)

// Transaction is a purchase record from the admin transactions listing.
// Amount arrives as a decimal string; use AmountValue for arithmetic.
type Transaction struct {
	ID            string         `json:"id"`
	TransactionID string         `json:"transaction_id"`
	Amount        string         `json:"amount"`
	Status        string         `json:"status"`
	Buyer         *UserSummary   `json:"buyer,omitempty"`
	Project       *ReviewProject `json:"project,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// AmountValue parses the decimal amount, returning 0 for unparseable values
// so that revenue totals degrade rather than fail.
func (t Transaction) AmountValue() float64 {
	v, err := strconv.ParseFloat(t.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}
