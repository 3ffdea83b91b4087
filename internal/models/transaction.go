package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense entry owned by one user.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"` // income | expense
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SummaryRow is one aggregation bucket (calendar month or year).
type SummaryRow struct {
	Bucket       int             `json:"-"` // month number 1-12 or four-digit year
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}
