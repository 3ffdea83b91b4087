package service

import (
	"context"
	"errors"
	"strings"

	"finance_tracker/internal/models"
	"finance_tracker/internal/repository"

	"github.com/shopspring/decimal"
)

// Summary periods accepted by Summary.
const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// Domain errors for transaction flows.
var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrInvalidType   = errors.New("type must be income or expense")
	ErrInvalidPeriod = errors.New(`invalid period, use "monthly" or "yearly"`)
)

// AddTransactionParams is the input for recording a new entry.
// Presence of all fields is checked at the HTTP boundary; semantic
// validation happens here.
type AddTransactionParams struct {
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
}

type TransactionService struct {
	txRepo repository.Transactions
}

func NewTransactionService(txRepo repository.Transactions) *TransactionService {
	return &TransactionService{txRepo: txRepo}
}

// List returns the caller's transactions, newest first.
func (s *TransactionService) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.txRepo.ListByUser(ctx, userID)
}

// normalizeType trims spaces and lowercases the transaction type.
func normalizeType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// Add validates and stores a new transaction for the caller.
// The type is normalized to lowercase before storage and must be one of
// the two known kinds; the amount must be strictly positive.
func (s *TransactionService) Add(ctx context.Context, userID int64, p AddTransactionParams) (int64, error) {
	if !p.Amount.IsPositive() {
		return 0, ErrInvalidAmount
	}

	typ := normalizeType(p.Type)
	if typ != models.TypeIncome && typ != models.TypeExpense {
		return 0, ErrInvalidType
	}

	return s.txRepo.Create(ctx, models.Transaction{
		UserID:      userID,
		Description: p.Description,
		Amount:      p.Amount,
		Type:        typ,
		Category:    p.Category,
	})
}

// Delete removes the caller's transaction by id. Deleting a non-existent
// or foreign id is a silent no-op: the operation is idempotent.
func (s *TransactionService) Delete(ctx context.Context, userID, id int64) error {
	return s.txRepo.Delete(ctx, userID, id)
}

// Summary groups the caller's transactions into calendar buckets,
// summing income and expense amounts per bucket.
func (s *TransactionService) Summary(ctx context.Context, userID int64, period string) ([]models.SummaryRow, error) {
	if period != PeriodMonthly && period != PeriodYearly {
		return nil, ErrInvalidPeriod
	}
	return s.txRepo.Summary(ctx, userID, period)
}
