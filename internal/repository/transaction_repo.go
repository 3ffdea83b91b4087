package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"finance_tracker/internal/models"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

var _ Transactions = (*TransactionRepository)(nil)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	insertTransactionSQL = `INSERT INTO transactions (user_id, description, amount, type, category, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	listTransactionsSQL = `SELECT id, user_id, description, amount, type, category, created_at FROM transactions WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	deleteTransactionSQL = `DELETE FROM transactions WHERE id = ? AND user_id = ?`

	summaryMonthlySQL = `SELECT CAST(strftime('%m', created_at) AS INTEGER) AS bucket,
       SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS total_income,
       SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS total_expense
FROM transactions WHERE user_id = ? GROUP BY bucket ORDER BY bucket`

	summaryYearlySQL = `SELECT CAST(strftime('%Y', created_at) AS INTEGER) AS bucket,
       SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS total_income,
       SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS total_expense
FROM transactions WHERE user_id = ? GROUP BY bucket ORDER BY bucket`
)

// Create inserts a transaction and returns its id.
// CreatedAt is assigned here when the caller leaves it zero.
func (r *TransactionRepository) Create(ctx context.Context, t models.Transaction) (int64, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	} else {
		t.CreatedAt = t.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertTransactionSQL,
		t.UserID,
		t.Description,
		t.Amount,
		t.Type,
		t.Category,
		t.CreatedAt.Format(sqliteTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert transaction for user %d: %w", t.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for transaction: %w", err)
	}
	return lastID, nil
}

// ListByUser returns the owner's transactions, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, listTransactionsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Transaction, 0, 32)
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.CreatedAt = t.CreatedAt.UTC()
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the row only when both id and owner match.
// A missing or foreign id deletes nothing and is not an error.
func (r *TransactionRepository) Delete(ctx context.Context, userID, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteTransactionSQL, id, userID); err != nil {
		return fmt.Errorf("delete transaction %d for user %d: %w", id, userID, err)
	}
	return nil
}

// Summary aggregates the owner's rows per calendar month or year.
// Buckets without transactions are absent from the result.
func (r *TransactionRepository) Summary(ctx context.Context, userID int64, period string) ([]models.SummaryRow, error) {
	var q string
	switch period {
	case "monthly":
		q = summaryMonthlySQL
	case "yearly":
		q = summaryYearlySQL
	default:
		return nil, fmt.Errorf("unknown summary period %q", period)
	}

	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("summary (%s) for user %d: %w", period, userID, err)
	}
	defer rows.Close()

	out := make([]models.SummaryRow, 0, 12)
	for rows.Next() {
		var row models.SummaryRow
		if err := rows.Scan(&row.Bucket, &row.TotalIncome, &row.TotalExpense); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
