package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"finance_tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func newMockTxRepo(t *testing.T) (*TransactionRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewTransactionRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func txColumns() []string {
	return []string{"id", "user_id", "description", "amount", "type", "category", "created_at"}
}

func TestTransactionRepository_Create(t *testing.T) {
	repo, mock, cleanup := newMockTxRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertTransactionSQL)).
		WithArgs(int64(7), "coffee", "3.5", "expense", "food", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(99, 1))

	id, err := repo.Create(context.Background(), models.Transaction{
		UserID:      7,
		Description: "coffee",
		Amount:      decimal.RequireFromString("3.5"),
		Type:        "expense",
		Category:    "food",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
}

func TestTransactionRepository_Create_ExecError(t *testing.T) {
	repo, mock, cleanup := newMockTxRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertTransactionSQL)).
		WillReturnError(errors.New("db exec failed"))

	_, err := repo.Create(context.Background(), models.Transaction{
		UserID: 7,
		Amount: decimal.RequireFromString("1"),
		Type:   "income",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	repo, mock, cleanup := newMockTxRepo(t)
	defer cleanup()

	newer := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-48 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(listTransactionsSQL)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(txColumns()).
			AddRow(2, 7, "salary", "1200", "income", "work", newer).
			AddRow(1, 7, "coffee", "3.5", "expense", "food", older))

	txs, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(txs))
	}
	if txs[0].ID != 2 || txs[0].Type != "income" {
		t.Fatalf("unexpected first row: %+v", txs[0])
	}
	if !txs[1].Amount.Equal(decimal.RequireFromString("3.5")) {
		t.Fatalf("unexpected amount: %v", txs[1].Amount)
	}
	if !txs[0].CreatedAt.Equal(newer) {
		t.Fatalf("unexpected created_at: %v", txs[0].CreatedAt)
	}
}

func TestTransactionRepository_ListByUser_Empty(t *testing.T) {
	repo, mock, cleanup := newMockTxRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(listTransactionsSQL)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(txColumns()))

	txs, err := repo.ListByUser(context.Background(), 8)
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty result, got %+v", txs)
	}
}

func TestTransactionRepository_Delete_NoRowsIsNotAnError(t *testing.T) {
	repo, mock, cleanup := newMockTxRepo(t)
	defer cleanup()

	// foreign or missing id: zero rows affected, still success
	mock.ExpectExec(regexp.QuoteMeta(deleteTransactionSQL)).
		WithArgs(int64(12345), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 7, 12345); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
}

func TestTransactionRepository_Delete_ExecError(t *testing.T) {
	repo, mock, cleanup := newMockTxRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteTransactionSQL)).
		WithArgs(int64(1), int64(7)).
		WillReturnError(errors.New("db gone"))

	if err := repo.Delete(context.Background(), 7, 1); err == nil {
		t.Fatal("expected error")
	}
}

func TestTransactionRepository_Summary(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		repo, mock, cleanup := newMockTxRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(summaryMonthlySQL)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"bucket", "total_income", "total_expense"}).
				AddRow(3, "1200", "350.5").
				AddRow(4, "0", "99.99"))

		rows, err := repo.Summary(context.Background(), 7, "monthly")
		if err != nil {
			t.Fatalf("Summary returned error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(rows))
		}
		if rows[0].Bucket != 3 || !rows[0].TotalIncome.Equal(decimal.RequireFromString("1200")) {
			t.Fatalf("unexpected first bucket: %+v", rows[0])
		}
		if !rows[1].TotalExpense.Equal(decimal.RequireFromString("99.99")) {
			t.Fatalf("unexpected second bucket: %+v", rows[1])
		}
	})

	t.Run("yearly", func(t *testing.T) {
		repo, mock, cleanup := newMockTxRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(summaryYearlySQL)).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"bucket", "total_income", "total_expense"}).
				AddRow(2025, "5000", "1234.56"))

		rows, err := repo.Summary(context.Background(), 7, "yearly")
		if err != nil {
			t.Fatalf("Summary returned error: %v", err)
		}
		if len(rows) != 1 || rows[0].Bucket != 2025 {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("unknown period hits no query", func(t *testing.T) {
		repo, _, cleanup := newMockTxRepo(t)
		defer cleanup()

		if _, err := repo.Summary(context.Background(), 7, "weekly"); err == nil {
			t.Fatal("expected error for unknown period")
		}
	})
}
