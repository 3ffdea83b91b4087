package repository

import (
	"context"
	"database/sql"

	"finance_tracker/internal/models"
)

type Users interface {
	Create(name, email, passwordHash string, profilePicture *string) (int64, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id int64) (*models.User, error)
}

// Transactions is the owner-scoped store for income/expense rows.
// Every query filters on the owner's user id; a client-supplied id is never used.
type Transactions interface {
	Create(ctx context.Context, t models.Transaction) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Transaction, error)
	Delete(ctx context.Context, userID, id int64) error
	Summary(ctx context.Context, userID int64, period string) ([]models.SummaryRow, error)
}

type Repository struct {
	Users        Users
	Transactions Transactions
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:        NewUserRepository(db),
		Transactions: NewTransactionRepository(db),
	}
}
